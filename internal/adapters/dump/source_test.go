package dump_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/endotarter/internal/adapters/dump"
	"go.trai.ch/endotarter/internal/core/domain"
)

const dumpURL = "https://www.nationstates.net/pages/nations.xml.gz"

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newMockClient(handler func(req *http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func failingClient(t *testing.T) *http.Client {
	t.Helper()
	return newMockClient(func(req *http.Request) (*http.Response, error) {
		t.Errorf("unexpected request to %s", req.URL)
		return nil, errors.New("unexpected request")
	})
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	return string(data)
}

func TestSource_OpenExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nations.xml.gz")
	require.NoError(t, os.WriteFile(path, gzipped(t, "<NATIONS/>"), domain.FilePerm))

	src := dump.NewSourceWithClientForTest(failingClient(t))
	rc, err := src.Open(context.Background(), domain.ExportLocation{Path: path, URL: dumpURL})
	require.NoError(t, err)
	assert.Equal(t, "<NATIONS/>", readAll(t, rc))
}

func TestSource_DownloadsWhenAbsent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "nations.xml.gz")
	body := gzipped(t, "<NATIONS><NATION/></NATIONS>")
	calls := 0

	client := newMockClient(func(req *http.Request) (*http.Response, error) {
		calls++
		assert.Equal(t, dumpURL, req.URL.String())
		assert.Equal(t, "endotarter test by my_nation", req.Header.Get("User-Agent"))
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	src := dump.NewSourceWithClientForTest(client)
	loc := domain.ExportLocation{Path: path, URL: dumpURL, UserAgent: "endotarter test by my_nation"}

	rc, err := src.Open(context.Background(), loc)
	require.NoError(t, err)
	assert.Equal(t, "<NATIONS><NATION/></NATIONS>", readAll(t, rc))

	// The second open reuses the downloaded file.
	rc, err = src.Open(context.Background(), loc)
	require.NoError(t, err)
	_ = readAll(t, rc)
	assert.Equal(t, 1, calls)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, stored)
}

func TestSource_DownloadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		agent   string
		handler func(req *http.Request) (*http.Response, error)
		wantErr error
	}{
		{
			name:    "missing user agent",
			wantErr: domain.ErrMissingUserAgent,
		},
		{
			name:  "not found",
			agent: "test",
			handler: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusNotFound,
					Body:       io.NopCloser(strings.NewReader("gone")),
					Header:     make(http.Header),
				}, nil
			},
			wantErr: domain.ErrExportUnavailable,
		},
		{
			name:  "transport failure",
			agent: "test",
			handler: func(_ *http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
			wantErr: domain.ErrExportUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "nations.xml.gz")
			client := failingClient(t)
			if tt.handler != nil {
				client = newMockClient(tt.handler)
			}

			src := dump.NewSourceWithClientForTest(client)
			_, err := src.Open(context.Background(), domain.ExportLocation{Path: path, URL: dumpURL, UserAgent: tt.agent})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			_, statErr := os.Stat(path)
			assert.True(t, errors.Is(statErr, os.ErrNotExist), "no partial dump is left behind")
		})
	}
}

func TestSource_NotGzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nations.xml.gz")
	require.NoError(t, os.WriteFile(path, []byte("<NATIONS/>"), domain.FilePerm))

	src := dump.NewSourceWithClientForTest(failingClient(t))
	_, err := src.Open(context.Background(), domain.ExportLocation{Path: path})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedExport))
}
