// Package dump implements the ExportSource port on top of the NationStates daily nations dump.
package dump

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 5 * time.Minute

// Source implements ports.ExportSource.
// It downloads the dump once if the local copy is absent and streams it decompressed.
type Source struct {
	httpClient *http.Client
}

// NewSource creates a new dump source.
func NewSource() *Source {
	return newSourceWithClient(&http.Client{Timeout: httpClientTimeout})
}

// newSourceWithClient creates a Source with a custom http client (used for testing).
func newSourceWithClient(client *http.Client) *Source {
	return &Source{httpClient: client}
}

// Open returns the decompressed dump at loc.Path, downloading it from loc.URL first
// when no local copy exists.
func (s *Source) Open(ctx context.Context, loc domain.ExportLocation) (io.ReadCloser, error) {
	_, err := os.Stat(loc.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := s.download(ctx, loc); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, unavailable(err, loc.Path)
	}

	//nolint:gosec // Path comes from the operator's configuration
	f, err := os.Open(loc.Path)
	if err != nil {
		return nil, unavailable(err, loc.Path)
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(errors.Join(domain.ErrMalformedExport, err), "path", loc.Path)
	}

	return &gzipFile{Reader: gz, file: f}, nil
}

func (s *Source) download(ctx context.Context, loc domain.ExportLocation) error {
	if loc.UserAgent == "" {
		return domain.ErrMissingUserAgent
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc.URL, http.NoBody)
	if err != nil {
		return unavailable(err, loc.URL)
	}
	req.Header.Set("User-Agent", loc.UserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return unavailable(err, loc.URL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		err := unavailable(fmt.Errorf("unexpected status code %d", resp.StatusCode), loc.URL)
		return zerr.With(err, "status", resp.StatusCode)
	}

	if err := atomicWriteStream(loc.Path, resp.Body); err != nil {
		return unavailable(err, loc.Path)
	}
	return nil
}

// atomicWriteStream copies r into a temp file next to path and renames it into place,
// so an interrupted download never leaves a partial dump behind.
func atomicWriteStream(path string, r io.Reader) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "nations-*.xml.gz")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmpFile, r); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

func unavailable(cause error, location string) error {
	return zerr.With(errors.Join(domain.ErrExportUnavailable, cause), "location", location)
}

// gzipFile closes both the decompressor and the underlying file.
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	return errors.Join(g.Reader.Close(), g.file.Close())
}
