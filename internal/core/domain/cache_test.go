package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/endotarter/internal/core/domain"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return v
}

func TestParseDailyCutoff(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "00:00:00", want: 0},
		{in: "12:00:00", want: 12 * time.Hour},
		{in: "06:30", want: 6*time.Hour + 30*time.Minute},
		{in: "23:59:59", want: 23*time.Hour + 59*time.Minute + 59*time.Second},
		{in: "24:00:00", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseDailyCutoff(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrInvalidCutoff.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.DailyCutoff(tt.want), got)
		})
	}
}

func TestDailyCutoff_String(t *testing.T) {
	assert.Equal(t, "06:30:00", domain.MustParseDailyCutoff("06:30").String())
}

func TestNextRefresh(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
		cutoff    string
		want      string
	}{
		{
			name:      "late creation midnight cutoff",
			createdAt: "1970-01-01T23:00:00Z",
			cutoff:    "00:00:00",
			want:      "1970-01-02T00:00:00Z",
		},
		{
			name:      "midnight creation noon cutoff",
			createdAt: "1970-01-01T00:00:00Z",
			cutoff:    "12:00:00",
			want:      "1970-01-02T12:00:00Z",
		},
		{
			name:      "creation after cutoff on same day",
			createdAt: "2024-03-10T18:00:00Z",
			cutoff:    "06:30:00",
			want:      "2024-03-11T06:30:00Z",
		},
		{
			name:      "non-UTC input is normalised",
			createdAt: "2024-03-10T23:30:00-05:00",
			cutoff:    "06:30:00",
			want:      "2024-03-12T06:30:00Z",
		},
		{
			name:      "month boundary",
			createdAt: "2024-02-29T10:00:00Z",
			cutoff:    "00:00:00",
			want:      "2024-03-01T00:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NextRefresh(mustTime(t, tt.createdAt), domain.MustParseDailyCutoff(tt.cutoff))
			assert.True(t, mustTime(t, tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCacheRecord_IsFresh(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
		cutoff    string
		now       string
		want      bool
	}{
		{
			name:      "expires just after midnight cutoff",
			createdAt: "1970-01-01T23:00:00Z",
			cutoff:    "00:00:00",
			now:       "1970-01-02T00:00:01Z",
			want:      false,
		},
		{
			name:      "valid before noon cutoff next day",
			createdAt: "1970-01-01T00:00:00Z",
			cutoff:    "12:00:00",
			now:       "1970-01-02T11:59:59Z",
			want:      true,
		},
		{
			name:      "stale after noon cutoff next day",
			createdAt: "1970-01-01T00:00:00Z",
			cutoff:    "12:00:00",
			now:       "1970-01-02T12:00:01Z",
			want:      false,
		},
		{
			name:      "stale exactly at refresh instant",
			createdAt: "1970-01-01T00:00:00Z",
			cutoff:    "12:00:00",
			now:       "1970-01-02T12:00:00Z",
			want:      false,
		},
		{
			name:      "same day is fresh",
			createdAt: "1970-01-01T14:00:00Z",
			cutoff:    "12:00:00",
			now:       "1970-01-01T20:00:00Z",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.NewCacheRecord(mustTime(t, tt.createdAt), nil)
			got := rec.IsFresh(mustTime(t, tt.now), domain.MustParseDailyCutoff(tt.cutoff))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCacheRecord_Immutable(t *testing.T) {
	entries := map[string][]string{"endorsed": {"a", "b"}}
	rec := domain.NewCacheRecord(time.Unix(1, 0), entries)

	entries["endorsed"][0] = "mutated"
	got, ok := rec.Get("endorsed")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	got[0] = "mutated"
	again, _ := rec.Get("endorsed")
	assert.Equal(t, []string{"a", "b"}, again)

	next := rec.With("endorsed", []string{"c"})
	orig, _ := rec.Get("endorsed")
	updated, _ := next.Get("endorsed")
	assert.Equal(t, []string{"a", "b"}, orig)
	assert.Equal(t, []string{"c"}, updated)
	assert.Equal(t, rec.CreatedAt, next.CreatedAt)

	_, ok = rec.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"endorsed"}, next.Keys())
}
