package domain

import (
	"maps"
	"slices"
	"time"

	"go.trai.ch/zerr"
)

// EndorsedCacheKey is the cache entry holding the already-endorsed nations.
const EndorsedCacheKey = "endorsed"

// cutoffLayouts are the accepted spellings of a daily cutoff time.
var cutoffLayouts = []string{"15:04:05", "15:04"}

// DailyCutoff is a time of day, in UTC, at which the upstream export is refreshed.
// It is stored as the offset from midnight.
type DailyCutoff time.Duration

// ParseDailyCutoff parses a time of day in HH:MM:SS or HH:MM form.
func ParseDailyCutoff(s string) (DailyCutoff, error) {
	for _, layout := range cutoffLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		offset := time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second
		return DailyCutoff(offset), nil
	}
	return 0, zerr.With(zerr.Wrap(ErrInvalidCutoff, "parse daily cutoff"), "value", s)
}

// MustParseDailyCutoff is like ParseDailyCutoff but panics on invalid input.
func MustParseDailyCutoff(s string) DailyCutoff {
	c, err := ParseDailyCutoff(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats the cutoff as HH:MM:SS.
func (c DailyCutoff) String() string {
	return time.Time{}.Add(time.Duration(c)).Format("15:04:05")
}

// NextRefresh returns the first refresh instant after the calendar day of createdAt:
// the day following createdAt (in UTC) at the cutoff time of day.
//
// A record created at 23:59 with a 00:00 cutoff therefore expires one minute later,
// while a record created at 00:00 with a 12:00 cutoff lives for 36 hours.
func NextRefresh(createdAt time.Time, cutoff DailyCutoff) time.Time {
	created := createdAt.UTC()
	day := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, 1).Add(time.Duration(cutoff))
}

// CacheRecord is an immutable snapshot of the persisted cache.
type CacheRecord struct {
	CreatedAt time.Time
	entries   map[string][]string
}

// NewCacheRecord creates a record stamped with createdAt holding a copy of entries.
func NewCacheRecord(createdAt time.Time, entries map[string][]string) CacheRecord {
	copied := make(map[string][]string, len(entries))
	for k, v := range entries {
		copied[k] = slices.Clone(v)
	}
	return CacheRecord{CreatedAt: createdAt, entries: copied}
}

// IsFresh reports whether the record is still valid at now, i.e. whether now is
// strictly before the next daily refresh following the record's creation.
func (r CacheRecord) IsFresh(now time.Time, cutoff DailyCutoff) bool {
	return now.Before(NextRefresh(r.CreatedAt, cutoff))
}

// Get returns a copy of the entry stored under key.
func (r CacheRecord) Get(key string) ([]string, bool) {
	v, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// With returns a copy of the record with key set to values.
func (r CacheRecord) With(key string, values []string) CacheRecord {
	next := NewCacheRecord(r.CreatedAt, r.entries)
	next.entries[key] = slices.Clone(values)
	return next
}

// Keys returns the entry keys in ascending order.
func (r CacheRecord) Keys() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Entries returns a copy of all entries.
func (r CacheRecord) Entries() map[string][]string {
	return NewCacheRecord(r.CreatedAt, r.entries).entries
}
