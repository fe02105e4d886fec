// Package cache implements the cache record store as a single JSON file.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/zerr"
)

// createdAtKey is the reserved JSON key holding the record's creation time.
const createdAtKey = "createdAt"

// Store implements ports.CacheStore.
// The file holds one JSON object: {"createdAt": <unix seconds>, "<key>": [..], ...}.
type Store struct{}

// NewStore creates a new file-backed cache store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the cache record stored at path.
func (s *Store) Load(path string) (*domain.CacheRecord, error) {
	//nolint:gosec // Path comes from the operator's configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrCacheIO, err), "path", path)
	}

	record, err := decode(data)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrCorruptCache, err), "path", path)
	}

	return record, nil
}

// Save writes the record to path, replacing any previous content atomically.
func (s *Store) Save(path string, record domain.CacheRecord) error {
	data, err := encode(record)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCacheIO, err), "path", path)
	}

	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheIO, err), "path", path)
	}

	return nil
}

func decode(data []byte) (*domain.CacheRecord, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	createdRaw, ok := raw[createdAtKey]
	if !ok {
		return nil, zerr.New("missing createdAt field")
	}

	var createdAt int64
	if err := json.Unmarshal(createdRaw, &createdAt); err != nil {
		return nil, zerr.Wrap(err, "createdAt is not an integer")
	}
	delete(raw, createdAtKey)

	entries := make(map[string][]string, len(raw))
	for key, value := range raw {
		var list []string
		if err := json.Unmarshal(value, &list); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "entry is not a list of strings"), "key", key)
		}
		entries[key] = list
	}

	record := domain.NewCacheRecord(time.Unix(createdAt, 0).UTC(), entries)
	return &record, nil
}

func encode(record domain.CacheRecord) ([]byte, error) {
	doc := make(map[string]any, len(record.Keys())+1)
	for key, values := range record.Entries() {
		if values == nil {
			values = []string{}
		}
		doc[key] = values
	}
	doc[createdAtKey] = record.CreatedAt.Unix()

	return json.Marshal(doc)
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
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
