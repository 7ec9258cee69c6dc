// Package snapshot persists fetch results between runs so a rerun can
// skip the expensive catalog queries.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/earthdata-tools/cmr-opendap/pkg/cmr"
)

// ErrNotFound is returned when a snapshot key has never been saved.
var ErrNotFound = errors.New("snapshot: not found")

// Store persists JSON-serializable documents under string keys. Save is
// a full overwrite; there are no merge or append semantics.
type Store interface {
	Load(key string, v any) error
	Save(key string, v any) error
}

// RawKey names the snapshot holding every fetched collection.
func RawKey(env cmr.Environment) string {
	return fmt.Sprintf("all_collections_%s.json", env)
}

// FilteredKey names the snapshot holding the filtered, projected records.
func FilteredKey(env cmr.Environment) string {
	return fmt.Sprintf("opendap_collections_%s.json", env)
}

// FileStore keeps each snapshot as a pretty-printed JSON file in Dir.
type FileStore struct {
	Dir string
}

// NewFileStore returns a store rooted at dir ("." if empty).
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key)
}

// Load reads and decodes the snapshot stored under key. A missing file
// reports ErrNotFound with the file name.
func (s *FileStore) Load(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, s.path(key))
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Save overwrites the snapshot stored under key with v, encoded as
// 2-space-indented JSON.
func (s *FileStore) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	documents map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{documents: make(map[string][]byte)}
}

// Load decodes the document stored under key into v.
func (s *MemoryStore) Load(key string, v any) error {
	data, ok := s.documents[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return json.Unmarshal(data, v)
}

// Save stores v under key, replacing any previous document.
func (s *MemoryStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.documents[key] = data
	return nil
}
