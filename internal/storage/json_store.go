package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store is the on-disk document for the JSON backend. Every entry is the raw
// serialized blob for one key, so the file round-trips byte-for-byte.
type Store struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Entries: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'daybook init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Entries == nil {
		s.store.Entries = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save rewrites the whole document. Called on every mutation, which keeps
// the file consistent at the cost of rewriting unrelated keys.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	value, ok := s.store.Entries[key]
	if !ok {
		return nil, ErrNotFound
	}

	return []byte(value), nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if !json.Valid(value) {
		// Non-JSON blobs would corrupt the document; wrap them as a string.
		wrapped, err := json.Marshal(string(value))
		if err != nil {
			return fmt.Errorf("failed to encode value for key %s: %w", key, err)
		}
		value = wrapped
	}

	s.store.Entries[key] = json.RawMessage(value)
	return s.save()
}

func (s *JSONStore) Remove(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Entries[key]; !ok {
		return nil
	}

	delete(s.store.Entries, key)
	return s.save()
}

func (s *JSONStore) Keys(prefix string) ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	keys := make([]string, 0, len(s.store.Entries))
	for key := range s.store.Entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
