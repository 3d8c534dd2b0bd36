package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists cart contents between sessions.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// FileStore keeps the cart as a JSON file, the same role the browser's
// local storage played for the web client.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

func (s *FileStore) Load() ([]Entry, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *FileStore) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, b, 0644)
}

// Restore replaces the cart contents from a store.
func (c *Cart) Restore(s Store) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	return nil
}

// Persist writes the current contents through a store.
func (c *Cart) Persist(s Store) error {
	return s.Save(c.Entries())
}
