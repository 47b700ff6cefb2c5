// Package storage implements the anonymous local record slot: a single JSON
// file holding all records, overwritten as a whole on every save. A missing
// or corrupt file degrades to an empty list, never to an error.
package storage

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/qrkeeper/qrkeeper/internal/client/models"
)

// envelope is the on-disk shape of the slot.
type envelope struct {
	UpdatedAt int64           `json:"updatedAt"`
	Items     []models.Record `json:"items"`
}

// Store is a file-backed slot for the full anonymous record list.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore constructs a Store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save overwrites the whole slot with list and a fresh updatedAt stamp.
func (s *Store) Save(list []models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list == nil {
		list = []models.Record{}
	}
	data, err := json.Marshal(envelope{
		UpdatedAt: time.Now().UnixMilli(),
		Items:     list,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load returns the stored list. An absent or unparsable file yields an
// empty list.
func (s *Store) Load() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Record{}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return []models.Record{}
	}
	if env.Items == nil {
		return []models.Record{}
	}
	return env.Items
}
