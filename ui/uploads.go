package ui

import (
	"sync"
	"time"

	"datalens/domain/core"
	"datalens/internal/errors"
)

// UploadEntry records one uploaded file awaiting analysis.
type UploadEntry struct {
	ID        core.UploadID
	Path      string
	Filename  string
	CreatedAt time.Time
}

// UploadStore is an explicit registry of uploaded files keyed by ID. Every
// analysis request addresses its upload by ID; there is no ambient "current
// file" shared across requests.
type UploadStore struct {
	mu      sync.RWMutex
	entries map[core.UploadID]UploadEntry
}

// NewUploadStore creates an empty upload registry.
func NewUploadStore() *UploadStore {
	return &UploadStore{entries: make(map[core.UploadID]UploadEntry)}
}

// Register records an uploaded file and returns its generated ID.
func (s *UploadStore) Register(path, filename string) UploadEntry {
	entry := UploadEntry{
		ID:        core.UploadID(core.NewID()),
		Path:      path,
		Filename:  filename,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.entries[entry.ID] = entry
	s.mu.Unlock()
	return entry
}

// Get looks up an upload by ID.
func (s *UploadStore) Get(id core.UploadID) (UploadEntry, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return UploadEntry{}, errors.NotFound("upload " + id.String())
	}
	return entry, nil
}
