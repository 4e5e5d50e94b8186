// Package memory provides an in-process RemoteStorage used in development
// and tests, where no Google credentials are configured.
package memory

import (
	"context"
	"sync"

	"github.com/edsontomaz/gestao-financeira/internal/storage"
)

// Store keeps blobs in a nested map keyed by container then blob name.
type Store struct {
	mu    sync.Mutex
	blobs map[string]map[string]string
}

// New creates an empty in-memory blob store.
func New() *Store {
	return &Store{blobs: make(map[string]map[string]string)}
}

var _ storage.RemoteStorage = (*Store)(nil)

// EnsureContainer creates the container if absent. The container name is its id.
func (s *Store) EnsureContainer(_ context.Context, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[name]; !ok {
		s.blobs[name] = make(map[string]string)
	}
	return name, nil
}

// WriteBlob overwrites the named blob.
func (s *Store) WriteBlob(_ context.Context, containerID, name, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[containerID]; !ok {
		s.blobs[containerID] = make(map[string]string)
	}
	s.blobs[containerID][name] = content
	return nil
}

// ReadBlob returns the named blob's content.
func (s *Store) ReadBlob(_ context.Context, containerID, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	container, ok := s.blobs[containerID]
	if !ok {
		return "", storage.ErrBlobNotFound
	}
	content, ok := container[name]
	if !ok {
		return "", storage.ErrBlobNotFound
	}
	return content, nil
}

// WhoAmI identifies the in-memory backend.
func (s *Store) WhoAmI(_ context.Context) (*storage.Account, error) {
	return &storage.Account{Name: "In-memory storage", Email: "local@localhost"}, nil
}
