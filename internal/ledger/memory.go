package ledger

import (
	"sort"
	"sync"
	"time"

	apperrors "github.com/edsontomaz/gestao-financeira/internal/errors"
	"github.com/edsontomaz/gestao-financeira/internal/models"
	"github.com/edsontomaz/gestao-financeira/internal/uuid"
)

// MemoryStore is the default ledger backend: a primary record map plus a
// parent->children index kept alongside it so cascade deletes cost
// O(children) instead of O(all records). It holds no durable state; snapshot
// backup/restore is the only persistence path.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string]*models.Transaction
	children map[string][]string
}

// NewMemoryStore creates an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:  make(map[string]*models.Transaction),
		children: make(map[string][]string),
	}
}

var _ Store = (*MemoryStore)(nil)

// Create inserts a record. An empty id is replaced with a fresh UUIDv7; a
// supplied id must not already exist (the restore path supplies ids
// verbatim). A zero CreatedAt is set to now.
func (s *MemoryStore) Create(t *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := t.Clone()
	if stored.ID == "" {
		stored.ID = uuid.New()
	} else if _, exists := s.records[stored.ID]; exists {
		return nil, apperrors.ErrDuplicateTransaction
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	s.records[stored.ID] = stored
	if stored.ParentTransactionID != nil {
		parent := *stored.ParentTransactionID
		s.children[parent] = append(s.children[parent], stored.ID)
	}
	return stored.Clone(), nil
}

// Get returns the record with the given id if it belongs to profile.
func (s *MemoryStore) Get(id string, profile models.Profile) (*models.Transaction, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.records[id]
	if !ok || t.Profile != profile {
		return nil, false, nil
	}
	return t.Clone(), true, nil
}

// List returns all of a profile's records, newest CreatedAt first. Ties
// break on id so the order is deterministic.
func (s *MemoryStore) List(profile models.Profile) ([]*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Transaction, 0)
	for _, t := range s.records {
		if t.Profile == profile {
			out = append(out, t.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Update applies the patch to the record with the given id.
func (s *MemoryStore) Update(id string, profile models.Profile, patch Patch) (*models.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.records[id]
	if !ok || t.Profile != profile {
		return nil, false, nil
	}
	patch.apply(t)
	return t.Clone(), true, nil
}

// Delete removes a single record. It does not cascade; series-wide deletes
// go through DeleteByParent.
func (s *MemoryStore) Delete(id string, profile models.Profile) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(id, profile), nil
}

func (s *MemoryStore) deleteLocked(id string, profile models.Profile) bool {
	t, ok := s.records[id]
	if !ok || t.Profile != profile {
		return false
	}
	delete(s.records, id)
	if t.ParentTransactionID != nil {
		s.unlink(*t.ParentTransactionID, id)
	}
	delete(s.children, id)
	return true
}

// DeleteByParent removes every record referencing parentID, scoped to
// profile, and returns the number removed.
func (s *MemoryStore) DeleteByParent(parentID string, profile models.Profile) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := append([]string(nil), s.children[parentID]...)
	count := 0
	for _, id := range ids {
		if s.deleteLocked(id, profile) {
			count++
		}
	}
	return count, nil
}

// Clear removes every record for the profile.
func (s *MemoryStore) Clear(profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.records {
		if t.Profile != profile {
			continue
		}
		delete(s.records, id)
		if t.ParentTransactionID != nil {
			s.unlink(*t.ParentTransactionID, id)
		}
		delete(s.children, id)
	}
	return nil
}

// Count returns the total number of records for the profile.
func (s *MemoryStore) Count(profile models.Profile) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, t := range s.records {
		if t.Profile == profile {
			count++
		}
	}
	return count, nil
}

// unlink removes childID from parentID's child list.
func (s *MemoryStore) unlink(parentID, childID string) {
	ids := s.children[parentID]
	for i, existing := range ids {
		if existing == childID {
			s.children[parentID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(s.children[parentID]) == 0 {
		delete(s.children, parentID)
	}
}
