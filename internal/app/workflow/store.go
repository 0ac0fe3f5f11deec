package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
)

// draftTTL is how long an untouched draft survives before being pruned.
const draftTTL = 24 * time.Hour

// Store keeps in-progress admission drafts in memory, keyed by UUID.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewStore creates an empty draft store.
func NewStore() *Store {
	return &Store{drafts: make(map[string]*Draft)}
}

// Create opens a new draft at the identity stage.
func (s *Store) Create() *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	draft := &Draft{
		ID:        uuid.New().String(),
		Stage:     StageIdentity,
		CreatedAt: time.Now(),
	}
	s.drafts[draft.ID] = draft
	return draft
}

// View runs fn with read access to the draft under the store lock.
func (s *Store) View(id string, fn func(*Draft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return apperrors.ErrDraftNotFound
	}
	fn(draft)
	return nil
}

// Update runs fn against the draft under the store lock, serializing
// all mutations of a draft.
func (s *Store) Update(id string, fn func(*Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return apperrors.ErrDraftNotFound
	}
	return fn(draft)
}

// Remove discards a draft.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// pruneLocked drops drafts past their TTL. Caller holds the lock.
func (s *Store) pruneLocked() {
	cutoff := time.Now().Add(-draftTTL)
	for id, draft := range s.drafts {
		if draft.CreatedAt.Before(cutoff) {
			delete(s.drafts, id)
		}
	}
}
