package session

import (
	"context"
	"sync"

	"regenmed/models"

	"golang.org/x/oauth2"
)

// MemoryStore is the default process-local backend. State lives for the
// lifetime of the process only.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.Session)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (s *MemoryStore) SetTokens(ctx context.Context, id string, tokens *oauth2.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Whole-value replacement: a later grant overwrites the earlier one.
	s.sessions[id] = &models.Session{ID: id, Tokens: tokens}
	return nil
}

func (s *MemoryStore) HasTokens(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return ok && sess.Tokens != nil, nil
}
