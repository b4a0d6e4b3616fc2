package repository

import (
	"context"
	"sync"

	"notequiz/internal/domain"
)

// memorySessionRepository is an in-memory implementation of
// domain.SessionRepository. It holds at most one live session per owner;
// Save replaces the held value unconditionally.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.QuizSession
}

// NewMemorySessionRepository creates a new in-memory session repository.
func NewMemorySessionRepository() domain.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*domain.QuizSession),
	}
}

// Get returns the owner's live session, or (nil, nil) when none exists.
func (r *memorySessionRepository) Get(ctx context.Context, ownerID string) (*domain.QuizSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[ownerID]
	if !ok {
		return nil, nil
	}
	return session, nil
}

// Save stores the session for the owner, replacing any previous one.
func (r *memorySessionRepository) Save(ctx context.Context, ownerID string, session *domain.QuizSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[ownerID] = session
	return nil
}

// Clear removes the owner's session. Clearing an absent owner is a no-op.
func (r *memorySessionRepository) Clear(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, ownerID)
	return nil
}
