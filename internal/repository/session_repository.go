package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmp-tools/tokenpanel/internal/api/mapper"
)

// memorySessionRepository implements SessionRepository in process memory
type memorySessionRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*mapper.Session
	byHash map[string]uuid.UUID
}

// NewSessionRepository creates an empty in-memory SessionRepository
func NewSessionRepository() SessionRepository {
	return &memorySessionRepository{
		byID:   make(map[uuid.UUID]*mapper.Session),
		byHash: make(map[string]uuid.UUID),
	}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *mapper.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	r.byID[stored.ID] = &stored
	r.byHash[stored.TokenHash] = stored.ID
	return nil
}

func (r *memorySessionRepository) GetByHash(ctx context.Context, hash string) (*mapper.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byHash[hash]
	if !ok {
		return nil, ErrNotFound
	}
	c := *r.byID[id]
	return &c, nil
}

func (r *memorySessionRepository) Touch(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	s.LastUsed = time.Now()
	return nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byHash, s.TokenHash)
	delete(r.byID, id)
	return nil
}

func (r *memorySessionRepository) DeleteIdle(ctx context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.byID {
		if s.LastUsed.Before(before) {
			delete(r.byHash, s.TokenHash)
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}
