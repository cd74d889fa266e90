package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmp-tools/tokenpanel/internal/api/mapper"
)

// memoryTokenRepository keeps tokens in process memory
type memoryTokenRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*mapper.Token
	byHash map[string]uuid.UUID
	now    func() time.Time
}

// NewTokenRepository creates an empty in-memory TokenRepository
func NewTokenRepository() TokenRepository {
	return &memoryTokenRepository{
		byID:   make(map[uuid.UUID]*mapper.Token),
		byHash: make(map[string]uuid.UUID),
		now:    time.Now,
	}
}

func (r *memoryTokenRepository) Create(ctx context.Context, token *mapper.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *token
	r.byID[stored.ID] = &stored
	r.byHash[stored.TokenHash] = stored.ID
	return nil
}

func (r *memoryTokenRepository) List(ctx context.Context, owner string) ([]*mapper.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*mapper.Token, 0)
	for _, t := range r.byID {
		if t.Owner != owner || t.RevokedAt != nil {
			continue
		}
		c := *t
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memoryTokenRepository) GetByHash(ctx context.Context, hash string) (*mapper.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byHash[hash]
	if !ok {
		return nil, ErrNotFound
	}
	c := *r.byID[id]
	return &c, nil
}

func (r *memoryTokenRepository) UpdateLastUsed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	t.LastUsedAt = r.now()
	return nil
}

func (r *memoryTokenRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	now := r.now()
	t.RevokedAt = &now
	return nil
}
