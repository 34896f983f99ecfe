package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/ctibook/internal/server/models"
	"github.com/dmitrijs2005/ctibook/internal/shared"
)

// MemoryRepository keeps accounts in a map. It backs the default dev setup
// and the test servers.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]models.StoredUser
	byName map[string]string
}

// NewMemoryRepository returns an empty in-memory account store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[string]models.StoredUser),
		byName: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.StoredUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Username]; exists {
		return shared.ErrAlreadyExists
	}
	r.byID[user.ID] = *user
	r.byName[user.Username] = user.ID
	return nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.StoredUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, shared.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.StoredUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &user, nil
}
