package actors

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/ctibook/internal/models"
	"github.com/dmitrijs2005/ctibook/internal/shared"
)

// MemoryRepository keeps threat actors in a map, listing them in a stable
// name order.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.ThreatActor
}

// NewMemoryRepository returns an empty in-memory threat actor store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.ThreatActor)}
}

func (r *MemoryRepository) Create(ctx context.Context, actor *models.ThreatActor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[actor.ActorID] = *actor
	return nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]models.ThreatActor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.ThreatActor, 0, len(r.items))
	for _, a := range r.items {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.ThreatActor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &actor, nil
}

func (r *MemoryRepository) Update(ctx context.Context, actor *models.ThreatActor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[actor.ActorID]; !ok {
		return shared.ErrNotFound
	}
	r.items[actor.ActorID] = *actor
	return nil
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
