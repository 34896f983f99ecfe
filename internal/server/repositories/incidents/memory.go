package incidents

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/ctibook/internal/models"
	"github.com/dmitrijs2005/ctibook/internal/shared"
)

// MemoryRepository keeps incident logs in a map, listing newest date first.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.IncidentLog
}

// NewMemoryRepository returns an empty in-memory incident log store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.IncidentLog)}
}

func (r *MemoryRepository) Create(ctx context.Context, log *models.IncidentLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[log.LogID] = *log
	return nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]models.IncidentLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.IncidentLog, 0, len(r.items))
	for _, l := range r.items {
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].LogID < result[j].LogID
	})
	return result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.IncidentLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &log, nil
}

func (r *MemoryRepository) Update(ctx context.Context, log *models.IncidentLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[log.LogID]; !ok {
		return shared.ErrNotFound
	}
	r.items[log.LogID] = *log
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
