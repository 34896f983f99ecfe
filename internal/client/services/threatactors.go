// Package services binds the generic resource client to the two entity
// collections the backend exposes. Each service is the complete CRUD
// surface for one entity type; errors from the api package pass through
// untouched so views decide how to present them.
package services

import (
	"context"

	"github.com/dmitrijs2005/ctibook/internal/client/api"
	"github.com/dmitrijs2005/ctibook/internal/models"
)

const threatActorsPath = "/api/threatactors"

// ThreatActorService is the CRUD surface for threat actor records.
type ThreatActorService interface {
	List(ctx context.Context) ([]models.ThreatActor, error)
	Get(ctx context.Context, id string) (models.ThreatActor, error)
	Create(ctx context.Context, draft models.ThreatActorDraft) (models.ThreatActor, error)
	Update(ctx context.Context, id string, draft models.ThreatActorDraft) (models.ThreatActor, error)
	Delete(ctx context.Context, id string) error
}

type threatActorService struct {
	res *api.Resource[models.ThreatActor, models.ThreatActorDraft]
}

// NewThreatActorService binds a ThreatActorService to the given API client.
func NewThreatActorService(client *api.Client) ThreatActorService {
	return &threatActorService{
		res: api.NewResource[models.ThreatActor, models.ThreatActorDraft](client, threatActorsPath),
	}
}

func (s *threatActorService) List(ctx context.Context) ([]models.ThreatActor, error) {
	return s.res.List(ctx)
}

func (s *threatActorService) Get(ctx context.Context, id string) (models.ThreatActor, error) {
	return s.res.Get(ctx, id)
}

func (s *threatActorService) Create(ctx context.Context, draft models.ThreatActorDraft) (models.ThreatActor, error) {
	return s.res.Create(ctx, draft)
}

func (s *threatActorService) Update(ctx context.Context, id string, draft models.ThreatActorDraft) (models.ThreatActor, error) {
	return s.res.Update(ctx, id, draft)
}

func (s *threatActorService) Delete(ctx context.Context, id string) error {
	return s.res.Delete(ctx, id)
}
