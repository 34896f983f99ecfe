package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/ctibook/internal/models"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/actors"
)

// ActorService is the CRUD application service for threat actor records.
// The server assigns identifiers on create; update replaces the whole
// record behind an existing identifier.
type ActorService struct {
	repo actors.Repository
}

// NewActorService binds an ActorService to its repository.
func NewActorService(repo actors.Repository) *ActorService {
	return &ActorService{repo: repo}
}

func (s *ActorService) List(ctx context.Context) ([]models.ThreatActor, error) {
	return s.repo.GetAll(ctx)
}

func (s *ActorService) Get(ctx context.Context, id string) (*models.ThreatActor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ActorService) Create(ctx context.Context, draft models.ThreatActorDraft) (*models.ThreatActor, error) {
	actor := &models.ThreatActor{
		ActorID:       uuid.NewString(),
		Name:          draft.Name,
		Type:          draft.Type,
		Description:   draft.Description,
		OriginCountry: draft.OriginCountry,
		FirstObserved: draft.FirstObserved,
		LastActivity:  draft.LastActivity,
	}
	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (s *ActorService) Update(ctx context.Context, id string, draft models.ThreatActorDraft) (*models.ThreatActor, error) {
	actor := &models.ThreatActor{
		ActorID:       id,
		Name:          draft.Name,
		Type:          draft.Type,
		Description:   draft.Description,
		OriginCountry: draft.OriginCountry,
		FirstObserved: draft.FirstObserved,
		LastActivity:  draft.LastActivity,
	}
	if err := s.repo.Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (s *ActorService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
