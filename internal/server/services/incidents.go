package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/ctibook/internal/models"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/incidents"
)

// IncidentService is the CRUD application service for incident logs.
type IncidentService struct {
	repo incidents.Repository
}

// NewIncidentService binds an IncidentService to its repository.
func NewIncidentService(repo incidents.Repository) *IncidentService {
	return &IncidentService{repo: repo}
}

func (s *IncidentService) List(ctx context.Context) ([]models.IncidentLog, error) {
	return s.repo.GetAll(ctx)
}

func (s *IncidentService) Get(ctx context.Context, id string) (*models.IncidentLog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *IncidentService) Create(ctx context.Context, draft models.IncidentLogDraft) (*models.IncidentLog, error) {
	log := &models.IncidentLog{
		LogID:       uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *IncidentService) Update(ctx context.Context, id string, draft models.IncidentLogDraft) (*models.IncidentLog, error) {
	log := &models.IncidentLog{
		LogID:       id,
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
	}
	if err := s.repo.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *IncidentService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
