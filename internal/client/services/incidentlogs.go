package services

import (
	"context"

	"github.com/dmitrijs2005/ctibook/internal/client/api"
	"github.com/dmitrijs2005/ctibook/internal/models"
)

const incidentLogsPath = "/api/incidentlogs"

// IncidentLogService is the CRUD surface for incident log records.
type IncidentLogService interface {
	List(ctx context.Context) ([]models.IncidentLog, error)
	Get(ctx context.Context, id string) (models.IncidentLog, error)
	Create(ctx context.Context, draft models.IncidentLogDraft) (models.IncidentLog, error)
	Update(ctx context.Context, id string, draft models.IncidentLogDraft) (models.IncidentLog, error)
	Delete(ctx context.Context, id string) error
}

type incidentLogService struct {
	res *api.Resource[models.IncidentLog, models.IncidentLogDraft]
}

// NewIncidentLogService binds an IncidentLogService to the given API client.
func NewIncidentLogService(client *api.Client) IncidentLogService {
	return &incidentLogService{
		res: api.NewResource[models.IncidentLog, models.IncidentLogDraft](client, incidentLogsPath),
	}
}

func (s *incidentLogService) List(ctx context.Context) ([]models.IncidentLog, error) {
	return s.res.List(ctx)
}

func (s *incidentLogService) Get(ctx context.Context, id string) (models.IncidentLog, error) {
	return s.res.Get(ctx, id)
}

func (s *incidentLogService) Create(ctx context.Context, draft models.IncidentLogDraft) (models.IncidentLog, error) {
	return s.res.Create(ctx, draft)
}

func (s *incidentLogService) Update(ctx context.Context, id string, draft models.IncidentLogDraft) (models.IncidentLog, error) {
	return s.res.Update(ctx, id, draft)
}

func (s *incidentLogService) Delete(ctx context.Context, id string) error {
	return s.res.Delete(ctx, id)
}
