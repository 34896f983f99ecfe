// Package incidents stores incident log records.
package incidents

import (
	"context"

	"github.com/dmitrijs2005/ctibook/internal/models"
)

// Repository describes incident log storage. Missing identifiers fail
// with shared.ErrNotFound on lookup, update, and delete.
type Repository interface {
	Create(ctx context.Context, log *models.IncidentLog) error
	GetAll(ctx context.Context) ([]models.IncidentLog, error)
	GetByID(ctx context.Context, id string) (*models.IncidentLog, error)
	Update(ctx context.Context, log *models.IncidentLog) error
	DeleteByID(ctx context.Context, id string) error
}
