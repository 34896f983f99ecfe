// Package actors stores threat actor records.
package actors

import (
	"context"

	"github.com/dmitrijs2005/ctibook/internal/models"
)

// Repository describes threat actor storage. Lookups, updates, and deletes
// of a missing identifier fail with shared.ErrNotFound; Update and Delete
// never create anything.
type Repository interface {
	Create(ctx context.Context, actor *models.ThreatActor) error
	GetAll(ctx context.Context) ([]models.ThreatActor, error)
	GetByID(ctx context.Context, id string) (*models.ThreatActor, error)
	Update(ctx context.Context, actor *models.ThreatActor) error
	DeleteByID(ctx context.Context, id string) error
}
