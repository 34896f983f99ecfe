// Package users stores accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/ctibook/internal/server/models"
)

// Repository describes account storage. Create fails with
// shared.ErrAlreadyExists on a duplicate username; lookups fail with
// shared.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.StoredUser) error
	GetByUsername(ctx context.Context, username string) (*models.StoredUser, error)
	GetByID(ctx context.Context, id string) (*models.StoredUser, error)
}
