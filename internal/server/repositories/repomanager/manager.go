// Package repomanager vends the repository set for a chosen storage
// backend: in-memory for development and tests, PostgreSQL for real
// deployments.
package repomanager

import (
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/actors"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/incidents"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/users"
)

// Manager hands out one repository per aggregate, all backed by the same
// storage.
type Manager interface {
	Users() users.Repository
	Actors() actors.Repository
	Incidents() incidents.Repository
	Close() error
}
