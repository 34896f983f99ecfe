package repomanager

import (
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/actors"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/incidents"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/users"
)

// MemoryManager holds one in-memory repository per aggregate. State lives
// for the process lifetime only.
type MemoryManager struct {
	users     *users.MemoryRepository
	actors    *actors.MemoryRepository
	incidents *incidents.MemoryRepository
}

// NewMemoryManager constructs empty in-memory repositories.
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{
		users:     users.NewMemoryRepository(),
		actors:    actors.NewMemoryRepository(),
		incidents: incidents.NewMemoryRepository(),
	}
}

func (m *MemoryManager) Users() users.Repository         { return m.users }
func (m *MemoryManager) Actors() actors.Repository       { return m.actors }
func (m *MemoryManager) Incidents() incidents.Repository { return m.incidents }
func (m *MemoryManager) Close() error                    { return nil }
