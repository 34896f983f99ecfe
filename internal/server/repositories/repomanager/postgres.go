package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/ctibook/internal/server/migrations"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/actors"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/incidents"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/users"
)

// PostgresManager owns the database handle and vends PostgreSQL-backed
// repositories bound to it.
type PostgresManager struct {
	db *sql.DB
}

// gooseUpContext is a seam for testing migration wiring.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresManager opens the pgx stdlib connection, verifies it, and
// brings the schema up to date with the embedded goose migrations.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	m := &PostgresManager{db: db}
	if err := m.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return m, nil
}

func (m *PostgresManager) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresManager) Users() users.Repository         { return users.NewPostgresRepository(m.db) }
func (m *PostgresManager) Actors() actors.Repository       { return actors.NewPostgresRepository(m.db) }
func (m *PostgresManager) Incidents() incidents.Repository { return incidents.NewPostgresRepository(m.db) }

func (m *PostgresManager) Close() error { return m.db.Close() }
