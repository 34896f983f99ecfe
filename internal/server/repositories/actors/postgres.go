package actors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ctibook/internal/dbx"
	"github.com/dmitrijs2005/ctibook/internal/models"
	"github.com/dmitrijs2005/ctibook/internal/shared"
)

// PostgresRepository stores threat actors in the threat_actors table.
// Dates are kept as the wire-format text; the client validates them
// before they ever reach the server.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository binds a repository to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.ThreatActor) error {
	query := `INSERT INTO threat_actors
	            (id, name, type, description, origin_country, first_observed, last_activity)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		a.ActorID, a.Name, a.Type, a.Description, a.OriginCountry, a.FirstObserved, a.LastActivity)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.ThreatActor, error) {
	query := `SELECT id, name, type, description, origin_country, first_observed, last_activity
	          FROM threat_actors ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.ThreatActor, 0)
	for rows.Next() {
		var a models.ThreatActor
		if err := rows.Scan(&a.ActorID, &a.Name, &a.Type, &a.Description,
			&a.OriginCountry, &a.FirstObserved, &a.LastActivity); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.ThreatActor, error) {
	query := `SELECT id, name, type, description, origin_country, first_observed, last_activity
	          FROM threat_actors WHERE id = $1`

	a := &models.ThreatActor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ActorID, &a.Name, &a.Type,
		&a.Description, &a.OriginCountry, &a.FirstObserved, &a.LastActivity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Update(ctx context.Context, a *models.ThreatActor) error {
	query := `UPDATE threat_actors
	          SET name = $2, type = $3, description = $4, origin_country = $5,
	              first_observed = $6, last_activity = $7
	          WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		a.ActorID, a.Name, a.Type, a.Description, a.OriginCountry, a.FirstObserved, a.LastActivity)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM threat_actors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if ra == 0 {
		return shared.ErrNotFound
	}
	return nil
}
