package incidents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ctibook/internal/dbx"
	"github.com/dmitrijs2005/ctibook/internal/models"
	"github.com/dmitrijs2005/ctibook/internal/shared"
)

// PostgresRepository stores incident logs in the incident_logs table.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository binds a repository to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.IncidentLog) error {
	query := `INSERT INTO incident_logs (id, title, description, date)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, l.LogID, l.Title, l.Description, l.Date)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.IncidentLog, error) {
	query := `SELECT id, title, description, date FROM incident_logs ORDER BY date DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.IncidentLog, 0)
	for rows.Next() {
		var l models.IncidentLog
		if err := rows.Scan(&l.LogID, &l.Title, &l.Description, &l.Date); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.IncidentLog, error) {
	query := `SELECT id, title, description, date FROM incident_logs WHERE id = $1`

	l := &models.IncidentLog{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.LogID, &l.Title, &l.Description, &l.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) Update(ctx context.Context, l *models.IncidentLog) error {
	query := `UPDATE incident_logs SET title = $2, description = $3, date = $4 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, l.LogID, l.Title, l.Description, l.Date)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incident_logs WHERE id = $1`, id)
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
