package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ldpsa/league-admin/models"
	"github.com/lib/pq"
)

var (
	ErrChampionshipNotFound     = errors.New("championship not found")
	ErrChampionshipNameConflict = errors.New("championship name conflict")
	ErrChampionshipHasReports   = errors.New("championship has dependent player reports")
)

type ListChampionshipsFilter struct {
	Status *models.ChampionshipStatus
	Limit  int
	Offset int
}

type ChampionshipRepository interface {
	Create(ctx context.Context, championship *models.Championship) error
	GetByID(ctx context.Context, id int) (*models.Championship, error)
	List(ctx context.Context, filter ListChampionshipsFilter) ([]models.Championship, error)
	Update(ctx context.Context, championship *models.Championship) error
	Delete(ctx context.Context, id int) error
	// ExistsByName reports whether another championship already holds the name.
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)
}

type postgresChampionshipRepository struct {
	db *sql.DB
}

func NewPostgresChampionshipRepository(db *sql.DB) ChampionshipRepository {
	return &postgresChampionshipRepository{db: db}
}

func (r *postgresChampionshipRepository) Create(ctx context.Context, c *models.Championship) error {
	query := `
		INSERT INTO championships (name, description, start_date, end_date, canton, parish, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Description, c.StartDate, c.EndDate, c.Canton, c.Parish, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	return handleChampionshipError(err)
}

func (r *postgresChampionshipRepository) GetByID(ctx context.Context, id int) (*models.Championship, error) {
	query := `
		SELECT id, name, description, start_date, end_date, canton, parish, status, created_at, updated_at
		FROM championships
		WHERE id = $1`

	c := &models.Championship{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.StartDate, &c.EndDate,
		&c.Canton, &c.Parish, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionshipNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresChampionshipRepository) List(ctx context.Context, filter ListChampionshipsFilter) ([]models.Championship, error) {
	query := `
		SELECT id, name, description, start_date, end_date, canton, parish, status, created_at, updated_at
		FROM championships
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argID)
		args = append(args, *filter.Status)
		argID++
	}

	query += " ORDER BY id ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	championships := make([]models.Championship, 0)
	for rows.Next() {
		var c models.Championship
		if scanErr := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.StartDate, &c.EndDate,
			&c.Canton, &c.Parish, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		championships = append(championships, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return championships, nil
}

func (r *postgresChampionshipRepository) Update(ctx context.Context, c *models.Championship) error {
	query := `
		UPDATE championships SET
			name = $1,
			description = $2,
			start_date = $3,
			end_date = $4,
			canton = $5,
			parish = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Description, c.StartDate, c.EndDate, c.Canton, c.Parish, c.Status,
		c.ID,
	).Scan(&c.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrChampionshipNotFound
		}
		return handleChampionshipError(err)
	}
	return nil
}

func (r *postgresChampionshipRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM championships WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		// player_reports references championships with ON DELETE RESTRICT.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrChampionshipHasReports
		}
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM championships WHERE name = $1 AND id <> $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func handleChampionshipError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
		if pqErr.Constraint == "championships_name_key" {
			return ErrChampionshipNameConflict
		}
	}
	return err
}
