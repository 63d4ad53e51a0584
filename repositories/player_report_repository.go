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
	ErrReportNotFound            = errors.New("player report not found")
	ErrReportInvalidPlayer       = errors.New("invalid player reference")
	ErrReportInvalidChampionship = errors.New("invalid championship reference")
)

type ListReportsFilter struct {
	PlayerID       *int
	ChampionshipID *int
	Limit          int
	Offset         int
}

type PlayerReportRepository interface {
	Create(ctx context.Context, report *models.PlayerReport) error
	GetByID(ctx context.Context, id int) (*models.PlayerReport, error)
	List(ctx context.Context, filter ListReportsFilter) ([]models.PlayerReport, error)
	Update(ctx context.Context, report *models.PlayerReport) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerReportRepository struct {
	db *sql.DB
}

func NewPostgresPlayerReportRepository(db *sql.DB) PlayerReportRepository {
	return &postgresPlayerReportRepository{db: db}
}

const reportColumns = `id, player_id, championship_id, title, description, file_url,
		report_type, report_date, created_at, updated_at`

func (r *postgresPlayerReportRepository) Create(ctx context.Context, report *models.PlayerReport) error {
	// report_date falls back to NOW() when the caller left it unset.
	query := `
		INSERT INTO player_reports (
			player_id, championship_id, title, description, file_url, report_type, report_date
		) VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING id, report_date, created_at, updated_at`

	var reportDate interface{}
	if !report.ReportDate.IsZero() {
		reportDate = report.ReportDate
	}

	err := r.db.QueryRowContext(ctx, query,
		report.PlayerID,
		report.ChampionshipID,
		report.Title,
		report.Description,
		report.FileURL,
		report.ReportType,
		reportDate,
	).Scan(&report.ID, &report.ReportDate, &report.CreatedAt, &report.UpdatedAt)

	return handleReportError(err)
}

func (r *postgresPlayerReportRepository) GetByID(ctx context.Context, id int) (*models.PlayerReport, error) {
	query := `SELECT ` + reportColumns + ` FROM player_reports WHERE id = $1`

	report := &models.PlayerReport{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&report.ID, &report.PlayerID, &report.ChampionshipID, &report.Title,
		&report.Description, &report.FileURL, &report.ReportType,
		&report.ReportDate, &report.CreatedAt, &report.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return report, nil
}

func (r *postgresPlayerReportRepository) List(ctx context.Context, filter ListReportsFilter) ([]models.PlayerReport, error) {
	query := `SELECT ` + reportColumns + ` FROM player_reports WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.PlayerID != nil {
		query += fmt.Sprintf(" AND player_id = $%d", argID)
		args = append(args, *filter.PlayerID)
		argID++
	}
	if filter.ChampionshipID != nil {
		query += fmt.Sprintf(" AND championship_id = $%d", argID)
		args = append(args, *filter.ChampionshipID)
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

	reports := make([]models.PlayerReport, 0)
	for rows.Next() {
		var report models.PlayerReport
		if scanErr := rows.Scan(
			&report.ID, &report.PlayerID, &report.ChampionshipID, &report.Title,
			&report.Description, &report.FileURL, &report.ReportType,
			&report.ReportDate, &report.CreatedAt, &report.UpdatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Update persists the mutable report columns and refreshes updated_at.
// player_id and championship_id are never written after creation.
func (r *postgresPlayerReportRepository) Update(ctx context.Context, report *models.PlayerReport) error {
	query := `
		UPDATE player_reports SET
			title = $1,
			description = $2,
			file_url = $3,
			report_type = $4,
			report_date = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		report.Title,
		report.Description,
		report.FileURL,
		report.ReportType,
		report.ReportDate,
		report.ID,
	).Scan(&report.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReportNotFound
		}
		return err
	}
	return nil
}

func (r *postgresPlayerReportRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM player_reports WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrReportNotFound)
}

func handleReportError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" { // foreign_key_violation
		switch pqErr.Constraint {
		case "player_reports_player_id_fkey":
			return ErrReportInvalidPlayer
		case "player_reports_championship_id_fkey":
			return ErrReportInvalidChampionship
		}
	}
	return err
}
