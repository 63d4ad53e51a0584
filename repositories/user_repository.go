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
	ErrUserNotFound           = errors.New("user not found")
	ErrUserNationalIDConflict = errors.New("user national id conflict")
	ErrUserUsernameConflict   = errors.New("user username conflict")
	ErrUserEmailConflict      = errors.New("user email conflict")
	ErrUserHasReports         = errors.New("user has dependent player reports")
)

type ListUsersFilter struct {
	Limit  int
	Offset int
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int) error
	// FindDuplicateFields returns the names of unique columns already taken by
	// another user. excludeID ignores the user's own row on update re-checks.
	FindDuplicateFields(ctx context.Context, nationalID, username, email string, excludeID int) ([]string, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

const userColumns = `id, first_name, last_name, national_id, username, password_hash, email,
		phone, address, canton, parish, neighborhood, role, created_at, updated_at`

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			first_name, last_name, national_id, username, password_hash, email,
			phone, address, canton, parish, neighborhood, role
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.NationalID,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Phone,
		user.Address,
		user.Canton,
		user.Parish,
		user.Neighborhood,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	return handleUserError(err)
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *postgresUserRepository) List(ctx context.Context, filter ListUsersFilter) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id ASC`

	args := []interface{}{}
	argID := 1

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

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if scanErr := scanUserRow(rows, &user); scanErr != nil {
			return nil, scanErr
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Update persists the mutable user columns and refreshes updated_at.
// Identity fields (national_id, username, role) are not written here.
func (r *postgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			email = $1,
			phone = $2,
			address = $3,
			updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Email,
		user.Phone,
		user.Address,
		user.ID,
	).Scan(&user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return handleUserError(err)
	}
	return nil
}

func (r *postgresUserRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		// player_reports references users with ON DELETE RESTRICT.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrUserHasReports
		}
		return err
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) FindDuplicateFields(ctx context.Context, nationalID, username, email string, excludeID int) ([]string, error) {
	query := `
		SELECT national_id = $1, username = $2, email = $3
		FROM users
		WHERE (national_id = $1 OR username = $2 OR email = $3) AND id <> $4`

	rows, err := r.db.QueryContext(ctx, query, nationalID, username, email, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dupNationalID, dupUsername, dupEmail bool
	for rows.Next() {
		var matchNationalID, matchUsername, matchEmail bool
		if scanErr := rows.Scan(&matchNationalID, &matchUsername, &matchEmail); scanErr != nil {
			return nil, scanErr
		}
		dupNationalID = dupNationalID || matchNationalID
		dupUsername = dupUsername || matchUsername
		dupEmail = dupEmail || matchEmail
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	fields := make([]string, 0, 3)
	if dupNationalID {
		fields = append(fields, "national_id")
	}
	if dupUsername {
		fields = append(fields, "username")
	}
	if dupEmail {
		fields = append(fields, "email")
	}
	return fields, nil
}

// scanUser - вспомогательный метод для сканирования одного пользователя
func (r *postgresUserRepository) scanUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	user := &models.User{}
	row := r.db.QueryRowContext(ctx, query, args...)
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.NationalID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Phone,
		&user.Address,
		&user.Canton,
		&user.Parish,
		&user.Neighborhood,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUserRow(rows *sql.Rows, user *models.User) error {
	return rows.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.NationalID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Phone,
		&user.Address,
		&user.Canton,
		&user.Parish,
		&user.Neighborhood,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

// handleUserError маппит ошибки уникальных ограничений Postgres на
// доменные конфликты. Ограничение в БД — авторитетная защита от гонки
// между предварительной проверкой и вставкой.
func handleUserError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
		switch pqErr.Constraint {
		case "users_national_id_key":
			return ErrUserNationalIDConflict
		case "users_username_key":
			return ErrUserUsernameConflict
		case "users_email_key":
			return ErrUserEmailConflict
		}
	}
	return err
}
