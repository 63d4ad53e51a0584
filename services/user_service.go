package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ldpsa/league-admin/models"
	"github.com/ldpsa/league-admin/repositories"
	"github.com/ldpsa/league-admin/utils"
)

const minUsernameLength = 3
const minPasswordLength = 6

type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) ([]models.User, error)
	UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type CreateUserInput struct {
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	NationalID   string          `json:"national_id"`
	Username     string          `json:"username"`
	Password     string          `json:"password"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone"`
	Address      *string         `json:"address"`
	Canton       *string         `json:"canton"`
	Parish       *string         `json:"parish"`
	Neighborhood *string         `json:"neighborhood"`
	Role         models.UserRole `json:"role"`
}

// UpdateUserInput несёт частичное обновление: nil означает "не трогать поле".
// Через общий update меняются только email, телефон и адрес.
type UpdateUserInput struct {
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type ListUsersInput struct {
	Limit  int
	Offset int
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if err := validateCreateUserInput(&input); err != nil {
		return nil, err
	}

	// Предварительная проверка уникальности даёт точную ошибку по полю.
	// Авторитетная защита — уникальные ограничения в БД (см. маппинг ниже).
	duplicates, err := s.userRepo.FindDuplicateFields(ctx, input.NationalID, input.Username, input.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	if len(duplicates) > 0 {
		return nil, duplicateUserFieldsError(duplicates)
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		NationalID:   input.NationalID,
		Username:     input.Username,
		PasswordHash: passwordHash,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		Canton:       input.Canton,
		Parish:       input.Parish,
		Neighborhood: input.Neighborhood,
		Role:         input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, mapUserRepoError(err)
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, input ListUsersInput) ([]models.User, error) {
	filter := repositories.ListUsersFilter{
		Limit:  normalizeLimit(input.Limit),
		Offset: input.Offset,
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %d for update: %w", id, err)
	}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if !utils.IsValidEmail(email) {
			return nil, ErrUserInvalidEmail
		}
		// email уникален — повторная проверка перед записью, исключая саму запись
		duplicates, dupErr := s.userRepo.FindDuplicateFields(ctx, user.NationalID, user.Username, email, id)
		if dupErr != nil {
			return nil, fmt.Errorf("failed to re-check user uniqueness: %w", dupErr)
		}
		for _, field := range duplicates {
			if field == "email" {
				return nil, ErrUserEmailConflict
			}
		}
		user.Email = email
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Address != nil {
		user.Address = input.Address
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, mapUserRepoError(err)
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int) error {
	err := s.userRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return ErrUserNotFound
		case errors.Is(err, repositories.ErrUserHasReports):
			return ErrUserHasReports
		default:
			return fmt.Errorf("failed to delete user %d: %w", id, err)
		}
	}
	return nil
}

func validateCreateUserInput(input *CreateUserInput) error {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.NationalID = strings.TrimSpace(input.NationalID)
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	switch {
	case input.FirstName == "":
		return ErrUserFirstNameRequired
	case input.LastName == "":
		return ErrUserLastNameRequired
	case input.NationalID == "":
		return ErrUserNationalIDRequired
	case len(input.Username) < minUsernameLength:
		return ErrUserUsernameTooShort
	case len(input.Password) < minPasswordLength:
		return ErrUserPasswordTooShort
	case !utils.IsValidEmail(input.Email):
		return ErrUserInvalidEmail
	case !models.ValidUserRole(input.Role):
		return ErrUserInvalidRole
	}
	return nil
}

// duplicateUserFieldsError объединяет все конфликтующие поля в одну ошибку,
// чтобы errors.Is срабатывал для каждого из них.
func duplicateUserFieldsError(fields []string) error {
	errs := make([]error, 0, len(fields))
	for _, field := range fields {
		switch field {
		case "national_id":
			errs = append(errs, ErrUserNationalIDConflict)
		case "username":
			errs = append(errs, ErrUserUsernameConflict)
		case "email":
			errs = append(errs, ErrUserEmailConflict)
		}
	}
	return errors.Join(errs...)
}

func mapUserRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrUserNationalIDConflict):
		return ErrUserNationalIDConflict
	case errors.Is(err, repositories.ErrUserUsernameConflict):
		return ErrUserUsernameConflict
	case errors.Is(err, repositories.ErrUserEmailConflict):
		return ErrUserEmailConflict
	default:
		return fmt.Errorf("user repository failure: %w", err)
	}
}
