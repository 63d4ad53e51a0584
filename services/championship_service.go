package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ldpsa/league-admin/models"
	"github.com/ldpsa/league-admin/repositories"
)

type ChampionshipService interface {
	CreateChampionship(ctx context.Context, input CreateChampionshipInput) (*models.Championship, error)
	GetChampionshipByID(ctx context.Context, id int) (*models.Championship, error)
	ListChampionships(ctx context.Context, input ListChampionshipsInput) ([]models.Championship, error)
	UpdateChampionship(ctx context.Context, id int, input UpdateChampionshipInput) (*models.Championship, error)
	DeleteChampionship(ctx context.Context, id int) error
}

type CreateChampionshipInput struct {
	Name        string                    `json:"name"`
	Description *string                   `json:"description"`
	StartDate   *time.Time                `json:"start_date"`
	EndDate     *time.Time                `json:"end_date"`
	Canton      *string                   `json:"canton"`
	Parish      *string                   `json:"parish"`
	Status      models.ChampionshipStatus `json:"status"`
}

// UpdateChampionshipInput несёт частичное обновление: nil означает "не трогать поле".
type UpdateChampionshipInput struct {
	Name        *string                    `json:"name"`
	Description *string                    `json:"description"`
	StartDate   *time.Time                 `json:"start_date"`
	EndDate     *time.Time                 `json:"end_date"`
	Canton      *string                    `json:"canton"`
	Parish      *string                    `json:"parish"`
	Status      *models.ChampionshipStatus `json:"status"`
}

type ListChampionshipsInput struct {
	Status *models.ChampionshipStatus
	Limit  int
	Offset int
}

type championshipService struct {
	championshipRepo repositories.ChampionshipRepository
}

func NewChampionshipService(championshipRepo repositories.ChampionshipRepository) ChampionshipService {
	return &championshipService{
		championshipRepo: championshipRepo,
	}
}

func (s *championshipService) CreateChampionship(ctx context.Context, input CreateChampionshipInput) (*models.Championship, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrChampionshipNameRequired
	}

	status := input.Status
	if status == "" {
		status = models.ChampionshipActive
	}
	if !models.ValidChampionshipStatus(status) {
		return nil, ErrChampionshipBadStatus
	}

	// Предварительная проверка имени; ограничение championships_name_key в БД
	// закрывает гонку между проверкой и вставкой.
	exists, err := s.championshipRepo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check championship name: %w", err)
	}
	if exists {
		return nil, ErrChampionshipNameConflict
	}

	championship := &models.Championship{
		Name:        name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Canton:      input.Canton,
		Parish:      input.Parish,
		Status:      status,
	}

	if err := s.championshipRepo.Create(ctx, championship); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNameConflict) {
			return nil, ErrChampionshipNameConflict
		}
		return nil, fmt.Errorf("failed to create championship: %w", err)
	}

	return championship, nil
}

func (s *championshipService) GetChampionshipByID(ctx context.Context, id int) (*models.Championship, error) {
	championship, err := s.championshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to get championship by id %d: %w", id, err)
	}
	return championship, nil
}

func (s *championshipService) ListChampionships(ctx context.Context, input ListChampionshipsInput) ([]models.Championship, error) {
	if input.Status != nil && !models.ValidChampionshipStatus(*input.Status) {
		return nil, ErrChampionshipBadStatus
	}

	filter := repositories.ListChampionshipsFilter{
		Status: input.Status,
		Limit:  normalizeLimit(input.Limit),
		Offset: input.Offset,
	}

	championships, err := s.championshipRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list championships: %w", err)
	}
	return championships, nil
}

func (s *championshipService) UpdateChampionship(ctx context.Context, id int, input UpdateChampionshipInput) (*models.Championship, error) {
	championship, err := s.championshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to load championship %d for update: %w", id, err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrChampionshipNameRequired
		}
		// имя уникально — повторная проверка перед записью, исключая саму запись
		exists, dupErr := s.championshipRepo.ExistsByName(ctx, name, id)
		if dupErr != nil {
			return nil, fmt.Errorf("failed to re-check championship name: %w", dupErr)
		}
		if exists {
			return nil, ErrChampionshipNameConflict
		}
		championship.Name = name
	}
	if input.Description != nil {
		championship.Description = input.Description
	}
	if input.StartDate != nil {
		championship.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		championship.EndDate = input.EndDate
	}
	if input.Canton != nil {
		championship.Canton = input.Canton
	}
	if input.Parish != nil {
		championship.Parish = input.Parish
	}
	if input.Status != nil {
		if !models.ValidChampionshipStatus(*input.Status) {
			return nil, ErrChampionshipBadStatus
		}
		championship.Status = *input.Status
	}

	if err := s.championshipRepo.Update(ctx, championship); err != nil {
		switch {
		case errors.Is(err, repositories.ErrChampionshipNotFound):
			return nil, ErrChampionshipNotFound
		case errors.Is(err, repositories.ErrChampionshipNameConflict):
			return nil, ErrChampionshipNameConflict
		default:
			return nil, fmt.Errorf("failed to update championship %d: %w", id, err)
		}
	}

	return championship, nil
}

func (s *championshipService) DeleteChampionship(ctx context.Context, id int) error {
	err := s.championshipRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrChampionshipNotFound):
			return ErrChampionshipNotFound
		case errors.Is(err, repositories.ErrChampionshipHasReports):
			return ErrChampionshipHasReports
		default:
			return fmt.Errorf("failed to delete championship %d: %w", id, err)
		}
	}
	return nil
}
