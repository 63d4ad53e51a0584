package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ldpsa/league-admin/models"
	"github.com/ldpsa/league-admin/repositories"
	"golang.org/x/sync/errgroup"
)

type PlayerReportService interface {
	CreateReport(ctx context.Context, input CreateReportInput) (*models.PlayerReport, error)
	GetReportByID(ctx context.Context, id int) (*models.PlayerReport, error)
	ListReports(ctx context.Context, input ListReportsInput) ([]models.PlayerReport, error)
	UpdateReport(ctx context.Context, id int, input UpdateReportInput) (*models.PlayerReport, error)
	DeleteReport(ctx context.Context, id int) error
}

type CreateReportInput struct {
	PlayerID       int     `json:"player_id"`
	ChampionshipID int     `json:"championship_id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	ReportType     *string `json:"report_type"`
}

// UpdateReportInput несёт частичное обновление: nil означает "не трогать поле".
// Ссылки на игрока и чемпионат через update не меняются.
type UpdateReportInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	FileURL     *string    `json:"file_url"`
	ReportType  *string    `json:"report_type"`
	ReportDate  *time.Time `json:"report_date"`
}

type ListReportsInput struct {
	PlayerID       *int
	ChampionshipID *int
	Limit          int
	Offset         int
}

type playerReportService struct {
	reportRepo       repositories.PlayerReportRepository
	userRepo         repositories.UserRepository
	championshipRepo repositories.ChampionshipRepository
}

func NewPlayerReportService(
	reportRepo repositories.PlayerReportRepository,
	userRepo repositories.UserRepository,
	championshipRepo repositories.ChampionshipRepository,
) PlayerReportService {
	return &playerReportService{
		reportRepo:       reportRepo,
		userRepo:         userRepo,
		championshipRepo: championshipRepo,
	}
}

func (s *playerReportService) CreateReport(ctx context.Context, input CreateReportInput) (*models.PlayerReport, error) {
	input.Title = strings.TrimSpace(input.Title)

	switch {
	case input.PlayerID <= 0:
		return nil, ErrReportInvalidPlayerID
	case input.ChampionshipID <= 0:
		return nil, ErrReportInvalidChampID
	case input.Title == "":
		return nil, ErrReportTitleRequired
	}

	if err := s.resolveReferences(ctx, input.PlayerID, input.ChampionshipID); err != nil {
		return nil, err
	}

	report := &models.PlayerReport{
		PlayerID:       input.PlayerID,
		ChampionshipID: input.ChampionshipID,
		Title:          input.Title,
		Description:    input.Description,
		ReportType:     input.ReportType,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, mapReportRepoError(err)
	}

	return report, nil
}

// resolveReferences проверяет обе ссылки независимо, чтобы при двух
// отсутствующих записях вернуть обе ошибки, а не только первую.
func (s *playerReportService) resolveReferences(ctx context.Context, playerID, championshipID int) error {
	var playerErr, championshipErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.userRepo.GetByID(gctx, playerID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				playerErr = ErrReportPlayerNotFound
				return nil
			}
			return fmt.Errorf("failed to resolve report player %d: %w", playerID, err)
		}
		return nil
	})
	g.Go(func() error {
		_, err := s.championshipRepo.GetByID(gctx, championshipID)
		if err != nil {
			if errors.Is(err, repositories.ErrChampionshipNotFound) {
				championshipErr = ErrReportChampionshipNotFound
				return nil
			}
			return fmt.Errorf("failed to resolve report championship %d: %w", championshipID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return errors.Join(playerErr, championshipErr)
}

func (s *playerReportService) GetReportByID(ctx context.Context, id int) (*models.PlayerReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report by id %d: %w", id, err)
	}
	return report, nil
}

func (s *playerReportService) ListReports(ctx context.Context, input ListReportsInput) ([]models.PlayerReport, error) {
	filter := repositories.ListReportsFilter{
		PlayerID:       input.PlayerID,
		ChampionshipID: input.ChampionshipID,
		Limit:          normalizeLimit(input.Limit),
		Offset:         input.Offset,
	}

	reports, err := s.reportRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func (s *playerReportService) UpdateReport(ctx context.Context, id int, input UpdateReportInput) (*models.PlayerReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to load report %d for update: %w", id, err)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrReportTitleRequired
		}
		report.Title = title
	}
	if input.Description != nil {
		report.Description = input.Description
	}
	if input.FileURL != nil {
		report.FileURL = input.FileURL
	}
	if input.ReportType != nil {
		report.ReportType = input.ReportType
	}
	if input.ReportDate != nil {
		report.ReportDate = *input.ReportDate
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to update report %d: %w", id, err)
	}

	return report, nil
}

func (s *playerReportService) DeleteReport(ctx context.Context, id int) error {
	err := s.reportRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return ErrReportNotFound
		}
		return fmt.Errorf("failed to delete report %d: %w", id, err)
	}
	return nil
}

// mapReportRepoError переводит нарушения внешних ключей на вставке в те же
// ошибки "не найдено": ссылка могла исчезнуть между проверкой и вставкой.
func mapReportRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrReportInvalidPlayer):
		return ErrReportPlayerNotFound
	case errors.Is(err, repositories.ErrReportInvalidChampionship):
		return ErrReportChampionshipNotFound
	default:
		return fmt.Errorf("report repository failure: %w", err)
	}
}
