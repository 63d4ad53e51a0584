package services

import (
	"context"
	"testing"
	"time"

	"github.com/ldpsa/league-admin/models"
	"github.com/ldpsa/league-admin/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceMocks struct {
	reportRepo       *mockPlayerReportRepository
	userRepo         *mockUserRepository
	championshipRepo *mockChampionshipRepository
	svc              PlayerReportService
}

func newReportServiceMocks() reportServiceMocks {
	reportRepo := new(mockPlayerReportRepository)
	userRepo := new(mockUserRepository)
	championshipRepo := new(mockChampionshipRepository)
	return reportServiceMocks{
		reportRepo:       reportRepo,
		userRepo:         userRepo,
		championshipRepo: championshipRepo,
		svc:              NewPlayerReportService(reportRepo, userRepo, championshipRepo),
	}
}

func TestCreateReportSucceeds(t *testing.T) {
	m := newReportServiceMocks()

	m.userRepo.On("GetByID", mock.Anything, 5).Return(&models.User{ID: 5}, nil)
	m.championshipRepo.On("GetByID", mock.Anything, 2).Return(&models.Championship{ID: 2}, nil)
	m.reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.PlayerReport")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*models.PlayerReport)
			r.ID = 1
			r.ReportDate = time.Now()
			r.CreatedAt = r.ReportDate
			r.UpdatedAt = r.ReportDate
		}).
		Return(nil)

	report, err := m.svc.CreateReport(context.Background(), CreateReportInput{
		PlayerID:       5,
		ChampionshipID: 2,
		Title:          "Technical sheet",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.ID)
	assert.Equal(t, 5, report.PlayerID)
	assert.Equal(t, 2, report.ChampionshipID)
	assert.False(t, report.ReportDate.IsZero())

	m.reportRepo.AssertExpectations(t)
}

func TestCreateReportMissingPlayer(t *testing.T) {
	m := newReportServiceMocks()

	m.userRepo.On("GetByID", mock.Anything, 999).Return(nil, repositories.ErrUserNotFound)
	m.championshipRepo.On("GetByID", mock.Anything, 1).Return(&models.Championship{ID: 1}, nil)

	_, err := m.svc.CreateReport(context.Background(), CreateReportInput{
		PlayerID:       999,
		ChampionshipID: 1,
		Title:          "T",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportPlayerNotFound)
	assert.NotErrorIs(t, err, ErrReportChampionshipNotFound)

	m.reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReportReportsBothMissingReferences(t *testing.T) {
	m := newReportServiceMocks()

	m.userRepo.On("GetByID", mock.Anything, 999).Return(nil, repositories.ErrUserNotFound)
	m.championshipRepo.On("GetByID", mock.Anything, 888).Return(nil, repositories.ErrChampionshipNotFound)

	_, err := m.svc.CreateReport(context.Background(), CreateReportInput{
		PlayerID:       999,
		ChampionshipID: 888,
		Title:          "T",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportPlayerNotFound)
	assert.ErrorIs(t, err, ErrReportChampionshipNotFound)
}

func TestCreateReportValidation(t *testing.T) {
	m := newReportServiceMocks()

	_, err := m.svc.CreateReport(context.Background(), CreateReportInput{PlayerID: 0, ChampionshipID: 1, Title: "T"})
	assert.ErrorIs(t, err, ErrReportInvalidPlayerID)

	_, err = m.svc.CreateReport(context.Background(), CreateReportInput{PlayerID: 1, ChampionshipID: -2, Title: "T"})
	assert.ErrorIs(t, err, ErrReportInvalidChampID)

	_, err = m.svc.CreateReport(context.Background(), CreateReportInput{PlayerID: 1, ChampionshipID: 1, Title: " "})
	assert.ErrorIs(t, err, ErrReportTitleRequired)
}

func TestCreateReportMapsStorageFKViolation(t *testing.T) {
	// Ссылка исчезла между проверкой и вставкой — FK в БД вернул нарушение.
	m := newReportServiceMocks()

	m.userRepo.On("GetByID", mock.Anything, 5).Return(&models.User{ID: 5}, nil)
	m.championshipRepo.On("GetByID", mock.Anything, 2).Return(&models.Championship{ID: 2}, nil)
	m.reportRepo.On("Create", mock.Anything, mock.Anything).
		Return(repositories.ErrReportInvalidChampionship)

	_, err := m.svc.CreateReport(context.Background(), CreateReportInput{
		PlayerID:       5,
		ChampionshipID: 2,
		Title:          "T",
	})
	assert.ErrorIs(t, err, ErrReportChampionshipNotFound)
}

func TestUpdateReportMergesOnlySuppliedFields(t *testing.T) {
	m := newReportServiceMocks()

	description := "initial assessment"
	existing := &models.PlayerReport{
		ID:             4,
		PlayerID:       5,
		ChampionshipID: 2,
		Title:          "Technical sheet",
		Description:    &description,
		ReportDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	m.reportRepo.On("GetByID", mock.Anything, 4).Return(existing, nil)
	m.reportRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.PlayerReport")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.PlayerReport).UpdatedAt = time.Now()
		}).
		Return(nil)

	fileURL := "https://files.example.com/reports/4.pdf"
	report, err := m.svc.UpdateReport(context.Background(), 4, UpdateReportInput{FileURL: &fileURL})
	require.NoError(t, err)

	require.NotNil(t, report.FileURL)
	assert.Equal(t, fileURL, *report.FileURL)
	assert.Equal(t, "Technical sheet", report.Title)
	assert.Equal(t, 5, report.PlayerID)
	assert.Equal(t, 2, report.ChampionshipID)
}

func TestUpdateReportNotFound(t *testing.T) {
	m := newReportServiceMocks()

	m.reportRepo.On("GetByID", mock.Anything, 77).Return(nil, repositories.ErrReportNotFound)

	_, err := m.svc.UpdateReport(context.Background(), 77, UpdateReportInput{})
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestListReportsPassesFiltersAndDefaultsLimit(t *testing.T) {
	m := newReportServiceMocks()

	playerID := 5
	m.reportRepo.On("List", mock.Anything, repositories.ListReportsFilter{
		PlayerID: &playerID,
		Limit:    100,
		Offset:   20,
	}).Return([]models.PlayerReport{}, nil)

	reports, err := m.svc.ListReports(context.Background(), ListReportsInput{
		PlayerID: &playerID,
		Offset:   20,
	})
	require.NoError(t, err)
	assert.Empty(t, reports)

	m.reportRepo.AssertExpectations(t)
}

func TestDeleteReportNotFound(t *testing.T) {
	m := newReportServiceMocks()

	m.reportRepo.On("Delete", mock.Anything, 77).Return(repositories.ErrReportNotFound)

	err := m.svc.DeleteReport(context.Background(), 77)
	assert.ErrorIs(t, err, ErrReportNotFound)
}
