package services

import (
	"context"

	"github.com/ldpsa/league-admin/models"
	"github.com/ldpsa/league-admin/repositories"
	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, filter repositories.ListUsersFilter) ([]models.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) FindDuplicateFields(ctx context.Context, nationalID, username, email string, excludeID int) ([]string, error) {
	args := m.Called(ctx, nationalID, username, email, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockChampionshipRepository struct{ mock.Mock }

func (m *mockChampionshipRepository) Create(ctx context.Context, championship *models.Championship) error {
	return m.Called(ctx, championship).Error(0)
}

func (m *mockChampionshipRepository) GetByID(ctx context.Context, id int) (*models.Championship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Championship), args.Error(1)
}

func (m *mockChampionshipRepository) List(ctx context.Context, filter repositories.ListChampionshipsFilter) ([]models.Championship, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Championship), args.Error(1)
}

func (m *mockChampionshipRepository) Update(ctx context.Context, championship *models.Championship) error {
	return m.Called(ctx, championship).Error(0)
}

func (m *mockChampionshipRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockChampionshipRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

type mockPlayerReportRepository struct{ mock.Mock }

func (m *mockPlayerReportRepository) Create(ctx context.Context, report *models.PlayerReport) error {
	return m.Called(ctx, report).Error(0)
}

func (m *mockPlayerReportRepository) GetByID(ctx context.Context, id int) (*models.PlayerReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlayerReport), args.Error(1)
}

func (m *mockPlayerReportRepository) List(ctx context.Context, filter repositories.ListReportsFilter) ([]models.PlayerReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlayerReport), args.Error(1)
}

func (m *mockPlayerReportRepository) Update(ctx context.Context, report *models.PlayerReport) error {
	return m.Called(ctx, report).Error(0)
}

func (m *mockPlayerReportRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
