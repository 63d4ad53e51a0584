package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ldpsa/league-admin/models"
	"github.com/ldpsa/league-admin/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChampionshipService struct {
	createFn func(ctx context.Context, input services.CreateChampionshipInput) (*models.Championship, error)
	getFn    func(ctx context.Context, id int) (*models.Championship, error)
	listFn   func(ctx context.Context, input services.ListChampionshipsInput) ([]models.Championship, error)
	updateFn func(ctx context.Context, id int, input services.UpdateChampionshipInput) (*models.Championship, error)
	deleteFn func(ctx context.Context, id int) error
}

func (s *stubChampionshipService) CreateChampionship(ctx context.Context, input services.CreateChampionshipInput) (*models.Championship, error) {
	return s.createFn(ctx, input)
}

func (s *stubChampionshipService) GetChampionshipByID(ctx context.Context, id int) (*models.Championship, error) {
	return s.getFn(ctx, id)
}

func (s *stubChampionshipService) ListChampionships(ctx context.Context, input services.ListChampionshipsInput) ([]models.Championship, error) {
	return s.listFn(ctx, input)
}

func (s *stubChampionshipService) UpdateChampionship(ctx context.Context, id int, input services.UpdateChampionshipInput) (*models.Championship, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubChampionshipService) DeleteChampionship(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func newChampionshipRouter(svc services.ChampionshipService) *chi.Mux {
	h := NewChampionshipHandler(svc)
	router := chi.NewRouter()
	router.Route("/championships", func(r chi.Router) {
		r.Post("/", h.CreateChampionship)
		r.Get("/", h.ListChampionships)
		r.Get("/{championshipID}", h.GetChampionshipByID)
		r.Put("/{championshipID}", h.UpdateChampionship)
		r.Delete("/{championshipID}", h.DeleteChampionship)
	})
	return router
}

func TestCreateChampionshipReturns201(t *testing.T) {
	svc := &stubChampionshipService{
		createFn: func(_ context.Context, input services.CreateChampionshipInput) (*models.Championship, error) {
			return &models.Championship{ID: 1, Name: input.Name, Status: models.ChampionshipActive}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/championships/", strings.NewReader(`{"name":"Cup26"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	newChampionshipRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Championship models.Championship `json:"championship"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Championship.ID)
	assert.Equal(t, "Cup26", resp.Championship.Name)
}

func TestCreateChampionshipConflictReturns409(t *testing.T) {
	svc := &stubChampionshipService{
		createFn: func(_ context.Context, _ services.CreateChampionshipInput) (*models.Championship, error) {
			return nil, services.ErrChampionshipNameConflict
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/championships/", strings.NewReader(`{"name":"Cup26"}`))
	w := httptest.NewRecorder()

	newChampionshipRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "name")
}

func TestGetChampionshipNotFoundReturns404(t *testing.T) {
	svc := &stubChampionshipService{
		getFn: func(_ context.Context, _ int) (*models.Championship, error) {
			return nil, services.ErrChampionshipNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/championships/42", nil)
	w := httptest.NewRecorder()

	newChampionshipRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetChampionshipRejectsNonNumericID(t *testing.T) {
	svc := &stubChampionshipService{
		getFn: func(_ context.Context, _ int) (*models.Championship, error) {
			t.Fatal("service must not be called for an invalid id")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/championships/abc", nil)
	w := httptest.NewRecorder()

	newChampionshipRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListChampionshipsParsesQueryParams(t *testing.T) {
	var captured services.ListChampionshipsInput
	svc := &stubChampionshipService{
		listFn: func(_ context.Context, input services.ListChampionshipsInput) ([]models.Championship, error) {
			captured = input
			return []models.Championship{{ID: 1, Name: "Cup26", Status: models.ChampionshipActive}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/championships/?status=active&limit=1&offset=0", nil)
	w := httptest.NewRecorder()

	newChampionshipRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured.Status)
	assert.Equal(t, models.ChampionshipActive, *captured.Status)
	assert.Equal(t, 1, captured.Limit)
	assert.Equal(t, 0, captured.Offset)
}

func TestListChampionshipsRejectsBadLimit(t *testing.T) {
	svc := &stubChampionshipService{
		listFn: func(_ context.Context, _ services.ListChampionshipsInput) ([]models.Championship, error) {
			t.Fatal("service must not be called for invalid pagination")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/championships/?limit=0", nil)
	w := httptest.NewRecorder()

	newChampionshipRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateChampionshipUnknownStatusReturns422(t *testing.T) {
	svc := &stubChampionshipService{
		updateFn: func(_ context.Context, _ int, _ services.UpdateChampionshipInput) (*models.Championship, error) {
			return nil, services.ErrChampionshipBadStatus
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/championships/3", strings.NewReader(`{"status":"archived"}`))
	w := httptest.NewRecorder()

	newChampionshipRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteChampionshipReturns204(t *testing.T) {
	svc := &stubChampionshipService{
		deleteFn: func(_ context.Context, id int) error {
			assert.Equal(t, 3, id)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/championships/3", nil)
	w := httptest.NewRecorder()

	newChampionshipRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteChampionshipWithReportsReturns409(t *testing.T) {
	svc := &stubChampionshipService{
		deleteFn: func(_ context.Context, _ int) error {
			return services.ErrChampionshipHasReports
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/championships/3", nil)
	w := httptest.NewRecorder()

	newChampionshipRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
