package handlers

import (
	"net/http"

	"github.com/ldpsa/league-admin/models"
	"github.com/ldpsa/league-admin/services"
)

type ChampionshipHandler struct {
	championshipService services.ChampionshipService
}

func NewChampionshipHandler(cs services.ChampionshipService) *ChampionshipHandler {
	return &ChampionshipHandler{
		championshipService: cs,
	}
}

// CreateChampionship обрабатывает POST /championships
func (h *ChampionshipHandler) CreateChampionship(w http.ResponseWriter, r *http.Request) {
	var input services.CreateChampionshipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.CreateChampionship(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"championship": championship}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetChampionshipByID обрабатывает GET /championships/{championshipID}
func (h *ChampionshipHandler) GetChampionshipByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.GetChampionshipByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championship": championship}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListChampionships обрабатывает GET /championships
func (h *ChampionshipHandler) ListChampionships(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.ListChampionshipsInput{
		Limit:  limit,
		Offset: offset,
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := models.ChampionshipStatus(statusStr)
		input.Status = &status
	}

	championships, err := h.championshipService.ListChampionships(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championships": championships}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateChampionship обрабатывает PUT /championships/{championshipID}
func (h *ChampionshipHandler) UpdateChampionship(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateChampionshipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.UpdateChampionship(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championship": championship}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteChampionship обрабатывает DELETE /championships/{championshipID}
func (h *ChampionshipHandler) DeleteChampionship(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.championshipService.DeleteChampionship(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
