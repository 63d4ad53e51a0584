package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ldpsa/league-admin/services"
)

type PlayerReportHandler struct {
	reportService services.PlayerReportService
}

func NewPlayerReportHandler(rs services.PlayerReportService) *PlayerReportHandler {
	return &PlayerReportHandler{
		reportService: rs,
	}
}

// CreateReport обрабатывает POST /reports
func (h *PlayerReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var input services.CreateReportInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	report, err := h.reportService.CreateReport(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"report": report}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetReportByID обрабатывает GET /reports/{reportID}
func (h *PlayerReportHandler) GetReportByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "reportID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	report, err := h.reportService.GetReportByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"report": report}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListReports обрабатывает GET /reports
func (h *PlayerReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.ListReportsInput{
		Limit:  limit,
		Offset: offset,
	}
	query := r.URL.Query()

	if playerIDStr := query.Get("player_id"); playerIDStr != "" {
		if id, err := strconv.Atoi(playerIDStr); err == nil && id > 0 {
			input.PlayerID = &id
		} else {
			badRequestResponse(w, r, errors.New("invalid player_id query parameter"))
			return
		}
	}
	if championshipIDStr := query.Get("championship_id"); championshipIDStr != "" {
		if id, err := strconv.Atoi(championshipIDStr); err == nil && id > 0 {
			input.ChampionshipID = &id
		} else {
			badRequestResponse(w, r, errors.New("invalid championship_id query parameter"))
			return
		}
	}

	reports, err := h.reportService.ListReports(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"reports": reports}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateReport обрабатывает PUT /reports/{reportID}
func (h *PlayerReportHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "reportID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateReportInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	report, err := h.reportService.UpdateReport(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"report": report}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteReport обрабатывает DELETE /reports/{reportID}
func (h *PlayerReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "reportID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.reportService.DeleteReport(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
