package handlers

import (
	"database/sql"
	"net/http"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root обрабатывает GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	response := jsonResponse{"message": "league admin API is running"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Health обрабатывает GET /health — проверяет соединение с БД.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		response := jsonResponse{"status": "error", "database": "disconnected"}
		if writeErr := writeJSON(w, http.StatusServiceUnavailable, response, nil); writeErr != nil {
			serverErrorResponse(w, r, writeErr)
		}
		return
	}

	response := jsonResponse{"status": "ok", "database": "connected"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
