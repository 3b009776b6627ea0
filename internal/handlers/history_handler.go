package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
)

type HistoryHandler struct {
	history interfaces.HistoryRepository
}

func NewHistoryHandler(history interfaces.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// @Tags History
// @Summary List launch history
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} models.HistoryRecord
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/history/ [get]
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.history.List(r.Context(), limit)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_history_failed", "Failed to list history")
		return
	}

	if records == nil {
		records = []models.HistoryRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(records)
}
