package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
	"adlaunch/internal/services"
)

type LaunchHandler struct {
	launcher *services.LaunchService
	settings interfaces.SettingsRepository
	v        *validator.Validate
}

func NewLaunchHandler(launcher *services.LaunchService, settings interfaces.SettingsRepository) *LaunchHandler {
	return &LaunchHandler{
		launcher: launcher,
		settings: settings,
		v:        validator.New(),
	}
}

// @Tags Launch
// @Summary Start a campaign launch
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.Draft true "Launch draft"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/launch/ [post]
func (h *LaunchHandler) StartLaunch(w http.ResponseWriter, r *http.Request) {
	var draft models.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(draft); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	settings, err := h.settings.GetByUserID(r.Context(), userIDFrom(r))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_settings_failed", "Failed to load settings")
		return
	}

	launchID, err := h.launcher.Start(draft, *settings)
	if err != nil {
		if errors.Is(err, services.ErrLaunchInProgress) {
			writeJSONErrorResponse(w, http.StatusConflict, "launch_in_progress", err.Error())
			return
		}
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", validationErr.Msg)
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "launch_failed", "Failed to start launch")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"launch_id": launchID,
		"state":     models.LaunchStateRunning,
	})
}

// @Tags Launch
// @Summary Get launch status
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.LaunchStatus
// @Router /api/v1/launch/status/ [get]
func (h *LaunchHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.launcher.Status()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}
