package handlers

import (
	"encoding/json"
	"net/http"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/middleware"
	"adlaunch/internal/models"
)

type SettingsHandler struct {
	settings interfaces.SettingsRepository
	meta     interfaces.MetaClient
}

func NewSettingsHandler(settings interfaces.SettingsRepository, meta interfaces.MetaClient) *SettingsHandler {
	return &SettingsHandler{settings: settings, meta: meta}
}

func userIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(middleware.CtxUserID).(string)
	return id
}

// @Tags Settings
// @Summary Get settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Settings
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/settings/ [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetByUserID(r.Context(), userIDFrom(r))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_settings_failed", "Failed to load settings")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(settings)
}

// @Tags Settings
// @Summary Update settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.UpdateSettingsRequest true "Settings fields to update"
// @Success 200 {object} models.Settings
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/settings/ [put]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	settings, err := h.settings.GetByUserID(r.Context(), userIDFrom(r))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_settings_failed", "Failed to load settings")
		return
	}

	if req.AccessToken != nil {
		settings.AccessToken = *req.AccessToken
	}
	if req.AdAccountID != nil {
		settings.AdAccountID = *req.AdAccountID
	}
	if req.UTMTemplate != nil {
		settings.UTMTemplate = *req.UTMTemplate
	}
	if req.Enhancements != nil {
		settings.Enhancements = *req.Enhancements
	}

	if err := h.settings.Upsert(r.Context(), settings); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "update_settings_failed", "Failed to save settings")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(settings)
}

// @Tags Settings
// @Summary Test Graph API connection
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.AdAccount
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/settings/test/ [post]
func (h *SettingsHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetByUserID(r.Context(), userIDFrom(r))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_settings_failed", "Failed to load settings")
		return
	}
	if settings.AccessToken == "" || settings.AdAccountID == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "not_configured", "Access token and ad account must be configured")
		return
	}

	account, err := h.meta.TestConnection(r.Context(), settings.AccessToken, settings.AdAccountID)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadGateway, "connection_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(account)
}
