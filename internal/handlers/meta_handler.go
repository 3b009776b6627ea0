package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
)

// MetaHandler proxies read-only Graph API lookups for the configured
// account, so the access token never leaves the backend.
type MetaHandler struct {
	settings interfaces.SettingsRepository
	meta     interfaces.MetaClient
}

func NewMetaHandler(settings interfaces.SettingsRepository, meta interfaces.MetaClient) *MetaHandler {
	return &MetaHandler{settings: settings, meta: meta}
}

func (h *MetaHandler) loadSettings(w http.ResponseWriter, r *http.Request) (*models.Settings, bool) {
	settings, err := h.settings.GetByUserID(r.Context(), userIDFrom(r))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_settings_failed", "Failed to load settings")
		return nil, false
	}
	if settings.AccessToken == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "not_configured", "Access token must be configured")
		return nil, false
	}
	return settings, true
}

func writeProxyResult(w http.ResponseWriter, data any, err error) {
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadGateway, "graph_api_error", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

// @Tags Meta
// @Summary List ad accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/meta/adaccounts/ [get]
func (h *MetaHandler) ListAdAccounts(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.loadSettings(w, r)
	if !ok {
		return
	}
	accounts, err := h.meta.GetAdAccounts(r.Context(), settings.AccessToken)
	writeProxyResult(w, accounts, err)
}

// @Tags Meta
// @Summary List Facebook pages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/meta/pages/ [get]
func (h *MetaHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.loadSettings(w, r)
	if !ok {
		return
	}
	pages, err := h.meta.GetPages(r.Context(), settings.AccessToken, settings.AdAccountID)
	writeProxyResult(w, pages, err)
}

// @Tags Meta
// @Summary List Instagram accounts linked to a page
// @Security BearerAuth
// @Produce json
// @Param pageID path string true "Page ID"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/meta/pages/{pageID}/instagram/ [get]
func (h *MetaHandler) ListInstagramAccounts(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.loadSettings(w, r)
	if !ok {
		return
	}
	pageID := chi.URLParam(r, "pageID")
	if pageID == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Page ID is required")
		return
	}
	accounts, err := h.meta.GetInstagramAccounts(r.Context(), settings.AccessToken, pageID)
	writeProxyResult(w, accounts, err)
}

// @Tags Meta
// @Summary List pixels
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/meta/pixels/ [get]
func (h *MetaHandler) ListPixels(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.loadSettings(w, r)
	if !ok {
		return
	}
	pixels, err := h.meta.GetPixels(r.Context(), settings.AccessToken, settings.AdAccountID)
	writeProxyResult(w, pixels, err)
}

// @Tags Meta
// @Summary List campaigns
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/meta/campaigns/ [get]
func (h *MetaHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.loadSettings(w, r)
	if !ok {
		return
	}
	campaigns, err := h.meta.GetCampaigns(r.Context(), settings.AccessToken, settings.AdAccountID)
	writeProxyResult(w, campaigns, err)
}

// @Tags Meta
// @Summary List ad sets for a campaign
// @Security BearerAuth
// @Produce json
// @Param campaignID path string true "Campaign ID"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/meta/campaigns/{campaignID}/adsets/ [get]
func (h *MetaHandler) ListAdSets(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.loadSettings(w, r)
	if !ok {
		return
	}
	campaignID := chi.URLParam(r, "campaignID")
	if campaignID == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Campaign ID is required")
		return
	}
	adSets, err := h.meta.GetAdSets(r.Context(), settings.AccessToken, campaignID)
	writeProxyResult(w, adSets, err)
}

// @Tags Meta
// @Summary List account ad creatives
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/meta/adcreatives/ [get]
func (h *MetaHandler) ListAdCreatives(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.loadSettings(w, r)
	if !ok {
		return
	}
	creatives, err := h.meta.GetAdCreatives(r.Context(), settings.AccessToken, settings.AdAccountID)
	writeProxyResult(w, creatives, err)
}

// @Tags Meta
// @Summary Get account insights
// @Security BearerAuth
// @Produce json
// @Param date_preset query string false "Date preset, e.g. last_7d"
// @Param level query string false "Aggregation level: campaign, adset or ad"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/meta/insights/ [get]
func (h *MetaHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.loadSettings(w, r)
	if !ok {
		return
	}
	q := models.InsightsQuery{
		DatePreset: r.URL.Query().Get("date_preset"),
		Level:      r.URL.Query().Get("level"),
	}
	rows, err := h.meta.GetInsights(r.Context(), settings.AccessToken, settings.AdAccountID, q)
	writeProxyResult(w, rows, err)
}

// @Tags Meta
// @Summary Search geo regions
// @Security BearerAuth
// @Produce json
// @Param q query string true "Region name query"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/meta/regions/ [get]
func (h *MetaHandler) SearchRegions(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.loadSettings(w, r)
	if !ok {
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "q is required")
		return
	}
	regions, err := h.meta.SearchRegions(r.Context(), settings.AccessToken, query)
	writeProxyResult(w, regions, err)
}
