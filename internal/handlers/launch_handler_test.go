package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
	"adlaunch/internal/services"
	"adlaunch/pkg/logger"
	"adlaunch/pkg/metrics"
)

// stubMetaClient embeds the interface so only the methods a test needs
// have to be overridden. Campaign creation blocks until release is
// closed, keeping the launch in the running state.
type stubMetaClient struct {
	interfaces.MetaClient
	release chan struct{}

	testConnection func(ctx context.Context, token, accountID string) (*models.AdAccount, error)
}

func (s *stubMetaClient) CreateCampaign(ctx context.Context, token, accountID string, fields models.CampaignFields) (string, error) {
	if s.release != nil {
		<-s.release
	}
	return "camp-1", nil
}

func (s *stubMetaClient) TestConnection(ctx context.Context, token, accountID string) (*models.AdAccount, error) {
	return s.testConnection(ctx, token, accountID)
}

type stubSettingsRepo struct {
	settings *models.Settings
	err      error
	upserted *models.Settings
}

var _ interfaces.SettingsRepository = (*stubSettingsRepo)(nil)

func (s *stubSettingsRepo) GetByUserID(ctx context.Context, userID string) (*models.Settings, error) {
	return s.settings, s.err
}

func (s *stubSettingsRepo) Upsert(ctx context.Context, settings *models.Settings) error {
	s.upserted = settings
	return nil
}

type stubAssetRepo struct{ interfaces.AssetRepository }

type stubAssetStore struct{ interfaces.AssetStore }

type stubHistoryRepo struct {
	records []models.HistoryRecord
	err     error
}

var _ interfaces.HistoryRepository = (*stubHistoryRepo)(nil)

func (s *stubHistoryRepo) Create(ctx context.Context, record *models.HistoryRecord) error {
	s.records = append(s.records, *record)
	return nil
}

func (s *stubHistoryRepo) List(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	return s.records, s.err
}

func newLaunchHandlerForTest(meta *stubMetaClient) *LaunchHandler {
	launcher := services.NewLaunchService(
		meta,
		&stubAssetRepo{},
		&stubAssetStore{},
		&stubHistoryRepo{},
		logger.Discard(),
		metrics.NewWith(prometheus.NewRegistry()),
	)
	settings := &stubSettingsRepo{settings: &models.Settings{
		UserID:      "u1",
		AccessToken: "tok",
		AdAccountID: "123",
	}}
	return NewLaunchHandler(launcher, settings)
}

const validDraftJSON = `{
	"mode": "new",
	"creative_type": "single",
	"campaign_name": "Launch",
	"ad_set_name": "Ad Set",
	"targeting": {"countries": ["US"]},
	"page_id": "page-1",
	"website_url": "https://example.com",
	"creatives": [{"asset_id": "a1"}]
}`

func postLaunch(h *LaunchHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/launch/", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.StartLaunch(w, req)
	return w
}

func TestStartLaunchAccepted(t *testing.T) {
	h := newLaunchHandlerForTest(&stubMetaClient{release: make(chan struct{})})

	w := postLaunch(h, validDraftJSON)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202 got %d (%s)", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["launch_id"] == "" || resp["launch_id"] == nil {
		t.Fatalf("expected launch_id, got %v", resp)
	}
	if resp["state"] != string(models.LaunchStateRunning) {
		t.Fatalf("expected running state, got %v", resp)
	}
}

func TestStartLaunchInvalidBody(t *testing.T) {
	h := newLaunchHandlerForTest(&stubMetaClient{})

	w := postLaunch(h, `{"mode": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestStartLaunchRejectsUnknownMode(t *testing.T) {
	h := newLaunchHandlerForTest(&stubMetaClient{})

	body := strings.Replace(validDraftJSON, `"mode": "new"`, `"mode": "bulk"`, 1)
	w := postLaunch(h, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestStartLaunchServiceValidationMapsTo400(t *testing.T) {
	h := newLaunchHandlerForTest(&stubMetaClient{})

	// Structurally valid but a carousel needs at least 2 creatives.
	body := strings.Replace(validDraftJSON, `"creative_type": "single"`, `"creative_type": "carousel"`, 1)
	w := postLaunch(h, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "carousel") {
		t.Fatalf("expected carousel validation message, got %s", w.Body.String())
	}
}

func TestStartLaunchConflictWhileRunning(t *testing.T) {
	h := newLaunchHandlerForTest(&stubMetaClient{release: make(chan struct{})})

	if w := postLaunch(h, validDraftJSON); w.Code != http.StatusAccepted {
		t.Fatalf("first launch: expected 202 got %d", w.Code)
	}

	w := postLaunch(h, validDraftJSON)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "launch_in_progress") {
		t.Fatalf("expected launch_in_progress code, got %s", w.Body.String())
	}
}

func TestGetStatus(t *testing.T) {
	h := newLaunchHandlerForTest(&stubMetaClient{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/launch/status", nil)
	w := httptest.NewRecorder()
	h.GetStatus(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var status models.LaunchStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if status.State != models.LaunchStateIdle {
		t.Fatalf("expected idle state, got %s", status.State)
	}
}
