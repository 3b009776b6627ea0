package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adlaunch/internal/middleware"
	"adlaunch/internal/models"
)

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), middleware.CtxUserID, "u1")
	return req.WithContext(ctx)
}

func TestGetSettings(t *testing.T) {
	repo := &stubSettingsRepo{settings: &models.Settings{
		UserID:      "u1",
		AccessToken: "tok",
		AdAccountID: "123",
		UTMTemplate: "utm_source=fb",
	}}
	h := NewSettingsHandler(repo, &stubMetaClient{})

	w := httptest.NewRecorder()
	h.GetSettings(w, authedRequest(http.MethodGet, "/api/v1/settings/", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var settings models.Settings
	if err := json.Unmarshal(w.Body.Bytes(), &settings); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if settings.AdAccountID != "123" || settings.UTMTemplate != "utm_source=fb" {
		t.Fatalf("unexpected settings %+v", settings)
	}
}

func TestUpdateSettingsMergesOnlyProvidedFields(t *testing.T) {
	repo := &stubSettingsRepo{settings: &models.Settings{
		UserID:      "u1",
		AccessToken: "old-token",
		AdAccountID: "123",
		UTMTemplate: "utm_source=fb",
	}}
	h := NewSettingsHandler(repo, &stubMetaClient{})

	w := httptest.NewRecorder()
	h.UpdateSettings(w, authedRequest(http.MethodPut, "/api/v1/settings/", `{"access_token":"new-token"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if repo.upserted == nil {
		t.Fatalf("expected an upsert")
	}
	if repo.upserted.AccessToken != "new-token" {
		t.Fatalf("access token not updated: %+v", repo.upserted)
	}
	if repo.upserted.AdAccountID != "123" || repo.upserted.UTMTemplate != "utm_source=fb" {
		t.Fatalf("absent fields must keep their values: %+v", repo.upserted)
	}
}

func TestUpdateSettingsInvalidBody(t *testing.T) {
	repo := &stubSettingsRepo{settings: &models.Settings{UserID: "u1"}}
	h := NewSettingsHandler(repo, &stubMetaClient{})

	w := httptest.NewRecorder()
	h.UpdateSettings(w, authedRequest(http.MethodPut, "/api/v1/settings/", `{"access_token": `))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if repo.upserted != nil {
		t.Fatalf("invalid body must not reach the repository")
	}
}

func TestTestConnectionNotConfigured(t *testing.T) {
	repo := &stubSettingsRepo{settings: &models.Settings{UserID: "u1"}}
	h := NewSettingsHandler(repo, &stubMetaClient{})

	w := httptest.NewRecorder()
	h.TestConnection(w, authedRequest(http.MethodPost, "/api/v1/settings/test", ""))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "not_configured") {
		t.Fatalf("expected not_configured code, got %s", w.Body.String())
	}
}

func TestTestConnectionSuccess(t *testing.T) {
	repo := &stubSettingsRepo{settings: &models.Settings{
		UserID:      "u1",
		AccessToken: "tok",
		AdAccountID: "123",
	}}
	meta := &stubMetaClient{testConnection: func(ctx context.Context, token, accountID string) (*models.AdAccount, error) {
		if token != "tok" || accountID != "123" {
			t.Errorf("unexpected credentials %q %q", token, accountID)
		}
		return &models.AdAccount{ID: "act_123", Name: "Main", AccountStatus: 1}, nil
	}}
	h := NewSettingsHandler(repo, meta)

	w := httptest.NewRecorder()
	h.TestConnection(w, authedRequest(http.MethodPost, "/api/v1/settings/test", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var account models.AdAccount
	if err := json.Unmarshal(w.Body.Bytes(), &account); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if account.Name != "Main" {
		t.Fatalf("unexpected account %+v", account)
	}
}

func TestTestConnectionFailureMapsToBadGateway(t *testing.T) {
	repo := &stubSettingsRepo{settings: &models.Settings{
		UserID:      "u1",
		AccessToken: "tok",
		AdAccountID: "123",
	}}
	meta := &stubMetaClient{testConnection: func(ctx context.Context, token, accountID string) (*models.AdAccount, error) {
		return nil, errors.New("Invalid OAuth access token.")
	}}
	h := NewSettingsHandler(repo, meta)

	w := httptest.NewRecorder()
	h.TestConnection(w, authedRequest(http.MethodPost, "/api/v1/settings/test", ""))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "connection_failed") {
		t.Fatalf("expected connection_failed code, got %s", w.Body.String())
	}
}
