package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adlaunch/internal/models"
)

func TestListHistory(t *testing.T) {
	repo := &stubHistoryRepo{records: []models.HistoryRecord{
		{
			ID:           "h1",
			CampaignID:   "camp-1",
			CampaignName: "Launch",
			AdsCount:     3,
			Status:       "PAUSED",
			CreatedAt:    time.Now().UTC(),
		},
	}}
	h := NewHistoryHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=10", nil)
	w := httptest.NewRecorder()
	h.ListHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var records []models.HistoryRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(records) != 1 || records[0].CampaignName != "Launch" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestListHistoryEmptyIsArray(t *testing.T) {
	h := NewHistoryHandler(&stubHistoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	w := httptest.NewRecorder()
	h.ListHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestListHistoryRepositoryFailure(t *testing.T) {
	h := NewHistoryHandler(&stubHistoryRepo{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	w := httptest.NewRecorder()
	h.ListHistory(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", w.Code)
	}
}
