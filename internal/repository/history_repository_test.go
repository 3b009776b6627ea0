package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"adlaunch/internal/models"
)

func TestHistoryRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO launch_history`).
		WithArgs("h1", "camp-1", "adset-1", "Launch", 2, "PAUSED",
			[]byte(`[{"file_name":"one.jpg","ad_id":"ad-1","creative_id":"cr-1"},{"file_name":"two.jpg","ad_id":"ad-2","creative_id":"cr-2"}]`),
			sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewHistoryRepository(db)
	record := &models.HistoryRecord{
		ID:           "h1",
		CampaignID:   "camp-1",
		AdSetID:      "adset-1",
		CampaignName: "Launch",
		AdsCount:     2,
		Status:       "PAUSED",
		Results: []models.LaunchResultEntry{
			{FileName: "one.jpg", AdID: "ad-1", CreativeID: "cr-1"},
			{FileName: "two.jpg", AdID: "ad-2", CreativeID: "cr-2"},
		},
		CreatedAt: now,
	}
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestHistoryRepositoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, campaign_id, ad_set_id, campaign_name, ads_count, status, results, created_at\s+FROM launch_history\s+ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "campaign_id", "ad_set_id", "campaign_name", "ads_count", "status", "results", "created_at"}).
			AddRow("h1", "camp-1", "adset-1", "Launch", 1, "PAUSED", []byte(`[{"file_name":"one.jpg","ad_id":"ad-1","creative_id":"cr-1"}]`), now))

	repo := NewHistoryRepository(db)
	records, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if len(records[0].Results) != 1 || records[0].Results[0].AdID != "ad-1" {
		t.Fatalf("results not decoded: %+v", records[0])
	}
}

func TestHistoryRepositoryListWithLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM launch_history\s+ORDER BY created_at DESC\s+LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "campaign_id", "ad_set_id", "campaign_name", "ads_count", "status", "results", "created_at"}))

	repo := NewHistoryRepository(db)
	if _, err := repo.List(context.Background(), 10); err != nil {
		t.Fatalf("List: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
