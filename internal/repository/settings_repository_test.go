package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"adlaunch/internal/models"
)

func TestSettingsRepositoryGetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT user_id, access_token, ad_account_id, utm_template, enhancements, updated_at\s+FROM settings\s+WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "access_token", "ad_account_id", "utm_template", "enhancements", "updated_at"}).
			AddRow("u1", "tok", "123", "utm_source=fb", []byte(`{"image":{"visual_touchups":true}}`), time.Now().UTC()))

	repo := NewSettingsRepository(db)
	settings, err := repo.GetByUserID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if settings.AccessToken != "tok" || settings.AdAccountID != "123" {
		t.Fatalf("unexpected settings %+v", settings)
	}
	if !settings.Enhancements["image"]["visual_touchups"] {
		t.Fatalf("enhancements not decoded: %+v", settings.Enhancements)
	}
}

func TestSettingsRepositoryGetByUserIDNoRowReturnsDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT user_id, access_token, ad_account_id, utm_template, enhancements, updated_at\s+FROM settings`).
		WithArgs("new-user").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "access_token", "ad_account_id", "utm_template", "enhancements", "updated_at"}))

	repo := NewSettingsRepository(db)
	settings, err := repo.GetByUserID(context.Background(), "new-user")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if settings.UserID != "new-user" || settings.AccessToken != "" {
		t.Fatalf("expected empty defaults, got %+v", settings)
	}
	if settings.Enhancements == nil {
		t.Fatalf("enhancements must never be nil")
	}
}

func TestSettingsRepositoryUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO settings`).
		WithArgs("u1", "tok", "123", "utm_source=fb", []byte(`{"video":{"enhance_cta":true}}`), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	repo := NewSettingsRepository(db)
	settings := &models.Settings{
		UserID:      "u1",
		AccessToken: "tok",
		AdAccountID: "123",
		UTMTemplate: "utm_source=fb",
		Enhancements: models.EnhancementMatrix{
			"video": {"enhance_cta": true},
		},
	}
	if err := repo.Upsert(context.Background(), settings); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !settings.UpdatedAt.Equal(now) {
		t.Fatalf("expected updated_at from the database, got %v", settings.UpdatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
