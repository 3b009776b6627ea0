package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"adlaunch/internal/models"
)

func TestAssetRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	uploaded := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, name, type, content_type, url, file_path, size, uploaded_at\s+FROM assets\s+WHERE id = \$1`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "content_type", "url", "file_path", "size", "uploaded_at"}).
			AddRow("a1", "one.jpg", "image", "image/jpeg", "https://cdn/one.jpg", "assets/a1.jpg", int64(1024), uploaded))

	repo := NewAssetRepository(db)
	asset, err := repo.GetByID(context.Background(), "a1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if asset.Name != "one.jpg" || asset.Type != models.AssetTypeImage || asset.FilePath != "assets/a1.jpg" {
		t.Fatalf("unexpected asset %+v", asset)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAssetRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, type, content_type, url, file_path, size, uploaded_at\s+FROM assets`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "content_type", "url", "file_path", "size", "uploaded_at"}))

	repo := NewAssetRepository(db)
	if _, err := repo.GetByID(context.Background(), "missing"); err == nil {
		t.Fatalf("expected not-found error")
	}
}

func TestAssetRepositoryDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM assets WHERE id = \$1`).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewAssetRepository(db)
	if err := repo.Delete(context.Background(), "a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAssetRepositoryDeleteMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM assets WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewAssetRepository(db)
	if err := repo.Delete(context.Background(), "missing"); err == nil {
		t.Fatalf("expected not-found error")
	}
}

func TestAssetRepositoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	uploaded := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, name, type, content_type, url, file_path, size, uploaded_at\s+FROM assets\s+ORDER BY uploaded_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "content_type", "url", "file_path", "size", "uploaded_at"}).
			AddRow("a2", "clip.mp4", "video", "video/mp4", "https://cdn/clip.mp4", "assets/a2.mp4", int64(2048), uploaded).
			AddRow("a1", "one.jpg", "image", "image/jpeg", "https://cdn/one.jpg", "assets/a1.jpg", int64(1024), uploaded.Add(-time.Hour)))

	repo := NewAssetRepository(db)
	assets, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(assets) != 2 || assets[0].ID != "a2" {
		t.Fatalf("unexpected assets %+v", assets)
	}
}
