package repository

import (
	"context"
	"database/sql"
	"fmt"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
)

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) interfaces.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) error {
	query := `
		INSERT INTO assets (id, name, type, content_type, url, file_path, size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING uploaded_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		asset.ID,
		asset.Name,
		asset.Type,
		asset.ContentType,
		asset.URL,
		asset.FilePath,
		asset.Size,
		asset.UploadedAt,
	).Scan(&asset.UploadedAt)

	return err
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	query := `
		SELECT id, name, type, content_type, url, file_path, size, uploaded_at
		FROM assets
		WHERE id = $1
	`

	var asset models.Asset
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&asset.ID,
		&asset.Name,
		&asset.Type,
		&asset.ContentType,
		&asset.URL,
		&asset.FilePath,
		&asset.Size,
		&asset.UploadedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("asset not found")
		}
		return nil, err
	}

	return &asset, nil
}

func (r *assetRepository) List(ctx context.Context) ([]models.Asset, error) {
	query := `
		SELECT id, name, type, content_type, url, file_path, size, uploaded_at
		FROM assets
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var asset models.Asset
		if err := rows.Scan(
			&asset.ID,
			&asset.Name,
			&asset.Type,
			&asset.ContentType,
			&asset.URL,
			&asset.FilePath,
			&asset.Size,
			&asset.UploadedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("asset not found")
	}

	return nil
}
