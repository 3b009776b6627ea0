package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) interfaces.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByUserID(ctx context.Context, userID string) (*models.Settings, error) {
	query := `
		SELECT user_id, access_token, ad_account_id, utm_template, enhancements, updated_at
		FROM settings
		WHERE user_id = $1
	`

	var settings models.Settings
	var enhancementsJSON []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.AccessToken,
		&settings.AdAccountID,
		&settings.UTMTemplate,
		&enhancementsJSON,
		&settings.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			// A user without a row gets empty defaults.
			return &models.Settings{UserID: userID, Enhancements: models.EnhancementMatrix{}}, nil
		}
		return nil, err
	}

	if len(enhancementsJSON) > 0 {
		if err := json.Unmarshal(enhancementsJSON, &settings.Enhancements); err != nil {
			return nil, fmt.Errorf("decode enhancements: %w", err)
		}
	}
	if settings.Enhancements == nil {
		settings.Enhancements = models.EnhancementMatrix{}
	}

	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *models.Settings) error {
	enhancementsJSON, err := json.Marshal(settings.Enhancements)
	if err != nil {
		return fmt.Errorf("encode enhancements: %w", err)
	}

	query := `
		INSERT INTO settings (user_id, access_token, ad_account_id, utm_template, enhancements, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			ad_account_id = EXCLUDED.ad_account_id,
			utm_template = EXCLUDED.utm_template,
			enhancements = EXCLUDED.enhancements,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`

	settings.UpdatedAt = time.Now().UTC()
	return r.db.QueryRowContext(
		ctx,
		query,
		settings.UserID,
		settings.AccessToken,
		settings.AdAccountID,
		settings.UTMTemplate,
		enhancementsJSON,
		settings.UpdatedAt,
	).Scan(&settings.UpdatedAt)
}
