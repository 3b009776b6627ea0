package interfaces

import (
	"context"

	"adlaunch/internal/models"
)

type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Settings, error)
	Upsert(ctx context.Context, settings *models.Settings) error
}
