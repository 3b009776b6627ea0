package interfaces

import (
	"context"

	"adlaunch/internal/models"
)

type HistoryRepository interface {
	Create(ctx context.Context, record *models.HistoryRecord) error
	List(ctx context.Context, limit int) ([]models.HistoryRecord, error)
}
