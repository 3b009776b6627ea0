package interfaces

import (
	"context"
	"io"

	"adlaunch/internal/models"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	List(ctx context.Context) ([]models.Asset, error)
	Delete(ctx context.Context, id string) error
}

// AssetStore is the object storage behind the asset library. Keys are
// the asset FilePath values persisted alongside the rows.
type AssetStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (url string, err error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
