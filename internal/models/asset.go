package models

import "time"

type AssetType string

const (
	AssetTypeImage AssetType = "image"
	AssetTypeVideo AssetType = "video"
)

// Asset is one creative file stored in the library (S3 object + row).
type Asset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        AssetType `json:"type"`
	ContentType string    `json:"content_type"`
	URL         string    `json:"url"`
	FilePath    string    `json:"-"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
