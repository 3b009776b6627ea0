package interfaces

import (
	"context"
	"io"

	"adlaunch/internal/models"
)

// MetaClient is the Graph API surface the launcher depends on. All
// calls are request/response with bearer-token auth; implementations
// own transport timeouts, the orchestrator imposes none of its own.
type MetaClient interface {
	TestConnection(ctx context.Context, token, accountID string) (*models.AdAccount, error)
	GetAdAccounts(ctx context.Context, token string) ([]models.AdAccount, error)
	GetPages(ctx context.Context, token, accountID string) ([]models.Page, error)
	GetInstagramAccounts(ctx context.Context, token, pageID string) ([]models.InstagramAccount, error)
	GetPixels(ctx context.Context, token, accountID string) ([]models.Pixel, error)
	GetCampaigns(ctx context.Context, token, accountID string) ([]models.CampaignSummary, error)
	GetAdSets(ctx context.Context, token, campaignID string) ([]models.AdSetSummary, error)
	GetAdCreatives(ctx context.Context, token, accountID string) ([]models.CreativeSummary, error)
	GetInsights(ctx context.Context, token, accountID string, q models.InsightsQuery) ([]models.InsightRow, error)
	SearchRegions(ctx context.Context, token, query string) ([]models.Region, error)

	CreateCampaign(ctx context.Context, token, accountID string, fields models.CampaignFields) (string, error)
	CreateAdSet(ctx context.Context, token, accountID string, fields models.AdSetFields) (string, error)
	UploadImage(ctx context.Context, token, accountID, fileName string, body io.Reader) (*models.ImageUpload, error)
	UploadVideo(ctx context.Context, token, accountID, fileName string, body io.Reader) (string, error)
	CreateImageCreative(ctx context.Context, token, accountID string, fields models.ImageCreativeFields) (string, error)
	CreateVideoCreative(ctx context.Context, token, accountID string, fields models.VideoCreativeFields) (string, error)
	CreateCarouselCreative(ctx context.Context, token, accountID string, fields models.CarouselCreativeFields) (string, error)
	CreateAd(ctx context.Context, token, accountID string, fields models.AdFields) (string, error)
}
