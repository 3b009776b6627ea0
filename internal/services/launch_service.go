package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
	"adlaunch/pkg/logger"
	"adlaunch/pkg/metrics"
)

// ErrLaunchInProgress is returned when a launch is requested while a
// previous one is still running. One launch at a time.
var ErrLaunchInProgress = errors.New("a launch is already in progress")

// ValidationError marks pre-flight failures so handlers can map them to
// a 400 instead of a 500.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErr(msg string) error {
	return &ValidationError{Msg: msg}
}

var imageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// LaunchService drives the create-campaign/upload/create-ad chain
// against the Graph API. A single launch runs at a time in a background
// goroutine; handlers poll Status for progress.
type LaunchService struct {
	meta    interfaces.MetaClient
	assets  interfaces.AssetRepository
	store   interfaces.AssetStore
	history interfaces.HistoryRepository
	log     *logger.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	running bool
	status  models.LaunchStatus
}

func NewLaunchService(
	meta interfaces.MetaClient,
	assets interfaces.AssetRepository,
	store interfaces.AssetStore,
	history interfaces.HistoryRepository,
	log *logger.Logger,
	m *metrics.Metrics,
) *LaunchService {
	return &LaunchService{
		meta:    meta,
		assets:  assets,
		store:   store,
		history: history,
		log:     log,
		metrics: m,
		status:  models.LaunchStatus{State: models.LaunchStateIdle},
	}
}

// Start validates the draft and kicks off the launch in the background.
// It returns the launch id immediately, or ErrLaunchInProgress when a
// launch is still running.
func (s *LaunchService) Start(draft models.Draft, settings models.Settings) (string, error) {
	if err := validateDraft(draft); err != nil {
		return "", err
	}
	if settings.AccessToken == "" || settings.AdAccountID == "" {
		return "", validationErr("access token and ad account must be configured")
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return "", ErrLaunchInProgress
	}
	launchID := uuid.New().String()
	s.running = true
	s.status = models.LaunchStatus{
		LaunchID: launchID,
		State:    models.LaunchStateRunning,
		Progress: models.LaunchProgress{Total: len(draft.Creatives)},
	}
	s.mu.Unlock()

	go s.run(context.Background(), launchID, draft, settings)

	return launchID, nil
}

// Status returns a snapshot of the most recent launch.
func (s *LaunchService) Status() models.LaunchStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.status
	snapshot.Results = append([]models.LaunchResultEntry(nil), s.status.Results...)
	snapshot.Warnings = append([]string(nil), s.status.Warnings...)
	return snapshot
}

func validateDraft(d models.Draft) error {
	if d.Mode == models.LaunchModeNew {
		if strings.TrimSpace(d.CampaignName) == "" {
			return validationErr("campaign name is required")
		}
		if strings.TrimSpace(d.AdSetName) == "" {
			return validationErr("ad set name is required")
		}
	} else {
		if d.ExistingCampaignID == "" {
			return validationErr("an existing campaign must be selected")
		}
		if d.ExistingAdSetID == "" {
			return validationErr("an existing ad set must be selected")
		}
	}
	if len(d.Creatives) == 0 {
		return validationErr("at least one creative is required")
	}
	if strings.TrimSpace(d.WebsiteURL) == "" {
		return validationErr("website URL is required")
	}
	if d.PageID == "" {
		return validationErr("a Facebook Page is required")
	}
	if d.CreativeType == models.CreativeModeCarousel && len(d.Creatives) < 2 {
		return validationErr("a carousel needs at least 2 images")
	}
	return nil
}

// centsString converts a decimal currency amount to a string of minor
// units. Empty input stays empty so the field is never sent.
func centsString(amount string) (string, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return "", nil
	}
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q", amount)
	}
	return strconv.FormatInt(int64(math.Round(value*100)), 10), nil
}

// bid amounts only apply to strategies that take a cap or target.
func strategyTakesBidAmount(strategy string) bool {
	switch strategy {
	case "BID_CAP", "COST_CAP", "LOWEST_COST_WITH_MIN_ROAS":
		return true
	}
	return false
}

func (s *LaunchService) setProgress(step string, completed, total int) {
	s.mu.Lock()
	s.status.Progress = models.LaunchProgress{Step: step, Completed: completed, Total: total}
	s.mu.Unlock()
	s.log.WithField("step", step).
		WithField("completed", completed).
		WithField("total", total).
		Info("launch progress")
}

func (s *LaunchService) addWarning(warning string) {
	s.mu.Lock()
	s.status.Warnings = append(s.status.Warnings, warning)
	s.mu.Unlock()
	s.log.Warn(warning)
}

func (s *LaunchService) appendResult(entry models.LaunchResultEntry) {
	s.mu.Lock()
	s.status.Results = append(s.status.Results, entry)
	s.mu.Unlock()
}

func (s *LaunchService) finish(launchID string, started time.Time, results []models.LaunchResultEntry, runErr error) {
	duration := time.Since(started)

	s.mu.Lock()
	s.running = false
	if runErr != nil {
		s.status.State = models.LaunchStateFailed
		s.status.Error = runErr.Error()
	} else {
		s.status.State = models.LaunchStateCompleted
	}
	s.mu.Unlock()

	outcome := "success"
	if runErr != nil {
		outcome = "failure"
		s.log.WithField("launch_id", launchID).Error("launch failed: " + runErr.Error())
	} else {
		s.log.WithField("launch_id", launchID).
			WithField("ads", len(results)).
			WithField("duration", duration.String()).
			Info("launch completed")
	}
	s.metrics.RecordLaunch(outcome, duration, len(results))
}

func (s *LaunchService) run(ctx context.Context, launchID string, draft models.Draft, settings models.Settings) {
	started := time.Now()
	s.metrics.LaunchesInProgress.Inc()
	defer s.metrics.LaunchesInProgress.Dec()

	results, err := s.execute(ctx, draft, settings)
	s.finish(launchID, started, results, err)
}

func (s *LaunchService) execute(ctx context.Context, draft models.Draft, settings models.Settings) ([]models.LaunchResultEntry, error) {
	total := len(draft.Creatives)
	token := settings.AccessToken
	account := settings.AdAccountID

	var campaignID, adSetID string

	if draft.Mode == models.LaunchModeNew {
		budgetCents, err := centsString(draft.DailyBudget)
		if err != nil {
			return nil, validationErr("daily budget: " + err.Error())
		}
		bidCents, err := centsString(draft.BidAmount)
		if err != nil {
			return nil, validationErr("bid amount: " + err.Error())
		}
		minSpendCents, err := centsString(draft.DailyMinSpend)
		if err != nil {
			return nil, validationErr("daily minimum spend: " + err.Error())
		}
		spendCapCents, err := centsString(draft.DailySpendCap)
		if err != nil {
			return nil, validationErr("daily spend cap: " + err.Error())
		}

		s.setProgress("Creating campaign...", 0, total)
		campaignID, err = s.meta.CreateCampaign(ctx, token, account, models.CampaignFields{
			Name:             draft.CampaignName,
			Objective:        draft.Objective,
			Status:           draft.AdStatus,
			BudgetType:       draft.BudgetType,
			DailyBudgetCents: budgetCents,
			BidStrategy:      draft.BidStrategy,
			BudgetSharing:    draft.BudgetSharing,
		})
		if err != nil {
			return nil, fmt.Errorf("create campaign: %w", err)
		}

		if bidCents != "" && !strategyTakesBidAmount(draft.BidStrategy) {
			bidCents = ""
		}
		if bidCents == "0" {
			bidCents = ""
		}
		if minSpendCents == "0" {
			minSpendCents = ""
		}
		if spendCapCents == "0" {
			spendCapCents = ""
		}

		attribution := ""
		if draft.PixelID != "" && draft.AttributionSetting != "" {
			if KnownAttributionSetting(draft.AttributionSetting) {
				attribution = draft.AttributionSetting
			} else {
				s.addWarning(fmt.Sprintf("unknown attribution setting %q, skipped", draft.AttributionSetting))
			}
		}

		var beneficiary, payor string
		if RequiresDSA(draft.Targeting.Countries) {
			beneficiary = firstNonEmpty(draft.DSABeneficiary, draft.PageName, draft.PageID)
			payor = firstNonEmpty(draft.DSAPayor, draft.PageName, draft.PageID)
		}

		conversionEvent := ""
		if draft.PixelID != "" {
			conversionEvent = draft.ConversionEvent
		}

		s.setProgress("Creating ad set...", 0, total)
		adSetID, err = s.meta.CreateAdSet(ctx, token, account, models.AdSetFields{
			Name:               draft.AdSetName,
			CampaignID:         campaignID,
			DailyBudgetCents:   budgetCents,
			OptimizationGoal:   draft.OptimizationGoal,
			BillingEvent:       "IMPRESSIONS",
			Targeting:          draft.Targeting,
			Status:             draft.AdStatus,
			StartTime:          draft.StartTime,
			BudgetType:         draft.BudgetType,
			BidStrategy:        draft.BidStrategy,
			BudgetSharing:      draft.BudgetSharing,
			PixelID:            draft.PixelID,
			ConversionEvent:    conversionEvent,
			BidAmountCents:     bidCents,
			AttributionSetting: attribution,
			DailyMinSpendCents: minSpendCents,
			DailySpendCapCents: spendCapCents,
			DSABeneficiary:     beneficiary,
			DSAPayor:           payor,
		})
		if err != nil {
			return nil, fmt.Errorf("create ad set: %w", err)
		}
	} else {
		campaignID = draft.ExistingCampaignID
		adSetID = draft.ExistingAdSetID
	}

	var results []models.LaunchResultEntry
	var err error
	if draft.CreativeType == models.CreativeModeCarousel {
		results, err = s.launchCarousel(ctx, draft, settings, adSetID)
	} else {
		results, err = s.launchSingles(ctx, draft, settings, adSetID)
	}
	if err != nil {
		return results, err
	}

	s.setProgress("All done!", total, total)

	campaignName := draft.CampaignName
	if campaignName == "" {
		campaignName = campaignID
	}
	record := &models.HistoryRecord{
		ID:           uuid.New().String(),
		CampaignID:   campaignID,
		AdSetID:      adSetID,
		CampaignName: campaignName,
		AdsCount:     len(results),
		Status:       orDefault(draft.AdStatus, "PAUSED"),
		Results:      results,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.history.Create(ctx, record); err != nil {
		// The ads exist remotely; a bookkeeping failure must not fail
		// the launch.
		s.addWarning("failed to record launch history: " + err.Error())
	}

	return results, nil
}

// launchSingles runs the per-creative upload/creative/ad chain. The
// first failure aborts the remaining creatives; already-created ads are
// left in place.
func (s *LaunchService) launchSingles(ctx context.Context, draft models.Draft, settings models.Settings, adSetID string) ([]models.LaunchResultEntry, error) {
	total := len(draft.Creatives)
	token := settings.AccessToken
	account := settings.AdAccountID

	var results []models.LaunchResultEntry
	for i, creative := range draft.Creatives {
		asset, err := s.assets.GetByID(ctx, creative.AssetID)
		if err != nil {
			return results, fmt.Errorf("asset %s: %w", creative.AssetID, err)
		}
		resolved := ResolveCopy(creative, draft.GlobalCopy, draft.WebsiteURL, settings.UTMTemplate)

		s.setProgress(fmt.Sprintf("[%d/%d] Uploading %s...", i+1, total, asset.Name), i+1, total)

		body, err := s.store.Download(ctx, asset.FilePath)
		if err != nil {
			return results, fmt.Errorf("fetch asset %s: %w", asset.Name, err)
		}

		var creativeID string
		if imageContentTypes[asset.ContentType] {
			upload, uploadErr := s.meta.UploadImage(ctx, token, account, asset.Name, body)
			body.Close()
			if uploadErr != nil {
				return results, fmt.Errorf("upload image %s: %w", asset.Name, uploadErr)
			}
			creativeID, err = s.meta.CreateImageCreative(ctx, token, account, models.ImageCreativeFields{
				Name:               asset.Name,
				PageID:             draft.PageID,
				ImageHash:          upload.Hash,
				Message:            resolved.PrimaryText,
				Headline:           resolved.Headline,
				Description:        resolved.Description,
				LinkURL:            resolved.LinkURL,
				CTA:                resolved.CTA,
				InstagramAccountID: draft.InstagramAccountID,
				DegreesOfFreedom:   CompileEnhancementSpec(settings.Enhancements, "image"),
			})
		} else {
			videoID, uploadErr := s.meta.UploadVideo(ctx, token, account, asset.Name, body)
			body.Close()
			if uploadErr != nil {
				return results, fmt.Errorf("upload video %s: %w", asset.Name, uploadErr)
			}
			creativeID, err = s.meta.CreateVideoCreative(ctx, token, account, models.VideoCreativeFields{
				Name:               asset.Name,
				PageID:             draft.PageID,
				VideoID:            videoID,
				Message:            resolved.PrimaryText,
				Headline:           resolved.Headline,
				Description:        resolved.Description,
				LinkURL:            resolved.LinkURL,
				CTA:                resolved.CTA,
				InstagramAccountID: draft.InstagramAccountID,
				DegreesOfFreedom:   CompileEnhancementSpec(settings.Enhancements, "video"),
			})
		}
		if err != nil {
			return results, fmt.Errorf("create creative for %s: %w", asset.Name, err)
		}

		adID, err := s.meta.CreateAd(ctx, token, account, models.AdFields{
			Name:       "Ad - " + asset.Name,
			AdSetID:    adSetID,
			CreativeID: creativeID,
			Status:     draft.AdStatus,
		})
		if err != nil {
			return results, fmt.Errorf("create ad for %s: %w", asset.Name, err)
		}

		entry := models.LaunchResultEntry{FileName: asset.Name, AdID: adID, CreativeID: creativeID}
		results = append(results, entry)
		s.appendResult(entry)
	}
	return results, nil
}

// launchCarousel uploads every image, then creates one creative with
// child attachments and a single ad.
func (s *LaunchService) launchCarousel(ctx context.Context, draft models.Draft, settings models.Settings, adSetID string) ([]models.LaunchResultEntry, error) {
	total := len(draft.Creatives)
	token := settings.AccessToken
	account := settings.AdAccountID

	s.setProgress("Uploading carousel images...", 0, total)

	cards := make([]models.CarouselCard, 0, total)
	for i, creative := range draft.Creatives {
		asset, err := s.assets.GetByID(ctx, creative.AssetID)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", creative.AssetID, err)
		}
		if !imageContentTypes[asset.ContentType] {
			return nil, validationErr(fmt.Sprintf("carousel cards must be images, %s is %s", asset.Name, asset.ContentType))
		}
		resolved := ResolveCopy(creative, draft.GlobalCopy, draft.WebsiteURL, settings.UTMTemplate)

		s.setProgress(fmt.Sprintf("[%d/%d] Uploading %s...", i+1, total, asset.Name), i+1, total)

		body, err := s.store.Download(ctx, asset.FilePath)
		if err != nil {
			return nil, fmt.Errorf("fetch asset %s: %w", asset.Name, err)
		}
		upload, err := s.meta.UploadImage(ctx, token, account, asset.Name, body)
		body.Close()
		if err != nil {
			return nil, fmt.Errorf("upload image %s: %w", asset.Name, err)
		}

		cards = append(cards, models.CarouselCard{
			ImageHash:   upload.Hash,
			Headline:    resolved.Headline,
			Description: resolved.Description,
			LinkURL:     resolved.LinkURL,
			CTA:         resolved.CTA,
		})
	}

	s.setProgress("Creating carousel creative...", total, total)

	creativeID, err := s.meta.CreateCarouselCreative(ctx, token, account, models.CarouselCreativeFields{
		Name:               "Carousel - " + orDefault(draft.CampaignName, "Ad"),
		PageID:             draft.PageID,
		Cards:              cards,
		Message:            draft.GlobalCopy.PrimaryText,
		LinkURL:            AppendTracking(draft.WebsiteURL, settings.UTMTemplate),
		InstagramAccountID: draft.InstagramAccountID,
		DegreesOfFreedom:   CompileEnhancementSpec(settings.Enhancements, "carousel"),
	})
	if err != nil {
		return nil, fmt.Errorf("create carousel creative: %w", err)
	}

	adID, err := s.meta.CreateAd(ctx, token, account, models.AdFields{
		Name:       "Ad - Carousel",
		AdSetID:    adSetID,
		CreativeID: creativeID,
		Status:     draft.AdStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("create carousel ad: %w", err)
	}

	entry := models.LaunchResultEntry{FileName: "Carousel", AdID: adID, CreativeID: creativeID}
	s.appendResult(entry)
	return []models.LaunchResultEntry{entry}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
