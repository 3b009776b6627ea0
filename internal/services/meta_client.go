package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
	"adlaunch/pkg/logger"
	"adlaunch/pkg/metrics"
)

// GraphError is the decoded Graph API error envelope. Error() surfaces
// the most detailed message available.
type GraphError struct {
	Message     string `json:"message"`
	UserMessage string `json:"error_user_msg"`
	Type        string `json:"type"`
	Code        int    `json:"code"`
	Subcode     int    `json:"error_subcode"`
	HTTPStatus  int    `json:"-"`
}

func (e *GraphError) Error() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Error %d", e.Code)
}

type graphErrorEnvelope struct {
	Error *GraphError `json:"error"`
}

// GraphClient talks to the Meta Marketing (Graph) API. All requests are
// bearer-token authenticated and rate limited client-side.
type GraphClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *logger.Logger
	metrics    *metrics.Metrics
}

var _ interfaces.MetaClient = (*GraphClient)(nil)

// NewGraphClient builds a client against the given API base, for
// example https://graph.facebook.com/v21.0.
func NewGraphClient(baseURL string, timeout time.Duration, rps float64, log *logger.Logger, m *metrics.Metrics) *GraphClient {
	return &GraphClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		log:     log,
		metrics: m,
	}
}

func actID(accountID string) string {
	return "act_" + accountID
}

func authHeader(token string) string {
	return "Bearer " + token
}

// do executes the request, records metrics and decodes either the JSON
// body into out or the Graph error envelope into a *GraphError.
func (c *GraphClient) do(req *http.Request, token, endpoint string, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req.Header.Set("Authorization", authHeader(token))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.metrics.RecordGraphCall(endpoint, "error", duration)
		c.metrics.RecordGraphFailure(endpoint)
		return fmt.Errorf("graph request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.metrics.RecordGraphCall(endpoint, fmt.Sprintf("%d", resp.StatusCode), duration)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordGraphFailure(endpoint)
		return fmt.Errorf("graph response %s: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.RecordGraphFailure(endpoint)
		var envelope graphErrorEnvelope
		if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil && envelope.Error != nil {
			envelope.Error.HTTPStatus = resp.StatusCode
			c.log.WithField("endpoint", endpoint).
				WithField("status", resp.StatusCode).
				WithField("code", envelope.Error.Code).
				Warn(envelope.Error.Error())
			return envelope.Error
		}
		return &GraphError{Message: fmt.Sprintf("unexpected status %d", resp.StatusCode), HTTPStatus: resp.StatusCode}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
	}
	return nil
}

func (c *GraphClient) getJSON(ctx context.Context, token, path, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}
	return c.do(req, token, endpoint, out)
}

func (c *GraphClient) postForm(ctx context.Context, token, path, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, token, endpoint, out)
}

type dataEnvelope[T any] struct {
	Data []T `json:"data"`
}

// createResponse is the common shape of entity-creation responses.
type createResponse struct {
	ID string `json:"id"`
}

func (c *GraphClient) TestConnection(ctx context.Context, token, accountID string) (*models.AdAccount, error) {
	var account models.AdAccount
	path := fmt.Sprintf("/%s?fields=name,account_status", actID(accountID))
	if err := c.getJSON(ctx, token, path, "account.get", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *GraphClient) GetAdAccounts(ctx context.Context, token string) ([]models.AdAccount, error) {
	var envelope dataEnvelope[models.AdAccount]
	if err := c.getJSON(ctx, token, "/me/adaccounts?fields=name,account_status,id&limit=100", "adaccounts.list", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// pageResult mirrors the page fields returned by the page-listing
// endpoints, with the nested picture shape flattened afterwards.
type pageResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture *struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// GetPages aggregates personal pages, pages promotable by the ad
// account and business-manager owned/client pages, deduplicated by id.
// Individual source failures are logged and skipped.
func (c *GraphClient) GetPages(ctx context.Context, token, accountID string) ([]models.Page, error) {
	var pages []models.Page
	seen := make(map[string]struct{})

	add := func(source string, results []pageResult) {
		added := 0
		for _, p := range results {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			page := models.Page{ID: p.ID, Name: p.Name}
			if p.Picture != nil {
				page.PictureURL = p.Picture.Data.URL
			}
			pages = append(pages, page)
			added++
		}
		c.log.WithField("source", source).
			WithField("found", len(results)).
			WithField("added", added).
			Debug("page source merged")
	}

	fetch := func(path, source string) {
		var envelope dataEnvelope[pageResult]
		if err := c.getJSON(ctx, token, path, "pages.list", &envelope); err != nil {
			c.log.WithField("source", source).Warn("page source failed: " + err.Error())
			return
		}
		add(source, envelope.Data)
	}

	fetch("/me/accounts?fields=name,id,access_token,picture{url}&limit=100", "me/accounts")

	if accountID != "" {
		fetch(fmt.Sprintf("/%s/promote_pages?fields=name,id,picture{url}&limit=100", actID(accountID)), "promote_pages")
	}

	var businesses dataEnvelope[struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}]
	if err := c.getJSON(ctx, token, "/me/businesses?fields=id,name&limit=10", "businesses.list", &businesses); err != nil {
		c.log.Warn("business listing failed: " + err.Error())
	} else {
		for _, biz := range businesses.Data {
			fetch(fmt.Sprintf("/%s/owned_pages?fields=name,id,picture{url}&limit=100", biz.ID), "owned_pages "+biz.ID)
			fetch(fmt.Sprintf("/%s/client_pages?fields=name,id,picture{url}&limit=100", biz.ID), "client_pages "+biz.ID)
		}
	}

	c.log.WithField("total", len(pages)).Debug("pages aggregated")
	return pages, nil
}

// GetInstagramAccounts merges the business account linked to the page
// with any connected legacy accounts, deduplicated by id.
func (c *GraphClient) GetInstagramAccounts(ctx context.Context, token, pageID string) ([]models.InstagramAccount, error) {
	var accounts []models.InstagramAccount
	seen := make(map[string]struct{})

	var linked struct {
		InstagramBusinessAccount *models.InstagramAccount `json:"instagram_business_account"`
	}
	path := fmt.Sprintf("/%s?fields=instagram_business_account{id,username,profile_picture_url}", pageID)
	if err := c.getJSON(ctx, token, path, "instagram.business", &linked); err != nil {
		c.log.WithField("page_id", pageID).Warn("instagram business account lookup failed: " + err.Error())
	} else if linked.InstagramBusinessAccount != nil {
		accounts = append(accounts, *linked.InstagramBusinessAccount)
		seen[linked.InstagramBusinessAccount.ID] = struct{}{}
	}

	var connected dataEnvelope[models.InstagramAccount]
	path = fmt.Sprintf("/%s/instagram_accounts?fields=id,username,profile_pic", pageID)
	if err := c.getJSON(ctx, token, path, "instagram.connected", &connected); err != nil {
		c.log.WithField("page_id", pageID).Warn("connected instagram accounts lookup failed: " + err.Error())
	} else {
		for _, ig := range connected.Data {
			if _, dup := seen[ig.ID]; dup {
				continue
			}
			seen[ig.ID] = struct{}{}
			accounts = append(accounts, ig)
		}
	}

	return accounts, nil
}

func (c *GraphClient) GetPixels(ctx context.Context, token, accountID string) ([]models.Pixel, error) {
	var envelope dataEnvelope[models.Pixel]
	path := fmt.Sprintf("/%s/adspixels?fields=name,id", actID(accountID))
	if err := c.getJSON(ctx, token, path, "pixels.list", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *GraphClient) GetCampaigns(ctx context.Context, token, accountID string) ([]models.CampaignSummary, error) {
	var envelope dataEnvelope[models.CampaignSummary]
	path := fmt.Sprintf("/%s/campaigns?fields=name,status,objective&limit=100", actID(accountID))
	if err := c.getJSON(ctx, token, path, "campaigns.list", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *GraphClient) GetAdSets(ctx context.Context, token, campaignID string) ([]models.AdSetSummary, error) {
	var envelope dataEnvelope[models.AdSetSummary]
	path := fmt.Sprintf("/%s/adsets?fields=name,status,daily_budget,optimization_goal", campaignID)
	if err := c.getJSON(ctx, token, path, "adsets.list", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *GraphClient) GetAdCreatives(ctx context.Context, token, accountID string) ([]models.CreativeSummary, error) {
	var envelope dataEnvelope[models.CreativeSummary]
	path := fmt.Sprintf("/%s/adcreatives?fields=name,thumbnail_url,status,object_story_spec&limit=50", actID(accountID))
	if err := c.getJSON(ctx, token, path, "adcreatives.list", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *GraphClient) GetInsights(ctx context.Context, token, accountID string, q models.InsightsQuery) ([]models.InsightRow, error) {
	fields := strings.Join([]string{
		"campaign_name", "adset_name", "ad_name",
		"impressions", "clicks", "spend", "cpc", "cpm", "ctr",
		"actions", "reach", "frequency",
	}, ",")

	params := url.Values{}
	params.Set("fields", fields)
	params.Set("date_preset", q.DatePreset)
	if q.DatePreset == "" {
		params.Set("date_preset", "last_7d")
	}
	params.Set("level", q.Level)
	if q.Level == "" {
		params.Set("level", "campaign")
	}
	params.Set("limit", "500")

	var envelope dataEnvelope[models.InsightRow]
	path := fmt.Sprintf("/%s/insights?%s", actID(accountID), params.Encode())
	if err := c.getJSON(ctx, token, path, "insights.get", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *GraphClient) SearchRegions(ctx context.Context, token, query string) ([]models.Region, error) {
	var envelope dataEnvelope[models.Region]
	path := "/search?type=adgeolocation&q=" + url.QueryEscape(query) + "&location_types=region"
	if err := c.getJSON(ctx, token, path, "regions.search", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *GraphClient) CreateCampaign(ctx context.Context, token, accountID string, fields models.CampaignFields) (string, error) {
	form := url.Values{}
	form.Set("name", fields.Name)
	form.Set("objective", fields.Objective)
	form.Set("status", orDefault(fields.Status, "PAUSED"))
	form.Set("special_ad_categories", "[]")

	// bid_strategy on campaign: always for CBO, and for ABO when budget
	// sharing is enabled.
	if fields.BidStrategy != "" && (fields.BudgetType == models.BudgetTypeCBO || fields.BudgetSharing) {
		form.Set("bid_strategy", fields.BidStrategy)
	}
	if fields.BudgetType == models.BudgetTypeCBO && fields.DailyBudgetCents != "" {
		form.Set("daily_budget", fields.DailyBudgetCents)
	}
	if fields.BudgetType != models.BudgetTypeCBO {
		form.Set("is_adset_budget_sharing_enabled", boolString(fields.BudgetSharing))
	}

	c.log.WithField("params", form.Encode()).Debug("creating campaign")

	var resp createResponse
	path := fmt.Sprintf("/%s/campaigns", actID(accountID))
	if err := c.postForm(ctx, token, path, "campaigns.create", form, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// attributionSpec resolves a named attribution window to its
// event-window pairs. Unknown names return ok=false and nothing is
// sent.
func attributionSpec(setting string) (spec []map[string]any, ok bool) {
	switch setting {
	case "7d_click_1d_view":
		return []map[string]any{
			{"event_type": "CLICK_THROUGH", "window_days": 7},
			{"event_type": "VIEW_THROUGH", "window_days": 1},
		}, true
	case "1d_click":
		return []map[string]any{{"event_type": "CLICK_THROUGH", "window_days": 1}}, true
	case "7d_click":
		return []map[string]any{{"event_type": "CLICK_THROUGH", "window_days": 7}}, true
	case "1d_click_1d_view":
		return []map[string]any{
			{"event_type": "CLICK_THROUGH", "window_days": 1},
			{"event_type": "VIEW_THROUGH", "window_days": 1},
		}, true
	}
	return nil, false
}

// KnownAttributionSetting reports whether the named attribution window
// maps to a Graph attribution spec.
func KnownAttributionSetting(setting string) bool {
	_, ok := attributionSpec(setting)
	return ok
}

func buildTargeting(t models.Targeting) map[string]any {
	countries := t.Countries
	if len(countries) == 0 {
		countries = []string{"IT"}
	}

	targeting := map[string]any{
		"geo_locations": map[string]any{"countries": countries},
		"age_min":       intOrDefault(t.AgeMin, 18),
		"age_max":       intOrDefault(t.AgeMax, 65),
	}

	excluded := map[string]any{}
	if len(t.ExcludedCountries) > 0 {
		excluded["countries"] = t.ExcludedCountries
	}
	if len(t.ExcludedRegions) > 0 {
		regions := make([]map[string]string, 0, len(t.ExcludedRegions))
		for _, r := range t.ExcludedRegions {
			regions = append(regions, map[string]string{"key": r.Key})
		}
		excluded["regions"] = regions
	}
	if len(excluded) > 0 {
		targeting["excluded_geo_locations"] = excluded
	}

	switch t.Gender {
	case "male":
		targeting["genders"] = []int{1}
	case "female":
		targeting["genders"] = []int{2}
	}

	return targeting
}

func (c *GraphClient) CreateAdSet(ctx context.Context, token, accountID string, fields models.AdSetFields) (string, error) {
	targetingJSON, err := json.Marshal(buildTargeting(fields.Targeting))
	if err != nil {
		return "", fmt.Errorf("encode targeting: %w", err)
	}

	form := url.Values{}
	form.Set("name", fields.Name)
	form.Set("campaign_id", fields.CampaignID)
	form.Set("optimization_goal", orDefault(fields.OptimizationGoal, "LINK_CLICKS"))
	form.Set("billing_event", orDefault(fields.BillingEvent, "IMPRESSIONS"))
	form.Set("targeting", string(targetingJSON))
	form.Set("status", orDefault(fields.Status, "PAUSED"))
	form.Set("is_dynamic_creative", "false")
	form.Set("start_time", orDefault(fields.StartTime, time.Now().UTC().Format(time.RFC3339)))

	// For ABO the bid strategy and budget live on the ad set.
	if fields.BidStrategy != "" && fields.BudgetType != models.BudgetTypeCBO {
		form.Set("bid_strategy", fields.BidStrategy)
	}
	if fields.BudgetType != models.BudgetTypeCBO && fields.DailyBudgetCents != "" {
		form.Set("daily_budget", fields.DailyBudgetCents)
	}
	if fields.PixelID != "" {
		promoted := map[string]string{"pixel_id": fields.PixelID}
		if fields.ConversionEvent != "" {
			promoted["custom_event_type"] = fields.ConversionEvent
		}
		promotedJSON, err := json.Marshal(promoted)
		if err != nil {
			return "", fmt.Errorf("encode promoted object: %w", err)
		}
		form.Set("promoted_object", string(promotedJSON))
	}
	if fields.BidAmountCents != "" {
		form.Set("bid_amount", fields.BidAmountCents)
	}
	if fields.AttributionSetting != "" && fields.PixelID != "" {
		if spec, ok := attributionSpec(fields.AttributionSetting); ok {
			specJSON, err := json.Marshal(spec)
			if err != nil {
				return "", fmt.Errorf("encode attribution spec: %w", err)
			}
			form.Set("attribution_spec", string(specJSON))
		}
	}
	if fields.DSABeneficiary != "" {
		form.Set("dsa_beneficiary", fields.DSABeneficiary)
	}
	if fields.DSAPayor != "" {
		form.Set("dsa_payor", fields.DSAPayor)
	}
	if fields.DailyMinSpendCents != "" {
		form.Set("daily_min_spend_target", fields.DailyMinSpendCents)
	}
	if fields.DailySpendCapCents != "" {
		form.Set("daily_spend_cap", fields.DailySpendCapCents)
	}

	c.log.WithField("params", form.Encode()).Debug("creating ad set")

	var resp createResponse
	path := fmt.Sprintf("/%s/adsets", actID(accountID))
	if err := c.postForm(ctx, token, path, "adsets.create", form, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *GraphClient) postMultipart(ctx context.Context, token, path, endpoint string, build func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := build(writer); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, token, endpoint, out)
}

// UploadImage pushes image bytes to the ad-image endpoint and returns
// the first reference in the response map.
func (c *GraphClient) UploadImage(ctx context.Context, token, accountID, fileName string, body io.Reader) (*models.ImageUpload, error) {
	var resp struct {
		Images map[string]models.ImageUpload `json:"images"`
	}
	path := fmt.Sprintf("/%s/adimages", actID(accountID))
	err := c.postMultipart(ctx, token, path, "adimages.upload", func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("filename", fileName)
		if err != nil {
			return fmt.Errorf("build image form: %w", err)
		}
		if _, err := io.Copy(part, body); err != nil {
			return fmt.Errorf("copy image bytes: %w", err)
		}
		return nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	for _, upload := range resp.Images {
		upload := upload
		return &upload, nil
	}
	return nil, &GraphError{Message: "ad image response carried no image reference"}
}

func (c *GraphClient) UploadVideo(ctx context.Context, token, accountID, fileName string, body io.Reader) (string, error) {
	var resp createResponse
	path := fmt.Sprintf("/%s/advideos", actID(accountID))
	err := c.postMultipart(ctx, token, path, "advideos.upload", func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("source", fileName)
		if err != nil {
			return fmt.Errorf("build video form: %w", err)
		}
		if _, err := io.Copy(part, body); err != nil {
			return fmt.Errorf("copy video bytes: %w", err)
		}
		return w.WriteField("title", fileName)
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *GraphClient) postCreative(ctx context.Context, token, accountID, name, defaultName string, objectStorySpec map[string]any, dof models.EnhancementSpec) (string, error) {
	storyJSON, err := json.Marshal(objectStorySpec)
	if err != nil {
		return "", fmt.Errorf("encode object story spec: %w", err)
	}
	dofJSON, err := json.Marshal(dof)
	if err != nil {
		return "", fmt.Errorf("encode degrees of freedom spec: %w", err)
	}

	form := url.Values{}
	form.Set("name", orDefault(name, defaultName))
	form.Set("object_story_spec", string(storyJSON))
	form.Set("degrees_of_freedom_spec", string(dofJSON))

	var resp createResponse
	path := fmt.Sprintf("/%s/adcreatives", actID(accountID))
	if err := c.postForm(ctx, token, path, "adcreatives.create", form, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *GraphClient) CreateImageCreative(ctx context.Context, token, accountID string, fields models.ImageCreativeFields) (string, error) {
	linkData := map[string]any{
		"image_hash":  fields.ImageHash,
		"link":        fields.LinkURL,
		"message":     fields.Message,
		"name":        fields.Headline,
		"description": fields.Description,
	}
	// NO_BUTTON means the creative carries no call to action at all.
	if fields.CTA != "" && fields.CTA != "NO_BUTTON" {
		linkData["call_to_action"] = map[string]any{
			"type":  fields.CTA,
			"value": map[string]string{"link": fields.LinkURL},
		}
	}

	storySpec := map[string]any{
		"page_id":   fields.PageID,
		"link_data": linkData,
	}
	if fields.InstagramAccountID != "" {
		storySpec["instagram_actor_id"] = fields.InstagramAccountID
	}

	return c.postCreative(ctx, token, accountID, fields.Name, "Ad Creative", storySpec, fields.DegreesOfFreedom)
}

func (c *GraphClient) CreateVideoCreative(ctx context.Context, token, accountID string, fields models.VideoCreativeFields) (string, error) {
	videoData := map[string]any{
		"video_id":         fields.VideoID,
		"link_description": fields.Description,
		"message":          fields.Message,
		"title":            fields.Headline,
		"call_to_action": map[string]any{
			"type":  orDefault(fields.CTA, "LEARN_MORE"),
			"value": map[string]string{"link": fields.LinkURL},
		},
	}
	if fields.ThumbnailHash != "" {
		videoData["image_hash"] = fields.ThumbnailHash
	}

	storySpec := map[string]any{
		"page_id":    fields.PageID,
		"video_data": videoData,
	}
	if fields.InstagramAccountID != "" {
		storySpec["instagram_actor_id"] = fields.InstagramAccountID
	}

	return c.postCreative(ctx, token, accountID, fields.Name, "Video Ad Creative", storySpec, fields.DegreesOfFreedom)
}

func (c *GraphClient) CreateCarouselCreative(ctx context.Context, token, accountID string, fields models.CarouselCreativeFields) (string, error) {
	attachments := make([]map[string]any, 0, len(fields.Cards))
	for _, card := range fields.Cards {
		link := card.LinkURL
		if link == "" {
			link = fields.LinkURL
		}
		attachment := map[string]any{
			"image_hash":  card.ImageHash,
			"link":        link,
			"name":        card.Headline,
			"description": card.Description,
		}
		if card.CTA != "" && card.CTA != "NO_BUTTON" {
			attachment["call_to_action"] = map[string]any{
				"type":  card.CTA,
				"value": map[string]string{"link": link},
			}
		}
		attachments = append(attachments, attachment)
	}

	storySpec := map[string]any{
		"page_id": fields.PageID,
		"link_data": map[string]any{
			"message":           fields.Message,
			"link":              fields.LinkURL,
			"child_attachments": attachments,
		},
	}
	if fields.InstagramAccountID != "" {
		storySpec["instagram_actor_id"] = fields.InstagramAccountID
	}

	return c.postCreative(ctx, token, accountID, fields.Name, "Carousel Creative", storySpec, fields.DegreesOfFreedom)
}

func (c *GraphClient) CreateAd(ctx context.Context, token, accountID string, fields models.AdFields) (string, error) {
	creativeJSON, err := json.Marshal(map[string]string{"creative_id": fields.CreativeID})
	if err != nil {
		return "", fmt.Errorf("encode creative reference: %w", err)
	}

	form := url.Values{}
	form.Set("name", orDefault(fields.Name, "Ad"))
	form.Set("adset_id", fields.AdSetID)
	form.Set("creative", string(creativeJSON))
	form.Set("status", orDefault(fields.Status, "PAUSED"))

	var resp createResponse
	path := fmt.Sprintf("/%s/ads", actID(accountID))
	if err := c.postForm(ctx, token, path, "ads.create", form, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOrDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
