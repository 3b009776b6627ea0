package models

// Wire shapes for the Graph API subset the launcher depends on.

type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
}

type Page struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PictureURL string `json:"picture_url,omitempty"`
}

type InstagramAccount struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
}

type Pixel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CampaignSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"objective,omitempty"`
}

type AdSetSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type CreativeSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Status       string `json:"status,omitempty"`
}

// ImageUpload is the media reference returned by the ad-image endpoint.
type ImageUpload struct {
	Hash string `json:"hash"`
	URL  string `json:"url"`
}

type Region struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

// InsightRow is intentionally loose: the reporting API returns a
// varying column set depending on level and requested fields.
type InsightRow map[string]any

type InsightsQuery struct {
	DatePreset string `json:"date_preset"`
	Level      string `json:"level"`
}

// EnrollStatus is the per-capability opt state sent inside
// degrees_of_freedom_spec.
type EnrollStatus string

const (
	OptIn  EnrollStatus = "OPT_IN"
	OptOut EnrollStatus = "OPT_OUT"
)

type FeatureEnrollment struct {
	EnrollStatus EnrollStatus `json:"enroll_status"`
}

// EnhancementSpec is the compiled degrees_of_freedom_spec payload.
type EnhancementSpec struct {
	CreativeFeaturesSpec map[string]FeatureEnrollment `json:"creative_features_spec"`
}

// CampaignFields drives campaign creation. All money amounts are
// strings of integer minor currency units; empty means absent.
type CampaignFields struct {
	Name             string
	Objective        string
	Status           string
	BudgetType       BudgetType
	DailyBudgetCents string
	BidStrategy      string
	BudgetSharing    bool
}

// AdSetFields drives ad-set creation. Conditional attachment rules
// (budget placement, bid amount, promoted object, attribution, DSA,
// spend limits) are applied by the client when building the request.
type AdSetFields struct {
	Name               string
	CampaignID         string
	DailyBudgetCents   string
	OptimizationGoal   string
	BillingEvent       string
	Targeting          Targeting
	Status             string
	StartTime          string
	BudgetType         BudgetType
	BidStrategy        string
	BudgetSharing      bool
	PixelID            string
	ConversionEvent    string
	BidAmountCents     string
	AttributionSetting string
	DailyMinSpendCents string
	DailySpendCapCents string
	DSABeneficiary     string
	DSAPayor           string
}

type ImageCreativeFields struct {
	Name               string
	PageID             string
	ImageHash          string
	Message            string
	Headline           string
	Description        string
	LinkURL            string
	CTA                string
	InstagramAccountID string
	DegreesOfFreedom   EnhancementSpec
}

type VideoCreativeFields struct {
	Name               string
	PageID             string
	VideoID            string
	Message            string
	Headline           string
	Description        string
	LinkURL            string
	CTA                string
	ThumbnailHash      string
	InstagramAccountID string
	DegreesOfFreedom   EnhancementSpec
}

// CarouselCard is one child attachment of a carousel creative.
type CarouselCard struct {
	ImageHash   string
	Headline    string
	Description string
	LinkURL     string
	CTA         string
}

type CarouselCreativeFields struct {
	Name               string
	PageID             string
	Cards              []CarouselCard
	Message            string
	LinkURL            string
	InstagramAccountID string
	DegreesOfFreedom   EnhancementSpec
}

type AdFields struct {
	Name       string
	AdSetID    string
	CreativeID string
	Status     string
}
