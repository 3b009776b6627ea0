package models

// LaunchMode selects whether the orchestrator creates a fresh
// campaign/ad-set pair or attaches ads to existing remote entities.
type LaunchMode string

const (
	LaunchModeNew      LaunchMode = "new"
	LaunchModeExisting LaunchMode = "existing"
)

type CreativeMode string

const (
	CreativeModeSingle   CreativeMode = "single"
	CreativeModeCarousel CreativeMode = "carousel"
)

type BudgetType string

const (
	BudgetTypeABO BudgetType = "ABO"
	BudgetTypeCBO BudgetType = "CBO"
)

// GlobalCopy is the ad copy applied to every creative that does not
// carry its own override.
type GlobalCopy struct {
	PrimaryText string `json:"primary_text"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

// CreativeDraft references an uploaded library asset plus optional
// per-creative copy overrides.
type CreativeDraft struct {
	AssetID       string `json:"asset_id" validate:"required"`
	UseCustomCopy bool   `json:"use_custom_copy"`
	PrimaryText   string `json:"primary_text"`
	Headline      string `json:"headline"`
	Description   string `json:"description"`
	LinkURL       string `json:"link_url"`
	CTA           string `json:"cta"`
}

// ExcludedRegion is a Graph geo-location region reference picked via
// region search.
type ExcludedRegion struct {
	Key  string `json:"key" validate:"required"`
	Name string `json:"name"`
}

// Targeting holds the ad-set audience configuration.
type Targeting struct {
	Countries         []string         `json:"countries" validate:"required,min=1"`
	ExcludedCountries []string         `json:"excluded_countries"`
	ExcludedRegions   []ExcludedRegion `json:"excluded_regions"`
	AgeMin            int              `json:"age_min"`
	AgeMax            int              `json:"age_max"`
	Gender            string           `json:"gender"` // all | male | female
}

// Draft is one fully user-configured launch: campaign and ad-set
// settings, identity, destination, copy and the creative list. The
// orchestrator treats it as a read-only snapshot for the duration of a
// launch.
type Draft struct {
	Mode         LaunchMode   `json:"mode" validate:"required,oneof=new existing"`
	CreativeType CreativeMode `json:"creative_type" validate:"required,oneof=single carousel"`

	// New-campaign fields.
	CampaignName  string     `json:"campaign_name"`
	Objective     string     `json:"objective"`
	BudgetType    BudgetType `json:"budget_type" validate:"omitempty,oneof=ABO CBO"`
	BidStrategy   string     `json:"bid_strategy"`
	BidAmount     string     `json:"bid_amount"`
	BudgetSharing bool       `json:"budget_sharing"`

	// Existing-campaign selection.
	ExistingCampaignID string `json:"existing_campaign_id"`
	ExistingAdSetID    string `json:"existing_ad_set_id"`

	// Ad-set fields.
	AdSetName          string    `json:"ad_set_name"`
	DailyBudget        string    `json:"daily_budget"`
	OptimizationGoal   string    `json:"optimization_goal"`
	Targeting          Targeting `json:"targeting"`
	StartTime          string    `json:"start_time"`
	PixelID            string    `json:"pixel_id"`
	ConversionEvent    string    `json:"conversion_event"`
	AttributionSetting string    `json:"attribution_setting"`
	DailyMinSpend      string    `json:"daily_min_spend"`
	DailySpendCap      string    `json:"daily_spend_cap"`
	DSABeneficiary     string    `json:"dsa_beneficiary"`
	DSAPayor           string    `json:"dsa_payor"`

	// Identity and destination.
	PageID             string `json:"page_id"`
	PageName           string `json:"page_name"`
	InstagramAccountID string `json:"instagram_account_id"`
	WebsiteURL         string `json:"website_url"`

	GlobalCopy GlobalCopy      `json:"global_copy"`
	Creatives  []CreativeDraft `json:"creatives"`

	// Initial status for the created entities: PAUSED or ACTIVE.
	AdStatus string `json:"ad_status" validate:"omitempty,oneof=PAUSED ACTIVE"`
}
