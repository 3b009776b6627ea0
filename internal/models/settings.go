package models

import "time"

// EnhancementMatrix maps creative type -> toggle key -> enabled. Any
// toggle not present defaults to off.
type EnhancementMatrix map[string]map[string]bool

// Settings holds the operator's Graph API connection and launch
// defaults. One row per user.
type Settings struct {
	UserID       string            `json:"-"`
	AccessToken  string            `json:"access_token"`
	AdAccountID  string            `json:"ad_account_id"`
	UTMTemplate  string            `json:"utm_template"`
	Enhancements EnhancementMatrix `json:"enhancements"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type UpdateSettingsRequest struct {
	AccessToken  *string            `json:"access_token,omitempty"`
	AdAccountID  *string            `json:"ad_account_id,omitempty"`
	UTMTemplate  *string            `json:"utm_template,omitempty"`
	Enhancements *EnhancementMatrix `json:"enhancements,omitempty"`
}
