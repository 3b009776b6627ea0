package models

import "time"

// LaunchResultEntry records one produced ad. A carousel launch yields a
// single synthetic entry regardless of card count.
type LaunchResultEntry struct {
	FileName   string `json:"file_name"`
	AdID       string `json:"ad_id"`
	CreativeID string `json:"creative_id"`
}

// LaunchProgress is overwritten before every network-bound step.
type LaunchProgress struct {
	Step      string `json:"step"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type LaunchState string

const (
	LaunchStateIdle      LaunchState = "idle"
	LaunchStateRunning   LaunchState = "running"
	LaunchStateCompleted LaunchState = "completed"
	LaunchStateFailed    LaunchState = "failed"
)

// LaunchStatus is the poll response for an in-flight or finished launch.
type LaunchStatus struct {
	LaunchID string              `json:"launch_id,omitempty"`
	State    LaunchState         `json:"state"`
	Progress LaunchProgress      `json:"progress"`
	Results  []LaunchResultEntry `json:"results,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// HistoryRecord is persisted once after a fully successful launch.
type HistoryRecord struct {
	ID           string              `json:"id"`
	CampaignID   string              `json:"campaign_id"`
	AdSetID      string              `json:"ad_set_id"`
	CampaignName string              `json:"campaign_name"`
	AdsCount     int                 `json:"ads_count"`
	Status       string              `json:"status"`
	Results      []LaunchResultEntry `json:"results"`
	CreatedAt    time.Time           `json:"created_at"`
}
