package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
)

type historyRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) interfaces.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, record *models.HistoryRecord) error {
	resultsJSON, err := json.Marshal(record.Results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	query := `
		INSERT INTO launch_history (id, campaign_id, ad_set_id, campaign_name, ads_count, status, results, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		record.ID,
		record.CampaignID,
		record.AdSetID,
		record.CampaignName,
		record.AdsCount,
		record.Status,
		resultsJSON,
		record.CreatedAt,
	).Scan(&record.CreatedAt)
}

func (r *historyRepository) List(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	query := `
		SELECT id, campaign_id, ad_set_id, campaign_name, ads_count, status, results, created_at
		FROM launch_history
		ORDER BY created_at DESC
	`

	args := make([]any, 0, 1)
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.HistoryRecord
	for rows.Next() {
		var record models.HistoryRecord
		var resultsJSON []byte
		if err := rows.Scan(
			&record.ID,
			&record.CampaignID,
			&record.AdSetID,
			&record.CampaignName,
			&record.AdsCount,
			&record.Status,
			&resultsJSON,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(resultsJSON) > 0 {
			if err := json.Unmarshal(resultsJSON, &record.Results); err != nil {
				return nil, fmt.Errorf("decode results for %s: %w", record.ID, err)
			}
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
