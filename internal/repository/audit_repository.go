package repository

import (
	"database/sql"
	"time"

	"github.com/phishdash/phishdash-backend/internal/model"
)

// AuditRepositoryInterface defines methods used by the update subscriber and
// the audit endpoint
type AuditRepositoryInterface interface {
	Insert(e *model.AuditEntry) error
	ListByCampaign(campaignID string, limit int) ([]model.AuditEntry, error)
}

type AuditRepository struct {
	DB *sql.DB
}

// Insert records a new audit entry and returns the created ID
func (r *AuditRepository) Insert(e *model.AuditEntry) error {
	e.CreatedAt = time.Now()
	query := `
        INSERT INTO audit_log (campaign_id, action, detail, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.DB.QueryRow(query, e.CampaignID, e.Action, e.Detail, e.CreatedAt).Scan(&e.ID)
}

// ListByCampaign fetches the most recent entries for a campaign
func (r *AuditRepository) ListByCampaign(campaignID string, limit int) ([]model.AuditEntry, error) {
	if limit < 1 {
		limit = 20
	}
	query := `
        SELECT id, campaign_id, action, detail, created_at
        FROM audit_log
        WHERE campaign_id = $1
        ORDER BY id DESC
        LIMIT $2
    `
	rows, err := r.DB.Query(query, campaignID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.AuditEntry{}
	for rows.Next() {
		var e model.AuditEntry
		if err := rows.Scan(&e.ID, &e.CampaignID, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

var _ AuditRepositoryInterface = (*AuditRepository)(nil)
