// internal/model/audit.go
package model

import "time"

type AuditEntry struct {
    ID         int       `db:"id" json:"id"`
    CampaignID string    `db:"campaign_id" json:"campaign_id"`
    Action     string    `db:"action" json:"action"` // email_profile_updated
    Detail     string    `db:"detail" json:"detail"`
    CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
