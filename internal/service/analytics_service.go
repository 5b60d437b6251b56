// internal/service/analytics_service.go
package service

import (
    "github.com/phishdash/phishdash-backend/internal/docstore"
    "github.com/phishdash/phishdash-backend/internal/model"
)

type CampaignAnalytics struct {
    CampaignID     string   `json:"campaign_id"`
    Name           string   `json:"name"`
    Domain         string   `json:"domain"`
    CreatedAt      string   `json:"created_at"`
    TotalEmails    int      `json:"total_emails"`
    VerifiedCount  int      `json:"verified_count"`
    VerifiedRate   float64  `json:"verified_rate"`
    AverageQuality *float64 `json:"average_quality,omitempty"`
}

type AnalyticsService struct {
    Store docstore.Store
}

// GetCampaignAnalytics aggregates the email-profile stats shown on the
// campaign detail page.
func (s *AnalyticsService) GetCampaignAnalytics(campaignID string) (*CampaignAnalytics, error) {
    doc, err := s.Store.Get(CampaignCollection, campaignID)
    if err != nil {
        return nil, err
    }
    campaign, err := model.CampaignFromDocument(campaignID, doc)
    if err != nil {
        return nil, err
    }

    out := &CampaignAnalytics{
        CampaignID:  campaignID,
        Name:        campaign.DisplayName(),
        Domain:      campaign.DisplayDomain(),
        CreatedAt:   campaign.CreatedAtDisplay(),
        TotalEmails: len(campaign.Emails),
    }

    var qualitySum float64
    var qualityCount int
    for _, p := range campaign.Emails {
        if p.Verified {
            out.VerifiedCount++
        }
        if p.Quality != nil {
            qualitySum += *p.Quality
            qualityCount++
        }
    }

    if out.TotalEmails > 0 {
        out.VerifiedRate = float64(out.VerifiedCount) / float64(out.TotalEmails)
    }
    if qualityCount > 0 {
        avg := qualitySum / float64(qualityCount)
        out.AverageQuality = &avg
    }

    return out, nil
}
