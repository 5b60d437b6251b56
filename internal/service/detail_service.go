// internal/service/detail_service.go
package service

import (
    "log"

    "github.com/phishdash/phishdash-backend/internal/docstore"
    appErrors "github.com/phishdash/phishdash-backend/internal/errors"
    "github.com/phishdash/phishdash-backend/internal/model"
    "github.com/phishdash/phishdash-backend/internal/queue"
)

// CampaignCollection is the document collection holding campaign records.
const CampaignCollection = "campaigns"

type CampaignDetailService struct {
    Store docstore.Store
    Queue queue.Queue
}

// GetCampaign fetches and decodes the persisted campaign record.
func (s *CampaignDetailService) GetCampaign(id string) (*model.Campaign, error) {
    doc, err := s.Store.Get(CampaignCollection, id)
    if err != nil {
        return nil, err
    }
    return model.CampaignFromDocument(id, doc)
}

// CommitEdit writes one edited email profile back to the store.
//
// The selected index is validated against the freshly fetched record, not the
// stale in-memory one, and the overwrite of the emails field is guarded by the
// fetched list's length, so a concurrent writer surfaces as a conflict instead
// of being silently clobbered. The draft replaces the entry wholesale. Every
// failure is terminal for this attempt; nothing is written and the caller's
// view state stays as it was. Two reads and one write per invocation.
func (s *CampaignDetailService) CommitEdit(campaignID string, index int, profile model.EmailProfile) (*model.Campaign, error) {
    if campaignID == "" {
        return nil, appErrors.NewCampaignNotFound(campaignID)
    }

    fresh, err := s.GetCampaign(campaignID)
    if err != nil {
        return nil, err
    }

    if index < 0 || index >= len(fresh.Emails) {
        return nil, appErrors.NewIndexOutOfRange(index, len(fresh.Emails))
    }

    updated := make([]model.EmailProfile, len(fresh.Emails))
    copy(updated, fresh.Emails)
    updated[index] = profile

    err = s.Store.ReplaceArrayField(CampaignCollection, campaignID, "emails", updated, len(fresh.Emails))
    if err != nil {
        return nil, err
    }

    log.Println("✅ Email profile updated successfully:", profile.Email)

    // Reload campaign data so the caller can reset its window from the
    // persisted state rather than patching in place.
    reloaded, err := s.GetCampaign(campaignID)
    if err != nil {
        return nil, err
    }

    if s.Queue != nil {
        event := queue.UpdateEvent{
            CampaignID: campaignID,
            Index:      index,
            Email:      profile.Email,
        }
        if err := s.Queue.Publish(queue.TopicCampaignUpdates, event); err != nil {
            log.Println("⚠️ failed to publish campaign update:", err)
        }
    }

    return reloaded, nil
}
