// internal/model/campaign.go
package model

import (
    "encoding/json"
    "time"

    appErrors "github.com/phishdash/phishdash-backend/internal/errors"
)

// EmailProfile is one simulated recipient identity within a campaign.
type EmailProfile struct {
    Email    string   `json:"email,omitempty"`
    Name     string   `json:"name,omitempty"`
    Verified bool     `json:"verified,omitempty"`
    Quality  *float64 `json:"quality,omitempty"`
}

// Campaign is the document shape stored per campaign. The emails sequence is
// the single source of truth; index is the identity used for edits.
type Campaign struct {
    Name      string         `json:"name,omitempty"`
    Domain    string         `json:"domain,omitempty"`
    Timestamp int64          `json:"timestamp,omitempty"`
    Emails    []EmailProfile `json:"emails"`
}

// DisplayName returns the campaign name, or "N/A" when absent.
func (c *Campaign) DisplayName() string {
    if c.Name == "" {
        return "N/A"
    }
    return c.Name
}

// DisplayDomain returns the target domain, or "N/A" when absent.
func (c *Campaign) DisplayDomain() string {
    if c.Domain == "" {
        return "N/A"
    }
    return c.Domain
}

// CreatedAtDisplay converts the epoch-seconds timestamp into a localized
// date-time string, or "N/A" when absent.
func (c *Campaign) CreatedAtDisplay() string {
    if c.Timestamp == 0 {
        return "N/A"
    }
    return time.Unix(c.Timestamp, 0).Local().Format("1/2/2006, 3:04:05 PM")
}

// CampaignFromDocument decodes a raw store document into a Campaign. The
// emails field must be present and a sequence; anything else is an invalid
// shape, terminal for the caller's attempt.
func CampaignFromDocument(id string, doc map[string]any) (*Campaign, error) {
    raw, ok := doc["emails"]
    if !ok {
        return nil, appErrors.NewInvalidShape(id, "emails field missing")
    }
    if _, ok := raw.([]any); !ok {
        return nil, appErrors.NewInvalidShape(id, "emails field is not a sequence")
    }

    b, err := json.Marshal(doc)
    if err != nil {
        return nil, appErrors.NewInvalidShape(id, err.Error())
    }
    var c Campaign
    if err := json.Unmarshal(b, &c); err != nil {
        return nil, appErrors.NewInvalidShape(id, err.Error())
    }
    if c.Emails == nil {
        c.Emails = []EmailProfile{}
    }
    return &c, nil
}

// Document re-encodes a campaign into the plain nested structure the store
// persists (string/number/boolean/array fields only).
func (c *Campaign) Document() (map[string]any, error) {
    b, err := json.Marshal(c)
    if err != nil {
        return nil, err
    }
    var doc map[string]any
    if err := json.Unmarshal(b, &doc); err != nil {
        return nil, err
    }
    return doc, nil
}
