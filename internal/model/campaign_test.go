package model_test

import (
	"testing"

	appErrors "github.com/phishdash/phishdash-backend/internal/errors"
	"github.com/phishdash/phishdash-backend/internal/model"
)

func TestCampaignFromDocument(t *testing.T) {
	doc := map[string]any{
		"name":      "Q3 Awareness",
		"domain":    "acme-corp.example",
		"timestamp": float64(1700000000),
		"emails": []any{
			map[string]any{"email": "a@acme-corp.example", "verified": true, "quality": 0.9},
			map[string]any{"email": "b@acme-corp.example"},
		},
	}

	c, err := model.CampaignFromDocument("camp-1", doc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if c.Name != "Q3 Awareness" || c.Domain != "acme-corp.example" {
		t.Errorf("header fields: %+v", c)
	}
	if len(c.Emails) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(c.Emails))
	}
	if !c.Emails[0].Verified || c.Emails[0].Quality == nil || *c.Emails[0].Quality != 0.9 {
		t.Errorf("emails[0] = %+v", c.Emails[0])
	}
	if c.Emails[1].Verified {
		t.Errorf("verified should default to false")
	}
}

func TestCampaignFromDocumentRejectsBadShapes(t *testing.T) {
	for name, doc := range map[string]map[string]any{
		"missing emails": {"name": "X"},
		"emails scalar":  {"emails": "oops"},
		"emails object":  {"emails": map[string]any{"0": "x"}},
	} {
		_, err := model.CampaignFromDocument("camp-1", doc)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if _, ok := err.(*appErrors.ErrInvalidShape); !ok {
			t.Errorf("%s: expected ErrInvalidShape, got %T", name, err)
		}
	}
}

func TestDisplayFallbacks(t *testing.T) {
	c := &model.Campaign{}
	if c.DisplayName() != "N/A" || c.DisplayDomain() != "N/A" || c.CreatedAtDisplay() != "N/A" {
		t.Errorf("expected N/A fallbacks, got %q %q %q",
			c.DisplayName(), c.DisplayDomain(), c.CreatedAtDisplay())
	}

	c = &model.Campaign{Name: "X", Domain: "y.example", Timestamp: 1700000000}
	if c.DisplayName() != "X" || c.DisplayDomain() != "y.example" {
		t.Errorf("display values mangled")
	}
	if c.CreatedAtDisplay() == "N/A" || c.CreatedAtDisplay() == "" {
		t.Errorf("timestamp not rendered: %q", c.CreatedAtDisplay())
	}
}
