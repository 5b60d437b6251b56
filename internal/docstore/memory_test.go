package docstore_test

import (
	"testing"

	"github.com/phishdash/phishdash-backend/internal/docstore"
	appErrors "github.com/phishdash/phishdash-backend/internal/errors"
)

// Set must replace each targeted field in full, never deep-merge into it.
func TestSetIsWholeFieldOverwrite(t *testing.T) {
	store := docstore.NewMemoryStore()
	store.Create("campaigns", "c1", docstore.Document{
		"name": "Old",
		"meta": map[string]any{"a": 1, "b": 2},
	})

	err := store.Set("campaigns", "c1", docstore.Document{
		"meta": map[string]any{"a": float64(9)},
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	doc, _ := store.Get("campaigns", "c1")
	if doc["name"] != "Old" {
		t.Errorf("untargeted field changed: %v", doc["name"])
	}
	meta := doc["meta"].(map[string]any)
	if _, stillThere := meta["b"]; stillThere {
		t.Errorf("field was deep-merged, not overwritten: %v", meta)
	}
	if meta["a"] != float64(9) {
		t.Errorf("meta.a = %v", meta["a"])
	}
}

func TestGetReturnsCopies(t *testing.T) {
	store := docstore.NewMemoryStore()
	store.Create("campaigns", "c1", docstore.Document{"name": "Original"})

	doc, _ := store.Get("campaigns", "c1")
	doc["name"] = "Tampered"

	again, _ := store.Get("campaigns", "c1")
	if again["name"] != "Original" {
		t.Errorf("caller mutation leaked into the store")
	}
}

func TestReplaceArrayFieldGuard(t *testing.T) {
	store := docstore.NewMemoryStore()
	store.Create("campaigns", "c1", docstore.Document{
		"emails": []any{"a", "b", "c"},
	})

	// Guard mismatch: nothing written.
	err := store.ReplaceArrayField("campaigns", "c1", "emails", []string{"x"}, 2)
	if _, ok := err.(*appErrors.ErrConflict); !ok {
		t.Fatalf("expected ErrConflict, got %T: %v", err, err)
	}
	doc, _ := store.Get("campaigns", "c1")
	if len(doc["emails"].([]any)) != 3 {
		t.Errorf("guarded write modified the document")
	}

	// Guard match: replaced in full.
	if err := store.ReplaceArrayField("campaigns", "c1", "emails", []string{"x"}, 3); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	doc, _ = store.Get("campaigns", "c1")
	emails := doc["emails"].([]any)
	if len(emails) != 1 || emails[0] != "x" {
		t.Errorf("emails = %v", emails)
	}

	err = store.ReplaceArrayField("campaigns", "ghost", "emails", []string{}, 0)
	if _, ok := err.(*appErrors.ErrCampaignNotFound); !ok {
		t.Errorf("expected not-found for missing document, got %T", err)
	}
}
