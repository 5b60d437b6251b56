package view_test

import (
	"testing"

	appErrors "github.com/phishdash/phishdash-backend/internal/errors"
	"github.com/phishdash/phishdash-backend/internal/model"
	"github.com/phishdash/phishdash-backend/internal/view"
)

func floatPtr(f float64) *float64 { return &f }

func TestBeginSeedsDraftFromProfile(t *testing.T) {
	s := view.NewEditSession()
	err := s.Begin(2, model.EmailProfile{
		Email:    "mark.reyes@acme-corp.example",
		Name:     "Mark Reyes",
		Verified: true,
		Quality:  floatPtr(0.87),
	})
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	if !s.Open() {
		t.Fatal("expected session to be open")
	}
	idx, ok := s.Index()
	if !ok || idx != 2 {
		t.Fatalf("expected index 2, got %d (open=%v)", idx, ok)
	}

	d := s.Draft()
	if d.Fields["email"] != "mark.reyes@acme-corp.example" {
		t.Errorf("email not seeded: %q", d.Fields["email"])
	}
	if d.Fields["quality"] != "0.87" {
		t.Errorf("quality not seeded as text: %q", d.Fields["quality"])
	}
	if !d.Checks["verified"] {
		t.Errorf("verified not seeded")
	}
}

func TestBeginWhileEditingFails(t *testing.T) {
	s := view.NewEditSession()
	if err := s.Begin(0, model.EmailProfile{}); err != nil {
		t.Fatalf("first begin failed: %v", err)
	}

	err := s.Begin(1, model.EmailProfile{Email: "second@corp.example"})
	if err == nil {
		t.Fatal("expected second begin to fail")
	}
	if _, ok := err.(*appErrors.ErrEditInProgress); !ok {
		t.Fatalf("expected ErrEditInProgress, got %T", err)
	}

	// The open draft must be untouched.
	if idx, _ := s.Index(); idx != 0 {
		t.Errorf("open edit index changed to %d", idx)
	}
}

func TestSetFieldKeepsRawText(t *testing.T) {
	s := view.NewEditSession()
	s.Begin(0, model.EmailProfile{})

	if err := s.SetField("quality", "0.5abc", false); err != nil {
		t.Fatalf("setField failed: %v", err)
	}
	if got := s.Draft().Fields["quality"]; got != "0.5abc" {
		t.Errorf("expected raw text preserved, got %q", got)
	}
}

func TestSetFieldCheckboxStoresBool(t *testing.T) {
	s := view.NewEditSession()
	s.Begin(0, model.EmailProfile{})

	s.SetField("verified", "true", true)
	if !s.Draft().Checks["verified"] {
		t.Errorf("expected verified=true")
	}

	s.SetField("verified", "false", true)
	if s.Draft().Checks["verified"] {
		t.Errorf("expected verified=false")
	}
}

func TestSetFieldWithoutOpenEdit(t *testing.T) {
	s := view.NewEditSession()
	err := s.SetField("email", "x@corp.example", false)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*appErrors.ErrNoOpenEdit); !ok {
		t.Fatalf("expected ErrNoOpenEdit, got %T", err)
	}
}

func TestCancelClearsSession(t *testing.T) {
	s := view.NewEditSession()
	s.Begin(3, model.EmailProfile{Email: "a@corp.example"})
	s.Cancel()

	if s.Open() {
		t.Fatal("expected session closed after cancel")
	}
	if err := s.Begin(1, model.EmailProfile{}); err != nil {
		t.Errorf("begin after cancel failed: %v", err)
	}
}

// The materialized profile is a full overwrite of the draft: a field cleared
// in the draft does not retain its old value, and an unparsable quality is
// dropped rather than written.
func TestProfileMaterialization(t *testing.T) {
	s := view.NewEditSession()
	s.Begin(0, model.EmailProfile{
		Email:   "old@corp.example",
		Name:    "Old Name",
		Quality: floatPtr(0.4),
	})

	s.SetField("email", "new@corp.example", false)
	s.SetField("name", "", false)
	s.SetField("quality", "0.91", false)
	s.SetField("verified", "true", true)

	p := s.Profile()
	if p.Email != "new@corp.example" {
		t.Errorf("email = %q", p.Email)
	}
	if p.Name != "" {
		t.Errorf("cleared name retained old value: %q", p.Name)
	}
	if p.Quality == nil || *p.Quality != 0.91 {
		t.Errorf("quality = %v", p.Quality)
	}
	if !p.Verified {
		t.Errorf("verified not carried")
	}

	s.SetField("quality", "not-a-number", false)
	if got := s.Profile().Quality; got != nil {
		t.Errorf("unparsable quality should be dropped, got %v", *got)
	}
}
