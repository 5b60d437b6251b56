// internal/view/session.go
package view

import (
    "strconv"

    appErrors "github.com/phishdash/phishdash-backend/internal/errors"
    "github.com/phishdash/phishdash-backend/internal/model"
)

type sessionState int

const (
    stateIdle sessionState = iota
    stateEditing
)

// Draft holds the raw field values of one in-progress edit. Checkbox-backed
// fields live in Checks as booleans; every other field keeps the exact string
// last supplied, with no numeric coercion before commit.
type Draft struct {
    Fields map[string]string
    Checks map[string]bool
}

// EditSession is an explicit two-state machine, Idle or Editing. Begin is only
// a valid transition from Idle, so a second concurrent edit cannot silently
// overwrite an open draft.
type EditSession struct {
    state sessionState
    index int
    draft Draft
}

func NewEditSession() *EditSession {
    return &EditSession{state: stateIdle}
}

// Begin opens an edit for the profile at index, seeding the draft from its
// current values. Fails while another edit is open.
func (s *EditSession) Begin(index int, p model.EmailProfile) error {
    if s.state == stateEditing {
        return appErrors.NewEditInProgress(s.index)
    }

    draft := Draft{
        Fields: map[string]string{
            "email": p.Email,
            "name":  p.Name,
        },
        Checks: map[string]bool{
            "verified": p.Verified,
        },
    }
    if p.Quality != nil {
        draft.Fields["quality"] = strconv.FormatFloat(*p.Quality, 'f', -1, 64)
    }

    s.state = stateEditing
    s.index = index
    s.draft = draft
    return nil
}

// SetField updates exactly one field of the draft.
func (s *EditSession) SetField(name, raw string, isCheckbox bool) error {
    if s.state != stateEditing {
        return appErrors.NewNoOpenEdit()
    }
    if isCheckbox {
        s.draft.Checks[name] = raw == "true" || raw == "on" || raw == "1"
        return nil
    }
    s.draft.Fields[name] = raw
    return nil
}

// Cancel discards the draft and returns to Idle. No store interaction.
func (s *EditSession) Cancel() {
    s.state = stateIdle
    s.index = 0
    s.draft = Draft{}
}

func (s *EditSession) Open() bool {
    return s.state == stateEditing
}

// Index returns the selected index while an edit is open.
func (s *EditSession) Index() (int, bool) {
    if s.state != stateEditing {
        return 0, false
    }
    return s.index, true
}

func (s *EditSession) Draft() Draft {
    return s.draft
}

// Profile materializes the draft into the profile that will replace the list
// entry wholesale. Fields absent from the draft are lost; an unparsable
// quality value is dropped rather than carried over.
func (s *EditSession) Profile() model.EmailProfile {
    p := model.EmailProfile{
        Email:    s.draft.Fields["email"],
        Name:     s.draft.Fields["name"],
        Verified: s.draft.Checks["verified"],
    }
    if raw, ok := s.draft.Fields["quality"]; ok && raw != "" {
        if q, err := strconv.ParseFloat(raw, 64); err == nil {
            p.Quality = &q
        }
    }
    return p
}
