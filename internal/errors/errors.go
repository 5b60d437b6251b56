// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
    CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
    return fmt.Sprintf("campaign %q not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
    return &ErrCampaignNotFound{CampaignID: id}
}

// ErrInvalidShape means the persisted document violates the campaign contract
// (emails missing or not a sequence).
type ErrInvalidShape struct {
    CampaignID string
    Reason     string
}

func (e *ErrInvalidShape) Error() string {
    return fmt.Sprintf("campaign %q has invalid shape: %s", e.CampaignID, e.Reason)
}

func NewInvalidShape(id, reason string) error {
    return &ErrInvalidShape{CampaignID: id, Reason: reason}
}

// ErrIndexOutOfRange means the selected index is stale against the freshly
// fetched email list.
type ErrIndexOutOfRange struct {
    Index  int
    Length int
}

func (e *ErrIndexOutOfRange) Error() string {
    return fmt.Sprintf("email index %d out of range (list has %d entries)", e.Index, e.Length)
}

func NewIndexOutOfRange(index, length int) error {
    return &ErrIndexOutOfRange{Index: index, Length: length}
}

// ErrConflict means a concurrent writer changed the email list between the
// read and the guarded overwrite.
type ErrConflict struct {
    CampaignID  string
    ExpectedLen int
}

func (e *ErrConflict) Error() string {
    return fmt.Sprintf("campaign %q was modified concurrently (expected %d emails)", e.CampaignID, e.ExpectedLen)
}

func NewConflict(id string, expectedLen int) error {
    return &ErrConflict{CampaignID: id, ExpectedLen: expectedLen}
}

// ErrEditInProgress: only one edit session may be open at a time.
type ErrEditInProgress struct {
    Index int
}

func (e *ErrEditInProgress) Error() string {
    return fmt.Sprintf("an edit is already in progress for index %d", e.Index)
}

func NewEditInProgress(index int) error {
    return &ErrEditInProgress{Index: index}
}

// ErrNoOpenEdit: the operation requires an open edit session.
type ErrNoOpenEdit struct{}

func (e *ErrNoOpenEdit) Error() string {
    return "no edit session is open"
}

func NewNoOpenEdit() error {
    return &ErrNoOpenEdit{}
}

// ErrStoreFault wraps any other I/O-level failure from the document store.
type ErrStoreFault struct {
    Op  string
    Err error
}

func (e *ErrStoreFault) Error() string {
    return fmt.Sprintf("store fault during %s: %v", e.Op, e.Err)
}

func (e *ErrStoreFault) Unwrap() error {
    return e.Err
}

func NewStoreFault(op string, err error) error {
    return &ErrStoreFault{Op: op, Err: err}
}

// ErrAuthFault covers identity-provider failures on the signup surface.
type ErrAuthFault struct {
    Reason string
}

func (e *ErrAuthFault) Error() string {
    return fmt.Sprintf("auth fault: %s", e.Reason)
}

func NewAuthFault(reason string) error {
    return &ErrAuthFault{Reason: reason}
}
