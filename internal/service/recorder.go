package service

import (
	"fmt"
	"log"

	"github.com/phishdash/phishdash-backend/internal/model"
	"github.com/phishdash/phishdash-backend/internal/queue"
)

// AuditSink defines the method the recorder needs
type AuditSink interface {
	Insert(e *model.AuditEntry) error
}

// UpdateRecorder turns committed-edit events into audit rows
type UpdateRecorder struct {
	Audit   AuditSink
	JobChan <-chan queue.UpdateEvent
}

// Constructor
func NewUpdateRecorder(sink AuditSink, jobChan <-chan queue.UpdateEvent) *UpdateRecorder {
	return &UpdateRecorder{
		Audit:   sink,
		JobChan: jobChan,
	}
}

// Start begins processing events
func (w *UpdateRecorder) Start() {
	for event := range w.JobChan {
		entry := &model.AuditEntry{
			CampaignID: event.CampaignID,
			Action:     "email_profile_updated",
			Detail:     auditDetail(event),
		}
		if err := w.Audit.Insert(entry); err != nil {
			log.Println("Failed to record audit entry:", err)
		}
	}
}

func auditDetail(event queue.UpdateEvent) string {
	if event.Email == "" {
		return fmt.Sprintf("index %d cleared", event.Index)
	}
	return fmt.Sprintf("index %d set to %s", event.Index, event.Email)
}
