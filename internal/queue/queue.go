package queue

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/phishdash/phishdash-backend/internal/model"
	"github.com/phishdash/phishdash-backend/internal/repository"
)

// TopicCampaignUpdates carries one event per committed email-profile edit.
const TopicCampaignUpdates = "campaign_updates"

// UpdateEvent is published after a commit succeeds.
type UpdateEvent struct {
	CampaignID string `json:"campaign_id"`
	Index      int    `json:"index"`
	Email      string `json:"email"`
}

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-memory queue with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartCampaignUpdateSubscriber records an audit row for every committed
// email-profile edit flowing through the in-process queue.
func StartCampaignUpdateSubscriber(q Queue, auditRepo repository.AuditRepositoryInterface) {
	go func() {
		err := q.Subscribe(TopicCampaignUpdates, func(payload any) error {
			event, ok := payload.(UpdateEvent)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected UpdateEvent")
				return nil // no retry
			}

			log.Println("📩 Recording campaign update for:", event.CampaignID)

			entry := &model.AuditEntry{
				CampaignID: event.CampaignID,
				Action:     "email_profile_updated",
				Detail:     fmt.Sprintf("index %d set to %s", event.Index, event.Email),
			}
			if err := auditRepo.Insert(entry); err != nil {
				log.Println("⚠️ Failed to record audit entry:", err)
				return err // triggers retry in queue
			}

			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for campaign_updates:", err)
		}
	}()
}
