package mailqueue

import (
	"time"

	"github.com/google/uuid"
)

// EmailJob is the message handed to the mail worker. The workflow layer only
// composes and enqueues; delivery, retries, and failure reporting belong to
// the consumer side.
type EmailJob struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	ToName    string    `json:"to_name,omitempty"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func NewEmailJob(to, toName, subject, body string) EmailJob {
	return EmailJob{
		ID:        uuid.NewString(),
		To:        to,
		ToName:    toName,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}
