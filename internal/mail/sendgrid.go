package mail

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Menwuyelet/jobboard/internal/mailqueue"
)

// SendGridSender delivers email jobs through the SendGrid API.
type SendGridSender struct {
	apiKey   string
	from     string
	fromName string
}

func NewSendGridSender(apiKey, from, fromName string) *SendGridSender {
	return &SendGridSender{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *SendGridSender) Send(job mailqueue.EmailJob) error {
	from := sgmail.NewEmail(s.fromName, s.from)
	recipient := sgmail.NewEmail(job.ToName, job.To)

	message := sgmail.NewSingleEmail(from, job.Subject, recipient, job.Body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
