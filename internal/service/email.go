package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Menwuyelet/jobboard/internal/mailqueue"
)

// Enqueuer hands a composed email to the async dispatch queue. The concrete
// implementation is the Redis Streams producer; tests substitute a recorder.
type Enqueuer interface {
	Enqueue(ctx context.Context, job mailqueue.EmailJob) error
}

type emailService struct {
	queue Enqueuer
}

func NewEmailService(queue Enqueuer) EmailService {
	return &emailService{queue: queue}
}

func (s *emailService) SendApplicationAccepted(ctx context.Context, applicantEmail, applicantUsername, jobTitle string, appliedAt time.Time) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nCongratulations! You have been accepted for the job %s you applied for on %s.\n\n"+
			"Please wait patiently for the job owner to contact you.\n\nThanks for choosing our platform!",
		applicantUsername, jobTitle, appliedAt.Format("2006-01-02"))
	return s.queue.Enqueue(ctx, mailqueue.NewEmailJob(applicantEmail, applicantUsername, "Job Application Result", body))
}

func (s *emailService) SendAcceptanceCopyToOwner(ctx context.Context, ownerEmail, ownerUsername, applicantUsername, applicantEmail, jobTitle string, appliedAt time.Time) error {
	subject := fmt.Sprintf("You accepted the application of %s for your job %s", applicantUsername, jobTitle)
	body := fmt.Sprintf(
		"Hello %s,\n\nYou have accepted the application of %s for your job: %s.\n\n"+
			"Applicant details:\n- Name: %s\n- Email: %s\n- Applied at: %s\n\n"+
			"Please reach out to the applicant to proceed further.\n\nThank you for using our platform!",
		ownerUsername, applicantUsername, jobTitle,
		applicantUsername, applicantEmail, appliedAt.Format("2006-01-02"))
	return s.queue.Enqueue(ctx, mailqueue.NewEmailJob(ownerEmail, ownerUsername, subject, body))
}

func (s *emailService) SendApplicationRejected(ctx context.Context, applicantEmail, applicantUsername, jobTitle string, appliedAt time.Time) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nUnfortunately, your application for the job %s submitted on %s was not accepted.\n\n"+
			"We encourage you to explore other opportunities on our platform.\n\nThank you for using our platform!",
		applicantUsername, jobTitle, appliedAt.Format("2006-01-02"))
	return s.queue.Enqueue(ctx, mailqueue.NewEmailJob(applicantEmail, applicantUsername, "Job Application Result: Rejected", body))
}

func (s *emailService) SendPendingVerificationReminder(ctx context.Context, adminEmail, adminUsername string, pendingCount int) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nThere are %d verification requests that have been waiting for review for more than a day.\n\n"+
			"Please review them at your earliest convenience.",
		adminUsername, pendingCount)
	return s.queue.Enqueue(ctx, mailqueue.NewEmailJob(adminEmail, adminUsername, "Pending verification requests need review", body))
}
