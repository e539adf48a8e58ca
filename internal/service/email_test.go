package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Menwuyelet/jobboard/internal/service"
)

func TestEmailService_Compose(t *testing.T) {
	ctx := context.Background()
	appliedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Acceptance Email", func(t *testing.T) {
		queue := &recordingQueue{}
		svc := service.NewEmailService(queue)

		err := svc.SendApplicationAccepted(ctx, "applicant@test.com", "applicant", "Backend Engineer", appliedAt)
		assert.NoError(t, err)
		assert.Len(t, queue.jobs, 1)
		job := queue.jobs[0]
		assert.Equal(t, "applicant@test.com", job.To)
		assert.Equal(t, "Job Application Result", job.Subject)
		assert.Contains(t, job.Body, "Backend Engineer")
		assert.Contains(t, job.Body, "2026-08-01")
		assert.Contains(t, job.Body, "Congratulations")
	})

	t.Run("Owner Copy", func(t *testing.T) {
		queue := &recordingQueue{}
		svc := service.NewEmailService(queue)

		err := svc.SendAcceptanceCopyToOwner(ctx, "owner@test.com", "owner", "applicant", "applicant@test.com", "Backend Engineer", appliedAt)
		assert.NoError(t, err)
		assert.Len(t, queue.jobs, 1)
		job := queue.jobs[0]
		assert.Equal(t, "owner@test.com", job.To)
		assert.Equal(t, "You accepted the application of applicant for your job Backend Engineer", job.Subject)
		assert.Contains(t, job.Body, "applicant@test.com")
	})

	t.Run("Rejection Email", func(t *testing.T) {
		queue := &recordingQueue{}
		svc := service.NewEmailService(queue)

		err := svc.SendApplicationRejected(ctx, "applicant@test.com", "applicant", "Backend Engineer", appliedAt)
		assert.NoError(t, err)
		assert.Len(t, queue.jobs, 1)
		assert.Equal(t, "Job Application Result: Rejected", queue.jobs[0].Subject)
	})

	t.Run("Verification Reminder", func(t *testing.T) {
		queue := &recordingQueue{}
		svc := service.NewEmailService(queue)

		err := svc.SendPendingVerificationReminder(ctx, "admin@test.com", "admin", 3)
		assert.NoError(t, err)
		assert.Len(t, queue.jobs, 1)
		assert.Equal(t, "Pending verification requests need review", queue.jobs[0].Subject)
		assert.Contains(t, queue.jobs[0].Body, "3 verification requests")
	})
}
