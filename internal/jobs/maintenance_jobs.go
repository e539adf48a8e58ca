package jobs

import (
	"context"
	"time"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
)

// Verification requests older than this without a decision trigger the
// admin reminder email.
const pendingVerificationAge = 48 * time.Hour

// RemindPendingVerifications emails every admin when verification
// requests have been sitting undecided for too long.
func (jr *JobRunner) RemindPendingVerifications() {
	jr.runWithRecovery("RemindPendingVerifications", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-pendingVerificationAge)

		stale, err := jr.repos.Verifications.ListPendingOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale verification requests", "error", err)
			return
		}
		if len(stale) == 0 {
			logger.Debug("No stale verification requests found")
			return
		}

		admins, err := jr.repos.Users.ListByRole(ctx, domain.RoleAdmin)
		if err != nil {
			logger.Error("Failed to list admins for reminder", "error", err)
			return
		}

		sent := 0
		for _, admin := range admins {
			if err := jr.email.SendPendingVerificationReminder(ctx, admin.Email, admin.Username, len(stale)); err != nil {
				logger.Error("Failed to send verification reminder",
					"adminID", admin.ID,
					"email", admin.Email,
					"error", err)
				continue
			}
			sent++
		}
		logger.Info("Verification reminders queued", "pending", len(stale), "admins", sent)
	})
}

// Read notifications older than this are purged.
const readNotificationRetention = 30 * 24 * time.Hour

// PurgeReadNotifications deletes read notifications past the retention
// window.
func (jr *JobRunner) PurgeReadNotifications() {
	jr.runWithRecovery("PurgeReadNotifications", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-readNotificationRetention)

		deleted, err := jr.repos.Notifications.DeleteReadOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge read notifications", "error", err)
			return
		}
		logger.Info("Purged read notifications", "deleted", deleted)
	})
}
