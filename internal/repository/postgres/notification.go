package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type notificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	logger.EnterMethod("notificationRepository.Create", "recipientID", n.RecipientID)

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.CreatedAt = time.Now().UTC()

	query := `INSERT INTO notifications (id, application_id, recipient_id, message, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	logger.DatabaseCall("INSERT", "notifications", "recipientID", n.RecipientID)

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.ApplicationID, n.RecipientID, n.Message, n.IsRead, n.CreatedAt)
	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "recipientID", n.RecipientID)
		return err
	}
	logger.ExitMethod("notificationRepository.Create", "notificationID", n.ID)
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id, recipientID uuid.UUID) (*domain.Notification, error) {
	n := &domain.Notification{}
	query := `SELECT id, application_id, recipient_id, message, is_read, created_at
	          FROM notifications WHERE id = $1 AND recipient_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, recipientID).Scan(
		&n.ID, &n.ApplicationID, &n.RecipientID, &n.Message, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, mapLookupError(err, "notification not found")
	}
	return n, nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error) {
	query := `SELECT id, application_id, recipient_id, message, is_read, created_at
	          FROM notifications WHERE recipient_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.ApplicationID, &n.RecipientID, &n.Message,
			&n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, recipientID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "notification not found")
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id, recipientID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "notification not found")
	}
	return nil
}

func (r *notificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE is_read = TRUE AND created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
