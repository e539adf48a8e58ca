package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) List(ctx context.Context, actor *domain.User) ([]domain.Notification, error) {
	return s.noteRepo.ListByRecipient(ctx, actor.ID)
}

// View fetches a notification and marks it read. Every lookup is scoped by
// recipient, so another user's notification surfaces as not found rather
// than forbidden.
func (s *notificationService) View(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Notification, error) {
	note, err := s.noteRepo.GetByID(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if !note.IsRead {
		if err := s.noteRepo.MarkAsRead(ctx, id, actor.ID); err != nil {
			logger.Warn("failed to mark notification read", "notificationID", id, "error", err)
		} else {
			note.IsRead = true
		}
	}
	return note, nil
}

func (s *notificationService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	return s.noteRepo.Delete(ctx, id, actor.ID)
}
