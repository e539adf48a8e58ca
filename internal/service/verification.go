package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/access"
	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type verificationService struct {
	repos repository.Repositories
	tx    repository.Transactor
}

func NewVerificationService(repos repository.Repositories, tx repository.Transactor) VerificationService {
	return &verificationService{repos: repos, tx: tx}
}

// Submit creates a pending verification request and notifies every admin in
// the same transaction. The pre-check keeps the common duplicate case cheap;
// the partial unique index settles concurrent submits.
func (s *verificationService) Submit(ctx context.Context, actor *domain.User, reason string) (*domain.VerificationRequest, error) {
	logger.EnterMethod("verificationService.Submit", "userID", actor.ID)

	pending, err := s.repos.Verifications.HasPending(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.E(domain.CodeConflict, "a pending verification request already exists")
	}

	req := &domain.VerificationRequest{
		UserID: actor.ID,
		Reason: reason,
		Status: domain.VerificationStatusPending,
	}

	err = s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		if err := r.Verifications.Create(ctx, req); err != nil {
			return err
		}
		admins, err := r.Users.ListByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		for i := range admins {
			note := &domain.Notification{
				RecipientID: admins[i].ID,
				Message:     fmt.Sprintf("%s requested verification.", actor.Email),
			}
			if err := r.Notifications.Create(ctx, note); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("verificationService.Submit", err, "userID", actor.ID)
		return nil, err
	}

	logger.ExitMethod("verificationService.Submit", "requestID", req.ID)
	return req, nil
}

// Decide moves a pending request to approved or denied. Requests already
// decided are rejected outright rather than silently re-transitioned.
func (s *verificationService) Decide(ctx context.Context, actor *domain.User, requestID uuid.UUID, decision string) (*domain.VerificationRequest, error) {
	if !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "only admins may decide verification requests")
	}

	status, err := domain.ParseVerificationDecision(decision)
	if err != nil {
		return nil, err
	}

	req, err := s.repos.Verifications.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.IsPending() {
		return nil, domain.E(domain.CodeConflict, "verification request has already been decided")
	}

	err = s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		if err := r.Verifications.UpdateStatus(ctx, req.ID, status); err != nil {
			return err
		}
		note := &domain.Notification{
			RecipientID: req.UserID,
			Message:     fmt.Sprintf("Your verification request has been %s.", status),
		}
		return r.Notifications.Create(ctx, note)
	})
	if err != nil {
		return nil, err
	}

	req.Status = status
	return req, nil
}

func (s *verificationService) Get(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.VerificationRequest, error) {
	req, err := s.repos.Verifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.IsAdmin(actor) && req.UserID != actor.ID {
		// Hide existence from non-owners.
		return nil, domain.E(domain.CodeNotFound, "verification request not found")
	}
	return req, nil
}

func (s *verificationService) List(ctx context.Context, actor *domain.User) ([]domain.VerificationRequest, error) {
	if access.IsAdmin(actor) {
		return s.repos.Verifications.ListAll(ctx)
	}
	return s.repos.Verifications.ListByUser(ctx, actor.ID)
}
