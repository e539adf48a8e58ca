package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/access"
	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

// ToggleCanPost flips the posting permission unconditionally. It is an
// idempotent toggle, not a one-way grant, and deliberately independent of any
// verification request: an admin can grant or revoke posting rights whether
// or not a request was ever submitted or approved.
func (s *adminService) ToggleCanPost(ctx context.Context, actor *domain.User, userID uuid.UUID) (*domain.User, error) {
	if !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "only admins may change posting permission")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleUser {
		return nil, domain.E(domain.CodeNotFound, "user not found")
	}

	if err := s.userRepo.SetCanPost(ctx, user.ID, !user.CanPostAJob); err != nil {
		return nil, err
	}
	user.CanPostAJob = !user.CanPostAJob

	logger.Info("posting permission toggled", "userID", user.ID, "can_post_ajob", user.CanPostAJob, "by", actor.ID)
	return user, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, actor *domain.User, in RegisterInput) (*domain.User, error) {
	if !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "only admins may create admin accounts")
	}

	user, err := newUserFromInput(in, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminService) getAdmin(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.User, error) {
	if !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "only admins may manage admin accounts")
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleAdmin {
		return nil, domain.E(domain.CodeNotFound, "admin not found")
	}
	return user, nil
}

func (s *adminService) GetAdmin(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.User, error) {
	return s.getAdmin(ctx, actor, id)
}

func (s *adminService) UpdateAdmin(ctx context.Context, actor *domain.User, id uuid.UUID, in UpdateUserInput) (*domain.User, error) {
	user, err := s.getAdmin(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := applyUserUpdate(user, in); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	user, err := s.getAdmin(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, user.ID)
}

func (s *adminService) ListAdmins(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "only admins may list admin accounts")
	}
	return s.userRepo.ListByRole(ctx, domain.RoleAdmin)
}
