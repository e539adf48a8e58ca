package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/access"
	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/repository"
	"github.com/Menwuyelet/jobboard/internal/security"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// getScoped loads a regular-role user visible to the actor. Admin accounts
// are managed through AdminService and are invisible here.
func (s *userService) getScoped(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleUser {
		return nil, domain.E(domain.CodeNotFound, "user not found")
	}
	if !access.IsSelf(actor, user) && !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "you may only manage your own account")
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.User, error) {
	return s.getScoped(ctx, actor, id)
}

// applyUserUpdate copies the provided fields onto user, validating as it goes.
func applyUserUpdate(user *domain.User, in UpdateUserInput) error {
	if in.Username != nil {
		if strings.TrimSpace(*in.Username) == "" {
			return domain.E(domain.CodeValidation, "username cannot be empty")
		}
		user.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if email == "" || !strings.Contains(email, "@") {
			return domain.E(domain.CodeValidation, "email is not valid")
		}
		user.Email = email
	}
	if in.Gender != nil {
		switch domain.Gender(*in.Gender) {
		case domain.GenderMale, domain.GenderFemale:
			user.Gender = domain.Gender(*in.Gender)
		default:
			return domain.E(domain.CodeValidation, "gender must be male or female")
		}
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Nationality != nil {
		user.Nationality = *in.Nationality
	}
	if in.Password != nil {
		if err := security.ValidatePasswordComplexity(*in.Password); err != nil {
			return err
		}
		hash, err := security.HashPassword(*in.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return nil
}

func (s *userService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, in UpdateUserInput) (*domain.User, error) {
	user, err := s.getScoped(ctx, actor, id)
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

func (s *userService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	user, err := s.getScoped(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, user.ID)
}

func (s *userService) List(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "only admins may list users")
	}
	return s.userRepo.ListByRole(ctx, domain.RoleUser)
}
