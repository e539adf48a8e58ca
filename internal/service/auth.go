package service

import (
	"context"
	"strings"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/repository"
	"github.com/Menwuyelet/jobboard/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// newUserFromInput validates registration input and builds an unsaved user.
func newUserFromInput(in RegisterInput, role domain.Role) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(strings.ToLower(in.Email))

	if email == "" {
		return nil, domain.E(domain.CodeValidation, "email must be provided")
	}
	if !strings.Contains(email, "@") {
		return nil, domain.E(domain.CodeValidation, "email is not valid")
	}
	if username == "" {
		return nil, domain.E(domain.CodeValidation, "username must be provided")
	}
	switch domain.Gender(in.Gender) {
	case domain.GenderMale, domain.GenderFemale, "":
	default:
		return nil, domain.E(domain.CodeValidation, "gender must be male or female")
	}
	if err := security.ValidatePasswordComplexity(in.Password); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Username:     username,
		Email:        email,
		Role:         role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Gender:       domain.Gender(in.Gender),
		Nationality:  in.Nationality,
		CanPostAJob:  role == domain.RoleAdmin, // admins may post from day one
		IsActive:     true,
		PasswordHash: hash,
	}, nil
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	logger.EnterMethod("authService.Register", "email", in.Email)

	user, err := newUserFromInput(in, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ExitMethodWithError("authService.Register", err, "email", in.Email)
		return nil, err
	}

	logger.ExitMethod("authService.Register", "userID", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", "", nil, domain.E(domain.CodeUnauthorized, "invalid email or password")
	}
	if !security.CheckPassword(user.PasswordHash, password) {
		return "", "", nil, domain.E(domain.CodeUnauthorized, "invalid email or password")
	}
	if !user.IsActive {
		return "", "", nil, domain.E(domain.CodeUnauthorized, "account is disabled")
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, user, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", domain.Wrap(domain.CodeUnauthorized, "invalid refresh token", err)
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", domain.E(domain.CodeUnauthorized, "wrong token type for this endpoint")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", domain.E(domain.CodeUnauthorized, "invalid refresh token")
	}
	return s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.tokens.ValidateToken(accessToken)
	if err != nil {
		return nil, domain.Wrap(domain.CodeUnauthorized, "invalid token", err)
	}
	if claims.Type != security.TokenTypeAccess {
		return nil, domain.E(domain.CodeUnauthorized, "wrong token type for this endpoint")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.E(domain.CodeUnauthorized, "user no longer exists")
	}
	if !user.IsActive {
		return nil, domain.E(domain.CodeUnauthorized, "account is disabled")
	}
	return user, nil
}
