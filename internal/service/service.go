package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
)

// RegisterInput carries the writable user fields accepted at registration.
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

// UpdateUserInput carries optional profile changes; nil fields are untouched.
type UpdateUserInput struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Gender      *string `json:"gender"`
	Nationality *string `json:"nationality"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (access, refresh string, user *domain.User, err error)
	Refresh(ctx context.Context, refreshToken string) (access string, err error)
	// Authenticate resolves an access token to the acting user.
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}

type UserService interface {
	Get(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
	List(ctx context.Context, actor *domain.User) ([]domain.User, error)
}

type AdminService interface {
	ToggleCanPost(ctx context.Context, actor *domain.User, userID uuid.UUID) (*domain.User, error)
	CreateAdmin(ctx context.Context, actor *domain.User, in RegisterInput) (*domain.User, error)
	GetAdmin(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.User, error)
	UpdateAdmin(ctx context.Context, actor *domain.User, id uuid.UUID, in UpdateUserInput) (*domain.User, error)
	DeleteAdmin(ctx context.Context, actor *domain.User, id uuid.UUID) error
	ListAdmins(ctx context.Context, actor *domain.User) ([]domain.User, error)
}

type VerificationService interface {
	Submit(ctx context.Context, actor *domain.User, reason string) (*domain.VerificationRequest, error)
	Decide(ctx context.Context, actor *domain.User, requestID uuid.UUID, decision string) (*domain.VerificationRequest, error)
	Get(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.VerificationRequest, error)
	List(ctx context.Context, actor *domain.User) ([]domain.VerificationRequest, error)
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryService interface {
	Create(ctx context.Context, actor *domain.User, in CategoryInput) (*domain.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, in CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
}

type JobInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	WorkingArea string     `json:"working_area"`
	Longevity   string     `json:"longevity"`
	Type        string     `json:"type"`
	CategoryID  *uuid.UUID `json:"category"`
	IsActive    *bool      `json:"is_active"`
}

// UpdateJobInput carries optional job changes; nil fields are untouched.
// Location is a pointer so an explicit empty string clears it.
type UpdateJobInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	WorkingArea *string    `json:"working_area"`
	Longevity   *string    `json:"longevity"`
	Type        *string    `json:"type"`
	CategoryID  *uuid.UUID `json:"category"`
	IsActive    *bool      `json:"is_active"`
}

type JobService interface {
	Create(ctx context.Context, actor *domain.User, in JobInput) (*domain.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	ListMine(ctx context.Context, actor *domain.User) ([]domain.Job, error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, in UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
	AdminDelete(ctx context.Context, actor *domain.User, id uuid.UUID) error
}

type ApplicationEdit struct {
	Resume      *string `json:"resume"`
	CoverLetter *string `json:"cover_letter"`
}

type ApplicationService interface {
	Apply(ctx context.Context, actor *domain.User, jobID uuid.UUID, resume, coverLetter string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, actor *domain.User, id uuid.UUID, status string) (*domain.Application, error)
	Edit(ctx context.Context, actor *domain.User, id uuid.UUID, in ApplicationEdit) (*domain.Application, error)
	Withdraw(ctx context.Context, actor *domain.User, id uuid.UUID) error
	Get(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Application, error)
	ListForJob(ctx context.Context, actor *domain.User, jobID uuid.UUID) ([]domain.Application, error)
	ListMine(ctx context.Context, actor *domain.User) ([]domain.Application, error)
}

type NotificationService interface {
	List(ctx context.Context, actor *domain.User) ([]domain.Notification, error)
	// View returns the notification and marks it read.
	View(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Notification, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
}

type EmailService interface {
	SendApplicationAccepted(ctx context.Context, applicantEmail, applicantUsername, jobTitle string, appliedAt time.Time) error
	SendAcceptanceCopyToOwner(ctx context.Context, ownerEmail, ownerUsername, applicantUsername, applicantEmail, jobTitle string, appliedAt time.Time) error
	SendApplicationRejected(ctx context.Context, applicantEmail, applicantUsername, jobTitle string, appliedAt time.Time) error
	SendPendingVerificationReminder(ctx context.Context, adminEmail, adminUsername string, pendingCount int) error
}
