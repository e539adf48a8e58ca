package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	SetCanPost(ctx context.Context, id uuid.UUID, canPost bool) error
	IncrementJobsPosted(ctx context.Context, id uuid.UUID) error
	IncrementNumberOfHires(ctx context.Context, id uuid.UUID) error
}

type VerificationRequestRepository interface {
	Create(ctx context.Context, req *domain.VerificationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VerificationRequest, error)
	HasPending(ctx context.Context, userID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VerificationStatus) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VerificationRequest, error)
	ListAll(ctx context.Context) ([]domain.VerificationRequest, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.VerificationRequest, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, cat *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, cat *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Job, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	Exists(ctx context.Context, jobID, userID uuid.UUID) (bool, error)
	Update(ctx context.Context, app *domain.Application) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Application, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	GetByID(ctx context.Context, id, recipientID uuid.UUID) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, recipientID uuid.UUID) error
	Delete(ctx context.Context, id, recipientID uuid.UUID) error
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Repositories bundles every repository bound to the same database handle.
// Inside a transaction the bundle is bound to the transaction instead, so a
// workflow mutation and its derived notification rows commit together.
type Repositories struct {
	Users         UserRepository
	Verifications VerificationRequestRepository
	Categories    CategoryRepository
	Jobs          JobRepository
	Applications  ApplicationRepository
	Notifications NotificationRepository
}

// Transactor runs fn against a transaction-bound Repositories bundle and
// commits only if fn returns nil.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}
