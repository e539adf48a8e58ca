package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/mailqueue"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) SetCanPost(ctx context.Context, id uuid.UUID, canPost bool) error {
	args := m.Called(ctx, id, canPost)
	return args.Error(0)
}
func (m *MockUserRepo) IncrementJobsPosted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) IncrementNumberOfHires(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVerificationRepo
type MockVerificationRepo struct {
	mock.Mock
}

func (m *MockVerificationRepo) Create(ctx context.Context, req *domain.VerificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockVerificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VerificationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationRequest), args.Error(1)
}
func (m *MockVerificationRepo) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockVerificationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VerificationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockVerificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VerificationRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.VerificationRequest), args.Error(1)
}
func (m *MockVerificationRepo) ListAll(ctx context.Context) ([]domain.VerificationRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VerificationRequest), args.Error(1)
}
func (m *MockVerificationRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.VerificationRequest, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.VerificationRequest), args.Error(1)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, cat *domain.Category) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) Update(ctx context.Context, cat *domain.Category) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}
func (m *MockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCategoryRepo) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockJobRepo
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockJobRepo) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Job, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Job), args.Error(1)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, jobID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) GetByID(ctx context.Context, id, recipientID uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, recipientID uuid.UUID) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}
func (m *MockNotificationRepo) Delete(ctx context.Context, id, recipientID uuid.UUID) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}
func (m *MockNotificationRepo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApplicationAccepted(ctx context.Context, applicantEmail, applicantUsername, jobTitle string, appliedAt time.Time) error {
	args := m.Called(ctx, applicantEmail, applicantUsername, jobTitle, appliedAt)
	return args.Error(0)
}
func (m *MockEmailService) SendAcceptanceCopyToOwner(ctx context.Context, ownerEmail, ownerUsername, applicantUsername, applicantEmail, jobTitle string, appliedAt time.Time) error {
	args := m.Called(ctx, ownerEmail, ownerUsername, applicantUsername, applicantEmail, jobTitle, appliedAt)
	return args.Error(0)
}
func (m *MockEmailService) SendApplicationRejected(ctx context.Context, applicantEmail, applicantUsername, jobTitle string, appliedAt time.Time) error {
	args := m.Called(ctx, applicantEmail, applicantUsername, jobTitle, appliedAt)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingVerificationReminder(ctx context.Context, adminEmail, adminUsername string, pendingCount int) error {
	args := m.Called(ctx, adminEmail, adminUsername, pendingCount)
	return args.Error(0)
}

// recordingQueue captures enqueued email jobs for assertions.
type recordingQueue struct {
	jobs []mailqueue.EmailJob
}

func (q *recordingQueue) Enqueue(_ context.Context, job mailqueue.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

// fakeTx runs the transactional closure against the given repositories
// without a real database.
type fakeTx struct {
	repos repository.Repositories
}

func (f *fakeTx) WithinTx(_ context.Context, fn func(r repository.Repositories) error) error {
	return fn(f.repos)
}

func testRepos(users *MockUserRepo, verifications *MockVerificationRepo, categories *MockCategoryRepo, jobs *MockJobRepo, applications *MockApplicationRepo, notifications *MockNotificationRepo) repository.Repositories {
	return repository.Repositories{
		Users:         users,
		Verifications: verifications,
		Categories:    categories,
		Jobs:          jobs,
		Applications:  applications,
		Notifications: notifications,
	}
}
