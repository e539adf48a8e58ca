package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/service"
)

func TestApplicationService_Apply(t *testing.T) {
	ctx := context.Background()
	applicant := &domain.User{ID: uuid.New(), Username: "applicant", Role: domain.RoleUser}
	ownerID := uuid.New()
	jobID := uuid.New()
	job := &domain.Job{ID: jobID, Title: "Backend Engineer", PostedBy: ownerID, IsActive: true}

	t.Run("Success Notifies Owner", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		noteRepo := new(MockNotificationRepo)
		repos := testRepos(nil, nil, nil, jobRepo, appRepo, noteRepo)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, new(MockEmailService))

		jobRepo.On("GetByID", ctx, jobID).Return(job, nil)
		appRepo.On("Exists", ctx, jobID, applicant.ID).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)
		noteRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == ownerID &&
				n.Message == "applicant applied to your job: Backend Engineer"
		})).Return(nil)

		app, err := svc.Apply(ctx, applicant, jobID, "resume text", "cover letter text")
		assert.NoError(t, err)
		assert.NotNil(t, app)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, applicant.ID, app.UserID)
	})

	t.Run("Duplicate Application", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		repos := testRepos(nil, nil, nil, jobRepo, appRepo, nil)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, new(MockEmailService))

		jobRepo.On("GetByID", ctx, jobID).Return(job, nil)
		appRepo.On("Exists", ctx, jobID, applicant.ID).Return(true, nil)

		app, err := svc.Apply(ctx, applicant, jobID, "resume", "cover")
		assert.Error(t, err)
		assert.Nil(t, app)
		assert.True(t, domain.IsCode(err, domain.CodeConflict))
	})

	t.Run("Missing Resume", func(t *testing.T) {
		repos := testRepos(nil, nil, nil, nil, nil, nil)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, new(MockEmailService))

		app, err := svc.Apply(ctx, applicant, jobID, "  ", "cover")
		assert.Error(t, err)
		assert.Nil(t, app)
		assert.True(t, domain.IsCode(err, domain.CodeValidation))
	})

	t.Run("Inactive Job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		repos := testRepos(nil, nil, nil, jobRepo, nil, nil)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, new(MockEmailService))

		inactive := &domain.Job{ID: jobID, Title: "Closed", PostedBy: ownerID, IsActive: false}
		jobRepo.On("GetByID", ctx, jobID).Return(inactive, nil)

		app, err := svc.Apply(ctx, applicant, jobID, "resume", "cover")
		assert.Error(t, err)
		assert.Nil(t, app)
		assert.True(t, domain.IsCode(err, domain.CodeValidation))
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: uuid.New(), Username: "owner", Email: "owner@test.com", Role: domain.RoleUser}
	applicantID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	appliedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	job := &domain.Job{ID: jobID, Title: "Backend Engineer", PostedBy: owner.ID, IsActive: true}
	applicant := &domain.User{ID: applicantID, Username: "applicant", Email: "applicant@test.com", Role: domain.RoleUser}

	pendingApp := func() *domain.Application {
		return &domain.Application{
			ID:        appID,
			JobID:     jobID,
			UserID:    applicantID,
			Status:    domain.ApplicationStatusPending,
			AppliedAt: appliedAt,
		}
	}

	t.Run("Accept Fan-Out", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		noteRepo := new(MockNotificationRepo)
		emailSvc := new(MockEmailService)
		repos := testRepos(userRepo, nil, nil, jobRepo, appRepo, noteRepo)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, emailSvc)

		appRepo.On("GetByID", ctx, appID).Return(pendingApp(), nil)
		jobRepo.On("GetByID", ctx, jobID).Return(job, nil)
		userRepo.On("GetByID", ctx, applicantID).Return(applicant, nil)
		appRepo.On("UpdateStatus", ctx, appID, domain.ApplicationStatusAccepted).Return(nil)
		userRepo.On("IncrementNumberOfHires", ctx, owner.ID).Return(nil)
		noteRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == applicantID &&
				n.Message == "Your application for the job: Backend Engineer has been reviewed. "+
					"The job owner accepted your application. Please wait for an email with further details. Thank you!"
		})).Return(nil)
		emailSvc.On("SendApplicationAccepted", ctx, "applicant@test.com", "applicant", "Backend Engineer", appliedAt).Return(nil)
		emailSvc.On("SendAcceptanceCopyToOwner", ctx, "owner@test.com", "owner", "applicant", "applicant@test.com", "Backend Engineer", appliedAt).Return(nil)

		updated, err := svc.UpdateStatus(ctx, owner, appID, "accepted")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusAccepted, updated.Status)
		emailSvc.AssertExpectations(t)
		userRepo.AssertCalled(t, "IncrementNumberOfHires", ctx, owner.ID)
	})

	t.Run("Reject Fan-Out", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		noteRepo := new(MockNotificationRepo)
		emailSvc := new(MockEmailService)
		repos := testRepos(userRepo, nil, nil, jobRepo, appRepo, noteRepo)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, emailSvc)

		appRepo.On("GetByID", ctx, appID).Return(pendingApp(), nil)
		jobRepo.On("GetByID", ctx, jobID).Return(job, nil)
		userRepo.On("GetByID", ctx, applicantID).Return(applicant, nil)
		appRepo.On("UpdateStatus", ctx, appID, domain.ApplicationStatusRejected).Return(nil)
		noteRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == applicantID &&
				n.Message == "Your application for the job: Backend Engineer has been reviewed. "+
					"The job owner rejected your application. We encourage you to explore other jobs. "+
					"Thank you for using our platform!"
		})).Return(nil)
		emailSvc.On("SendApplicationRejected", ctx, "applicant@test.com", "applicant", "Backend Engineer", appliedAt).Return(nil)

		updated, err := svc.UpdateStatus(ctx, owner, appID, "rejected")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusRejected, updated.Status)
		emailSvc.AssertExpectations(t)
		emailSvc.AssertNotCalled(t, "SendAcceptanceCopyToOwner",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "IncrementNumberOfHires", mock.Anything, mock.Anything)
	})

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		repos := testRepos(userRepo, nil, nil, jobRepo, appRepo, nil)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, new(MockEmailService))

		stranger := &domain.User{ID: uuid.New(), Role: domain.RoleUser}
		appRepo.On("GetByID", ctx, appID).Return(pendingApp(), nil)
		jobRepo.On("GetByID", ctx, jobID).Return(job, nil)

		updated, err := svc.UpdateStatus(ctx, stranger, appID, "accepted")
		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.True(t, domain.IsCode(err, domain.CodePermission))
	})

	t.Run("Concurrent Decide Loses Race", func(t *testing.T) {
		// Both deciders can read the application while it is still pending;
		// the store's compare-and-set rejects the second transition, so the
		// loser must produce no notification, no emails, and no hire count.
		userRepo := new(MockUserRepo)
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		noteRepo := new(MockNotificationRepo)
		emailSvc := new(MockEmailService)
		repos := testRepos(userRepo, nil, nil, jobRepo, appRepo, noteRepo)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, emailSvc)

		appRepo.On("GetByID", ctx, appID).Return(pendingApp(), nil)
		jobRepo.On("GetByID", ctx, jobID).Return(job, nil)
		userRepo.On("GetByID", ctx, applicantID).Return(applicant, nil)
		appRepo.On("UpdateStatus", ctx, appID, domain.ApplicationStatusAccepted).
			Return(domain.E(domain.CodeConflict, "application has already been decided"))

		updated, err := svc.UpdateStatus(ctx, owner, appID, "accepted")
		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.True(t, domain.IsCode(err, domain.CodeConflict))
		noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "IncrementNumberOfHires", mock.Anything, mock.Anything)
		emailSvc.AssertNotCalled(t, "SendApplicationAccepted",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		emailSvc.AssertNotCalled(t, "SendAcceptanceCopyToOwner",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already Decided", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		repos := testRepos(userRepo, nil, nil, jobRepo, appRepo, nil)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, new(MockEmailService))

		decided := pendingApp()
		decided.Status = domain.ApplicationStatusAccepted
		appRepo.On("GetByID", ctx, appID).Return(decided, nil)
		jobRepo.On("GetByID", ctx, jobID).Return(job, nil)

		updated, err := svc.UpdateStatus(ctx, owner, appID, "rejected")
		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.True(t, domain.IsCode(err, domain.CodeConflict))
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApplicationService_Edit(t *testing.T) {
	ctx := context.Background()
	applicant := &domain.User{ID: uuid.New(), Role: domain.RoleUser}
	appID := uuid.New()

	t.Run("Pending Editable", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		repos := testRepos(nil, nil, nil, nil, appRepo, nil)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, new(MockEmailService))

		appRepo.On("GetByID", ctx, appID).Return(&domain.Application{
			ID:     appID,
			UserID: applicant.ID,
			Status: domain.ApplicationStatusPending,
			Resume: "old",
		}, nil)
		appRepo.On("Update", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		newResume := "new resume"
		updated, err := svc.Edit(ctx, applicant, appID, service.ApplicationEdit{Resume: &newResume})
		assert.NoError(t, err)
		assert.Equal(t, "new resume", updated.Resume)
	})

	t.Run("Decided Not Editable", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		repos := testRepos(nil, nil, nil, nil, appRepo, nil)
		svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, new(MockEmailService))

		appRepo.On("GetByID", ctx, appID).Return(&domain.Application{
			ID:     appID,
			UserID: applicant.ID,
			Status: domain.ApplicationStatusRejected,
		}, nil)

		newResume := "new resume"
		updated, err := svc.Edit(ctx, applicant, appID, service.ApplicationEdit{Resume: &newResume})
		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.True(t, domain.IsCode(err, domain.CodeConflict))
	})
}

func TestApplicationService_Withdraw(t *testing.T) {
	ctx := context.Background()
	applicant := &domain.User{ID: uuid.New(), Role: domain.RoleUser}
	appID := uuid.New()

	appRepo := new(MockApplicationRepo)
	repos := testRepos(nil, nil, nil, nil, appRepo, nil)
	svc := service.NewApplicationService(repos, &fakeTx{repos: repos}, new(MockEmailService))

	appRepo.On("GetByID", ctx, appID).Return(&domain.Application{
		ID:     appID,
		UserID: applicant.ID,
		Status: domain.ApplicationStatusPending,
	}, nil)
	appRepo.On("Delete", ctx, appID).Return(nil)

	err := svc.Withdraw(ctx, applicant, appID)
	assert.NoError(t, err)
	appRepo.AssertCalled(t, "Delete", ctx, appID)
}
