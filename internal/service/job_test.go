package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/service"
)

func validJobInput() service.JobInput {
	return service.JobInput{
		Title:       "Backend Engineer",
		Description: "Build the platform",
		Location:    "Addis Ababa",
		WorkingArea: "onsite",
		Longevity:   "permanent",
		Type:        "full-time",
	}
}

func TestJobService_Create(t *testing.T) {
	ctx := context.Background()
	poster := &domain.User{ID: uuid.New(), Role: domain.RoleUser, CanPostAJob: true}

	t.Run("Success Increments Counter", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		catRepo := new(MockCategoryRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewJobService(jobRepo, catRepo, userRepo)

		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		userRepo.On("IncrementJobsPosted", ctx, poster.ID).Return(nil)

		job, err := svc.Create(ctx, poster, validJobInput())
		assert.NoError(t, err)
		assert.NotNil(t, job)
		assert.Equal(t, poster.ID, job.PostedBy)
		assert.True(t, job.IsActive)
		userRepo.AssertCalled(t, "IncrementJobsPosted", ctx, poster.ID)
	})

	t.Run("Without Permission", func(t *testing.T) {
		svc := service.NewJobService(new(MockJobRepo), new(MockCategoryRepo), new(MockUserRepo))

		unverified := &domain.User{ID: uuid.New(), Role: domain.RoleUser, CanPostAJob: false}
		job, err := svc.Create(ctx, unverified, validJobInput())
		assert.Error(t, err)
		assert.Nil(t, job)
		assert.True(t, domain.IsCode(err, domain.CodePermission))
	})

	t.Run("Remote With Location", func(t *testing.T) {
		svc := service.NewJobService(new(MockJobRepo), new(MockCategoryRepo), new(MockUserRepo))

		in := validJobInput()
		in.WorkingArea = "remote"
		job, err := svc.Create(ctx, poster, in)
		assert.Error(t, err)
		assert.Nil(t, job)
		assert.True(t, domain.IsCode(err, domain.CodeValidation))
	})

	t.Run("Unknown Category", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		catRepo := new(MockCategoryRepo)
		svc := service.NewJobService(jobRepo, catRepo, new(MockUserRepo))

		catID := uuid.New()
		catRepo.On("GetByID", ctx, catID).Return(nil, domain.E(domain.CodeNotFound, "category not found"))

		in := validJobInput()
		in.CategoryID = &catID
		job, err := svc.Create(ctx, poster, in)
		assert.Error(t, err)
		assert.Nil(t, job)
		assert.True(t, domain.IsCode(err, domain.CodeValidation))
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestJobService_Update(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: uuid.New(), Role: domain.RoleUser, CanPostAJob: true}
	jobID := uuid.New()

	existing := func() *domain.Job {
		return &domain.Job{
			ID:          jobID,
			Title:       "Backend Engineer",
			Description: "Build the platform",
			Location:    "Addis Ababa",
			WorkingArea: domain.WorkingAreaOnsite,
			Longevity:   domain.LongevityPermanent,
			Type:        domain.JobTypeFullTime,
			PostedBy:    owner.ID,
			IsActive:    true,
		}
	}

	t.Run("Owner Updates", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		svc := service.NewJobService(jobRepo, new(MockCategoryRepo), new(MockUserRepo))

		jobRepo.On("GetByID", ctx, jobID).Return(existing(), nil)
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		title := "Senior Backend Engineer"
		job, err := svc.Update(ctx, owner, jobID, service.UpdateJobInput{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, "Senior Backend Engineer", job.Title)
		assert.Equal(t, "Addis Ababa", job.Location)
	})

	t.Run("Switch To Remote Clears Location", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		svc := service.NewJobService(jobRepo, new(MockCategoryRepo), new(MockUserRepo))

		jobRepo.On("GetByID", ctx, jobID).Return(existing(), nil)
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		area := "remote"
		job, err := svc.Update(ctx, owner, jobID, service.UpdateJobInput{WorkingArea: &area})
		assert.NoError(t, err)
		assert.Equal(t, domain.WorkingAreaRemote, job.WorkingArea)
		assert.Empty(t, job.Location)
	})

	t.Run("Explicit Empty Location Clears It", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		svc := service.NewJobService(jobRepo, new(MockCategoryRepo), new(MockUserRepo))

		jobRepo.On("GetByID", ctx, jobID).Return(existing(), nil)
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		empty := ""
		job, err := svc.Update(ctx, owner, jobID, service.UpdateJobInput{Location: &empty})
		assert.NoError(t, err)
		assert.Empty(t, job.Location)
		assert.Equal(t, domain.WorkingAreaOnsite, job.WorkingArea)
	})

	t.Run("Remote With Explicit Location Rejected", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		svc := service.NewJobService(jobRepo, new(MockCategoryRepo), new(MockUserRepo))

		jobRepo.On("GetByID", ctx, jobID).Return(existing(), nil)

		area := "remote"
		loc := "Addis Ababa"
		job, err := svc.Update(ctx, owner, jobID, service.UpdateJobInput{WorkingArea: &area, Location: &loc})
		assert.Error(t, err)
		assert.Nil(t, job)
		assert.True(t, domain.IsCode(err, domain.CodeValidation))
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		svc := service.NewJobService(jobRepo, new(MockCategoryRepo), new(MockUserRepo))

		jobRepo.On("GetByID", ctx, jobID).Return(existing(), nil)

		stranger := &domain.User{ID: uuid.New(), Role: domain.RoleUser}
		title := "Hijacked"
		job, err := svc.Update(ctx, stranger, jobID, service.UpdateJobInput{Title: &title})
		assert.Error(t, err)
		assert.Nil(t, job)
		assert.True(t, domain.IsCode(err, domain.CodePermission))
	})
}

func TestJobService_AdminDelete(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()

	t.Run("Admin Deletes Any Job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		svc := service.NewJobService(jobRepo, new(MockCategoryRepo), new(MockUserRepo))

		jobRepo.On("GetByID", ctx, jobID).Return(&domain.Job{ID: jobID, PostedBy: uuid.New()}, nil)
		jobRepo.On("Delete", ctx, jobID).Return(nil)

		admin := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
		assert.NoError(t, svc.AdminDelete(ctx, admin, jobID))
	})

	t.Run("Non-Admin Forbidden", func(t *testing.T) {
		svc := service.NewJobService(new(MockJobRepo), new(MockCategoryRepo), new(MockUserRepo))

		user := &domain.User{ID: uuid.New(), Role: domain.RoleUser}
		err := svc.AdminDelete(ctx, user, jobID)
		assert.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.CodePermission))
	})
}
