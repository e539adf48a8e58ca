package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/access"
	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type jobService struct {
	jobRepo  repository.JobRepository
	catRepo  repository.CategoryRepository
	userRepo repository.UserRepository
}

func NewJobService(jobRepo repository.JobRepository, catRepo repository.CategoryRepository, userRepo repository.UserRepository) JobService {
	return &jobService{jobRepo: jobRepo, catRepo: catRepo, userRepo: userRepo}
}

func (s *jobService) Create(ctx context.Context, actor *domain.User, in JobInput) (*domain.Job, error) {
	logger.EnterMethod("jobService.Create", "userID", actor.ID, "title", in.Title)

	if !access.CanPost(actor) {
		return nil, domain.E(domain.CodePermission, "you are not allowed to post jobs; complete verification first")
	}

	job := &domain.Job{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		WorkingArea: domain.WorkingArea(in.WorkingArea),
		Longevity:   domain.Longevity(in.Longevity),
		Type:        domain.JobType(in.Type),
		CategoryID:  in.CategoryID,
		PostedBy:    actor.ID,
		IsActive:    true,
	}
	if in.IsActive != nil {
		job.IsActive = *in.IsActive
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if job.CategoryID != nil {
		if _, err := s.catRepo.GetByID(ctx, *job.CategoryID); err != nil {
			if domain.IsCode(err, domain.CodeNotFound) {
				return nil, domain.E(domain.CodeValidation, "category does not exist")
			}
			return nil, err
		}
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	if err := s.userRepo.IncrementJobsPosted(ctx, actor.ID); err != nil {
		// The posting itself succeeded; a stale counter is tolerable.
		logger.Warn("failed to increment jobs_posted", "userID", actor.ID, "error", err)
	}

	logger.ExitMethod("jobService.Create", "jobID", job.ID)
	return job, nil
}

func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobService) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	return s.jobRepo.List(ctx, filter)
}

func (s *jobService) ListMine(ctx context.Context, actor *domain.User) ([]domain.Job, error) {
	return s.jobRepo.ListByOwner(ctx, actor.ID)
}

func (s *jobService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, in UpdateJobInput) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.IsJobOwner(actor, job) {
		return nil, domain.E(domain.CodePermission, "you may only edit your own jobs")
	}

	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.WorkingArea != nil {
		job.WorkingArea = domain.WorkingArea(*in.WorkingArea)
	}
	if in.Longevity != nil {
		job.Longevity = domain.Longevity(*in.Longevity)
	}
	if in.Type != nil {
		job.Type = domain.JobType(*in.Type)
	}
	if in.Location != nil {
		job.Location = *in.Location
	} else if job.WorkingArea == domain.WorkingAreaRemote {
		// Switching to remote without an explicit location clears the old one.
		job.Location = ""
	}
	if in.CategoryID != nil {
		if _, err := s.catRepo.GetByID(ctx, *in.CategoryID); err != nil {
			if domain.IsCode(err, domain.CodeNotFound) {
				return nil, domain.E(domain.CodeValidation, "category does not exist")
			}
			return nil, err
		}
		job.CategoryID = in.CategoryID
	}
	if in.IsActive != nil {
		job.IsActive = *in.IsActive
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.IsJobOwner(actor, job) {
		return domain.E(domain.CodePermission, "you may only delete your own jobs")
	}
	return s.jobRepo.Delete(ctx, id)
}

func (s *jobService) AdminDelete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	if !access.IsAdmin(actor) {
		return domain.E(domain.CodePermission, "admin access required")
	}
	if _, err := s.jobRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.jobRepo.Delete(ctx, id)
}
