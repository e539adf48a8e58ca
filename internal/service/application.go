package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/access"
	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type applicationService struct {
	repos    repository.Repositories
	tx       repository.Transactor
	emailSvc EmailService
}

func NewApplicationService(repos repository.Repositories, tx repository.Transactor, emailSvc EmailService) ApplicationService {
	return &applicationService{repos: repos, tx: tx, emailSvc: emailSvc}
}

// Apply creates a pending application and notifies the job owner in-app
// within the same transaction. Duplicate (job, user) pairs fail with a
// conflict backed by the unique constraint.
func (s *applicationService) Apply(ctx context.Context, actor *domain.User, jobID uuid.UUID, resume, coverLetter string) (*domain.Application, error) {
	logger.EnterMethod("applicationService.Apply", "userID", actor.ID, "jobID", jobID)

	if strings.TrimSpace(resume) == "" {
		return nil, domain.E(domain.CodeValidation, "resume is required")
	}
	if strings.TrimSpace(coverLetter) == "" {
		return nil, domain.E(domain.CodeValidation, "cover_letter is required")
	}

	job, err := s.repos.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, domain.E(domain.CodeValidation, "job is no longer active")
	}

	exists, err := s.repos.Applications.Exists(ctx, jobID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.E(domain.CodeConflict, "you have already applied to this job")
	}

	app := &domain.Application{
		JobID:       jobID,
		UserID:      actor.ID,
		Status:      domain.ApplicationStatusPending,
		Resume:      resume,
		CoverLetter: coverLetter,
	}

	err = s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}
		note := &domain.Notification{
			ApplicationID: &app.ID,
			RecipientID:   job.PostedBy,
			Message:       fmt.Sprintf("%s applied to your job: %s", actor.Username, job.Title),
		}
		return r.Notifications.Create(ctx, note)
	})
	if err != nil {
		logger.ExitMethodWithError("applicationService.Apply", err, "jobID", jobID)
		return nil, err
	}

	logger.ExitMethod("applicationService.Apply", "applicationID", app.ID)
	return app, nil
}

// UpdateStatus transitions a pending application to accepted or rejected.
// The in-app notification commits with the status change; emails are
// enqueued only after the transaction has committed so the worker never
// observes uncommitted state.
func (s *applicationService) UpdateStatus(ctx context.Context, actor *domain.User, id uuid.UUID, status string) (*domain.Application, error) {
	newStatus, err := domain.ParseApplicationDecision(status)
	if err != nil {
		return nil, err
	}

	app, err := s.repos.Applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job, err := s.repos.Jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if !access.IsJobOwner(actor, job) {
		return nil, domain.E(domain.CodePermission, "only the job owner may update application status")
	}
	if !app.IsPending() {
		return nil, domain.E(domain.CodeConflict, "application has already been decided")
	}

	applicant, err := s.repos.Users.GetByID(ctx, app.UserID)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		if err := r.Applications.UpdateStatus(ctx, app.ID, newStatus); err != nil {
			return err
		}
		note := &domain.Notification{
			ApplicationID: &app.ID,
			RecipientID:   app.UserID,
		}
		switch newStatus {
		case domain.ApplicationStatusAccepted:
			note.Message = fmt.Sprintf(
				"Your application for the job: %s has been reviewed. The job owner accepted your application. "+
					"Please wait for an email with further details. Thank you!", job.Title)
			if err := r.Users.IncrementNumberOfHires(ctx, actor.ID); err != nil {
				return err
			}
		case domain.ApplicationStatusRejected:
			note.Message = fmt.Sprintf(
				"Your application for the job: %s has been reviewed. The job owner rejected your application. "+
					"We encourage you to explore other jobs. Thank you for using our platform!", job.Title)
		}
		return r.Notifications.Create(ctx, note)
	})
	if err != nil {
		return nil, err
	}

	// Fan-out emails after commit. Queue failures are logged, never rolled
	// back into the already-committed transition.
	switch newStatus {
	case domain.ApplicationStatusAccepted:
		if err := s.emailSvc.SendApplicationAccepted(ctx, applicant.Email, applicant.Username, job.Title, app.AppliedAt); err != nil {
			logger.Error("failed to enqueue acceptance email", "applicationID", app.ID, "error", err)
		}
		if err := s.emailSvc.SendAcceptanceCopyToOwner(ctx, actor.Email, actor.Username, applicant.Username, applicant.Email, job.Title, app.AppliedAt); err != nil {
			logger.Error("failed to enqueue owner copy email", "applicationID", app.ID, "error", err)
		}
	case domain.ApplicationStatusRejected:
		if err := s.emailSvc.SendApplicationRejected(ctx, applicant.Email, applicant.Username, job.Title, app.AppliedAt); err != nil {
			logger.Error("failed to enqueue rejection email", "applicationID", app.ID, "error", err)
		}
	}

	app.Status = newStatus
	return app, nil
}

// Edit lets the applicant revise resume and cover letter while the
// application is still pending.
func (s *applicationService) Edit(ctx context.Context, actor *domain.User, id uuid.UUID, in ApplicationEdit) (*domain.Application, error) {
	app, err := s.repos.Applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.OwnsApplication(actor, app) {
		return nil, domain.E(domain.CodePermission, "only the applicant may edit this application")
	}
	if !app.IsPending() {
		return nil, domain.E(domain.CodeConflict, "application can no longer be edited")
	}

	if in.Resume != nil {
		if strings.TrimSpace(*in.Resume) == "" {
			return nil, domain.E(domain.CodeValidation, "resume cannot be empty")
		}
		app.Resume = *in.Resume
	}
	if in.CoverLetter != nil {
		if strings.TrimSpace(*in.CoverLetter) == "" {
			return nil, domain.E(domain.CodeValidation, "cover_letter cannot be empty")
		}
		app.CoverLetter = *in.CoverLetter
	}

	if err := s.repos.Applications.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) Withdraw(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	app, err := s.repos.Applications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.OwnsApplication(actor, app) {
		return domain.E(domain.CodePermission, "only the applicant may withdraw this application")
	}
	if !app.IsPending() {
		return domain.E(domain.CodeConflict, "application can no longer be withdrawn")
	}
	return s.repos.Applications.Delete(ctx, id)
}

func (s *applicationService) Get(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Application, error) {
	app, err := s.repos.Applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if access.OwnsApplication(actor, app) || access.IsAdmin(actor) {
		return app, nil
	}
	job, err := s.repos.Jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if !access.IsJobOwner(actor, job) {
		return nil, domain.E(domain.CodeNotFound, "application not found")
	}
	return app, nil
}

func (s *applicationService) ListForJob(ctx context.Context, actor *domain.User, jobID uuid.UUID) ([]domain.Application, error) {
	job, err := s.repos.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !access.IsJobOwner(actor, job) && !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "only the job owner or an admin may list applications")
	}
	return s.repos.Applications.ListByJob(ctx, jobID)
}

func (s *applicationService) ListMine(ctx context.Context, actor *domain.User) ([]domain.Application, error) {
	return s.repos.Applications.ListByUser(ctx, actor.ID)
}
