package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type applicationRepository struct {
	db DBTX
}

func NewApplicationRepository(db DBTX) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now

	// Unique (job_id, user_id) makes double-apply under concurrency a
	// constraint violation rather than a lost race.
	query := `INSERT INTO applications (id, job_id, user_id, status, resume, cover_letter, applied_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.JobID, app.UserID, app.Status, app.Resume, app.CoverLetter,
		app.AppliedAt, app.UpdatedAt)
	return mapMutationError(err, "you have already applied to this job")
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	app := &domain.Application{}
	query := `SELECT id, job_id, user_id, status, resume, cover_letter, applied_at, updated_at
	          FROM applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.UserID, &app.Status, &app.Resume, &app.CoverLetter,
		&app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		return nil, mapLookupError(err, "application not found")
	}
	return app, nil
}

func (r *applicationRepository) Exists(ctx context.Context, jobID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`
	err := r.db.QueryRowContext(ctx, query, jobID, userID).Scan(&exists)
	return exists, err
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.Application) error {
	app.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications SET resume = $1, cover_letter = $2, updated_at = $3 WHERE id = $4`,
		app.Resume, app.CoverLetter, app.UpdatedAt, app.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "application not found")
	}
	return nil
}

// UpdateStatus transitions a pending application to a terminal status. The
// status predicate makes the transition a compare-and-set, so of two
// concurrent decides exactly one row update wins and the loser surfaces as
// a conflict. Callers resolve existence beforehand.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		status, time.Now().UTC(), id, domain.ApplicationStatusPending)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeConflict, "application has already been decided")
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "application not found")
	}
	return nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	query := `SELECT id, job_id, user_id, status, resume, cover_letter, applied_at, updated_at
	          FROM applications WHERE job_id = $1 ORDER BY applied_at`
	return r.list(ctx, query, jobID)
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Application, error) {
	query := `SELECT id, job_id, user_id, status, resume, cover_letter, applied_at, updated_at
	          FROM applications WHERE user_id = $1 ORDER BY applied_at DESC`
	return r.list(ctx, query, userID)
}

func (r *applicationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.UserID, &app.Status, &app.Resume,
			&app.CoverLetter, &app.AppliedAt, &app.UpdatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
