package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type jobRepository struct {
	db DBTX
}

func NewJobRepository(db DBTX) repository.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `j.id, j.title, j.description, j.location, j.working_area, j.longevity, j.type,
	       j.category_id, j.posted_by, j.is_active, j.posted_at, j.updated_at,
	       (SELECT count(*) FROM applications a WHERE a.job_id = j.id)`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	now := time.Now().UTC()
	job.PostedAt = now
	job.UpdatedAt = now

	query := `INSERT INTO jobs (id, title, description, location, working_area, longevity, type,
	          category_id, posted_by, is_active, posted_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.WorkingArea, job.Longevity,
		job.Type, job.CategoryID, job.PostedBy, job.IsActive, job.PostedAt, job.UpdatedAt)
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	job := &domain.Job{}
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.Location, &job.WorkingArea, &job.Longevity,
		&job.Type, &job.CategoryID, &job.PostedBy, &job.IsActive, &job.PostedAt, &job.UpdatedAt,
		&job.ApplicationsCount)
	if err != nil {
		return nil, mapLookupError(err, "job not found")
	}
	return job, nil
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	job.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE jobs SET title = $1, description = $2, location = $3, working_area = $4,
		 longevity = $5, type = $6, category_id = $7, is_active = $8, updated_at = $9
		 WHERE id = $10`,
		job.Title, job.Description, job.Location, job.WorkingArea, job.Longevity,
		job.Type, job.CategoryID, job.IsActive, job.UpdatedAt, job.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "job not found")
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "job not found")
	}
	return nil
}

func (r *jobRepository) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE 1=1`
	var args []any
	idx := 1

	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND j.category_id = $%d", idx)
		args = append(args, *filter.CategoryID)
		idx++
	}
	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND j.is_active = $%d", idx)
		args = append(args, *filter.IsActive)
		idx++
	}
	if filter.WorkingArea != "" {
		query += fmt.Sprintf(" AND j.working_area = $%d", idx)
		args = append(args, filter.WorkingArea)
		idx++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND j.type = $%d", idx)
		args = append(args, filter.Type)
		idx++
	}
	query += " ORDER BY j.posted_at, j.is_active"

	return r.list(ctx, query, args...)
}

func (r *jobRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.posted_by = $1 ORDER BY j.posted_at, j.is_active`
	return r.list(ctx, query, ownerID)
}

func (r *jobRepository) list(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.Location,
			&job.WorkingArea, &job.Longevity, &job.Type, &job.CategoryID, &job.PostedBy,
			&job.IsActive, &job.PostedAt, &job.UpdatedAt, &job.ApplicationsCount); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
