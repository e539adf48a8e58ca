package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type categoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, cat *domain.Category) error {
	if cat.ID == uuid.Nil {
		cat.ID = uuid.New()
	}
	now := time.Now().UTC()
	cat.CreatedAt = now
	cat.UpdatedAt = now

	query := `INSERT INTO categories (id, name, description, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, cat.ID, cat.Name, cat.Description, cat.CreatedAt, cat.UpdatedAt)
	return mapMutationError(err, "a category with this name already exists")
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	cat := &domain.Category{}
	query := `SELECT c.id, c.name, c.description, c.created_at, c.updated_at,
	                 (SELECT count(*) FROM jobs j WHERE j.category_id = c.id)
	          FROM categories c WHERE c.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt, &cat.JobsCount)
	if err != nil {
		return nil, mapLookupError(err, "category not found")
	}
	return cat, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT c.id, c.name, c.description, c.created_at, c.updated_at,
	                 (SELECT count(*) FROM jobs j WHERE j.category_id = c.id)
	          FROM categories c ORDER BY c.created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt,
			&cat.UpdatedAt, &cat.JobsCount); err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, cat *domain.Category) error {
	cat.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, description = $2, updated_at = $3 WHERE id = $4`,
		cat.Name, cat.Description, cat.UpdatedAt, cat.ID)
	if err != nil {
		return mapMutationError(err, "a category with this name already exists")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "category not found")
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "category not found")
	}
	return nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE lower(name) = lower($1) AND id <> $2)`
	err := r.db.QueryRowContext(ctx, query, name, excludeID).Scan(&exists)
	return exists, err
}
