package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/access"
	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type categoryService struct {
	catRepo repository.CategoryRepository
}

func NewCategoryService(catRepo repository.CategoryRepository) CategoryService {
	return &categoryService{catRepo: catRepo}
}

func (s *categoryService) Create(ctx context.Context, actor *domain.User, in CategoryInput) (*domain.Category, error) {
	if !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "only admins may manage categories")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.E(domain.CodeValidation, "name is required")
	}

	// Name uniqueness is case-insensitive, so check before insert; the
	// unique index still settles concurrent creates of the same name.
	exists, err := s.catRepo.ExistsByName(ctx, name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.E(domain.CodeValidation, "a category with this name already exists")
	}

	cat := &domain.Category{Name: name, Description: in.Description}
	if err := s.catRepo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.catRepo.GetByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.catRepo.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, in CategoryInput) (*domain.Category, error) {
	if !access.IsAdmin(actor) {
		return nil, domain.E(domain.CodePermission, "only admins may manage categories")
	}

	cat, err := s.catRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		exists, err := s.catRepo.ExistsByName(ctx, name, cat.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.E(domain.CodeValidation, "a category with this name already exists")
		}
		cat.Name = name
	}
	if in.Description != "" {
		cat.Description = in.Description
	}

	if err := s.catRepo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *categoryService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	if !access.IsAdmin(actor) {
		return domain.E(domain.CodePermission, "only admins may manage categories")
	}
	return s.catRepo.Delete(ctx, id)
}
