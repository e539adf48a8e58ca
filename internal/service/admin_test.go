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

func TestAdminService_ToggleCanPost(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
	targetID := uuid.New()

	t.Run("Grants Then Revokes", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAdminService(userRepo)

		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{
			ID: targetID, Role: domain.RoleUser, CanPostAJob: false,
		}, nil).Once()
		userRepo.On("SetCanPost", ctx, targetID, true).Return(nil).Once()

		user, err := svc.ToggleCanPost(ctx, admin, targetID)
		assert.NoError(t, err)
		assert.True(t, user.CanPostAJob)

		// A second toggle flips it back regardless of any verification state.
		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{
			ID: targetID, Role: domain.RoleUser, CanPostAJob: true,
		}, nil).Once()
		userRepo.On("SetCanPost", ctx, targetID, false).Return(nil).Once()

		user, err = svc.ToggleCanPost(ctx, admin, targetID)
		assert.NoError(t, err)
		assert.False(t, user.CanPostAJob)
	})

	t.Run("Non-Admin Forbidden", func(t *testing.T) {
		svc := service.NewAdminService(new(MockUserRepo))

		regular := &domain.User{ID: uuid.New(), Role: domain.RoleUser}
		user, err := svc.ToggleCanPost(ctx, regular, targetID)
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.True(t, domain.IsCode(err, domain.CodePermission))
	})

	t.Run("Admin Accounts Are Not Targets", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAdminService(userRepo)

		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{
			ID: targetID, Role: domain.RoleAdmin,
		}, nil)

		user, err := svc.ToggleCanPost(ctx, admin, targetID)
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.True(t, domain.IsCode(err, domain.CodeNotFound))
	})
}

func TestAdminService_CreateAdmin(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}

	in := service.RegisterInput{
		Username: "newadmin",
		Email:    "admin2@test.com",
		Password: "s3cret!pass",
	}

	t.Run("New Admin Can Post Immediately", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAdminService(userRepo)

		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleAdmin && u.CanPostAJob
		})).Return(nil)

		created, err := svc.CreateAdmin(ctx, admin, in)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, created.Role)
		assert.True(t, created.CanPostAJob)
	})

	t.Run("Non-Admin Forbidden", func(t *testing.T) {
		svc := service.NewAdminService(new(MockUserRepo))

		regular := &domain.User{ID: uuid.New(), Role: domain.RoleUser}
		created, err := svc.CreateAdmin(ctx, regular, in)
		assert.Error(t, err)
		assert.Nil(t, created)
		assert.True(t, domain.IsCode(err, domain.CodePermission))
	})
}

func TestAdminService_GetAdmin(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
	targetID := uuid.New()

	t.Run("Regular User Hidden", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAdminService(userRepo)

		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{
			ID: targetID, Role: domain.RoleUser,
		}, nil)

		got, err := svc.GetAdmin(ctx, admin, targetID)
		assert.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, domain.IsCode(err, domain.CodeNotFound))
	})
}
