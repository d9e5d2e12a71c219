package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

func newUser(email string, role models.UserRole) *models.User {
	return &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		Role:         role,
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("asha@example.com", models.RoleCustomer)))

	err := repo.Create(ctx, newUser("ASHA@example.com", models.RoleCustomer))
	require.ErrorIs(t, err, utils.ErrEmailExists)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateChecksEmailAgainstOtherUsers(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	a := newUser("a@example.com", models.RoleCustomer)
	b := newUser("b@example.com", models.RoleCustomer)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	// Keeping your own email is not a collision.
	a.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, a))

	a.Email = "B@example.com"
	require.ErrorIs(t, repo.Update(ctx, a), utils.ErrEmailExists)

	missing := newUser("nobody@example.com", models.RoleCustomer)
	missing.ID = "missing"
	require.ErrorIs(t, repo.Update(ctx, missing), utils.ErrNotFound)
}

func TestDeleteProtectsLastAdmin(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	admin := newUser("admin@example.com", models.RoleAdmin)
	customer := newUser("customer@example.com", models.RoleCustomer)
	require.NoError(t, repo.Create(ctx, admin))
	require.NoError(t, repo.Create(ctx, customer))

	require.ErrorIs(t, repo.Delete(ctx, admin.ID), utils.ErrLastAdmin)

	second := newUser("admin2@example.com", models.RoleAdmin)
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Delete(ctx, admin.ID))

	// Back down to one admin; the survivor is protected again.
	require.ErrorIs(t, repo.Delete(ctx, second.ID), utils.ErrLastAdmin)

	require.NoError(t, repo.Delete(ctx, customer.ID))
	require.ErrorIs(t, repo.Delete(ctx, customer.ID), utils.ErrNotFound)
}
