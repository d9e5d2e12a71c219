package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/store"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userRepo struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) UserRepository {
	return &userRepo{store: s}
}

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := r.store.View(ctx, func(d *store.Data) error {
		out = append(out, d.Users...)
		return nil
	})
	return out, err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.ID == id })
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepo) find(ctx context.Context, match func(models.User) bool) (*models.User, error) {
	var found *models.User
	err := r.store.View(ctx, func(d *store.Data) error {
		for i := range d.Users {
			if match(d.Users[i]) {
				u := d.Users[i]
				found = &u
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Create enforces email uniqueness under the store lock.
func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	return r.store.Update(ctx, func(d *store.Data) error {
		for i := range d.Users {
			if strings.EqualFold(d.Users[i].Email, u.Email) {
				return fmt.Errorf("user email %s: %w", u.Email, utils.ErrEmailExists)
			}
		}
		d.Users = append(d.Users, *u)
		return nil
	})
}

// Update is a full replace by ID; the ID is immutable. Changing the
// email re-checks uniqueness against every other user.
func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	return r.store.Update(ctx, func(d *store.Data) error {
		idx := -1
		for i := range d.Users {
			if d.Users[i].ID == u.ID {
				idx = i
				continue
			}
			if strings.EqualFold(d.Users[i].Email, u.Email) {
				return fmt.Errorf("user email %s: %w", u.Email, utils.ErrEmailExists)
			}
		}
		if idx == -1 {
			return fmt.Errorf("user %s: %w", u.ID, utils.ErrNotFound)
		}
		u.CreatedAt = d.Users[idx].CreatedAt
		d.Users[idx] = *u
		return nil
	})
}

// Delete refuses to remove the last remaining admin account.
func (r *userRepo) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(d *store.Data) error {
		idx := -1
		admins := 0
		for i := range d.Users {
			if d.Users[i].Role == models.RoleAdmin {
				admins++
			}
			if d.Users[i].ID == id {
				idx = i
			}
		}
		if idx == -1 {
			return fmt.Errorf("user %s: %w", id, utils.ErrNotFound)
		}
		if d.Users[idx].Role == models.RoleAdmin && admins == 1 {
			return fmt.Errorf("user %s is the only admin: %w", id, utils.ErrLastAdmin)
		}
		d.Users = append(d.Users[:idx], d.Users[idx+1:]...)
		return nil
	})
}
