package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/store"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	List(ctx context.Context) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)

	Create(ctx context.Context, p *models.Property) error
	Update(ctx context.Context, p *models.Property) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	store *store.Store
}

func NewPropertyRepository(s *store.Store) PropertyRepository {
	return &propertyRepo{store: s}
}

func (r *propertyRepo) List(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	err := r.store.View(ctx, func(d *store.Data) error {
		out = append(out, d.Properties...)
		return nil
	})
	return out, err
}

func (r *propertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var found *models.Property
	err := r.store.View(ctx, func(d *store.Data) error {
		for i := range d.Properties {
			if d.Properties[i].ID == id {
				p := d.Properties[i]
				found = &p
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	return r.store.Update(ctx, func(d *store.Data) error {
		d.Properties = append(d.Properties, *p)
		return nil
	})
}

// Update is a full replace by ID; the ID itself is immutable.
func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	return r.store.Update(ctx, func(d *store.Data) error {
		for i := range d.Properties {
			if d.Properties[i].ID == p.ID {
				p.CreatedAt = d.Properties[i].CreatedAt
				d.Properties[i] = *p
				return nil
			}
		}
		return fmt.Errorf("property %s: %w", p.ID, utils.ErrNotFound)
	})
}
