package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/o2scale/goodboyholidayhomesverce/internal/daterange"
	"github.com/o2scale/goodboyholidayhomesverce/internal/dtos"
	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/repositories"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

// SearchFilters narrows the property listing. Zero values mean "no
// filter"; date filtering applies the search-time availability policy.
type SearchFilters struct {
	Location  string
	MinGuests int
	Stay      *daterange.Range
}

type PropertyService struct {
	propRepo    repositories.PropertyRepository
	bookingRepo repositories.BookingRepository
}

func NewPropertyService(propRepo repositories.PropertyRepository, bookingRepo repositories.BookingRepository) *PropertyService {
	return &PropertyService{propRepo: propRepo, bookingRepo: bookingRepo}
}

// Search lists properties matching the filters. A property is dropped
// for a requested stay when a confirmed booking overlaps it; pending
// and rejected bookings never hide a listing from search results.
func (s *PropertyService) Search(ctx context.Context, f SearchFilters) ([]models.Property, error) {
	props, err := s.propRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Property, 0, len(props))
	needle := strings.ToLower(strings.TrimSpace(f.Location))
	for _, p := range props {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Location), needle) &&
			!strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		if f.MinGuests > 0 && p.MaxGuests < f.MinGuests {
			continue
		}
		if f.Stay != nil {
			bookings, err := s.bookingRepo.ListByPropertyID(ctx, p.ID)
			if err != nil {
				return nil, err
			}
			if anyBlocking(bookings, *f.Stay, models.PolicySearch) {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.propRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("property %s: %w", id, utils.ErrNotFound)
	}
	return p, nil
}

func (s *PropertyService) Create(ctx context.Context, req dtos.CreatePropertyRequest) (*models.Property, error) {
	p := propertyFromRequest("", req)
	if err := s.propRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update is a full replace by ID; the ID is immutable.
func (s *PropertyService) Update(ctx context.Context, id string, req dtos.UpdatePropertyRequest) (*models.Property, error) {
	p := propertyFromRequest(id, req)
	if err := s.propRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func propertyFromRequest(id string, req dtos.CreatePropertyRequest) *models.Property {
	maxGuests := req.MaxGuests
	if maxGuests == 0 {
		maxGuests = 2
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}
	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &models.Property{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Images:      images,
		Rating:      req.Rating,
		MaxGuests:   maxGuests,
		Amenities:   amenities,
	}
}
