package dtos

// CreatePropertyRequest carries the full admin-entered listing.
type CreatePropertyRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Location    string   `json:"location" validate:"required"`
	Images      []string `json:"images,omitempty" validate:"omitempty,max=15,dive,required"`
	Rating      float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	MaxGuests   int      `json:"maxGuests,omitempty" validate:"omitempty,gte=1"`
	Amenities   []string `json:"amenities,omitempty"`
}

// UpdatePropertyRequest is a full replace; the path ID is immutable.
type UpdatePropertyRequest = CreatePropertyRequest
