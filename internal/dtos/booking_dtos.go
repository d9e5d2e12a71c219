package dtos

// CreateBookingRequest is the public booking-submission payload. Dates
// are YYYY-MM-DD or RFC 3339; the stay interval is closed on both ends.
type CreateBookingRequest struct {
	PropertyID    string `json:"propertyId" validate:"required"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	GuestCount    int    `json:"guestCount" validate:"gte=0"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	Meals         *bool  `json:"meals,omitempty"`
}

type SetBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed rejected"`
}

// CreateBlockRequest reserves calendar dates without a real guest. The
// reason becomes the synthetic customer name on the ledger entry.
type CreateBlockRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
	Reason     string `json:"reason,omitempty"`
}

type AvailabilityResponse struct {
	PropertyID string `json:"propertyId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Policy     string `json:"policy"`
	Available  bool   `json:"available"`
}
