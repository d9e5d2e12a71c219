package models

import "time"

const MaxPropertyImages = 15

type Property struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Images      []string  `json:"images"`
	Rating      float64   `json:"rating"`
	MaxGuests   int       `json:"maxGuests"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
