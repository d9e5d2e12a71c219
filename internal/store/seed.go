package store

import "github.com/o2scale/goodboyholidayhomesverce/internal/models"

// SeedProperties returns the fixed demo catalog written when the data
// file does not exist yet.
func SeedProperties() []models.Property {
	return []models.Property{
		{
			ID:          "1",
			Title:       "Misty Mountain Villa",
			Description: "A private 3-bedroom villa nestled in the tea plantations of Munnar. Enjoy panoramic views of the Western Ghats from your balcony. Perfect for families seeking complete privacy and nature.",
			Price:       450,
			Location:    "Munnar, Kerala",
			Images: []string{
				"https://images.unsplash.com/photo-1542718610-a1d656d1884c?auto=format&fit=crop&q=80",
				"https://images.unsplash.com/photo-1600596542815-27b88e39e569?auto=format&fit=crop&q=80",
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&q=80",
				"https://images.unsplash.com/photo-1613545325278-f24b0cae1224?auto=format&fit=crop&q=80",
			},
			Rating:    4.9,
			MaxGuests: 8,
			Amenities: []string{"Mountain View", "Private Garden", "Campfire area", "Full Kitchen", "Caretaker"},
		},
		{
			ID:          "2",
			Title:       "Wayanad Cloud Home",
			Description: "Experience living in the clouds. This heritage bungalow offers a serene escape with modern comforts. Surrounded by coffee estates and spice gardens.",
			Price:       350,
			Location:    "Wayanad, Kerala",
			Images: []string{
				"https://images.unsplash.com/photo-1587595431973-160d0d94add1?auto=format&fit=crop&q=80",
				"https://images.unsplash.com/photo-1542718610-a1d656d1884c?auto=format&fit=crop&q=80",
				"https://images.unsplash.com/photo-1598228723793-52759bba239c?auto=format&fit=crop&q=80",
			},
			Rating:    4.8,
			MaxGuests: 6,
			Amenities: []string{"Valley View", "Spice Plantation Walk", "Home Cooked Meals", "Wifi", "Parking"},
		},
		{
			ID:          "3",
			Title:       "Ooty Heritage Cottage",
			Description: "A charming colonial-style cottage in the heart of the Nilgiris. Cozy up by the fireplace after a day of exploring. Walking distance to the lake.",
			Price:       300,
			Location:    "Ooty, Tamil Nadu",
			Images: []string{
				"https://images.unsplash.com/photo-1518780664697-55e3ad913afb?auto=format&fit=crop&q=80",
				"https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?auto=format&fit=crop&q=80",
				"https://images.unsplash.com/photo-1583608205776-bfd35f0d9f83?auto=format&fit=crop&q=80",
			},
			Rating:    4.7,
			MaxGuests: 5,
			Amenities: []string{"Fireplace", "Lawn", "Heater", "Kitchen", "Pet Friendly"},
		},
	}
}
