package routes

const (
	// Health
	Health = "/health"

	// Auth
	AuthRegister = "/api/v1/auth/register"
	AuthLogin    = "/api/v1/auth/login"
	AuthLogout   = "/api/v1/auth/logout"

	// Public catalog
	Properties   = "/api/v1/properties"
	PropertyByID = "/api/v1/properties/{id}"
	Availability = "/api/v1/availability"

	// Bookings
	Bookings          = "/api/v1/bookings"
	BookingsMy        = "/api/v1/bookings/my"
	BookingStatusByID = "/api/v1/bookings/{id}/status"
	BookingsBlock     = "/api/v1/bookings/block"

	// Admin user management
	Users    = "/api/v1/users"
	UserByID = "/api/v1/users/{id}"
)
