package dtos

import "github.com/o2scale/goodboyholidayhomesverce/internal/models"

// CreateUserRequest is the admin-side user creation payload; unlike
// self-registration the role is settable.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin customer"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateUserRequest replaces any field except the ID; an empty
// password keeps the stored credential.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin customer"`
	Phone    string `json:"phone,omitempty"`
}

// UserResponse never carries the credential hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
		Phone: u.Phone,
	}
}
