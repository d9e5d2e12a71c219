package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/o2scale/goodboyholidayhomesverce/internal/dtos"
	"github.com/o2scale/goodboyholidayhomesverce/internal/services"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

type UsersController struct {
	userService *services.UserService
}

func NewUsersController(us *services.UserService) *UsersController {
	return &UsersController{userService: us}
}

// ----------------------------------------------------------------
// GET /api/v1/users  (admin)
// ----------------------------------------------------------------
func (c *UsersController) ListHandler(w http.ResponseWriter, r *http.Request) {
	users, err := c.userService.List(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to list users")
		return
	}

	resp := make([]dtos.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dtos.NewUserResponse(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// POST /api/v1/users  (admin; role settable, unlike self-registration)
// ----------------------------------------------------------------
func (c *UsersController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dtos.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(ctx, req); err != nil {
		respondValidation(w, err)
		return
	}

	user, err := c.userService.CreateUser(ctx, req)
	if err != nil {
		respondServiceError(w, err, "Failed to create user")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewUserResponse(user))
}

// ----------------------------------------------------------------
// PATCH /api/v1/users/{id}  (admin, full replace, id immutable)
// ----------------------------------------------------------------
func (c *UsersController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req dtos.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(ctx, req); err != nil {
		respondValidation(w, err)
		return
	}

	user, err := c.userService.UpdateUser(ctx, id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserResponse(user))
}

// ----------------------------------------------------------------
// DELETE /api/v1/users/{id}  (admin; the last admin cannot be removed)
// ----------------------------------------------------------------
func (c *UsersController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := c.userService.DeleteUser(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
