package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/o2scale/goodboyholidayhomesverce/internal/config"
	"github.com/o2scale/goodboyholidayhomesverce/internal/dtos"
	"github.com/o2scale/goodboyholidayhomesverce/internal/middleware"
	"github.com/o2scale/goodboyholidayhomesverce/internal/services"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

type AuthController struct {
	cfg         *config.Config
	userService *services.UserService
	authService *services.AuthService
}

func NewAuthController(cfg *config.Config, us *services.UserService, as *services.AuthService) *AuthController {
	return &AuthController{cfg: cfg, userService: us, authService: as}
}

// POST /api/v1/auth/register
// Self-registration always creates a customer and logs them in.
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(ctx, req); err != nil {
		respondValidation(w, err)
		return
	}

	user, err := c.userService.Register(ctx, req)
	if err != nil {
		respondServiceError(w, err, "Registration failed")
		return
	}

	token, err := c.authService.TokenFor(user)
	if err != nil {
		respondServiceError(w, err, "Registration failed")
		return
	}

	c.setSessionCookie(w, token)
	utils.RespondWithJSON(w, http.StatusCreated, dtos.LoginResponse{Success: true, Role: string(user.Role)})
}

// POST /api/v1/auth/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(ctx, req); err != nil {
		respondValidation(w, err)
		return
	}

	user, token, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err, "Login failed")
		return
	}

	c.setSessionCookie(w, token)
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{Success: true, Role: string(user.Role)})
}

// POST /api/v1/auth/logout
func (c *AuthController) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *AuthController) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.cfg.TokenTTL.Seconds()),
	})
}
