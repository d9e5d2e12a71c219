package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/o2scale/goodboyholidayhomesverce/internal/config"
	"github.com/o2scale/goodboyholidayhomesverce/internal/middleware"
	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/repositories"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

type AuthService struct {
	cfg      *config.Config
	userRepo repositories.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo repositories.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Login verifies the credential against the stored bcrypt hash and
// mints a session token. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", utils.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := middleware.IssueToken(s.cfg.JWTSecret, user, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}
	return user, token, nil
}

// TokenFor mints a session token for an already-authenticated user
// (the auto-login after self-registration).
func (s *AuthService) TokenFor(user *models.User) (string, error) {
	return middleware.IssueToken(s.cfg.JWTSecret, user, s.cfg.TokenTTL)
}
