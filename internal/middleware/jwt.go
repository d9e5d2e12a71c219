package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
)

// TokenIssuer identifies this service in every token it mints.
const TokenIssuer = "GoodBoyHolidayHomes"

// Caller is the identity resolved from a session token. Handlers read
// it from the request context to scope queries and gate admin actions.
type Caller struct {
	UserID string
	Email  string
	Role   models.UserRole
	Name   string
}

// IssueToken mints an HS256 session token for the given user.
func IssueToken(secret []byte, u *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  string(u.Role),
		"name":  u.Name,
		"iss":   TokenIssuer,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken checks the signature, expiry and issuer, and returns
// the caller identity carried in the claims.
func ValidateToken(tokenString string, secret []byte) (*Caller, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, jwt.ErrTokenExpired
	}

	iss, ok := claims["iss"].(string)
	if !ok || iss != TokenIssuer {
		return nil, errors.New("invalid token issuer")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("missing subject claim")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	roleStr, _ := claims["role"].(string)
	role, ok := models.ParseUserRole(roleStr)
	if !ok {
		return nil, errors.New("invalid role claim")
	}

	return &Caller{UserID: sub, Email: email, Role: role, Name: name}, nil
}
