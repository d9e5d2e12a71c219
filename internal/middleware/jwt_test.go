package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
)

var testSecret = []byte("unit-test-secret")

func testUser() *models.User {
	return &models.User{
		ID:    "u-1",
		Name:  "Asha Nair",
		Email: "asha@example.com",
		Role:  models.RoleCustomer,
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	token, err := IssueToken(testSecret, testUser(), time.Hour)
	require.NoError(t, err)

	caller, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u-1", caller.UserID)
	assert.Equal(t, "asha@example.com", caller.Email)
	assert.Equal(t, models.RoleCustomer, caller.Role)
	assert.Equal(t, "Asha Nair", caller.Name)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, testUser(), time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, []byte("some-other-secret"))
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, err := IssueToken(testSecret, testUser(), -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":   "u-1",
		"email": "asha@example.com",
		"role":  "customer",
		"name":  "Asha Nair",
		"iss":   "SomeoneElse",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	require.Error(t, err)
}
