package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/config"
	"clinic-record-system/internal/domain/entity"
	"clinic-record-system/pkg/jwt"
)

func newService(secret string) *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newService("test-secret")

	token, tokenID, err := service.GenerateAccessToken(42, "doctor@clinic.test", entity.RoleIDDoctor)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "doctor@clinic.test", claims.Email)
	assert.Equal(t, entity.RoleIDDoctor, claims.RoleID)
	assert.Equal(t, jwt.AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	service := newService("test-secret")

	token, _, err := service.GenerateRefreshToken(7, "patient@clinic.test", entity.RoleIDPatient)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RefreshToken, claims.TokenType)
}

func TestTokenIDsAreUnique(t *testing.T) {
	service := newService("test-secret")

	_, first, err := service.GenerateAccessToken(1, "a@clinic.test", entity.RoleIDAdmin)
	require.NoError(t, err)
	_, second, err := service.GenerateAccessToken(1, "a@clinic.test", entity.RoleIDAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := newService("first-secret").GenerateAccessToken(1, "a@clinic.test", entity.RoleIDAdmin)
	require.NoError(t, err)

	_, err = newService("other-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := newService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
