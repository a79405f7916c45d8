package jwttoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	authmw "hrms/pkg/platform/middleware/auth"
)

var jwtService = NewJWTService("test-signing-key", "test-issuer", "test-audience")

var _ authmw.JWTValidator = jwtService

func Test_GenerateAccessToken(t *testing.T) {
	employeeID := domain.NewEmployeeID()
	actor := domain.Actor{ID: domain.NewUserID(), Role: domain.RoleManager, OwnedEntityID: &employeeID}

	token, err := jwtService.GenerateAccessToken(actor, time.Hour)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, actor.ID.String(), claims.UserID)
	assert.Equal(t, "MANAGER", claims.Role)
	assert.Equal(t, employeeID.String(), claims.EmployeeID)

	got, err := authmw.ActorFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func Test_GenerateAccessToken_NoEmployeeProfile(t *testing.T) {
	token, err := jwtService.GenerateAccessToken(domain.Actor{ID: domain.NewUserID(), Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.EmployeeID)
}

func Test_ValidateToken_Rejects(t *testing.T) {
	actor := domain.Actor{ID: domain.NewUserID(), Role: domain.RoleHR}

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtService.ValidateToken("invalid-token-string")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(actor, -time.Hour)
		require.NoError(t, err)
		_, err = jwtService.ValidateToken(token)
		require.Error(t, err)
		assert.Equal(t, "token has expired", err.Error())
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewJWTService("another-key", "test-issuer", "test-audience")
		token, err := other.GenerateAccessToken(actor, time.Hour)
		require.NoError(t, err)
		_, err = jwtService.ValidateToken(token)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := NewJWTService("test-signing-key", "test-issuer", "someone-else")
		token, err := other.GenerateAccessToken(actor, time.Hour)
		require.NoError(t, err)
		_, err = jwtService.ValidateToken(token)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("none algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: actor.ID.String(), Role: "ADMIN"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = jwtService.ValidateToken(token)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
