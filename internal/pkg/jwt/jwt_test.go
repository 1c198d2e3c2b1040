//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"pousada-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_ValidateToken(t *testing.T) {
	v := jwt.NewVerifier("secret", "pousada-auth")

	t.Run("valid token", func(t *testing.T) {
		token, err := v.Sign("staff-1", "admin", time.Hour)
		require.NoError(t, err)

		claims, err := v.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "staff-1", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := v.Sign("staff-1", "admin", -time.Minute)
		require.NoError(t, err)

		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewVerifier("other", "pousada-auth").Sign("staff-1", "admin", time.Hour)
		require.NoError(t, err)

		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := jwt.NewVerifier("secret", "someone-else").Sign("staff-1", "admin", time.Hour)
		require.NoError(t, err)

		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := v.Sign("", "admin", time.Hour)
		require.NoError(t, err)

		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": "staff-1"}).
			SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
