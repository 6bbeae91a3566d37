//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"invite-role-bridge/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("round trip keeps the subject", func(t *testing.T) {
		token, err := svc.GenerateToken("storefront")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "storefront", claims.Subject)
	})

	t.Run("empty subject is refused", func(t *testing.T) {
		_, err := svc.GenerateToken("")
		assert.ErrorIs(t, err, jwt.ErrEmptySubject)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			RegisteredClaims: gojwt.RegisteredClaims{
				Subject:   "storefront",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})
		signed, err := expired.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken("storefront")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token without subject", func(t *testing.T) {
		anon := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		})
		signed, err := anon.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
