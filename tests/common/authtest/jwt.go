//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// ServiceToken mints a bearer token for an API caller such as "storefront".
func (h *JWTHelper) ServiceToken(t *testing.T, caller string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(caller)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ExpiredToken(t *testing.T, caller string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(caller)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *JWTHelper) ForeignToken(t *testing.T, caller string) string {
	t.Helper()
	token, err := jwt.NewService("another-secret", time.Hour).GenerateToken(caller)
	require.NoError(t, err)
	return token
}
