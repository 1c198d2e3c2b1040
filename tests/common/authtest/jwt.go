//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pousada-booking/internal/pkg/config"
	"pousada-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity provider would.
type JWTHelper struct {
	cfg config.AuthConfig
}

func NewJWTHelper(cfg config.AuthConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) verifier() *jwt.Verifier {
	return jwt.NewVerifier(h.cfg.JWTSecret, h.cfg.Issuer)
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID uuid.UUID, role string) string {
	t.Helper()
	token, err := h.verifier().Sign(staffID.String(), role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), h.cfg.AdminRole)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID uuid.UUID, role string) string {
	t.Helper()
	token, err := h.verifier().Sign(staffID.String(), role, -time.Minute)
	require.NoError(t, err)
	return token
}
