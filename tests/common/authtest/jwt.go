//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"dealer-contracts/internal/domain/staff"
	"dealer-contracts/internal/pkg/config"
	"dealer-contracts/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
