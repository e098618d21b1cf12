//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/pkg/config"
	"autoflow/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity service does, with the secret the app verifies against.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role actor.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role actor.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}

// Caller is a signed-in identity used to drive the API.
type Caller struct {
	ID    uuid.UUID
	Role  actor.Role
	Token string
}

func (h *JWTHelper) NewCaller(t *testing.T, role actor.Role) Caller {
	t.Helper()
	id := uuid.New()
	return Caller{ID: id, Role: role, Token: h.GenerateToken(t, id, role)}
}
