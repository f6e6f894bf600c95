package auth

import (
	"testing"
	"time"

	"sparestock/config"
	"sparestock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testTokenConfig(""))
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-signing-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, entity.RoleBuyer)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleBuyer, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	mint, err := NewJWTService(testTokenConfig("secret-one"))
	require.NoError(t, err)
	verify, err := NewJWTService(testTokenConfig("secret-two"))
	require.NoError(t, err)

	token, err := mint.GenerateToken(uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)

	_, err = verify.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := &jwtService{secret: []byte("test-signing-secret"), ttl: -time.Minute}

	token, err := svc.GenerateToken(uuid.New(), entity.RoleStaff)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-signing-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	require.Error(t, err)
}
