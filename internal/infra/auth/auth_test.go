package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"craftapp/config"
)

func authConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			SecretKey: secret,
			TokenTTL:  ttl,
		},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(authConfig("", time.Minute))
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	service, err := NewJWTService(authConfig("test-secret", 30*time.Minute))
	require.NoError(t, err)

	token, err := service.IssueToken("test@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RejectsTamperedAndForeignTokens(t *testing.T) {
	service, err := NewJWTService(authConfig("test-secret", 30*time.Minute))
	require.NoError(t, err)

	token, err := service.IssueToken("test@example.com")
	require.NoError(t, err)

	// Garbage.
	_, err = service.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Tampered payload invalidates the signature.
	_, err = service.ValidateToken(token + "x")
	assert.Error(t, err)

	// Signed with a different secret.
	other, err := NewJWTService(authConfig("other-secret", 30*time.Minute))
	require.NoError(t, err)
	foreign, err := other.IssueToken("test@example.com")
	require.NoError(t, err)
	_, err = service.ValidateToken(foreign)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	service, err := NewJWTService(authConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := service.IssueToken("test@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsEmptySubject(t *testing.T) {
	service, err := NewJWTService(authConfig("test-secret", 30*time.Minute))
	require.NoError(t, err)

	token, err := service.IssueToken("")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_TokenDuration(t *testing.T) {
	service, err := NewJWTService(authConfig("test-secret", 15*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, service.TokenDuration())
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("Password123!", "not-a-hash"))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Password123!", first))
	assert.True(t, hasher.Check("Password123!", second))
}

func TestBcryptHasher_DefaultsCostWhenUnconfigured(t *testing.T) {
	// Out-of-range and missing config both fall back to the bcrypt default.
	for _, cfg := range []*config.Config{
		nil,
		{},
		{Auth: &config.AuthConfig{BcryptCost: bcrypt.MaxCost + 1}},
	} {
		hasher := NewBcryptHasher(cfg)
		hash, err := hasher.Hash("Password123!")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	}
}
