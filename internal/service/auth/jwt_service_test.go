package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb/hbnb-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes: 60,
	}
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()
	_, err := NewJWTService(config.AuthConfig{JWTSecret: "too-short"})
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(ctx, userID, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.False(t, claims.ExpiresAt.IsZero())
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	other, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "ffffffffffffffffffffffffffffffff",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(ctx, uuid.New(), false)
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	impl := svc.(*hmacJWTService)
	base := time.Now()

	// Issue a token in the past, beyond lifetime plus clock skew
	impl.timeFunc = func() time.Time { return base.Add(-90 * time.Minute) }
	token, err := impl.GenerateToken(ctx, uuid.New(), false)
	require.NoError(t, err)

	impl.timeFunc = func() time.Time { return base }
	_, err = impl.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	// Within the skew window the token still passes
	impl.timeFunc = func() time.Time { return base.Add(-61 * time.Minute) }
	token, err = impl.GenerateToken(ctx, uuid.New(), false)
	require.NoError(t, err)

	impl.timeFunc = func() time.Time { return base }
	_, err = impl.ValidateToken(ctx, token)
	assert.NoError(t, err)
}

func TestValidateTokenNotYetValid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	impl := svc.(*hmacJWTService)
	base := time.Now()

	// Issue a token from the future, beyond the skew window
	impl.timeFunc = func() time.Time { return base.Add(10 * time.Minute) }
	token, err := impl.GenerateToken(ctx, uuid.New(), false)
	require.NoError(t, err)

	impl.timeFunc = func() time.Time { return base }
	_, err = impl.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenNotYetValid)
}
