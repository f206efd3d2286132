package tokens

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = []byte("test-jwt-secret")
	refreshSecret = []byte("test-refresh-secret")
)

func TestSignAccessToken_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	exp := time.Now().Add(AccessTTL).UTC()

	token, err := SignAccessToken(userID, "ann@x.com", "admin", exp, accessSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := AccessClaimsFromToken(token, accessSecret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestSignRefreshToken_SetsTypAndJTI(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	exp := time.Now().Add(RefreshTTL).UTC()

	token, err := SignRefreshToken(userID, exp, refreshSecret)
	require.NoError(t, err)

	claims, err := RefreshClaimsFromToken(token, refreshSecret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "refresh", claims.Typ)
	assert.NotEmpty(t, claims.ID)
}

func TestClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := SignAccessToken(uuid.New(), "ann@x.com", "user", time.Now().Add(time.Minute), accessSecret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, []byte("other-secret"))
	require.Error(t, err)
}

func TestClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := SignAccessToken(uuid.New(), "ann@x.com", "user", time.Now().Add(-time.Minute), accessSecret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, accessSecret)
	require.Error(t, err)
}

func TestRefreshClaimsFromToken_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	// An access token signed with the refresh secret still lacks typ=refresh.
	token, err := SignAccessToken(uuid.New(), "ann@x.com", "user", time.Now().Add(time.Minute), refreshSecret)
	require.NoError(t, err)

	_, err = RefreshClaimsFromToken(token, refreshSecret)
	require.Error(t, err)
}

func TestSha256Hex_Deterministic(t *testing.T) {
	t.Parallel()

	a := Sha256Hex("token")
	b := Sha256Hex("token")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, Sha256Hex("other"))
}
