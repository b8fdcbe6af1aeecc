package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "round-trip-secret")

	userID := uuid.New()
	token, err := CreateToken(userID)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

// The secret arrives via the environment after this package is already
// initialized (main loads the .env file first). Tokens must be signed with
// the value in effect at call time, never a startup snapshot.
func TestTokenUsesSecretSetAfterInit(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-from-dotenv")

	token, err := CreateToken(uuid.New())
	require.NoError(t, err)

	// a token signed against this secret must not verify with an empty key
	_, err = jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(""), nil
	})
	assert.Error(t, err)

	// and the real key must verify it
	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.UserID)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "key-one")
	token, err := CreateToken(uuid.New())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "key-two")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
