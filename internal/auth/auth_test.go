package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/crmaster/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$v=19$")

	ok, err := hasher.Verify("s3cret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("rejects malformed hashes", func(t *testing.T) {
		_, err := hasher.Verify("x", "not-a-hash")
		assert.True(t, errors.Is(err, auth.ErrInvalidHash))

		_, err = hasher.Verify("x", "$bcrypt$v=19$m=1,t=1,p=1$AAAA$AAAA")
		assert.True(t, errors.Is(err, auth.ErrInvalidHash))
	})
}

func TestTokenManager(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	userID := uuid.New()

	token, err := tm.Generate(userID, "jdoe")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", claims.Username)

	parsed, err := claims.UserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewTokenManager("other_secret", time.Hour)
		_, err := other.Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := auth.NewTokenManager("test_secret", -time.Minute)
		token, err := expired.Generate(userID, "jdoe")
		require.NoError(t, err)
		_, err = tm.Validate(token)
		assert.Error(t, err)
	})
}
