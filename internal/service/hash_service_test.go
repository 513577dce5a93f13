package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashService(t *testing.T) {
	svc := NewArgon2HashService(Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16})

	t.Run("verify round trip", func(t *testing.T) {
		hash, err := svc.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

		ok, err := svc.Verify("correct horse battery staple", hash)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.Verify("wrong password", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("salted hashes differ", func(t *testing.T) {
		a, err := svc.Hash("password")
		require.NoError(t, err)
		b, err := svc.Hash("password")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("verify honors recorded parameters", func(t *testing.T) {
		hash, err := svc.Hash("password")
		require.NoError(t, err)

		// A service configured differently still verifies old hashes.
		other := NewArgon2HashService(DefaultArgon2Params())
		ok, err := other.Verify("password", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("malformed hashes error", func(t *testing.T) {
		for _, encoded := range []string{
			"",
			"plainhash",
			"$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",
			"$argon2id$v=19$m=8192,t=1,p=1$not-base64!$aGFzaA",
		} {
			_, err := svc.Verify("password", encoded)
			assert.Error(t, err, "encoded=%q", encoded)
		}
	})
}
