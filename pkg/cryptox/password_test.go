package cryptox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codezen-labs/codezen/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Keep the generated pepper out of the working tree.
	dir, err := os.MkdirTemp("", "cryptox-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("secret1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	t.Run("fresh salt per call", func(t *testing.T) {
		again, err := cryptox.HashPassword("secret1")
		require.NoError(t, err)
		require.NotEqual(t, hash, again)
	})

	t.Run("round trip verifies", func(t *testing.T) {
		require.NoError(t, cryptox.VerifyPassword("secret1", hash))
	})

	t.Run("wrong password mismatches", func(t *testing.T) {
		require.ErrorIs(t, cryptox.VerifyPassword("secret2", hash), cryptox.ErrMismatch)
	})
}

func TestVerifyPasswordMalformed(t *testing.T) {
	cases := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"wrong scheme", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA"},
		{"bad salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cryptox.VerifyPassword("whatever", tc.hash)
			require.Error(t, err)
			require.NotErrorIs(t, err, cryptox.ErrMismatch)
		})
	}
}
