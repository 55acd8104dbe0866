package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyStoreName(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		require.Equal(t, "foo-com.jks", KeyStoreName("foo.com"))
		require.Equal(t, "foo-bar-com.jks", KeyStoreName(" foo.bar.com "))
		require.Equal(t, "carbon-super.jks", KeyStoreName("carbon.super"))
	})

	t.Run("unvalidated", func(t *testing.T) {
		require.Equal(t, ".jks", KeyStoreName(""))
		require.Equal(t, "---.jks", KeyStoreName("\t...\n"))
		require.Equal(t, "no_dots.jks", KeyStoreName("no_dots"))
		require.Equal(t, "a b-c.jks", KeyStoreName("a b.c"))
	})
}

func TestKeyStorePath(t *testing.T) {
	require.Equal(t, "/repository/security/key-stores/a-com.jks", KeyStorePath(KeyStoreName("a.com")))
}
