package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFileExtNameWithDot(t *testing.T) {
	require.Equal(t, ".png", GetFileExtNameWithDot("avatar.png"))
	require.Equal(t, ".jpeg", GetFileExtNameWithDot("https://cdn.example.com/a/b/c.jpeg?w=100"))
	require.Equal(t, "", GetFileExtNameWithDot("noext"))
}

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(8)
	require.Equal(t, 8, len(s))
	for _, r := range s {
		require.True(t, r >= 'a' && r <= 'z')
	}
}

func TestContainsString(t *testing.T) {
	require.True(t, ContainsString([]string{"a", "b"}, "b"))
	require.False(t, ContainsString([]string{"a", "b"}, "c"))
	require.False(t, ContainsString(nil, "a"))
}

func TestMin(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, -1, Min(3, -1))
}
