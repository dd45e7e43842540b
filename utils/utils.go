package utils

import (
	"math/rand"
	"path/filepath"
	"strings"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// RandomAlphabetString returns a random lower case string of the given
// length, usable as a database or file name suffix.
func RandomAlphabetString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// GetFileExtNameWithDot extracts the extension of a file name including the
// leading dot, e.g. "avatar.png" -> ".png". Query strings are stripped first
// so urls can be passed in directly.
func GetFileExtNameWithDot(name string) string {
	if idx := strings.Index(name, "?"); idx != -1 {
		name = name[:idx]
	}
	return filepath.Ext(name)
}

// ContainsString returns true iff the provided string slice hay contains
// string needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
