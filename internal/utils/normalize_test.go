package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "apple", NormalizeWord("  Apple\t"))
	assert.Equal(t, "l'eau", NormalizeWord("L'Eau"))
	assert.Equal(t, "", NormalizeWord("   "))
}

func TestIsWordToken(t *testing.T) {
	valid := []string{"apple", "Apple", "l'eau", "forget-me-not", "über"}
	for _, s := range valid {
		assert.True(t, IsWordToken(s), "expected %q to be a word token", s)
	}

	invalid := []string{"", "123", "apple1", "a b", "'apple", "apple-", "-apple", "app!e"}
	for _, s := range invalid {
		assert.False(t, IsWordToken(s), "expected %q to be rejected", s)
	}
}

func TestHasPrefixIgnoreCase(t *testing.T) {
	assert.True(t, HasPrefixIgnoreCase("Apple", "a"))
	assert.True(t, HasPrefixIgnoreCase("apple", "APP"))
	assert.False(t, HasPrefixIgnoreCase("banana", "a"))
}
