package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	token := Generate(10)
	assert.Len(t, token, 10)

	for _, r := range token {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := Generate(10)
		assert.False(t, seen[token], "duplicate token %s", token)
		seen[token] = true
	}
}
