package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateResetCode(t *testing.T) {
	code := GenerateResetCode(6)
	assert.Len(t, code, 6)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(resetCodeAlphabet, r), "unexpected character %q", r)
	}

	// ambiguous characters never appear
	assert.NotContains(t, resetCodeAlphabet, "0")
	assert.NotContains(t, resetCodeAlphabet, "O")
	assert.NotContains(t, resetCodeAlphabet, "1")
	assert.NotContains(t, resetCodeAlphabet, "I")
	assert.NotContains(t, resetCodeAlphabet, "l")
}
