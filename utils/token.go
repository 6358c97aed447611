package utils

import (
	"math/rand"
	"strings"
	"time"
)

// Reset codes get typed from an email on a phone, so the alphabet drops
// characters that read ambiguously (0/O, 1/I/l).
const resetCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

var codeRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateResetCode returns an uppercase one-time code of the given length.
func GenerateResetCode(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(resetCodeAlphabet[codeRand.Intn(len(resetCodeAlphabet))])
	}
	return b.String()
}
