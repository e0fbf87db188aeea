package tools

import (
	"math/rand"
	"time"
)

const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandomString generates a game access code of the given length. The
// charset skips lookalike characters (0/O, 1/I) since parents type these
// codes by hand.
func RandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeCharset[seededRand.Intn(len(codeCharset))]
	}
	return string(b)
}
