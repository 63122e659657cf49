// Package token mints the opaque code strings used for clinic admin codes
// and authorization codes.
package token

import (
	"crypto/rand"
	"math/big"
)

// Uppercase base-36: the alphabet the bot integrations expect codes in.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generate returns a random token of n characters. Uniqueness is not
// guaranteed here; the store's unique constraints are the contract and
// callers retry on conflict.
func Generate(n int) string {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// there is no meaningful recovery for a token mint.
			panic(err)
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b)
}
