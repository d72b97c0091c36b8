// Package id mints the public identifiers exposed on the API surface
// (user ids, application ids) next to the numeric database keys.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns 32 lowercase hex characters backed by 16 random
// bytes. No separators or prefixes; the hex32 validator tag and the
// idempotency key format both rely on this exact shape.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
