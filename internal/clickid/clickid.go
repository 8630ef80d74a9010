package clickid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Length of a click identifier. 12 hex characters (48 bits) keeps the
// Telegram start parameter short while making collisions negligible at the
// expected volume.
const Length = 12

// Generate returns a random click identifier: 128 bits from crypto/rand,
// hex-encoded and truncated to Length characters.
func Generate() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(b[:])[:Length], nil
}
