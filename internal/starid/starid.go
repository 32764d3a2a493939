// Package starid generates the user-facing StarID identifiers:
// "STAR-" followed by 8 uppercase hex characters from 4 random bytes.
package starid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

const Prefix = "STAR-"

const idByteCount = 4

var format = regexp.MustCompile(`^STAR-[0-9A-F]{8}$`)

// New returns a fresh StarID. Uniqueness is not guaranteed here;
// the store's unique index on starid is the source of truth.
func New() (string, error) {
	raw := make([]byte, idByteCount)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return Prefix + strings.ToUpper(hex.EncodeToString(raw)), nil
}

func Valid(id string) bool {
	return format.MatchString(id)
}
