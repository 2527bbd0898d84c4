package store

import (
	"crypto/rand"
	"fmt"
	"time"
)

const idSuffixLen = 9

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a fresh record identifier: current timestamp plus a random
// base36 suffix. Uniqueness is probabilistic, collisions within one
// millisecond are accepted as negligible.
func NewID() string {
	b := make([]byte, idSuffixLen)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the timestamp alone rather than panic.
		return fmt.Sprintf("id-%d", time.Now().UnixNano())
	}

	for i := range b {
		b[i] = idAlphabet[int(b[i])%len(idAlphabet)]
	}

	return fmt.Sprintf("id-%d-%s", time.Now().UnixMilli(), string(b))
}

// Today returns the calendar date of the operation, the format used by
// every default date field.
func Today() string {
	return time.Now().Format("2006-01-02")
}
