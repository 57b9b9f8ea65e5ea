// Package token generates the customer-facing order and tracking identifiers.
// Tokens are time-ordered (a millisecond timestamp prefix keeps them sortable
// by creation time) followed by random entropy, so client-side generation stays
// collision-resistant without coordinating with the data store.
package token

import (
	"crypto/rand"
	"fmt"
	"time"
)

// OrderPrefix and TrackingPrefix distinguish the two token families an order
// carries. The tracking token is the user-facing lookup handle; the order
// token is the primary key.
const (
	OrderPrefix    = "ORD"
	TrackingPrefix = "TRK"
)

// Crockford base32: no I, L, O, U to avoid transcription mistakes.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	timeChars   = 9
	randomChars = 8
)

// New returns a token of the form PREFIX-TTTTTTTTTRRRRRRRR.
func New(prefix string) (string, error) {
	return newAt(prefix, time.Now())
}

func newAt(prefix string, now time.Time) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("token prefix is required")
	}

	buf := make([]byte, timeChars+randomChars)

	// 45 bits of millisecond timestamp, most significant character first.
	ms := uint64(now.UnixMilli())
	for i := timeChars - 1; i >= 0; i-- {
		buf[i] = alphabet[ms&0x1f]
		ms >>= 5
	}

	entropy := make([]byte, randomChars)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("reading token entropy: %w", err)
	}
	for i, b := range entropy {
		buf[timeChars+i] = alphabet[int(b)%len(alphabet)]
	}

	return prefix + "-" + string(buf), nil
}

// NewOrderID returns a fresh order primary key token.
func NewOrderID() (string, error) {
	return New(OrderPrefix)
}

// NewTrackingID returns a fresh tracking token.
func NewTrackingID() (string, error) {
	return New(TrackingPrefix)
}
