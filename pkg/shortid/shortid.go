// Package shortid generates the short human-shareable codes used for
// bookings and requests. Codes are five random base-36 uppercase characters;
// booking codes carry a YYMMDD date prefix. Uniqueness is not guaranteed by
// the generator itself but by the storage layer's unique index, so callers
// must be prepared to regenerate on a collision.
package shortid

import (
	"math/rand/v2"
	"strings"
	"time"
)

const (
	alphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength = 5

	// datePrefixFormat is the YYMMDD prefix on booking codes.
	datePrefixFormat = "060102"
)

func code() string {
	var b strings.Builder
	b.Grow(codeLength)
	for i := 0; i < codeLength; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}

// BookingID returns a booking code in the form "YYMMDD-XXXXX",
// dated with the given creation time.
func BookingID(now time.Time) string {
	return now.Format(datePrefixFormat) + "-" + code()
}

// RequestID returns a request code: five base-36 uppercase characters.
func RequestID() string {
	return code()
}
