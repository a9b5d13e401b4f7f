package helpers

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const bookingIDPrefix = "BK"

const suffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// Capitalize upper-cases the first letter, e.g. "car" -> "Car".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// GenerateBookingID produces a human-readable booking identifier of the form
// BK<unix-millis><5 uppercase alphanumerics>. The random suffix makes
// collisions practically impossible; the unique index on booking_id remains
// the authoritative guard.
func GenerateBookingID() string {
	return bookingIDPrefix + fmt.Sprintf("%d", time.Now().UnixMilli()) + randomSuffix(5)
}

func randomSuffix(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails if the OS entropy source is broken;
		// fall back to a timestamp-derived suffix rather than panic.
		return fmt.Sprintf("%05d", time.Now().UnixNano()%100000)
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = suffixCharset[int(b)%len(suffixCharset)]
	}
	return string(out)
}
