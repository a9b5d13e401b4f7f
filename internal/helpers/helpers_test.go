package helpers

import (
	"regexp"
	"testing"
)

var bookingIDShape = regexp.MustCompile(`^BK\d{13,}[A-Z0-9]{5}$`)

func TestGenerateBookingIDShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateBookingID()
		if !bookingIDShape.MatchString(id) {
			t.Fatalf("GenerateBookingID() = %q, want match for %s", id, bookingIDShape)
		}
	}
}

func TestGenerateBookingIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateBookingID()
		if seen[id] {
			t.Fatalf("GenerateBookingID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestCapitalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"car", "Car"},
		{"auto", "Auto"},
		{"", ""},
		{"X", "X"},
	}
	for _, tc := range cases {
		if got := Capitalize(tc.in); got != tc.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStringTrim(t *testing.T) {
	if got := StringTrim("  hello \n"); got != "hello" {
		t.Errorf("StringTrim returned %q", got)
	}
}
