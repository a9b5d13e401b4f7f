package helpers

import (
	"fmt"
	"testing"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		hour   int
		minute int
		period string
		want   string
	}{
		{12, 0, "AM", "00:00"},
		{1, 5, "AM", "01:05"},
		{11, 59, "AM", "11:59"},
		{12, 0, "PM", "12:00"},
		{1, 30, "PM", "13:30"},
		{11, 59, "PM", "23:59"},
	}

	for _, tc := range cases {
		got, err := To24Hour(tc.hour, tc.minute, tc.period)
		if err != nil {
			t.Fatalf("To24Hour(%d, %d, %s) returned error: %v", tc.hour, tc.minute, tc.period, err)
		}
		if got != tc.want {
			t.Errorf("To24Hour(%d, %d, %s) = %s, want %s", tc.hour, tc.minute, tc.period, got, tc.want)
		}
	}
}

func TestTo24HourRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		hour   int
		minute int
		period string
	}{
		{0, 0, "AM"},
		{13, 0, "AM"},
		{5, 60, "PM"},
		{5, -1, "PM"},
		{5, 30, "am"},
		{5, 30, ""},
	}

	for _, tc := range cases {
		if _, err := To24Hour(tc.hour, tc.minute, tc.period); err == nil {
			t.Errorf("To24Hour(%d, %d, %q) accepted invalid input", tc.hour, tc.minute, tc.period)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		time24 string
		want   Clock12
	}{
		{"00:00", Clock12{Hour: 12, Minute: 0, Period: "AM"}},
		{"00:30", Clock12{Hour: 12, Minute: 30, Period: "AM"}},
		{"01:00", Clock12{Hour: 1, Minute: 0, Period: "AM"}},
		{"11:59", Clock12{Hour: 11, Minute: 59, Period: "AM"}},
		{"12:00", Clock12{Hour: 12, Minute: 0, Period: "PM"}},
		{"14:30", Clock12{Hour: 2, Minute: 30, Period: "PM"}},
		{"23:59", Clock12{Hour: 11, Minute: 59, Period: "PM"}},
	}

	for _, tc := range cases {
		got, err := To12Hour(tc.time24)
		if err != nil {
			t.Fatalf("To12Hour(%s) returned error: %v", tc.time24, err)
		}
		if got != tc.want {
			t.Errorf("To12Hour(%s) = %+v, want %+v", tc.time24, got, tc.want)
		}
	}
}

func TestTo12HourRejectsInvalidInput(t *testing.T) {
	for _, bad := range []string{"", "7", "24:00", "12:60", "ab:cd", "12-30"} {
		if _, err := To12Hour(bad); err == nil {
			t.Errorf("To12Hour(%q) accepted invalid input", bad)
		}
	}
}

// Every 24-hour time must survive a round trip through the 12-hour display
// representation and back.
func TestTimeCodecRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30, 59} {
			time24 := fmt.Sprintf("%02d:%02d", hour, minute)

			c, err := To12Hour(time24)
			if err != nil {
				t.Fatalf("To12Hour(%s) returned error: %v", time24, err)
			}

			back, err := To24Hour(c.Hour, c.Minute, c.Period)
			if err != nil {
				t.Fatalf("To24Hour(%d, %d, %s) returned error: %v", c.Hour, c.Minute, c.Period, err)
			}

			if back != time24 {
				t.Errorf("round trip of %s via %+v gave %s", time24, c, back)
			}
		}
	}
}

func TestFormat12Hour(t *testing.T) {
	cases := []struct {
		time24 string
		want   string
	}{
		{"00:00", "12:00 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"14:30", "2:30 PM"},
		{"23:59", "11:59 PM"},
		{"not-a-time", "not-a-time"},
	}

	for _, tc := range cases {
		if got := Format12Hour(tc.time24); got != tc.want {
			t.Errorf("Format12Hour(%s) = %s, want %s", tc.time24, got, tc.want)
		}
	}
}
