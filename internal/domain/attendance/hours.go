package attendance

import (
	"fmt"
	"strconv"
)

// ComputeHours derives the worked-hours display value from a check-in
// and check-out pair. It never fails: any unparseable side yields
// HoursUnknown, as does a zero or negative difference (a checkout before
// the check-in is an invalid sequence, not an overnight shift).
func ComputeHours(checkIn, checkOut string) string {
	in, ok := parseMinutes(checkIn)
	if !ok {
		return HoursUnknown
	}
	out, ok := parseMinutes(checkOut)
	if !ok {
		return HoursUnknown
	}
	diff := out - in
	if diff <= 0 {
		return HoursUnknown
	}
	return fmt.Sprintf("%dh %dm", diff/60, diff%60)
}

// parseMinutes converts a strict 5-character HH:MM token to minutes
// since midnight.
func parseMinutes(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
