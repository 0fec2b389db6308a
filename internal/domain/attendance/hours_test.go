package attendance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeHours(t *testing.T) {
	cases := []struct {
		checkIn  string
		checkOut string
		want     string
	}{
		{"09:00", "17:30", "8h 30m"},
		{"09:00", "17:00", "8h 0m"},
		{"09:15", "09:45", "0h 30m"},
		{"00:00", "23:59", "23h 59m"},
		{"08:30", "09:00", "0h 30m"},

		// Zero duration is "nothing recorded", not 0h 0m.
		{"09:00", "09:00", HoursUnknown},

		// Checkout before check-in is an invalid sequence, never an
		// overnight shift.
		{"17:00", "09:00", HoursUnknown},
		{"23:59", "00:00", HoursUnknown},

		// Unset or unparseable sides.
		{TimeUnset, "17:00", HoursUnknown},
		{"09:00", TimeUnset, HoursUnknown},
		{TimeUnset, TimeUnset, HoursUnknown},
		{HoursUnknown, HoursUnknown, HoursUnknown},
		{"", "", HoursUnknown},
		{"9:00", "17:00", HoursUnknown},
		{"09:0", "17:00", HoursUnknown},
		{"0900", "1700", HoursUnknown},
		{"ab:cd", "17:00", HoursUnknown},
		{"24:00", "25:00", HoursUnknown},
		{"09:60", "17:00", HoursUnknown},
	}

	for _, c := range cases {
		got := ComputeHours(c.checkIn, c.checkOut)
		assert.Equal(t, c.want, got, "ComputeHours(%q, %q)", c.checkIn, c.checkOut)
	}
}

func TestComputeHoursAllValidPairs(t *testing.T) {
	// Sweep a grid of valid pairs and verify the h/m arithmetic holds
	// whenever checkout is strictly after check-in.
	for in := 0; in < 24*60; in += 37 {
		for out := 0; out < 24*60; out += 53 {
			ci := fmt.Sprintf("%02d:%02d", in/60, in%60)
			co := fmt.Sprintf("%02d:%02d", out/60, out%60)
			got := ComputeHours(ci, co)
			diff := out - in
			if diff <= 0 {
				assert.Equal(t, HoursUnknown, got, "ComputeHours(%q, %q)", ci, co)
				continue
			}
			assert.Equal(t, fmt.Sprintf("%dh %dm", diff/60, diff%60), got, "ComputeHours(%q, %q)", ci, co)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPresent.Editable())
	assert.True(t, StatusAbsent.Editable())
	assert.True(t, StatusLeave.Editable())
	assert.False(t, StatusLate.Editable())
	assert.False(t, StatusHalfDay.Editable())
	assert.False(t, Status("fired").Editable())

	assert.True(t, StatusLate.Valid())
	assert.True(t, StatusHalfDay.Valid())
	assert.False(t, Status("").Valid())

	assert.True(t, StatusAbsent.ClearsTimes())
	assert.True(t, StatusLeave.ClearsTimes())
	assert.False(t, StatusPresent.ClearsTimes())
}
