package attendance

// Status is the attendance state of one employee on one date.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"

	// Reserved by the API but not offered through the edit surface.
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

// Valid reports whether s is a status the API may return.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// Editable reports whether s can be set through the edit surface.
func (s Status) Editable() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// ClearsTimes reports whether setting s forces both time fields to the
// empty sentinel. A day marked absent or on leave never carries times.
func (s Status) ClearsTimes() bool {
	return s == StatusAbsent || s == StatusLeave
}

const (
	// TimeUnset marks a check-in/check-out that has not been recorded.
	TimeUnset = "-"
	// HoursUnknown marks derived hours that are unknown or inapplicable.
	HoursUnknown = "—"
)

// TimeField names one of the two editable time-of-day fields.
type TimeField string

const (
	FieldCheckIn  TimeField = "check_in"
	FieldCheckOut TimeField = "check_out"
)

// Record is the client-side view of one employee's attendance on one
// date. A nil ID means no record has been persisted yet for that
// (employee, date) pair; the first successful write attaches the id the
// store assigns. Hours is derived from CheckIn/CheckOut and is never
// persisted.
type Record struct {
	ID           *int64
	EmployeeID   int64
	EmployeeName string
	Department   string
	Date         string // YYYY-MM-DD
	Status       Status
	CheckIn      string // HH:MM or TimeUnset
	CheckOut     string // HH:MM or TimeUnset
	Hours        string // derived, "{h}h {m}m" or HoursUnknown
}
