package attendance

import "context"

// EditModel owns the working set of attendance records for one selected
// date and reconciles user edits with the remote record store.
//
// Edits never block correctness on the remote call: each edit is applied
// to the working set immediately, then committed with exactly one remote
// write, and rolled back field-by-field if that write fails. Edits are
// accepted only while the selected date is the current date; for any
// other date they are silent no-ops.
type EditModel interface {
	// SelectDate replaces the working set with the given date's records.
	// The date must not be in the future. A fetch failure leaves the
	// working set empty and is returned.
	SelectDate(ctx context.Context, date string) error

	// SelectedDate returns the date of the current working set, or ""
	// before the first SelectDate.
	SelectedDate() string

	// Records returns a snapshot of the working set.
	Records() []Record

	// SetStatus applies an editable status to an employee's record.
	// Setting absent or leave clears both time fields in the same step.
	SetStatus(ctx context.Context, employeeID int64, status Status) error

	// SetTime applies a raw time-entry value to one time field. Only a
	// complete HH:MM token is committed remotely; partial input updates
	// the working set and stops there. Records whose status bars times
	// (absent, leave) reject the edit with ErrTimeNotEditable.
	SetTime(ctx context.Context, employeeID int64, field TimeField, value string) error

	// History returns one employee's records across a date range,
	// read-only, with derived hours filled in.
	History(ctx context.Context, employeeID int64, from, to string) ([]Record, error)
}
