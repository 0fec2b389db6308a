package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound    = errors.New("attendance record not found for employee")
	ErrFutureDate        = errors.New("attendance date is in the future")
	ErrStatusNotEditable = errors.New("status cannot be set through the edit surface")
	ErrTimeNotEditable   = errors.New("time fields cannot be set while status is absent or leave")
	ErrUnknownTimeField  = errors.New("unknown time field")
)
