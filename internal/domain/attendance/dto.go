package attendance

import (
	"github.com/clockwise-hr/hrm-console/internal/pkg/validator"
)

// MarkRequest creates the first persisted record for an employee+date
// pair. Time fields are optional; at most one is set per user action.
type MarkRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	Status     Status  `json:"status"`
	CheckIn    *string `json:"check_in_time,omitempty"`
	CheckOut   *string `json:"check_out_time,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, leave, late, half_day",
		})
	}

	if r.CheckIn != nil && !validator.IsTimeOfDay(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM format",
		})
	}

	if r.CheckOut != nil && !validator.IsTimeOfDay(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequest carries a partial update for an existing record: only
// non-nil fields are written.
type UpdateRequest struct {
	Status   *Status `json:"status,omitempty"`
	CheckIn  *string `json:"check_in_time,omitempty"`
	CheckOut *string `json:"check_out_time,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status == nil && r.CheckIn == nil && r.CheckOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "update",
			Message: "at least one field must be set",
		})
	}

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, leave, late, half_day",
		})
	}

	if r.CheckIn != nil && !validator.IsTimeOfDay(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM format",
		})
	}

	if r.CheckOut != nil && !validator.IsTimeOfDay(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
