package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clockwise-hr/hrm-console/internal/domain/attendance"
	"github.com/clockwise-hr/hrm-console/internal/pkg/validator"
)

// EditModelImpl holds the working set of attendance records for the
// selected date and reconciles edits with the remote record store.
//
// Each edit is a two-phase action: a synchronous optimistic apply to the
// working set, then at most one remote write. A ticket captured at issue
// time (generation, field, prior value) drives the failure path, so a
// rollback restores exactly the value that edit replaced and a result
// arriving after the date has been switched is discarded instead of
// touching the new working set.
type EditModelImpl struct {
	store attendance.RecordStore
	now   func() time.Time

	mu      sync.Mutex
	gen     uint64
	date    string
	records []attendance.Record
	index   map[int64]int // employeeID -> position in records
}

func NewEditModel(store attendance.RecordStore) *EditModelImpl {
	return &EditModelImpl{
		store: store,
		now:   time.Now,
	}
}

var _ attendance.EditModel = (*EditModelImpl)(nil)

func (m *EditModelImpl) today() string {
	return m.now().Format("2006-01-02")
}

// SelectDate implements attendance.EditModel.
func (m *EditModelImpl) SelectDate(ctx context.Context, date string) error {
	if _, ok := validator.IsValidDate(date); !ok {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	if date > m.today() {
		return attendance.ErrFutureDate
	}

	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.date = date
	m.records = nil
	m.index = nil
	m.mu.Unlock()

	records, err := m.store.ListByDate(ctx, date)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		// A newer SelectDate replaced this fetch; drop the result.
		return nil
	}
	if err != nil {
		// The working set stays empty; the failure is reported once.
		return fmt.Errorf("failed to load attendance for %s: %w", date, err)
	}

	m.records = make([]attendance.Record, 0, len(records))
	m.index = make(map[int64]int, len(records))
	for _, rec := range records {
		if _, seen := m.index[rec.EmployeeID]; seen {
			// One logical record per (employee, date); first wins.
			continue
		}
		rec.Hours = attendance.ComputeHours(rec.CheckIn, rec.CheckOut)
		m.index[rec.EmployeeID] = len(m.records)
		m.records = append(m.records, rec)
	}
	return nil
}

// SelectedDate implements attendance.EditModel.
func (m *EditModelImpl) SelectedDate() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.date
}

// Records implements attendance.EditModel.
func (m *EditModelImpl) Records() []attendance.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]attendance.Record, len(m.records))
	copy(snapshot, m.records)
	return snapshot
}

// statusTicket is the immutable snapshot of one in-flight status edit.
// The old time fields ride along because absent/leave clears both times
// as part of the same atomic apply; the rollback undoes the whole step.
type statusTicket struct {
	gen          uint64
	date         string
	employeeID   int64
	oldStatus    attendance.Status
	newStatus    attendance.Status
	oldCheckIn   string
	oldCheckOut  string
	clearedTimes bool
}

// SetStatus implements attendance.EditModel.
func (m *EditModelImpl) SetStatus(ctx context.Context, employeeID int64, status attendance.Status) error {
	if !status.Editable() {
		return attendance.ErrStatusNotEditable
	}

	m.mu.Lock()
	if m.date == "" || m.date != m.today() {
		// Non-today working sets are read-only; attempts are ignored.
		m.mu.Unlock()
		return nil
	}
	i, ok := m.index[employeeID]
	if !ok {
		m.mu.Unlock()
		return attendance.ErrRecordNotFound
	}

	rec := &m.records[i]
	ticket := statusTicket{
		gen:          m.gen,
		date:         m.date,
		employeeID:   employeeID,
		oldStatus:    rec.Status,
		newStatus:    status,
		oldCheckIn:   rec.CheckIn,
		oldCheckOut:  rec.CheckOut,
		clearedTimes: status.ClearsTimes(),
	}

	// Optimistic apply: the status flips and, for absent/leave, both
	// times clear in the same step. No intermediate state is visible.
	rec.Status = status
	if ticket.clearedTimes {
		rec.CheckIn = attendance.TimeUnset
		rec.CheckOut = attendance.TimeUnset
		rec.Hours = attendance.HoursUnknown
	}
	id := rec.ID
	m.mu.Unlock()

	// Exactly one remote write per edit.
	var created attendance.Record
	var err error
	if id != nil {
		_, err = m.store.Update(ctx, *id, attendance.UpdateRequest{Status: &ticket.newStatus})
	} else {
		created, err = m.store.Create(ctx, attendance.MarkRequest{
			EmployeeID: employeeID,
			Date:       ticket.date,
			Status:     ticket.newStatus,
		})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != ticket.gen {
		// The working set has been replaced; this result is stale.
		return nil
	}
	rec = &m.records[m.index[employeeID]]

	if err != nil {
		// Undo the whole optimistic step, but never clobber a newer
		// edit: the status reverts only if it still holds this edit's
		// value, and a time field reverts only if it still holds the
		// sentinel this edit cleared it to.
		if rec.Status == ticket.newStatus {
			rec.Status = ticket.oldStatus
		}
		if ticket.clearedTimes {
			if rec.CheckIn == attendance.TimeUnset {
				rec.CheckIn = ticket.oldCheckIn
			}
			if rec.CheckOut == attendance.TimeUnset {
				rec.CheckOut = ticket.oldCheckOut
			}
			rec.Hours = attendance.ComputeHours(rec.CheckIn, rec.CheckOut)
		}
		return fmt.Errorf("failed to save status for employee %d: %w", employeeID, err)
	}

	if id == nil && rec.ID == nil {
		rec.ID = created.ID
	}
	return nil
}

// timeTicket is the immutable snapshot of one in-flight time edit.
type timeTicket struct {
	gen        uint64
	date       string
	employeeID int64
	field      attendance.TimeField
	oldValue   string
	newValue   string
}

// SetTime implements attendance.EditModel.
func (m *EditModelImpl) SetTime(ctx context.Context, employeeID int64, field attendance.TimeField, value string) error {
	if field != attendance.FieldCheckIn && field != attendance.FieldCheckOut {
		return attendance.ErrUnknownTimeField
	}

	m.mu.Lock()
	if m.date == "" || m.date != m.today() {
		m.mu.Unlock()
		return nil
	}
	i, ok := m.index[employeeID]
	if !ok {
		m.mu.Unlock()
		return attendance.ErrRecordNotFound
	}

	rec := &m.records[i]
	if rec.Status.ClearsTimes() {
		// An absent or leave record never carries times; the status has
		// to change first.
		m.mu.Unlock()
		return attendance.ErrTimeNotEditable
	}
	ticket := timeTicket{
		gen:        m.gen,
		date:       m.date,
		employeeID: employeeID,
		field:      field,
		oldValue:   timeFieldOf(rec, field),
		newValue:   value,
	}

	// Optimistic apply with the hours re-derived from whatever pair is
	// now in place, partial input included.
	setTimeField(rec, field, value)
	rec.Hours = attendance.ComputeHours(rec.CheckIn, rec.CheckOut)
	id := rec.ID
	status := rec.Status
	m.mu.Unlock()

	// Commit gate: partial entry stays local. Only a complete HH:MM
	// token is worth a write.
	if !validator.IsTimeOfDay(value) {
		return nil
	}

	var created attendance.Record
	var err error
	if id != nil {
		req := attendance.UpdateRequest{}
		if field == attendance.FieldCheckIn {
			req.CheckIn = &ticket.newValue
		} else {
			req.CheckOut = &ticket.newValue
		}
		_, err = m.store.Update(ctx, *id, req)
	} else {
		req := attendance.MarkRequest{
			EmployeeID: employeeID,
			Date:       ticket.date,
			Status:     status,
		}
		if field == attendance.FieldCheckIn {
			req.CheckIn = &ticket.newValue
		} else {
			req.CheckOut = &ticket.newValue
		}
		created, err = m.store.Create(ctx, req)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != ticket.gen {
		return nil
	}
	rec = &m.records[m.index[employeeID]]

	if err != nil {
		// Roll back only the mutated field, and only if it still holds
		// the value this edit wrote; a newer edit is never clobbered.
		if timeFieldOf(rec, field) == ticket.newValue {
			setTimeField(rec, field, ticket.oldValue)
			rec.Hours = attendance.ComputeHours(rec.CheckIn, rec.CheckOut)
		}
		return fmt.Errorf("failed to save %s for employee %d: %w", field, employeeID, err)
	}

	if id == nil && rec.ID == nil {
		rec.ID = created.ID
	}
	return nil
}

// History implements attendance.EditModel.
func (m *EditModelImpl) History(ctx context.Context, employeeID int64, from, to string) ([]attendance.Record, error) {
	records, err := m.store.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for employee %d: %w", employeeID, err)
	}
	for i := range records {
		records[i].Hours = attendance.ComputeHours(records[i].CheckIn, records[i].CheckOut)
	}
	return records, nil
}

func timeFieldOf(rec *attendance.Record, field attendance.TimeField) string {
	if field == attendance.FieldCheckIn {
		return rec.CheckIn
	}
	return rec.CheckOut
}

func setTimeField(rec *attendance.Record, field attendance.TimeField, value string) {
	if field == attendance.FieldCheckIn {
		rec.CheckIn = value
	} else {
		rec.CheckOut = value
	}
}
