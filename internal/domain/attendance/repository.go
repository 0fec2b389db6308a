package attendance

import "context"

// RecordStore defines access to the remote attendance record store.
type RecordStore interface {
	// ListByDate retrieves the full working set for one date: every
	// employee appears exactly once, with an id-less placeholder record
	// synthesized for employees the store has no entry for.
	ListByDate(ctx context.Context, date string) ([]Record, error)

	// ListByEmployee retrieves one employee's records across an
	// inclusive date range.
	ListByEmployee(ctx context.Context, employeeID int64, from, to string) ([]Record, error)

	// Create persists a new record and returns it with its assigned id.
	Create(ctx context.Context, req MarkRequest) (Record, error)

	// Update applies a partial update to the record with the given id.
	Update(ctx context.Context, id int64, req UpdateRequest) (Record, error)
}
