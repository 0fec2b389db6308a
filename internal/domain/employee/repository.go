package employee

import "context"

// DirectoryStore defines access to the remote employee directory.
type DirectoryStore interface {
	// List retrieves one page of employees plus the total match count.
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)

	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, req CreateRequest) (Employee, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (Employee, error)
	Delete(ctx context.Context, id int64) error

	Departments(ctx context.Context) ([]Department, error)
	Positions(ctx context.Context) ([]Position, error)
}
