package employee

import "context"

// DirectoryService defines the employee directory operations the
// console exposes.
type DirectoryService interface {
	List(ctx context.Context, filter ListFilter) (Page, error)
	Get(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, req CreateRequest) (Employee, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (Employee, error)
	Delete(ctx context.Context, id int64) error

	Departments(ctx context.Context) ([]Department, error)
	Positions(ctx context.Context) ([]Position, error)
}
