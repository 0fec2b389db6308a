package employee

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/hrm-console/internal/domain/employee"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type DirectoryServiceImpl struct {
	employee.DirectoryStore
}

func NewDirectoryService(store employee.DirectoryStore) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{DirectoryStore: store}
}

var _ employee.DirectoryService = (*DirectoryServiceImpl)(nil)

// List implements employee.DirectoryService.
func (s *DirectoryServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.Page, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	items, total, err := s.DirectoryStore.List(ctx, filter)
	if err != nil {
		return employee.Page{}, fmt.Errorf("failed to list employees: %w", err)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return employee.Page{
		Items:      items,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// Get implements employee.DirectoryService.
func (s *DirectoryServiceImpl) Get(ctx context.Context, id int64) (employee.Employee, error) {
	return s.DirectoryStore.GetByID(ctx, id)
}

// Create implements employee.DirectoryService.
func (s *DirectoryServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	if req.Status == "" {
		req.Status = "active"
	}
	return s.DirectoryStore.Create(ctx, req)
}

// Update implements employee.DirectoryService.
func (s *DirectoryServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return s.DirectoryStore.Update(ctx, id, req)
}

// Delete implements employee.DirectoryService.
func (s *DirectoryServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.DirectoryStore.Delete(ctx, id)
}
