package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/clockwise-hr/hrm-console/internal/domain/employee"
)

// EmployeeRepository implements employee.DirectoryStore over the API.
type EmployeeRepository struct {
	client *Client
}

func NewEmployeeRepository(client *Client) *EmployeeRepository {
	return &EmployeeRepository{client: client}
}

type employeeRow struct {
	ID           int64  `json:"id"`
	Code         string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	DepartmentID *int64 `json:"department_id"`
	Department   string `json:"department"`
	PositionID   *int64 `json:"position_id"`
	Position     string `json:"position"`
	Status       string `json:"status"`
	Phone        string `json:"phone"`
	JoinDate     string `json:"date_of_joining"`
}

func (r employeeRow) toDomain() employee.Employee {
	return employee.Employee{
		ID:           r.ID,
		Code:         r.Code,
		FullName:     r.FullName,
		Email:        r.Email,
		DepartmentID: r.DepartmentID,
		Department:   r.Department,
		PositionID:   r.PositionID,
		Position:     r.Position,
		Status:       r.Status,
		Phone:        r.Phone,
		JoinDate:     trimDate(r.JoinDate),
	}
}

func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Department != "" {
		query.Set("department", filter.Department)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var rows []employeeRow
	meta, err := r.client.do(ctx, http.MethodGet, "/api/v1/employees", query, nil, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, row.toDomain())
	}

	total := int64(len(employees))
	if meta != nil {
		total = meta.TotalItems
	}
	return employees, total, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	path := "/api/v1/employees/" + strconv.FormatInt(id, 10)

	var row employeeRow
	if _, err := r.client.do(ctx, http.MethodGet, path, nil, nil, &row); err != nil {
		return employee.Employee{}, mapEmployeeError(err)
	}
	return row.toDomain(), nil
}

func (r *EmployeeRepository) Create(ctx context.Context, req employee.CreateRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var row employeeRow
	if _, err := r.client.do(ctx, http.MethodPost, "/api/v1/employees", nil, &req, &row); err != nil {
		return employee.Employee{}, mapEmployeeError(err)
	}
	return row.toDomain(), nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id int64, req employee.UpdateRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	path := "/api/v1/employees/" + strconv.FormatInt(id, 10)
	var row employeeRow
	if _, err := r.client.do(ctx, http.MethodPut, path, nil, &req, &row); err != nil {
		return employee.Employee{}, mapEmployeeError(err)
	}
	return row.toDomain(), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	path := "/api/v1/employees/" + strconv.FormatInt(id, 10)
	if _, err := r.client.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return mapEmployeeError(err)
	}
	return nil
}

func (r *EmployeeRepository) Departments(ctx context.Context) ([]employee.Department, error) {
	var rows []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if _, err := r.client.do(ctx, http.MethodGet, "/api/v1/departments", nil, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]employee.Department, 0, len(rows))
	for _, row := range rows {
		departments = append(departments, employee.Department{ID: row.ID, Name: row.Name})
	}
	return departments, nil
}

func (r *EmployeeRepository) Positions(ctx context.Context) ([]employee.Position, error) {
	var rows []struct {
		ID           int64  `json:"id"`
		Title        string `json:"title"`
		DepartmentID *int64 `json:"department_id"`
	}
	if _, err := r.client.do(ctx, http.MethodGet, "/api/v1/positions", nil, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	positions := make([]employee.Position, 0, len(rows))
	for _, row := range rows {
		positions = append(positions, employee.Position{ID: row.ID, Title: row.Title, DepartmentID: row.DepartmentID})
	}
	return positions, nil
}

// mapEmployeeError translates well-known API errors into domain errors.
func mapEmployeeError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			return employee.ErrEmployeeNotFound
		case apiErr.Code == "EMAIL_EXISTS":
			return employee.ErrEmailExists
		case apiErr.Code == "EMPLOYEE_CODE_EXISTS":
			return employee.ErrCodeExists
		}
	}
	return fmt.Errorf("employee request failed: %w", err)
}
