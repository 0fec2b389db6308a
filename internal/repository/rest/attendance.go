package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/clockwise-hr/hrm-console/internal/domain/attendance"
)

// AttendanceRepository implements attendance.RecordStore over the API.
type AttendanceRepository struct {
	client *Client
}

func NewAttendanceRepository(client *Client) *AttendanceRepository {
	return &AttendanceRepository{client: client}
}

// attendanceRow is the wire shape of one attendance record. Times come
// back as HH:MM:SS and dates may carry a time component; mapping trims
// both down to what the client works with.
type attendanceRow struct {
	ID           *int64  `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Employee     *struct {
		FullName   string `json:"full_name"`
		Username   string `json:"username"`
		Department string `json:"department"`
	} `json:"employee,omitempty"`
}

func (r attendanceRow) toDomain() attendance.Record {
	rec := attendance.Record{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       trimDate(r.Date),
		Status:     attendance.Status(r.Status),
		CheckIn:    trimTime(r.CheckInTime),
		CheckOut:   trimTime(r.CheckOutTime),
	}
	rec.Hours = attendance.ComputeHours(rec.CheckIn, rec.CheckOut)

	if r.Employee != nil {
		rec.EmployeeName = r.Employee.FullName
		if rec.EmployeeName == "" {
			rec.EmployeeName = r.Employee.Username
		}
		rec.Department = r.Employee.Department
	}
	if rec.EmployeeName == "" {
		rec.EmployeeName = fmt.Sprintf("Employee #%d", r.EmployeeID)
	}
	if rec.Department == "" {
		rec.Department = "N/A"
	}
	return rec
}

func trimDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func trimTime(s *string) string {
	if s == nil || *s == "" {
		return attendance.TimeUnset
	}
	if len(*s) > 5 {
		return (*s)[:5]
	}
	return *s
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	query := url.Values{"date": {date}}

	var rows []attendanceRow
	if _, err := r.client.do(ctx, http.MethodGet, "/api/v1/attendance", query, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to list attendance for %s: %w", date, err)
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}
	return records, nil
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID int64, from, to string) ([]attendance.Record, error) {
	query := url.Values{
		"start_date": {from},
		"end_date":   {to},
	}
	path := "/api/v1/attendance/employee/" + strconv.FormatInt(employeeID, 10)

	var rows []attendanceRow
	if _, err := r.client.do(ctx, http.MethodGet, path, query, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to list attendance history for employee %d: %w", employeeID, err)
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}
	return records, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, req attendance.MarkRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	var row attendanceRow
	if _, err := r.client.do(ctx, http.MethodPost, "/api/v1/attendance", nil, &req, &row); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return row.toDomain(), nil
}

func (r *AttendanceRepository) Update(ctx context.Context, id int64, req attendance.UpdateRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	path := "/api/v1/attendance/" + strconv.FormatInt(id, 10)
	var row attendanceRow
	if _, err := r.client.do(ctx, http.MethodPut, path, nil, &req, &row); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to update attendance record %d: %w", id, err)
	}
	return row.toDomain(), nil
}
