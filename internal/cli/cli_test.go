package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/clockwise-hr/hrm-console/internal/domain/attendance"
	"github.com/clockwise-hr/hrm-console/internal/fixtures"
	"github.com/clockwise-hr/hrm-console/internal/pkg/session"
	"github.com/clockwise-hr/hrm-console/internal/repository/rest"
	attendancesvc "github.com/clockwise-hr/hrm-console/internal/service/attendance"
	authsvc "github.com/clockwise-hr/hrm-console/internal/service/auth"
	dashboardsvc "github.com/clockwise-hr/hrm-console/internal/service/dashboard"
	employeesvc "github.com/clockwise-hr/hrm-console/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fixtures.Server, *App, *bytes.Buffer) {
	t.Helper()

	fx := fixtures.New()
	srv := httptest.NewServer(fx.Handler())
	t.Cleanup(srv.Close)

	store := session.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, store.Load())

	client := rest.NewClient(srv.URL, 5*time.Second, store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	app := &App{
		Auth:       authsvc.NewAuthService(rest.NewAuthRepository(client), store, logger),
		Directory:  employeesvc.NewDirectoryService(rest.NewEmployeeRepository(client)),
		Dashboard:  dashboardsvc.NewDashboardService(rest.NewDashboardRepository(client)),
		Attendance: attendancesvc.NewEditModel(rest.NewAttendanceRepository(client)),
		Session:    store,
		Log:        logger,
		Out:        &out,
	}
	return fx, app, &out
}

func run(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestEmployeeListCommand(t *testing.T) {
	fx, app, out := newTestApp(t)
	fx.SeedEmployee("Alice Tan", "alice@clockwise.test", "Engineering")
	fx.SeedEmployee("Bob Lim", "bob@clockwise.test", "Finance")

	require.NoError(t, run(t, app, "employee", "list"))

	assert.Contains(t, out.String(), "Alice Tan")
	assert.Contains(t, out.String(), "Bob Lim")
	assert.Contains(t, out.String(), "Page 1/1, 2 employees")
}

func TestAttendanceShowToday(t *testing.T) {
	fx, app, out := newTestApp(t)
	id := fx.SeedEmployee("Alice Tan", "alice@clockwise.test", "Engineering")
	date := time.Now().Format("2006-01-02")
	fx.SeedAttendance(id, date, "present", "09:00", "17:30")

	require.NoError(t, run(t, app, "attendance", "show"))

	assert.Contains(t, out.String(), "09:00")
	assert.Contains(t, out.String(), "8h 30m")
	assert.Contains(t, out.String(), "(editable)")
}

func TestAttendanceCheckinCommand(t *testing.T) {
	fx, app, out := newTestApp(t)
	id := fx.SeedEmployee("Alice Tan", "alice@clockwise.test", "Engineering")

	// A fresh row starts absent; marking present persists the record,
	// then the check-in lands on it.
	require.NoError(t, run(t, app, "attendance", "status", "1", "present"))
	require.NoError(t, run(t, app, "attendance", "checkin", "1", "08:45"))
	assert.Contains(t, out.String(), "08:45")

	recID := int64(1)
	stored, found := fx.AttendanceRecord(recID)
	require.True(t, found, "the first write persists a record")
	assert.Equal(t, id, stored.EmployeeID)
	require.NotNil(t, stored.CheckInTime)
	assert.Equal(t, "08:45:00", *stored.CheckInTime)
}

func TestAttendanceCheckinRefusedWhileAbsent(t *testing.T) {
	fx, app, _ := newTestApp(t)
	fx.SeedEmployee("Alice Tan", "alice@clockwise.test", "Engineering")

	err := run(t, app, "attendance", "checkin", "1", "09:00")
	require.ErrorIs(t, err, attendance.ErrTimeNotEditable)

	_, found := fx.AttendanceRecord(1)
	assert.False(t, found, "no record is persisted for an absent row")
}

func TestAttendanceCheckinRejectsPartialInput(t *testing.T) {
	fx, app, _ := newTestApp(t)
	fx.SeedEmployee("Alice Tan", "alice@clockwise.test", "Engineering")

	err := run(t, app, "attendance", "checkin", "1", "8:45")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HH:MM")

	_, found := fx.AttendanceRecord(1)
	assert.False(t, found, "nothing is written for partial input")
}

func TestAttendanceStatusRejectsReserved(t *testing.T) {
	fx, app, _ := newTestApp(t)
	fx.SeedEmployee("Alice Tan", "alice@clockwise.test", "Engineering")

	err := run(t, app, "attendance", "status", "1", "late")
	assert.Error(t, err)
}

func TestSidebarToggle(t *testing.T) {
	_, app, out := newTestApp(t)

	require.NoError(t, run(t, app, "sidebar"))
	assert.Contains(t, out.String(), "expanded", "sidebar starts expanded")

	out.Reset()
	require.NoError(t, run(t, app, "sidebar", "toggle"))
	assert.Contains(t, out.String(), "collapsed")

	out.Reset()
	require.NoError(t, run(t, app, "sidebar", "expand"))
	assert.Contains(t, out.String(), "expanded")
}

func TestLoginThenWhoami(t *testing.T) {
	fx, app, out := newTestApp(t)
	fx.SeedUser("hr@clockwise.test", "hunter2hunter2", "admin")

	require.NoError(t, run(t, app,
		"login", "--email", "hr@clockwise.test", "--password", "hunter2hunter2"))
	assert.Contains(t, out.String(), "Logged in as hr@clockwise.test")

	out.Reset()
	require.NoError(t, run(t, app, "whoami"))
	assert.Contains(t, out.String(), "hr@clockwise.test")
	assert.Contains(t, out.String(), "admin")
}

func TestDashboardCommand(t *testing.T) {
	fx, app, out := newTestApp(t)
	id := fx.SeedEmployee("Alice Tan", "alice@clockwise.test", "Engineering")
	fx.SeedAttendance(id, "2026-08-31", "present", "09:00", "17:00")

	require.NoError(t, run(t, app, "dashboard"))

	assert.Contains(t, out.String(), "Total employees")
	assert.Contains(t, out.String(), "Weekly attendance")
	assert.Contains(t, out.String(), "Mon")
}
