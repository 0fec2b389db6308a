// Package cli is the console's command surface. Commands translate
// flags and arguments into service calls and render the results as
// plain-text tables; no business logic lives here.
package cli

import (
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/clockwise-hr/hrm-console/internal/domain/attendance"
	"github.com/clockwise-hr/hrm-console/internal/domain/auth"
	"github.com/clockwise-hr/hrm-console/internal/domain/dashboard"
	"github.com/clockwise-hr/hrm-console/internal/domain/employee"
	"github.com/clockwise-hr/hrm-console/internal/pkg/session"
)

// App bundles everything the commands need.
type App struct {
	Auth       auth.Service
	Directory  employee.DirectoryService
	Dashboard  dashboard.Service
	Attendance attendance.EditModel
	Session    session.Store
	Log        *slog.Logger
	Out        io.Writer
}

func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "hrm",
		Short:         "Console for the Clockwise HRM API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(app.Out)

	root.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newRegisterCommand(app),
		newDashboardCommand(app),
		newEmployeeCommand(app),
		newAttendanceCommand(app),
		newSidebarCommand(app),
	)
	return root
}

// table returns a tabwriter on the app's output, flushed by the caller.
func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
}
