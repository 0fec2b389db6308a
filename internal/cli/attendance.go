package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clockwise-hr/hrm-console/internal/domain/attendance"
	"github.com/clockwise-hr/hrm-console/internal/pkg/validator"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

func newAttendanceCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attendance",
		Aliases: []string{"att"},
		Short:   "View and edit the daily attendance grid",
	}
	cmd.AddCommand(
		newAttendanceShowCommand(app),
		newAttendanceStatusCommand(app),
		newAttendanceTimeCommand(app, "checkin", attendance.FieldCheckIn),
		newAttendanceTimeCommand(app, "checkout", attendance.FieldCheckOut),
		newAttendanceHistoryCommand(app),
	)
	return cmd
}

func newAttendanceShowCommand(app *App) *cobra.Command {
	var date, search, status string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the attendance grid for a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				date = today()
			}
			if err := app.Attendance.SelectDate(cmd.Context(), date); err != nil {
				return err
			}

			records := app.Attendance.Records()
			search = strings.ToLower(search)

			w := app.table()
			fmt.Fprintln(w, "EMP\tNAME\tDEPARTMENT\tSTATUS\tIN\tOUT\tHOURS")
			shown := 0
			for _, rec := range records {
				if search != "" && !strings.Contains(strings.ToLower(rec.EmployeeName), search) {
					continue
				}
				if status != "" && string(rec.Status) != status {
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					rec.EmployeeID, rec.EmployeeName, rec.Department,
					rec.Status, rec.CheckIn, rec.CheckOut, rec.Hours)
				shown++
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "\n%s: %d of %d employees shown", date, shown, len(records))
			if date == today() {
				fmt.Fprint(app.Out, " (editable)")
			}
			fmt.Fprintln(app.Out)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date to show (default today)")
	cmd.Flags().StringVar(&search, "search", "", "match employee name")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	return cmd
}

// editToday loads today's grid, runs the edit, and prints the row it
// touched. Past dates are read-only, so there is no date flag here.
func editToday(app *App, cmd *cobra.Command, employeeID int64, edit func() error) error {
	if err := app.Attendance.SelectDate(cmd.Context(), today()); err != nil {
		return err
	}
	if err := edit(); err != nil {
		return err
	}

	for _, rec := range app.Attendance.Records() {
		if rec.EmployeeID != employeeID {
			continue
		}
		fmt.Fprintf(app.Out, "%s: %s %s %s-%s (%s)\n",
			rec.Date, rec.EmployeeName, rec.Status, rec.CheckIn, rec.CheckOut, rec.Hours)
		return nil
	}
	return attendance.ErrRecordNotFound
}

func newAttendanceStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <employee-id> <present|absent|leave>",
		Short: "Set an employee's status for today",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			status := attendance.Status(args[1])
			if !status.Editable() {
				return fmt.Errorf("status %q cannot be set here", args[1])
			}
			return editToday(app, cmd, id, func() error {
				return app.Attendance.SetStatus(cmd.Context(), id, status)
			})
		},
	}
}

func newAttendanceTimeCommand(app *App, use string, field attendance.TimeField) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <employee-id> <HH:MM>",
		Short: "Record a " + use + " time for today",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			value := args[1]
			if !validator.IsTimeOfDay(value) {
				return fmt.Errorf("time must be HH:MM, got %q", value)
			}
			return editToday(app, cmd, id, func() error {
				return app.Attendance.SetTime(cmd.Context(), id, field, value)
			})
		},
	}
}

func newAttendanceHistoryCommand(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "history <employee-id>",
		Short: "Show an employee's attendance over a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			if to == "" {
				to = today()
			}
			if from == "" {
				from = time.Now().AddDate(0, 0, -14).Format("2006-01-02")
			}

			records, err := app.Attendance.History(cmd.Context(), id, from, to)
			if err != nil {
				return err
			}

			w := app.table()
			fmt.Fprintln(w, "DATE\tSTATUS\tIN\tOUT\tHOURS")
			for _, rec := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					rec.Date, rec.Status, rec.CheckIn, rec.CheckOut, rec.Hours)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (default 14 days ago)")
	cmd.Flags().StringVar(&to, "to", "", "end date (default today)")
	return cmd
}
