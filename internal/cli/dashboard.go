package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clockwise-hr/hrm-console/internal/domain/dashboard"
)

func newDashboardCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the HR dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := app.Dashboard.Stats(cmd.Context())
			if err != nil {
				return err
			}

			w := app.table()
			printStat(w, "Total employees", stats.TotalEmployees)
			printStat(w, "Present today", stats.PresentToday)
			printStat(w, "On leave", stats.OnLeave)
			printStat(w, "Open roles", stats.OpenRoles)
			if err := w.Flush(); err != nil {
				return err
			}

			week, err := app.Dashboard.WeeklyAttendance(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "\nWeekly attendance")
			printWeek(app, week)
			return nil
		},
	}
}

func printStat(w io.Writer, label string, s dashboard.StatItem) {
	arrow := "↑"
	if s.Trend.Direction == "down" {
		arrow = "↓"
	}
	fmt.Fprintf(w, "%s\t%d\t%s %s\n", label, s.Value, arrow, s.Trend.Value)
}

// printWeek renders each day as a proportional bar.
func printWeek(app *App, week []dashboard.WeekdayCount) {
	var max int64
	for _, d := range week {
		if d.Value > max {
			max = d.Value
		}
	}

	for _, d := range week {
		width := 0
		if max > 0 {
			width = int(d.Value * 40 / max)
		}
		fmt.Fprintf(app.Out, "  %s %s %d\n", d.Day, strings.Repeat("█", width), d.Value)
	}
}

func newSidebarCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "sidebar [expand|collapse|toggle]",
		Short:     "Control the saved sidebar preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"expand", "collapse", "toggle"},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				expanded := app.Session.SidebarExpanded()
				switch args[0] {
				case "expand":
					expanded = true
				case "collapse":
					expanded = false
				case "toggle":
					expanded = !expanded
				default:
					return fmt.Errorf("unknown action %q", args[0])
				}
				app.Session.SetSidebarExpanded(expanded)
				if err := app.Session.Save(); err != nil {
					return err
				}
			}

			if app.Session.SidebarExpanded() {
				fmt.Fprintln(app.Out, "sidebar: expanded")
			} else {
				fmt.Fprintln(app.Out, "sidebar: collapsed")
			}
			return nil
		},
	}
}
