package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clockwise-hr/hrm-console/internal/domain/employee"
)

func newEmployeeCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"emp"},
		Short:   "Browse and manage the employee directory",
	}
	cmd.AddCommand(
		newEmployeeListCommand(app),
		newEmployeeShowCommand(app),
		newEmployeeAddCommand(app),
		newEmployeeUpdateCommand(app),
		newEmployeeRemoveCommand(app),
	)
	return cmd
}

func parseIDArg(args []string) (int64, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid employee id %q", args[0])
	}
	return id, nil
}

func newEmployeeListCommand(app *App) *cobra.Command {
	var filter employee.ListFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := app.Directory.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			w := app.table()
			fmt.Fprintln(w, "ID\tCODE\tNAME\tEMAIL\tDEPARTMENT\tSTATUS\tJOINED")
			for _, e := range page.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Code, e.FullName, e.Email, e.Department, e.Status, e.JoinDate)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "\nPage %d/%d, %d employees\n", page.Page, page.TotalPages, page.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "match name or email")
	cmd.Flags().StringVar(&filter.Department, "department", "", "filter by department")
	cmd.Flags().StringVar(&filter.Status, "status", "", "filter by status (active|inactive)")
	cmd.Flags().IntVar(&filter.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&filter.Limit, "limit", 10, "page size")
	return cmd
}

func newEmployeeShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			e, err := app.Directory.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			w := app.table()
			fmt.Fprintf(w, "ID\t%d\n", e.ID)
			fmt.Fprintf(w, "Code\t%s\n", e.Code)
			fmt.Fprintf(w, "Name\t%s\n", e.FullName)
			fmt.Fprintf(w, "Email\t%s\n", e.Email)
			fmt.Fprintf(w, "Department\t%s\n", e.Department)
			fmt.Fprintf(w, "Position\t%s\n", e.Position)
			fmt.Fprintf(w, "Status\t%s\n", e.Status)
			fmt.Fprintf(w, "Phone\t%s\n", e.Phone)
			fmt.Fprintf(w, "Joined\t%s\n", e.JoinDate)
			return w.Flush()
		},
	}
}

func newEmployeeAddCommand(app *App) *cobra.Command {
	var req employee.CreateRequest
	var departmentID, positionID int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("department-id") {
				req.DepartmentID = &departmentID
			}
			if cmd.Flags().Changed("position-id") {
				req.PositionID = &positionID
			}

			e, err := app.Directory.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Added %s (#%d, %s)\n", e.FullName, e.ID, e.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Code, "code", "", "employee code (assigned when omitted)")
	cmd.Flags().StringVar(&req.JoinDate, "join-date", "", "date of joining (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Status, "status", "", "active or inactive (default active)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().Int64Var(&departmentID, "department-id", 0, "department id")
	cmd.Flags().Int64Var(&positionID, "position-id", 0, "position id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("join-date")
	return cmd
}

func newEmployeeUpdateCommand(app *App) *cobra.Command {
	var fullName, email, status, phone, joinDate string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee; only the given flags are written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}

			var req employee.UpdateRequest
			if cmd.Flags().Changed("name") {
				req.FullName = &fullName
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}
			if cmd.Flags().Changed("join-date") {
				req.JoinDate = &joinDate
			}

			e, err := app.Directory.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated %s (#%d)\n", e.FullName, e.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&status, "status", "", "active or inactive")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&joinDate, "join-date", "", "date of joining (YYYY-MM-DD)")
	return cmd
}

func newEmployeeRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			if err := app.Directory.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Removed employee #%d\n", id)
			return nil
		},
	}
}
