package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/clockwise-hr/hrm-console/internal/cli"
	"github.com/clockwise-hr/hrm-console/internal/config"
	"github.com/clockwise-hr/hrm-console/internal/pkg/session"
	"github.com/clockwise-hr/hrm-console/internal/repository/rest"
	attendanceService "github.com/clockwise-hr/hrm-console/internal/service/attendance"
	authService "github.com/clockwise-hr/hrm-console/internal/service/auth"
	dashboardService "github.com/clockwise-hr/hrm-console/internal/service/dashboard"
	employeeService "github.com/clockwise-hr/hrm-console/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})).With(
		slog.String("app", "hrm-console"),
		slog.String("env", cfg.App.Env),
	)

	sessionStore := session.NewFileStore(cfg.App.StatePath)
	if err := sessionStore.Load(); err != nil {
		logger.Warn("failed to load session, starting fresh", slog.String("error", err.Error()))
	}

	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sessionStore)

	app := &cli.App{
		Auth:       authService.NewAuthService(rest.NewAuthRepository(client), sessionStore, logger),
		Directory:  employeeService.NewDirectoryService(rest.NewEmployeeRepository(client)),
		Dashboard:  dashboardService.NewDashboardService(rest.NewDashboardRepository(client)),
		Attendance: attendanceService.NewEditModel(rest.NewAttendanceRepository(client)),
		Session:    sessionStore,
		Log:        logger,
		Out:        os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
