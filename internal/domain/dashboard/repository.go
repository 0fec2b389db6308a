package dashboard

import "context"

// MetricsStore defines access to the remote dashboard metrics.
type MetricsStore interface {
	Stats(ctx context.Context) (Stats, error)
	WeeklyAttendance(ctx context.Context) ([]WeekdayCount, error)
}
