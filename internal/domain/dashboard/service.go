package dashboard

import "context"

// Service defines the metrics the console dashboard renders.
type Service interface {
	Stats(ctx context.Context) (Stats, error)
	WeeklyAttendance(ctx context.Context) ([]WeekdayCount, error)
}
