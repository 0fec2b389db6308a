package dashboard

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/hrm-console/internal/domain/dashboard"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type DashboardServiceImpl struct {
	store dashboard.MetricsStore
}

func NewDashboardService(store dashboard.MetricsStore) *DashboardServiceImpl {
	return &DashboardServiceImpl{store: store}
}

var _ dashboard.Service = (*DashboardServiceImpl)(nil)

// Stats implements dashboard.Service.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.Stats, error) {
	return s.store.Stats(ctx)
}

// WeeklyAttendance implements dashboard.Service. The chart always shows
// a full Mon..Sun week: days the API omits render as zero bars.
func (s *DashboardServiceImpl) WeeklyAttendance(ctx context.Context) ([]dashboard.WeekdayCount, error) {
	counts, err := s.store.WeeklyAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly attendance: %w", err)
	}

	byDay := make(map[string]int64, len(counts))
	for _, c := range counts {
		byDay[c.Day] = c.Value
	}

	week := make([]dashboard.WeekdayCount, 0, len(weekdays))
	for _, day := range weekdays {
		week = append(week, dashboard.WeekdayCount{Day: day, Value: byDay[day]})
	}
	return week, nil
}
