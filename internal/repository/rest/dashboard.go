package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/clockwise-hr/hrm-console/internal/domain/dashboard"
)

// DashboardRepository implements dashboard.MetricsStore over the API.
type DashboardRepository struct {
	client *Client
}

func NewDashboardRepository(client *Client) *DashboardRepository {
	return &DashboardRepository{client: client}
}

func (r *DashboardRepository) Stats(ctx context.Context) (dashboard.Stats, error) {
	var stats dashboard.Stats
	if _, err := r.client.do(ctx, http.MethodGet, "/api/v1/dashboard/stats", nil, nil, &stats); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	return stats, nil
}

func (r *DashboardRepository) WeeklyAttendance(ctx context.Context) ([]dashboard.WeekdayCount, error) {
	var counts []dashboard.WeekdayCount
	if _, err := r.client.do(ctx, http.MethodGet, "/api/v1/dashboard/weekly-attendance", nil, nil, &counts); err != nil {
		return nil, fmt.Errorf("failed to fetch weekly attendance: %w", err)
	}
	return counts, nil
}
