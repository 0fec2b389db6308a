package rest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	fx, client := newTestClient(t)
	a := fx.SeedEmployee("Alice Tan", "alice@clockwise.test", "Engineering")
	b := fx.SeedEmployee("Bob Lim", "bob@clockwise.test", "Finance")
	c := fx.SeedEmployee("Cara Ng", "cara@clockwise.test", "Finance")
	fx.SeedAttendance(a, "2026-08-31", "present", "09:00", "17:00")
	fx.SeedAttendance(b, "2026-08-31", "present", "09:30", "18:00")
	fx.SeedAttendance(c, "2026-08-31", "leave", "", "")
	fx.SeedPosition("Backend Engineer")

	repo := NewDashboardRepository(client)
	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalEmployees.Value)
	assert.Equal(t, int64(2), stats.PresentToday.Value)
	assert.Equal(t, int64(1), stats.OnLeave.Value)
	assert.Equal(t, int64(1), stats.OpenRoles.Value)
	assert.NotEmpty(t, stats.TotalEmployees.Trend.Direction)
}

func TestDashboardWeeklyAttendance(t *testing.T) {
	fx, client := newTestClient(t)
	a := fx.SeedEmployee("Alice Tan", "alice@clockwise.test", "Engineering")
	// 2026-08-31 is a Monday.
	fx.SeedAttendance(a, "2026-08-31", "present", "09:00", "17:00")
	fx.SeedAttendance(a, "2026-09-01", "present", "09:00", "17:00")
	fx.SeedAttendance(a, "2026-09-02", "leave", "", "")

	repo := NewDashboardRepository(client)
	counts, err := repo.WeeklyAttendance(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 7)

	byDay := map[string]int64{}
	for _, c := range counts {
		byDay[c.Day] = c.Value
	}
	assert.Equal(t, int64(1), byDay["Mon"])
	assert.Equal(t, int64(1), byDay["Tue"])
	assert.Equal(t, int64(0), byDay["Wed"], "leave does not count toward attendance")
	assert.Equal(t, "Mon", counts[0].Day)
	assert.Equal(t, "Sun", counts[6].Day)
}
