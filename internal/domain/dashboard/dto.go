package dashboard

// Trend is the up/down movement shown next to a counter.
type Trend struct {
	Direction string `json:"direction"` // up | down
	Value     string `json:"value"`     // e.g. "+2%"
}

type StatItem struct {
	Value int64 `json:"value"`
	Trend Trend `json:"trendDetail"`
}

// Stats are the four dashboard counters.
type Stats struct {
	TotalEmployees StatItem `json:"totalEmployees"`
	PresentToday   StatItem `json:"presentToday"`
	OnLeave        StatItem `json:"onLeave"`
	OpenRoles      StatItem `json:"openRoles"`
}

// WeekdayCount is one bar of the weekly attendance chart.
type WeekdayCount struct {
	Day   string `json:"day"` // Mon..Sun
	Value int64  `json:"value"`
}
