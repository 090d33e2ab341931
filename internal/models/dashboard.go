package models

// AthleteDashboard is the athlete variant of the dashboard aggregate.
type AthleteDashboard struct {
	TodayWorkout    *Workout      `json:"today_workout"`
	WeekLogsCount   int           `json:"week_logs_count"`
	Last30DaysCount int           `json:"last_30_days_count"`
	Measurements    []Measurement `json:"measurements"`
}

// CoachDashboard is the coach variant: the whole roster reduced into
// summary counts and percentages.
type CoachDashboard struct {
	Athletes            []AthleteSummary `json:"athletes"`
	AvgCompletion       float64          `json:"avg_completion"`
	ActiveAthletesCount int              `json:"active_athletes_count"`
	TotalSessions       int              `json:"total_sessions"`
}

// LeaderboardEntry ranks athletes by completed logs over the trailing week.
type LeaderboardEntry struct {
	UserID    int64  `json:"user_id"`
	FullName  string `json:"full_name"`
	LogsCount int    `json:"logs_count"`
}
