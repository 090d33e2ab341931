package models

import "time"

// PlayerGoal is one entry of the goals JSONB column.
type PlayerGoal struct {
	Title       string `json:"title"`
	TargetValue string `json:"target_value"`
	TargetDate  string `json:"target_date"`
}

type Profile struct {
	ID       int64    `json:"id"`
	UserID   int64    `json:"user_id"`
	Email    string   `json:"email"`
	FullName *string  `json:"full_name"`
	Age      *int     `json:"age"`
	HeightCM *float64 `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`
	Role     string   `json:"role"`

	// Player Card fields, collected by the finish-profile wizard.
	PlayerArchetype             *string      `json:"player_archetype"`
	PlaystyleTeamVsIso          *int         `json:"playstyle_team_vs_iso"`
	PlaystyleShooterVsSlasher   *int         `json:"playstyle_shooter_vs_slasher"`
	PlaystyleFinesseVsPower     *int         `json:"playstyle_finesse_vs_power"`
	TrainingContext             *string      `json:"training_context"`
	Goals                       []PlayerGoal `json:"goals"`
	WeeklySessionsTarget        *int         `json:"weekly_sessions_target"`
	TypicalSessionLengthMinutes *int         `json:"typical_session_length_minutes"`
	SleepHoursPerNight          *string      `json:"sleep_hours_per_night"`
	ScheduleBlocks              []string     `json:"schedule_blocks"`
	Visibility                  *string      `json:"visibility"`
	InstagramURL                *string      `json:"instagram_url"`
	YouTubeURL                  *string      `json:"youtube_url"`
	HighlightTagline            *string      `json:"highlight_tagline"`
	IsFullyScouted              bool         `json:"is_fully_scouted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AthleteSummary is an athlete profile row enriched with the computed
// metrics the coach dashboard displays.
type AthleteSummary struct {
	UserID               int64      `json:"user_id"`
	Email                string     `json:"email"`
	FullName             string     `json:"full_name"`
	Age                  *int       `json:"age"`
	HeightCM             *float64   `json:"height_cm"`
	WeightKG             *float64   `json:"weight_kg"`
	Role                 string     `json:"role"`
	CompletionPercentage int        `json:"completion_percentage"`
	SessionsThisWeek     int        `json:"sessions_this_week"`
	LastWorkoutDate      *time.Time `json:"last_workout_date"`
	IsFullyScouted       bool       `json:"is_fully_scouted"`
}
