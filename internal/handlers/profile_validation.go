package handlers

import (
	"strings"

	"github.com/courtlab/HoopCoachBack/internal/wizard"
)

// Enumerated value sets shared with the client's label lookup tables. The
// ids are part of the schema contract and must not drift.
var allowedArchetypes = map[string]struct{}{
	"3-d-wing":       {},
	"floor-general":  {},
	"slashing-guard": {},
	"stretch-big":    {},
	"two-way-wing":   {},
	"rim-protector":  {},
}

var allowedTrainingContexts = map[string]struct{}{
	"off-season": {},
	"pre-season": {},
	"in-season":  {},
	"tryouts":    {},
	"showcases":  {},
	"general":    {},
}

var allowedSessionLengths = map[int]struct{}{
	30: {},
	45: {},
	60: {},
	75: {},
	90: {},
}

var allowedSleepBuckets = map[string]struct{}{
	"<6":  {},
	"6-7": {},
	"7-8": {},
	">8":  {},
}

var allowedScheduleBlocks = map[string]struct{}{
	"morning":    {},
	"afternoon":  {},
	"evening":    {},
	"late_night": {},
}

var allowedVisibilities = map[string]struct{}{
	"private":    {},
	"coach_only": {},
	"community":  {},
}

const maxGoals = 3

func validatePlayerCardRequest(data wizard.DraftData) string {
	if strings.TrimSpace(data.FullName) == "" {
		return "Full name is required"
	}
	if _, ok := allowedArchetypes[data.PlayerArchetype]; !ok {
		return "Please select an archetype"
	}
	if _, ok := allowedTrainingContexts[data.TrainingContext]; !ok {
		return "Please select a training context"
	}
	if len(data.Goals) == 0 {
		return "Please add at least one goal"
	}
	if len(data.Goals) > maxGoals {
		return "At most 3 goals are allowed"
	}
	for _, goal := range data.Goals {
		if strings.TrimSpace(goal.Title) == "" {
			return "Goals must have a title"
		}
	}
	if err := validateSlider("playstyle_team_vs_iso", data.PlaystyleTeamVsIso); err != "" {
		return err
	}
	if err := validateSlider("playstyle_shooter_vs_slasher", data.PlaystyleShooterVsSlasher); err != "" {
		return err
	}
	if err := validateSlider("playstyle_finesse_vs_power", data.PlaystyleFinesseVsPower); err != "" {
		return err
	}
	if data.WeeklySessionsTarget < 1 || data.WeeklySessionsTarget > 7 {
		return "weekly_sessions_target must be between 1 and 7"
	}
	if _, ok := allowedSessionLengths[data.TypicalSessionLengthMinutes]; !ok {
		return "typical_session_length_minutes must be one of: 30, 45, 60, 75, 90"
	}
	if _, ok := allowedSleepBuckets[data.SleepHoursPerNight]; !ok {
		return "sleep_hours_per_night must be one of: <6, 6-7, 7-8, >8"
	}
	for _, block := range data.ScheduleBlocks {
		if _, ok := allowedScheduleBlocks[block]; !ok {
			return "schedule_blocks must be one of: morning, afternoon, evening, late_night"
		}
	}
	if _, ok := allowedVisibilities[data.Visibility]; !ok {
		return "visibility must be one of: private, coach_only, community"
	}
	if data.Age != nil && *data.Age <= 0 {
		return "age must be greater than 0"
	}
	if data.HeightCM != nil && *data.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if data.WeightKG != nil && *data.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	return ""
}

func validateSlider(field string, value int) string {
	if value < 0 || value > 100 {
		return field + " must be between 0 and 100"
	}
	return ""
}
