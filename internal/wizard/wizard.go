// Package wizard holds the finish-profile flow: a linear four step
// sequence that accumulates one Player Card draft and submits it whole.
package wizard

import (
	"errors"
	"strings"

	"github.com/courtlab/HoopCoachBack/internal/models"
)

const (
	StepIdentity   = 1
	StepArchetype  = 2
	StepGoals      = 3
	StepVisibility = 4
)

var ErrInvalidStep = errors.New("invalid step")

// DraftData mirrors the wire shape of the complete Player Card submission.
type DraftData struct {
	FullName                    string              `json:"full_name"`
	Age                         *int                `json:"age"`
	HeightCM                    *float64            `json:"height_cm"`
	WeightKG                    *float64            `json:"weight_kg"`
	Role                        string              `json:"role"`
	PlayerArchetype             string              `json:"player_archetype"`
	PlaystyleTeamVsIso          int                 `json:"playstyle_team_vs_iso"`
	PlaystyleShooterVsSlasher   int                 `json:"playstyle_shooter_vs_slasher"`
	PlaystyleFinesseVsPower     int                 `json:"playstyle_finesse_vs_power"`
	TrainingContext             string              `json:"training_context"`
	Goals                       []models.PlayerGoal `json:"goals"`
	WeeklySessionsTarget        int                 `json:"weekly_sessions_target"`
	TypicalSessionLengthMinutes int                 `json:"typical_session_length_minutes"`
	SleepHoursPerNight          string              `json:"sleep_hours_per_night"`
	ScheduleBlocks              []string            `json:"schedule_blocks"`
	Visibility                  string              `json:"visibility"`
	InstagramURL                *string             `json:"instagram_url"`
	YouTubeURL                  *string             `json:"youtube_url"`
	HighlightTagline            string              `json:"highlight_tagline"`
}

// Draft is the in-flight wizard state for one user.
type Draft struct {
	Step      int       `json:"step"`
	Completed bool      `json:"completed"`
	Data      DraftData `json:"data"`
}

// NewDraft starts at step 1, pre-filled from the persisted profile when one
// exists, otherwise with the flow's defaults.
func NewDraft(profile *models.Profile, role string) *Draft {
	data := DraftData{
		Role:                        role,
		PlaystyleTeamVsIso:          50,
		PlaystyleShooterVsSlasher:   50,
		PlaystyleFinesseVsPower:     50,
		TrainingContext:             "general",
		Goals:                       []models.PlayerGoal{},
		WeeklySessionsTarget:        3,
		TypicalSessionLengthMinutes: 60,
		SleepHoursPerNight:          "7-8",
		ScheduleBlocks:              []string{"afternoon", "evening"},
		Visibility:                  "coach_only",
	}

	if profile != nil {
		if profile.FullName != nil {
			data.FullName = *profile.FullName
		}
		data.Age = profile.Age
		data.HeightCM = profile.HeightCM
		data.WeightKG = profile.WeightKG
		if profile.PlayerArchetype != nil {
			data.PlayerArchetype = *profile.PlayerArchetype
		}
		if profile.PlaystyleTeamVsIso != nil {
			data.PlaystyleTeamVsIso = *profile.PlaystyleTeamVsIso
		}
		if profile.PlaystyleShooterVsSlasher != nil {
			data.PlaystyleShooterVsSlasher = *profile.PlaystyleShooterVsSlasher
		}
		if profile.PlaystyleFinesseVsPower != nil {
			data.PlaystyleFinesseVsPower = *profile.PlaystyleFinesseVsPower
		}
		if profile.TrainingContext != nil && *profile.TrainingContext != "" {
			data.TrainingContext = *profile.TrainingContext
		}
		if len(profile.Goals) > 0 {
			data.Goals = profile.Goals
		}
		if profile.WeeklySessionsTarget != nil {
			data.WeeklySessionsTarget = *profile.WeeklySessionsTarget
		}
		if profile.TypicalSessionLengthMinutes != nil {
			data.TypicalSessionLengthMinutes = *profile.TypicalSessionLengthMinutes
		}
		if profile.SleepHoursPerNight != nil && *profile.SleepHoursPerNight != "" {
			data.SleepHoursPerNight = *profile.SleepHoursPerNight
		}
		if len(profile.ScheduleBlocks) > 0 {
			data.ScheduleBlocks = profile.ScheduleBlocks
		}
		if profile.Visibility != nil && *profile.Visibility != "" {
			data.Visibility = *profile.Visibility
		}
		data.InstagramURL = profile.InstagramURL
		data.YouTubeURL = profile.YouTubeURL
		if profile.HighlightTagline != nil {
			data.HighlightTagline = *profile.HighlightTagline
		}
	}

	return &Draft{Step: StepIdentity, Data: data}
}

// Next advances one step. A no-op at the last step.
func (d *Draft) Next() {
	if d.Step < StepVisibility {
		d.Step++
	}
}

// Prev goes back one step. A no-op at the first step.
func (d *Draft) Prev() {
	if d.Step > StepIdentity {
		d.Step--
	}
}

// JumpBack navigates directly to an already-visited step. Forward jumps
// beyond the current step are disallowed.
func (d *Draft) JumpBack(step int) error {
	if step < StepIdentity || step > d.Step {
		return ErrInvalidStep
	}
	d.Step = step
	return nil
}

// Validate re-checks the aggregate-required fields before submit and
// returns a user-facing message, or "" when the draft is submittable.
func (d *Draft) Validate() string {
	if strings.TrimSpace(d.Data.FullName) == "" {
		return "Full name is required"
	}
	if d.Data.PlayerArchetype == "" {
		return "Please select an archetype"
	}
	if d.Data.TrainingContext == "" {
		return "Please select a training context"
	}
	if len(d.Data.Goals) == 0 {
		return "Please add at least one goal"
	}
	return ""
}
