package wizard

import (
	"context"
	"testing"

	"github.com/courtlab/HoopCoachBack/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewDraftDefaults(t *testing.T) {
	draft := NewDraft(nil, models.RoleAthlete)

	if draft.Step != StepIdentity {
		t.Errorf("expected step %d, got %d", StepIdentity, draft.Step)
	}
	if draft.Completed {
		t.Error("new draft must not be completed")
	}
	if draft.Data.Role != models.RoleAthlete {
		t.Errorf("expected role carried over, got %q", draft.Data.Role)
	}
	if draft.Data.PlaystyleTeamVsIso != 50 ||
		draft.Data.PlaystyleShooterVsSlasher != 50 ||
		draft.Data.PlaystyleFinesseVsPower != 50 {
		t.Error("expected playstyle sliders to default to 50")
	}
	if draft.Data.TrainingContext != "general" {
		t.Errorf("expected training context general, got %q", draft.Data.TrainingContext)
	}
	if draft.Data.WeeklySessionsTarget != 3 {
		t.Errorf("expected 3 weekly sessions, got %d", draft.Data.WeeklySessionsTarget)
	}
	if draft.Data.TypicalSessionLengthMinutes != 60 {
		t.Errorf("expected 60 minute sessions, got %d", draft.Data.TypicalSessionLengthMinutes)
	}
	if draft.Data.SleepHoursPerNight != "7-8" {
		t.Errorf("expected sleep 7-8, got %q", draft.Data.SleepHoursPerNight)
	}
	if len(draft.Data.ScheduleBlocks) != 2 ||
		draft.Data.ScheduleBlocks[0] != "afternoon" ||
		draft.Data.ScheduleBlocks[1] != "evening" {
		t.Errorf("expected default schedule blocks, got %v", draft.Data.ScheduleBlocks)
	}
	if draft.Data.Visibility != "coach_only" {
		t.Errorf("expected visibility coach_only, got %q", draft.Data.Visibility)
	}
	if draft.Data.Goals == nil || len(draft.Data.Goals) != 0 {
		t.Errorf("expected empty goals slice, got %v", draft.Data.Goals)
	}
}

func TestNewDraftPrefillsFromProfile(t *testing.T) {
	profile := &models.Profile{
		FullName:           strPtr("Jordan Vega"),
		Age:                intPtr(17),
		Role:               models.RoleAthlete,
		PlayerArchetype:    strPtr("stretch-big"),
		PlaystyleTeamVsIso: intPtr(80),
		TrainingContext:    strPtr("in-season"),
		Goals:              []models.PlayerGoal{{Title: "Make varsity"}},
		Visibility:         strPtr("community"),
	}

	draft := NewDraft(profile, models.RoleAthlete)

	if draft.Data.FullName != "Jordan Vega" {
		t.Errorf("expected prefilled name, got %q", draft.Data.FullName)
	}
	if draft.Data.PlayerArchetype != "stretch-big" {
		t.Errorf("expected prefilled archetype, got %q", draft.Data.PlayerArchetype)
	}
	if draft.Data.PlaystyleTeamVsIso != 80 {
		t.Errorf("expected prefilled slider 80, got %d", draft.Data.PlaystyleTeamVsIso)
	}
	if draft.Data.TrainingContext != "in-season" {
		t.Errorf("expected prefilled context, got %q", draft.Data.TrainingContext)
	}
	if draft.Data.Visibility != "community" {
		t.Errorf("expected prefilled visibility, got %q", draft.Data.Visibility)
	}
	// Untouched fields keep defaults.
	if draft.Data.SleepHoursPerNight != "7-8" {
		t.Errorf("expected default sleep bucket, got %q", draft.Data.SleepHoursPerNight)
	}
}

func TestDraftNavigation(t *testing.T) {
	draft := NewDraft(nil, models.RoleAthlete)

	draft.Prev()
	if draft.Step != StepIdentity {
		t.Errorf("Prev at first step must be a no-op, got %d", draft.Step)
	}

	for i := 0; i < 10; i++ {
		draft.Next()
	}
	if draft.Step != StepVisibility {
		t.Errorf("Next must stop at the last step, got %d", draft.Step)
	}

	if err := draft.JumpBack(StepArchetype); err != nil {
		t.Fatalf("JumpBack to visited step: %v", err)
	}
	if draft.Step != StepArchetype {
		t.Errorf("expected step %d after jump, got %d", StepArchetype, draft.Step)
	}

	if err := draft.JumpBack(StepVisibility); err != ErrInvalidStep {
		t.Errorf("expected ErrInvalidStep for forward jump, got %v", err)
	}
	if err := draft.JumpBack(0); err != ErrInvalidStep {
		t.Errorf("expected ErrInvalidStep for step 0, got %v", err)
	}
}

func TestDraftValidate(t *testing.T) {
	draft := NewDraft(nil, models.RoleAthlete)

	if got := draft.Validate(); got != "Full name is required" {
		t.Errorf("expected name error, got %q", got)
	}

	draft.Data.FullName = "Jordan Vega"
	if got := draft.Validate(); got != "Please select an archetype" {
		t.Errorf("expected archetype error, got %q", got)
	}

	draft.Data.PlayerArchetype = "slashing-guard"
	draft.Data.TrainingContext = ""
	if got := draft.Validate(); got != "Please select a training context" {
		t.Errorf("expected context error, got %q", got)
	}

	draft.Data.TrainingContext = "general"
	if got := draft.Validate(); got != "Please add at least one goal" {
		t.Errorf("expected goals error, got %q", got)
	}

	draft.Data.Goals = []models.PlayerGoal{{Title: "Make varsity"}}
	if got := draft.Validate(); got != "" {
		t.Errorf("expected valid draft, got %q", got)
	}
}

func TestMemoryDraftStoreIsolation(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()

	draft := NewDraft(nil, models.RoleAthlete)
	draft.Data.FullName = "Jordan Vega"
	if err := store.Save(ctx, 7, draft); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutating the caller's copy must not reach the stored draft.
	draft.Data.FullName = "Someone Else"

	loaded, err := store.Load(ctx, 7)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil || loaded.Data.FullName != "Jordan Vega" {
		t.Errorf("expected stored copy to be isolated, got %+v", loaded)
	}

	if err := store.Delete(ctx, 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	loaded, err = store.Load(ctx, 7)
	if err != nil {
		t.Fatalf("Load after delete: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil after delete, got %+v", loaded)
	}
}
