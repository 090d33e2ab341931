package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/gofiber/fiber/v2"
)

type stubDashboardService struct {
	athlete      *models.AthleteDashboard
	coach        *models.CoachDashboard
	athleteCalls int
	coachCalls   int
}

func (s *stubDashboardService) AthleteDashboard(context.Context, int64) (*models.AthleteDashboard, error) {
	s.athleteCalls++
	return s.athlete, nil
}

func (s *stubDashboardService) CoachDashboard(context.Context) (*models.CoachDashboard, error) {
	s.coachCalls++
	return s.coach, nil
}

func scoutedAthleteProfile() *models.Profile {
	name := "Jordan Vega"
	archetype := "slashing-guard"
	trainingContext := "off-season"
	return &models.Profile{
		UserID:          7,
		FullName:        &name,
		Role:            models.RoleAthlete,
		PlayerArchetype: &archetype,
		TrainingContext: &trainingContext,
		Goals:           []models.PlayerGoal{{Title: "Make varsity"}},
		IsFullyScouted:  true,
	}
}

func TestGetDashboardAthleteVariant(t *testing.T) {
	service := &stubDashboardService{athlete: &models.AthleteDashboard{WeekLogsCount: 3}}
	handler := NewDashboardHandler(service, &stubProfileReader{profile: scoutedAthleteProfile()})

	app := authenticatedApp("7", models.RoleAthlete)
	app.Get("/api/v1/dashboard", handler.GetDashboard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		AthleteData *models.AthleteDashboard `json:"athlete_data"`
		CoachData   *models.CoachDashboard   `json:"coach_data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.AthleteData == nil || body.AthleteData.WeekLogsCount != 3 {
		t.Errorf("expected athlete variant, got %+v", body.AthleteData)
	}
	if body.CoachData != nil {
		t.Error("athlete response must not carry coach data")
	}
	if service.coachCalls != 0 {
		t.Errorf("expected no coach aggregate calls, got %d", service.coachCalls)
	}
}

func TestGetDashboardBlocksUnscoutedAthlete(t *testing.T) {
	profile := scoutedAthleteProfile()
	profile.IsFullyScouted = false
	service := &stubDashboardService{}
	handler := NewDashboardHandler(service, &stubProfileReader{profile: profile})

	app := authenticatedApp("7", models.RoleAthlete)
	app.Get("/api/v1/dashboard", handler.GetDashboard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}

	var body struct {
		Error    string `json:"error"`
		Redirect string `json:"redirect"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Finish your Player Card first" {
		t.Errorf("unexpected error %q", body.Error)
	}
	if body.Redirect != "/finish-profile" {
		t.Errorf("unexpected redirect %q", body.Redirect)
	}
	if service.athleteCalls != 0 {
		t.Errorf("expected no aggregate calls for blocked athlete, got %d", service.athleteCalls)
	}
}

func TestGetDashboardCoachVariant(t *testing.T) {
	name := "Coach Jake"
	coachProfile := &models.Profile{
		UserID:   1,
		FullName: &name,
		Role:     models.RoleCoach,
	}
	service := &stubDashboardService{coach: &models.CoachDashboard{
		Athletes:      []models.AthleteSummary{{UserID: 7, FullName: "Jordan Vega"}},
		AvgCompletion: 50,
	}}
	handler := NewDashboardHandler(service, &stubProfileReader{profile: coachProfile})

	app := authenticatedApp("1", models.RoleCoach)
	app.Get("/api/v1/dashboard", handler.GetDashboard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		CoachData *models.CoachDashboard `json:"coach_data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.CoachData == nil || len(body.CoachData.Athletes) != 1 {
		t.Errorf("expected coach variant with roster, got %+v", body.CoachData)
	}
	if service.athleteCalls != 0 {
		t.Errorf("expected no athlete aggregate calls, got %d", service.athleteCalls)
	}
}

func TestGetDashboardRequiresAuthentication(t *testing.T) {
	handler := NewDashboardHandler(&stubDashboardService{}, &stubProfileReader{})

	app := fiber.New()
	app.Get("/api/v1/dashboard", handler.GetDashboard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}
