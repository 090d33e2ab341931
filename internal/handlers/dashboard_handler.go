package handlers

import (
	"context"
	"errors"

	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/courtlab/HoopCoachBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type dashboardAggregator interface {
	AthleteDashboard(ctx context.Context, userID int64) (*models.AthleteDashboard, error)
	CoachDashboard(ctx context.Context) (*models.CoachDashboard, error)
}

type profileReader interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
}

type DashboardHandler struct {
	dashboardService dashboardAggregator
	profileService   profileReader
}

func NewDashboardHandler(dashboardService dashboardAggregator, profileService profileReader) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		profileService:   profileService,
	}
}

// GetDashboard serves the role-appropriate aggregate. Athletes must be
// fully scouted first; coaches are exempt from that gate.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	profile, err := h.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return finishProfileRequired(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	if profile.Role == models.RoleAthlete && !services.IsFullyScouted(profile) {
		return finishProfileRequired(c)
	}

	if profile.Role == models.RoleCoach {
		dashboard, err := h.dashboardService.CoachDashboard(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
		}
		return c.JSON(fiber.Map{
			"profile":    profile,
			"coach_data": dashboard,
		})
	}

	dashboard, err := h.dashboardService.AthleteDashboard(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	return c.JSON(fiber.Map{
		"profile":      profile,
		"athlete_data": dashboard,
	})
}

// ListAthletes exposes the coach aggregate's roster rows directly.
func (h *DashboardHandler) ListAthletes(c *fiber.Ctx) error {
	dashboard, err := h.dashboardService.CoachDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load athletes"})
	}
	return c.JSON(fiber.Map{"athletes": dashboard.Athletes})
}

func finishProfileRequired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error":    "Finish your Player Card first",
		"redirect": "/finish-profile",
	})
}
