package handlers

import (
	"context"
	"errors"

	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/courtlab/HoopCoachBack/internal/repository"
	"github.com/courtlab/HoopCoachBack/internal/services"
	"github.com/courtlab/HoopCoachBack/internal/wizard"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type playerCardService interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
	CompletePlayerCard(ctx context.Context, userID int64, email string, input repository.PlayerCardInput) (*models.Profile, error)
}

type userEmailReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type ProfileHandler struct {
	profileService playerCardService
	userRepo       userEmailReader
}

func NewProfileHandler(profileService playerCardService, userRepo userEmailReader) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, userRepo: userRepo}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	profile, err := h.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(fiber.Map{
		"profile":       profile,
		"fully_scouted": services.IsFullyScouted(profile),
	})
}

// CompletePlayerCard persists the whole wizard draft in one write.
func (h *ProfileHandler) CompletePlayerCard(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	var data wizard.DraftData
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if data.Role == "" {
		role, _ := c.Locals("role").(string)
		data.Role = role
	}
	if validationErr := validatePlayerCardRequest(data); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validationErr,
		})
	}

	profile, err := h.savePlayerCard(c, userID, data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update profile: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"profile": profile,
	})
}

func (h *ProfileHandler) savePlayerCard(c *fiber.Ctx, userID int64, data wizard.DraftData) (*models.Profile, error) {
	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return nil, err
	}
	return h.profileService.CompletePlayerCard(c.Context(), userID, user.Email, playerCardInputFromDraft(data))
}

func playerCardInputFromDraft(data wizard.DraftData) repository.PlayerCardInput {
	return repository.PlayerCardInput{
		FullName:                    data.FullName,
		Age:                         data.Age,
		HeightCM:                    data.HeightCM,
		WeightKG:                    data.WeightKG,
		Role:                        data.Role,
		PlayerArchetype:             data.PlayerArchetype,
		PlaystyleTeamVsIso:          data.PlaystyleTeamVsIso,
		PlaystyleShooterVsSlasher:   data.PlaystyleShooterVsSlasher,
		PlaystyleFinesseVsPower:     data.PlaystyleFinesseVsPower,
		TrainingContext:             data.TrainingContext,
		Goals:                       data.Goals,
		WeeklySessionsTarget:        data.WeeklySessionsTarget,
		TypicalSessionLengthMinutes: data.TypicalSessionLengthMinutes,
		SleepHoursPerNight:          data.SleepHoursPerNight,
		ScheduleBlocks:              data.ScheduleBlocks,
		Visibility:                  data.Visibility,
		InstagramURL:                data.InstagramURL,
		YouTubeURL:                  data.YouTubeURL,
		HighlightTagline:            data.HighlightTagline,
	}
}
