package handlers

import (
	"errors"
	"strconv"

	"github.com/courtlab/HoopCoachBack/internal/wizard"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// WizardHandler drives the finish-profile flow over HTTP. One draft per
// user accumulates across steps; the profile row is only touched at submit.
type WizardHandler struct {
	drafts         wizard.DraftStore
	profileService playerCardService
	userRepo       userEmailReader
}

func NewWizardHandler(drafts wizard.DraftStore, profileService playerCardService, userRepo userEmailReader) *WizardHandler {
	return &WizardHandler{
		drafts:         drafts,
		profileService: profileService,
		userRepo:       userRepo,
	}
}

// GetDraft returns the in-flight draft, starting a fresh one at step 1
// pre-filled from the persisted profile when none exists.
func (h *WizardHandler) GetDraft(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	draft, err := h.loadOrStart(c, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load wizard draft"})
	}
	return c.JSON(fiber.Map{"draft": draft})
}

// UpdateDraft replaces the accumulated draft data with the client's
// current form state.
func (h *WizardHandler) UpdateDraft(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	var data wizard.DraftData
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	draft, err := h.loadOrStart(c, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load wizard draft"})
	}
	if data.Role == "" {
		data.Role = draft.Data.Role
	}
	draft.Data = data

	if err := h.drafts.Save(c.Context(), userID, draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save wizard draft"})
	}
	return c.JSON(fiber.Map{"draft": draft})
}

func (h *WizardHandler) Next(c *fiber.Ctx) error {
	return h.transition(c, func(draft *wizard.Draft) error {
		draft.Next()
		return nil
	})
}

func (h *WizardHandler) Prev(c *fiber.Ctx) error {
	return h.transition(c, func(draft *wizard.Draft) error {
		draft.Prev()
		return nil
	})
}

// JumpBack navigates to an already-visited step; forward jumps are
// rejected.
func (h *WizardHandler) JumpBack(c *fiber.Ctx) error {
	step, err := strconv.Atoi(c.Params("step"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid step"})
	}
	return h.transition(c, func(draft *wizard.Draft) error {
		return draft.JumpBack(step)
	})
}

func (h *WizardHandler) transition(c *fiber.Ctx, apply func(*wizard.Draft) error) error {
	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	draft, err := h.loadOrStart(c, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load wizard draft"})
	}

	if err := apply(draft); err != nil {
		if errors.Is(err, wizard.ErrInvalidStep) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid step"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update wizard draft"})
	}

	if err := h.drafts.Save(c.Context(), userID, draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save wizard draft"})
	}
	return c.JSON(fiber.Map{"draft": draft})
}

// Submit re-validates the aggregate-required fields, writes the whole
// Player Card, and moves the flow into its terminal summary state. There
// is no path back to editing; a fresh GET starts over at step 1 pre-filled
// from the now-persisted profile.
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	draft, err := h.loadOrStart(c, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load wizard draft",
		})
	}

	if validationErr := draft.Validate(); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validationErr,
		})
	}
	if validationErr := validatePlayerCardRequest(draft.Data); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validationErr,
		})
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to resolve user",
		})
	}

	profile, err := h.profileService.CompletePlayerCard(c.Context(), userID, user.Email, playerCardInputFromDraft(draft.Data))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update profile: " + err.Error(),
		})
	}

	draft.Completed = true
	// The draft has served its purpose; the next wizard entry re-seeds
	// from the persisted profile.
	_ = h.drafts.Delete(c.Context(), userID)

	return c.JSON(fiber.Map{
		"success": true,
		"profile": profile,
	})
}

func (h *WizardHandler) loadOrStart(c *fiber.Ctx, userID int64) (*wizard.Draft, error) {
	draft, err := h.drafts.Load(c.Context(), userID)
	if err != nil {
		return nil, err
	}
	if draft != nil {
		return draft, nil
	}

	profile, err := h.profileService.GetProfile(c.Context(), userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	role, _ := c.Locals("role").(string)
	return wizard.NewDraft(profile, role), nil
}
