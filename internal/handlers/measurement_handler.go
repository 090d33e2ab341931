package handlers

import (
	"context"
	"time"

	"github.com/courtlab/HoopCoachBack/internal/cache"
	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/courtlab/HoopCoachBack/internal/repository"
	"github.com/gofiber/fiber/v2"
)

const measurementHistoryLimit = 30

type measurementStore interface {
	Create(ctx context.Context, input repository.CreateMeasurementInput) (*models.Measurement, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]models.Measurement, error)
}

type MeasurementHandler struct {
	measurementRepo measurementStore
	views           cache.ViewStore
}

func NewMeasurementHandler(measurementRepo measurementStore, views cache.ViewStore) *MeasurementHandler {
	if views == nil {
		views = cache.NoopViewStore{}
	}
	return &MeasurementHandler{measurementRepo: measurementRepo, views: views}
}

func (h *MeasurementHandler) ListMeasurements(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	measurements, err := h.measurementRepo.ListRecent(c.Context(), userID, measurementHistoryLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch measurements"})
	}
	if measurements == nil {
		measurements = []models.Measurement{}
	}
	return c.JSON(fiber.Map{"measurements": measurements})
}

type createMeasurementRequest struct {
	Date     *time.Time `json:"date"`
	WeightKG float64    `json:"weight_kg"`
}

// CreateMeasurement records one body-weight entry and echoes the persisted
// row so the client can reconcile an optimistic placeholder.
func (h *MeasurementHandler) CreateMeasurement(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	var req createMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.WeightKG <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Please enter a valid weight",
		})
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != nil {
		date = *req.Date
	}

	measurement, err := h.measurementRepo.Create(c.Context(), repository.CreateMeasurementInput{
		UserID:   userID,
		Date:     date,
		WeightKG: req.WeightKG,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to log measurement: " + err.Error(),
		})
	}

	_ = h.views.Invalidate(c.Context(), cache.KeyAthleteDashboard(userID))

	return c.JSON(fiber.Map{
		"success":     true,
		"measurement": measurement,
	})
}
