package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/courtlab/HoopCoachBack/internal/cache"
	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/courtlab/HoopCoachBack/internal/repository"
	activityws "github.com/courtlab/HoopCoachBack/internal/websocket"
	"github.com/gofiber/fiber/v2"
)

type workoutLister interface {
	ListActive(ctx context.Context) ([]models.Workout, error)
}

type workoutLogWriter interface {
	Create(ctx context.Context, input repository.CreateWorkoutLogInput) (*models.WorkoutLog, error)
}

type WorkoutHandler struct {
	workoutRepo    workoutLister
	workoutLogRepo workoutLogWriter
	profileService profileReader
	views          cache.ViewStore
	hub            *activityws.Hub
}

func NewWorkoutHandler(
	workoutRepo workoutLister,
	workoutLogRepo workoutLogWriter,
	profileService profileReader,
	views cache.ViewStore,
	hub *activityws.Hub,
) *WorkoutHandler {
	if views == nil {
		views = cache.NoopViewStore{}
	}
	return &WorkoutHandler{
		workoutRepo:    workoutRepo,
		workoutLogRepo: workoutLogRepo,
		profileService: profileService,
		views:          views,
		hub:            hub,
	}
}

// ListWorkouts returns the active catalog subset, newest first.
func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	var cached []models.Workout
	if hit, err := h.views.Get(c.Context(), cache.KeyWorkoutList, &cached); err == nil && hit {
		return c.JSON(fiber.Map{"workouts": cached})
	}

	workouts, err := h.workoutRepo.ListActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workouts"})
	}
	if workouts == nil {
		workouts = []models.Workout{}
	}

	_ = h.views.Set(c.Context(), cache.KeyWorkoutList, workouts)
	return c.JSON(fiber.Map{"workouts": workouts})
}

type completeWorkoutRequest struct {
	Notes *string `json:"notes"`
}

// CompleteWorkout appends one workout log row. Double submits are not
// deduplicated: the log is append-only and aggregates only count rows.
func (h *WorkoutHandler) CompleteWorkout(c *fiber.Ctx) error {
	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || workoutID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid workout id",
		})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return notAuthenticated(c)
	}

	var req completeWorkoutRequest
	// An empty body is fine; notes are optional.
	_ = c.BodyParser(&req)

	logRow, err := h.workoutLogRepo.Create(c.Context(), repository.CreateWorkoutLogInput{
		UserID:    userID,
		WorkoutID: workoutID,
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		Notes:     req.Notes,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to log workout: " + err.Error(),
		})
	}

	_ = h.views.Invalidate(c.Context(),
		cache.KeyAthleteDashboard(userID),
		cache.KeyCoachDashboard,
		cache.KeyWorkoutList,
	)
	h.publishCompletion(c.Context(), userID, workoutID)

	return c.JSON(fiber.Map{
		"success": true,
		"log":     logRow,
	})
}

func (h *WorkoutHandler) publishCompletion(ctx context.Context, userID, workoutID int64) {
	if h.hub == nil {
		return
	}

	fullName := "Unknown"
	if profile, err := h.profileService.GetProfile(ctx, userID); err == nil &&
		profile.FullName != nil && *profile.FullName != "" {
		fullName = *profile.FullName
	}

	h.hub.Publish(activityws.Event{
		Type:      "workout_completed",
		UserID:    strconv.FormatInt(userID, 10),
		FullName:  fullName,
		WorkoutID: strconv.FormatInt(workoutID, 10),
	})
}
