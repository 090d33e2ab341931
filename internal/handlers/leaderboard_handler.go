package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/gofiber/fiber/v2"
)

type leaderboardSource interface {
	CountSinceByUser(ctx context.Context, since time.Time) ([]models.LeaderboardEntry, error)
}

type LeaderboardHandler struct {
	workoutLogRepo leaderboardSource
}

func NewLeaderboardHandler(workoutLogRepo leaderboardSource) *LeaderboardHandler {
	return &LeaderboardHandler{workoutLogRepo: workoutLogRepo}
}

// GetLeaderboard ranks athletes by logs over the trailing 7 days. Ties
// keep a stable order by user id, so rank is just slice position.
func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	since := time.Now().AddDate(0, 0, -7)
	entries, err := h.workoutLogRepo.CountSinceByUser(c.Context(), since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	total := len(entries)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	pageEntries := entries[start:end]
	if pageEntries == nil {
		pageEntries = []models.LeaderboardEntry{}
	}

	return c.JSON(fiber.Map{
		"leaderboard": pageEntries,
		"pagination":  buildPaginationMeta(page, limit, total),
	})
}
