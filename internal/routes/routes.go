package routes

import (
	"context"

	"github.com/courtlab/HoopCoachBack/internal/cache"
	"github.com/courtlab/HoopCoachBack/internal/config"
	"github.com/courtlab/HoopCoachBack/internal/handlers"
	"github.com/courtlab/HoopCoachBack/internal/middleware"
	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/courtlab/HoopCoachBack/internal/repository"
	"github.com/courtlab/HoopCoachBack/internal/services"
	activityws "github.com/courtlab/HoopCoachBack/internal/websocket"
	"github.com/courtlab/HoopCoachBack/internal/wizard"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes wires repositories, services, and handlers onto the app.
// A nil Redis client degrades gracefully: views go uncached and wizard
// drafts live in process memory.
func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, rdb *redis.Client) error {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	workoutLogRepo := repository.NewWorkoutLogRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	contactRepo := repository.NewContactRepository(db)

	var views cache.ViewStore = cache.NoopViewStore{}
	var drafts wizard.DraftStore = wizard.NewMemoryDraftStore()
	if rdb != nil {
		views = cache.NewRedisViewStore(rdb, cfg.ViewCacheTTL)
		drafts = wizard.NewRedisDraftStore(rdb, 0)
	}

	dashboardService := services.NewDashboardService(workoutRepo, workoutLogRepo, measurementRepo, profileRepo, views)
	profileService := services.NewProfileService(profileRepo, views)

	activityHub := activityws.NewHub()
	go activityHub.Run()

	authHandler := handlers.NewAuthHandler(db, userRepo, profileRepo, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(profileService, userRepo)
	wizardHandler := handlers.NewWizardHandler(drafts, profileService, userRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, profileService)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo, workoutLogRepo, profileService, views, activityHub)
	measurementHandler := handlers.NewMeasurementHandler(measurementRepo, views)
	leaderboardHandler := handlers.NewLeaderboardHandler(workoutLogRepo)
	contactHandler := handlers.NewContactHandler(contactRepo)
	activityHandler := handlers.NewActivityHandler(activityHub, cfg.JWTSecret)

	// Page-route protection; API routes carry their own auth middleware.
	app.Use(middleware.AccessGate(cfg.JWTSecret, func(ctx context.Context, userID int64) (string, error) {
		profile, err := profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			return "", err
		}
		return profile.Role, nil
	}))

	api := app.Group("/api")

	api.Post("/contact", contactHandler.SubmitContact)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	authProtected.Get("/dashboard", dashboardHandler.GetDashboard)
	authProtected.Get("/leaderboard", leaderboardHandler.GetLeaderboard)

	profiles := authProtected.Group("/profile")
	profiles.Get("", profileHandler.GetProfile)
	profiles.Post("/player-card", profileHandler.CompletePlayerCard)

	wizardGroup := profiles.Group("/wizard")
	wizardGroup.Get("", wizardHandler.GetDraft)
	wizardGroup.Put("", wizardHandler.UpdateDraft)
	wizardGroup.Post("/next", wizardHandler.Next)
	wizardGroup.Post("/prev", wizardHandler.Prev)
	wizardGroup.Post("/back/:step", wizardHandler.JumpBack)
	wizardGroup.Post("/submit", wizardHandler.Submit)

	workouts := authProtected.Group("/workouts")
	workouts.Get("", workoutHandler.ListWorkouts)
	workouts.Post("/:id/complete", workoutHandler.CompleteWorkout)

	measurements := authProtected.Group("/measurements")
	measurements.Get("", measurementHandler.ListMeasurements)
	measurements.Post("", measurementHandler.CreateMeasurement)

	coach := authProtected.Group("/coach", middleware.RoleRequired(models.RoleCoach))
	coach.Get("/athletes", dashboardHandler.ListAthletes)

	api.Use("/v1/ws/activity", activityHandler.WebSocketAuth)
	api.Get("/v1/ws/activity", websocket.New(activityHandler.HandleWebSocket))

	return registerDocsRoutes(app, cfg)
}
