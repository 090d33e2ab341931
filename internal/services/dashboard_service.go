package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/courtlab/HoopCoachBack/internal/cache"
	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// expectedWeeksBaseline encodes the assumed four weeks of adherence behind
// the completion percentage. Product policy, not a derived constant.
const expectedWeeksBaseline = 4

const recentMeasurementsLimit = 5

type workoutCatalog interface {
	FirstActive(ctx context.Context) (*models.Workout, error)
	CountActive(ctx context.Context) (int, error)
}

type workoutLogCounter interface {
	CountSince(ctx context.Context, userID int64, since time.Time) (int, error)
	CountAll(ctx context.Context, userID int64) (int, error)
	LastLogDate(ctx context.Context, userID int64) (*time.Time, error)
}

type measurementLister interface {
	ListRecent(ctx context.Context, userID int64, limit int) ([]models.Measurement, error)
}

type athleteLister interface {
	ListAthletes(ctx context.Context) ([]models.Profile, error)
}

type DashboardService struct {
	workoutRepo     workoutCatalog
	workoutLogRepo  workoutLogCounter
	measurementRepo measurementLister
	profileRepo     athleteLister
	views           cache.ViewStore
	now             func() time.Time
}

func NewDashboardService(
	workoutRepo workoutCatalog,
	workoutLogRepo workoutLogCounter,
	measurementRepo measurementLister,
	profileRepo athleteLister,
	views cache.ViewStore,
) *DashboardService {
	if views == nil {
		views = cache.NoopViewStore{}
	}
	return &DashboardService{
		workoutRepo:     workoutRepo,
		workoutLogRepo:  workoutLogRepo,
		measurementRepo: measurementRepo,
		profileRepo:     profileRepo,
		views:           views,
		now:             time.Now,
	}
}

// AthleteDashboard runs the athlete variant: today's workout, trailing
// 7/30-day log counts, recent measurements. Any fetch failure aborts the
// whole aggregate.
func (s *DashboardService) AthleteDashboard(ctx context.Context, userID int64) (*models.AthleteDashboard, error) {
	cacheKey := cache.KeyAthleteDashboard(userID)
	var cached models.AthleteDashboard
	if hit, err := s.views.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	now := s.now()

	todayWorkout, err := s.workoutRepo.FirstActive(ctx)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		todayWorkout = nil
	}

	weekCount, err := s.workoutLogRepo.CountSince(ctx, userID, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	monthCount, err := s.workoutLogRepo.CountSince(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	measurements, err := s.measurementRepo.ListRecent(ctx, userID, recentMeasurementsLimit)
	if err != nil {
		return nil, err
	}
	if measurements == nil {
		measurements = []models.Measurement{}
	}

	dashboard := &models.AthleteDashboard{
		TodayWorkout:    todayWorkout,
		WeekLogsCount:   weekCount,
		Last30DaysCount: monthCount,
		Measurements:    measurements,
	}
	_ = s.views.Set(ctx, cacheKey, dashboard)
	return dashboard, nil
}

// CoachDashboard runs the coach variant: every athlete's metrics reduced
// into roster-wide numbers. Per-athlete fetches run concurrently; a single
// failure aborts the aggregate.
func (s *DashboardService) CoachDashboard(ctx context.Context) (*models.CoachDashboard, error) {
	var cached models.CoachDashboard
	if hit, err := s.views.Get(ctx, cache.KeyCoachDashboard, &cached); err == nil && hit {
		return &cached, nil
	}

	athletes, err := s.profileRepo.ListAthletes(ctx)
	if err != nil {
		return nil, err
	}
	if len(athletes) == 0 {
		return &models.CoachDashboard{Athletes: []models.AthleteSummary{}}, nil
	}

	activeWorkouts, err := s.workoutRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	// Shared denominator; guards the division when the catalog is empty.
	if activeWorkouts == 0 {
		activeWorkouts = 1
	}

	weekAgo := s.now().AddDate(0, 0, -7)
	summaries := make([]models.AthleteSummary, len(athletes))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, athlete := range athletes {
		i, athlete := i, athlete
		group.Go(func() error {
			totalLogs, err := s.workoutLogRepo.CountAll(groupCtx, athlete.UserID)
			if err != nil {
				return err
			}
			weekLogs, err := s.workoutLogRepo.CountSince(groupCtx, athlete.UserID, weekAgo)
			if err != nil {
				return err
			}
			lastLog, err := s.workoutLogRepo.LastLogDate(groupCtx, athlete.UserID)
			if err != nil {
				return err
			}

			fullName := "Unknown"
			if athlete.FullName != nil && *athlete.FullName != "" {
				fullName = *athlete.FullName
			}
			summaries[i] = models.AthleteSummary{
				UserID:               athlete.UserID,
				Email:                athlete.Email,
				FullName:             fullName,
				Age:                  athlete.Age,
				HeightCM:             athlete.HeightCM,
				WeightKG:             athlete.WeightKG,
				Role:                 athlete.Role,
				CompletionPercentage: completionPercentage(totalLogs, activeWorkouts),
				SessionsThisWeek:     weekLogs,
				LastWorkoutDate:      lastLog,
				IsFullyScouted:       athlete.IsFullyScouted,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	dashboard := reduceRoster(summaries)
	_ = s.views.Set(ctx, cache.KeyCoachDashboard, dashboard)
	return dashboard, nil
}

func completionPercentage(totalLogs, activeWorkouts int) int {
	percent := int(math.Round(float64(totalLogs) / float64(activeWorkouts*expectedWeeksBaseline) * 100))
	if percent > 100 {
		return 100
	}
	return percent
}

func reduceRoster(summaries []models.AthleteSummary) *models.CoachDashboard {
	dashboard := &models.CoachDashboard{Athletes: summaries}
	if len(summaries) == 0 {
		return dashboard
	}

	completionSum := 0
	for _, summary := range summaries {
		completionSum += summary.CompletionPercentage
		dashboard.TotalSessions += summary.SessionsThisWeek
		if summary.SessionsThisWeek > 0 {
			dashboard.ActiveAthletesCount++
		}
	}
	dashboard.AvgCompletion = float64(completionSum) / float64(len(summaries))
	return dashboard
}
