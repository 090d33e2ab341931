package repository

import (
	"context"
	"time"

	"github.com/courtlab/HoopCoachBack/internal/models"
)

type WorkoutLogRepository struct {
	db DBTX
}

func NewWorkoutLogRepository(db DBTX) *WorkoutLogRepository {
	return &WorkoutLogRepository{db: db}
}

type CreateWorkoutLogInput struct {
	UserID    int64
	WorkoutID int64
	Date      time.Time
	Notes     *string
}

// Create appends one completion fact. Duplicate submissions each produce
// their own row; downstream aggregates only count rows.
func (r *WorkoutLogRepository) Create(ctx context.Context, input CreateWorkoutLogInput) (*models.WorkoutLog, error) {
	query := `
		INSERT INTO workout_logs (user_id, workout_id, date, completed, notes)
		VALUES ($1, $2, $3, TRUE, $4)
		RETURNING id, user_id, workout_id, date, completed, notes, created_at
	`
	var logRow models.WorkoutLog
	err := r.db.QueryRow(ctx, query, input.UserID, input.WorkoutID, input.Date, input.Notes).Scan(
		&logRow.ID,
		&logRow.UserID,
		&logRow.WorkoutID,
		&logRow.Date,
		&logRow.Completed,
		&logRow.Notes,
		&logRow.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &logRow, nil
}

// CountSince counts a user's logs created at or after the given instant.
func (r *WorkoutLogRepository) CountSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_logs WHERE user_id = $1 AND created_at >= $2`,
		userID, since,
	).Scan(&count)
	return count, err
}

func (r *WorkoutLogRepository) CountAll(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_logs WHERE user_id = $1`,
		userID,
	).Scan(&count)
	return count, err
}

// LastLogDate returns the created_at of the user's most recent log, or nil
// when the user has never logged a workout.
func (r *WorkoutLogRepository) LastLogDate(ctx context.Context, userID int64) (*time.Time, error) {
	var last *time.Time
	err := r.db.QueryRow(ctx,
		`SELECT MAX(created_at) FROM workout_logs WHERE user_id = $1`,
		userID,
	).Scan(&last)
	if err != nil {
		return nil, err
	}
	return last, nil
}

// CountSinceByUser returns per-athlete log counts since the given instant,
// joined with profile names for leaderboard display.
func (r *WorkoutLogRepository) CountSinceByUser(ctx context.Context, since time.Time) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT p.user_id, COALESCE(p.full_name, 'Unknown'), COUNT(l.id)
		FROM profiles p
		LEFT JOIN workout_logs l ON l.user_id = p.user_id AND l.created_at >= $1
		WHERE p.role = $2
		GROUP BY p.user_id, p.full_name
		ORDER BY COUNT(l.id) DESC, p.user_id
	`
	rows, err := r.db.Query(ctx, query, since, models.RoleAthlete)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.UserID, &entry.FullName, &entry.LogsCount); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
