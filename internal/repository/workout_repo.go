package repository

import (
	"context"

	"github.com/courtlab/HoopCoachBack/internal/models"
)

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// ListActive returns the active catalog subset, newest first.
func (r *WorkoutRepository) ListActive(ctx context.Context) ([]models.Workout, error) {
	query := `
		SELECT id, title, description, is_active, created_at
		FROM workouts
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Title, &w.Description, &w.IsActive, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// FirstActive returns one active workout in the store's natural order, or
// pgx.ErrNoRows when the catalog has no active rows.
func (r *WorkoutRepository) FirstActive(ctx context.Context) (*models.Workout, error) {
	query := `
		SELECT id, title, description, is_active, created_at
		FROM workouts
		WHERE is_active = TRUE
		LIMIT 1
	`
	var w models.Workout
	err := r.db.QueryRow(ctx, query).
		Scan(&w.ID, &w.Title, &w.Description, &w.IsActive, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkoutRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workouts WHERE is_active = TRUE`).
		Scan(&count)
	return count, err
}
