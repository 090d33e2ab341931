package models

import "time"

// Workout is a catalog entity. The application only ever reads the
// is_active subset; rows are managed out of band.
type Workout struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkoutLog is an append-only completion fact. It is never updated or
// deleted; aggregates only count rows.
type WorkoutLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	WorkoutID int64     `json:"workout_id"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
