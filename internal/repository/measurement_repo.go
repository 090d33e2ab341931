package repository

import (
	"context"
	"time"

	"github.com/courtlab/HoopCoachBack/internal/models"
)

type MeasurementRepository struct {
	db DBTX
}

func NewMeasurementRepository(db DBTX) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

type CreateMeasurementInput struct {
	UserID   int64
	Date     time.Time
	WeightKG float64
}

// Create returns the persisted row so optimistic clients can replace their
// temporary entry with the server-confirmed identity.
func (r *MeasurementRepository) Create(ctx context.Context, input CreateMeasurementInput) (*models.Measurement, error) {
	query := `
		INSERT INTO measurements (user_id, date, weight_kg)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, date, weight_kg, created_at
	`
	var m models.Measurement
	err := r.db.QueryRow(ctx, query, input.UserID, input.Date, input.WeightKG).
		Scan(&m.ID, &m.UserID, &m.Date, &m.WeightKG, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MeasurementRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]models.Measurement, error) {
	query := `
		SELECT id, user_id, date, weight_kg, created_at
		FROM measurements
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var measurements []models.Measurement
	for rows.Next() {
		var m models.Measurement
		if err := rows.Scan(&m.ID, &m.UserID, &m.Date, &m.WeightKG, &m.CreatedAt); err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}
