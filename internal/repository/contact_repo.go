package repository

import (
	"context"

	"github.com/courtlab/HoopCoachBack/internal/models"
)

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, name, email, message string) (*models.ContactMessage, error) {
	query := `
		INSERT INTO contacts (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, message, created_at
	`
	var contact models.ContactMessage
	err := r.db.QueryRow(ctx, query, name, email, message).
		Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Message, &contact.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
