package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

// FeedbackRepository handles database operations for feedback messages
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Create creates a new feedback message
func (r *FeedbackRepository) Create(ctx context.Context, f *models.Feedback) error {
	query := `
		INSERT INTO feedback (user_id, subject, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, f.UserID, f.Subject, f.Message).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// GetAll retrieves all feedback messages with author details, newest first
func (r *FeedbackRepository) GetAll(ctx context.Context) ([]models.Feedback, error) {
	query := `
		SELECT f.id, f.user_id, f.subject, f.message, f.created_at,
		       u.id, u.email, u.full_name, u.phone, u.role_type
		FROM feedback f
		JOIN users u ON u.id = f.user_id
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Feedback
	for rows.Next() {
		var f models.Feedback
		var u models.User
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.Subject, &f.Message, &f.CreatedAt,
			&u.ID, &u.Email, &u.FullName, &u.Phone, &u.RoleType,
		); err != nil {
			return nil, err
		}
		f.User = &u
		items = append(items, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Delete deletes a feedback message by ID
func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting feedback: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}

	return nil
}
