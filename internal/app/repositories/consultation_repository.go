package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

// ConsultationRepository handles database operations for consultations
type ConsultationRepository struct {
	db *pgxpool.Pool
}

// NewConsultationRepository creates a new consultation repository
func NewConsultationRepository(db *pgxpool.Pool) *ConsultationRepository {
	return &ConsultationRepository{
		db: db,
	}
}

// Create creates a new consultation request
func (r *ConsultationRepository) Create(ctx context.Context, consultation *models.Consultation) error {
	query := `
		INSERT INTO consultations (student_id, consultation_date, consultation_time, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		consultation.StudentID, consultation.ConsultationDate,
		consultation.ConsultationTime, consultation.Notes,
	).Scan(&consultation.ID, &consultation.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating consultation: %w", err)
	}

	return nil
}

// GetByID retrieves a consultation by ID
func (r *ConsultationRepository) GetByID(ctx context.Context, id int64) (*models.Consultation, error) {
	query := `
		SELECT id, student_id, consultation_date, consultation_time, notes, created_at
		FROM consultations
		WHERE id = $1
	`

	var c models.Consultation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.StudentID,
		&c.ConsultationDate,
		&c.ConsultationTime,
		&c.Notes,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConsultationNotFound
		}
		return nil, fmt.Errorf("error retrieving consultation: %w", err)
	}

	return &c, nil
}

// GetByStudentID retrieves all consultations scheduled for a student
func (r *ConsultationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]models.Consultation, error) {
	query := `
		SELECT id, student_id, consultation_date, consultation_time, notes, created_at
		FROM consultations
		WHERE student_id = $1
		ORDER BY consultation_date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consultations []models.Consultation
	for rows.Next() {
		var c models.Consultation
		if err := rows.Scan(
			&c.ID,
			&c.StudentID,
			&c.ConsultationDate,
			&c.ConsultationTime,
			&c.Notes,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		consultations = append(consultations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return consultations, nil
}
