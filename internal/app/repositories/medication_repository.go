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

// MedicationRepository handles database operations for tracked medications
type MedicationRepository struct {
	db *pgxpool.Pool
}

// NewMedicationRepository creates a new medication repository
func NewMedicationRepository(db *pgxpool.Pool) *MedicationRepository {
	return &MedicationRepository{
		db: db,
	}
}

// Create creates a new medication record
func (r *MedicationRepository) Create(ctx context.Context, m *models.Medication) error {
	query := `
		INSERT INTO medications (student_id, name, dosage, schedule, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		m.StudentID, m.Name, m.Dosage, m.Schedule, m.StartDate, m.EndDate, m.Notes,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating medication: %w", err)
	}

	return nil
}

// GetByID retrieves a medication by ID
func (r *MedicationRepository) GetByID(ctx context.Context, id int64) (*models.Medication, error) {
	query := `
		SELECT id, student_id, name, dosage, schedule, start_date, end_date, notes, created_at
		FROM medications
		WHERE id = $1
	`

	var m models.Medication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.StudentID, &m.Name, &m.Dosage, &m.Schedule,
		&m.StartDate, &m.EndDate, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMedicationNotFound
		}
		return nil, fmt.Errorf("error retrieving medication: %w", err)
	}

	return &m, nil
}

// GetByStudentID retrieves all medications tracked for a student
func (r *MedicationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]models.Medication, error) {
	query := `
		SELECT id, student_id, name, dosage, schedule, start_date, end_date, notes, created_at
		FROM medications
		WHERE student_id = $1
		ORDER BY start_date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var medications []models.Medication
	for rows.Next() {
		var m models.Medication
		if err := rows.Scan(
			&m.ID, &m.StudentID, &m.Name, &m.Dosage, &m.Schedule,
			&m.StartDate, &m.EndDate, &m.Notes, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		medications = append(medications, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return medications, nil
}

// Update updates a medication record
func (r *MedicationRepository) Update(ctx context.Context, m *models.Medication) error {
	query := `
		UPDATE medications
		SET name = $1, dosage = $2, schedule = $3, start_date = $4, end_date = $5, notes = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		m.Name, m.Dosage, m.Schedule, m.StartDate, m.EndDate, m.Notes, m.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating medication: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMedicationNotFound
	}

	return nil
}

// Delete deletes a medication by ID
func (r *MedicationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting medication: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMedicationNotFound
	}

	return nil
}
