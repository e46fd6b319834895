package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
	"github.com/khanhle/schoolhealth/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	id, student_code, full_name, birth_date, gender, class_id, parent_id,
	height_cm, weight_kg, blood_type, vision, hearing, allergies,
	chronic_conditions, treatment_history, notes`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.StudentCode,
		&s.FullName,
		&s.BirthDate,
		&s.Gender,
		&s.ClassID,
		&s.ParentID,
		&s.HealthRecord.HeightCm,
		&s.HealthRecord.WeightKg,
		&s.HealthRecord.BloodType,
		&s.HealthRecord.Vision,
		&s.HealthRecord.Hearing,
		&s.HealthRecord.Allergies,
		&s.HealthRecord.ChronicConditions,
		&s.HealthRecord.TreatmentHistory,
		&s.HealthRecord.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create creates a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_code, full_name, birth_date, gender, class_id, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentCode, student.FullName, student.BirthDate,
		student.Gender, student.ClassID, student.ParentID,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_code_key") {
			return apperrors.ErrStudentCodeAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves the full student roster ordered by class then name
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY class_id, full_name`

	return r.queryStudents(ctx, query)
}

// GetByClassID retrieves all students enrolled in a class
func (r *StudentRepository) GetByClassID(ctx context.Context, classID int64) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE class_id = $1 ORDER BY full_name`

	return r.queryStudents(ctx, query, classID)
}

// GetByParentID retrieves all students linked to a parent account
func (r *StudentRepository) GetByParentID(ctx context.Context, parentID int64) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE parent_id = $1 ORDER BY full_name`

	return r.queryStudents(ctx, query, parentID)
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates core student fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET full_name = $1, birth_date = $2, gender = $3, class_id = $4, parent_id = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FullName, student.BirthDate, student.Gender,
		student.ClassID, student.ParentID, student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateHealthRecord updates the student's persistent health profile
func (r *StudentRepository) UpdateHealthRecord(ctx context.Context, studentID int64, record models.HealthRecord) error {
	query := `
		UPDATE students
		SET height_cm = $1, weight_kg = $2, blood_type = $3, vision = $4, hearing = $5,
		    allergies = $6, chronic_conditions = $7, treatment_history = $8, notes = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		record.HeightCm, record.WeightKg, record.BloodType, record.Vision, record.Hearing,
		record.Allergies, record.ChronicConditions, record.TreatmentHistory, record.Notes,
		studentID,
	)
	if err != nil {
		return fmt.Errorf("error updating health record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID. Dependent confirmation records are not
// cleaned up here.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
