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

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

// Create creates a new class
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (name, grade_level, home_teacher)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, class.Name, class.GradeLevel, class.HomeTeacher).Scan(&class.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "classes_name_key") {
			return apperrors.ErrClassAlreadyExists
		}
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := `
		SELECT id, name, grade_level, home_teacher
		FROM classes
		WHERE id = $1
	`

	var class models.Class
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Name,
		&class.GradeLevel,
		&class.HomeTeacher,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return &class, nil
}

// GetAll retrieves all classes ordered by grade then name
func (r *ClassRepository) GetAll(ctx context.Context) ([]models.Class, error) {
	query := `
		SELECT id, name, grade_level, home_teacher
		FROM classes
		ORDER BY grade_level, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.GradeLevel,
			&class.HomeTeacher,
		); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// GetByGrades retrieves all classes in the given grade levels
func (r *ClassRepository) GetByGrades(ctx context.Context, grades []int) ([]models.Class, error) {
	query := `
		SELECT id, name, grade_level, home_teacher
		FROM classes
		WHERE grade_level = ANY($1)
		ORDER BY grade_level, name
	`

	rows, err := r.db.Query(ctx, query, grades)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.GradeLevel,
			&class.HomeTeacher,
		); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Update updates an existing class
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	query := `
		UPDATE classes
		SET name = $1, grade_level = $2, home_teacher = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, class.Name, class.GradeLevel, class.HomeTeacher, class.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "classes_name_key") {
			return apperrors.ErrClassAlreadyExists
		}
		return fmt.Errorf("error updating class: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// Delete deletes a class by ID. Classes with enrolled students cannot be deleted.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	var hasStudents bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE class_id = $1)`, id).Scan(&hasStudents)
	if err != nil {
		return fmt.Errorf("error checking class students: %w", err)
	}
	if hasStudents {
		return apperrors.ErrClassHasStudents
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}
