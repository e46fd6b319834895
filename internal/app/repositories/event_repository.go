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

// EventRepository handles database operations for health events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new event and fans out one pending confirmation per
// student in the target grades, atomically. Returns the number of
// confirmations created.
func (r *EventRepository) Create(ctx context.Context, event *models.HealthEvent) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insertEvent := `
		INSERT INTO health_events (title, description, event_type, scheduled_at, location, staff_name, target_grades, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err = tx.QueryRow(ctx, insertEvent,
		event.Title, event.Description, event.EventType, event.ScheduledAt,
		event.Location, event.StaffName, event.TargetGrades, event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating health event: %w", err)
	}

	fanOut := `
		INSERT INTO confirmations (event_id, student_id, status)
		SELECT $1, s.id, $2
		FROM students s
		JOIN classes c ON c.id = s.class_id
		WHERE c.grade_level = ANY($3)
	`

	cmdTag, err := tx.Exec(ctx, fanOut, event.ID, models.StatusPending, event.TargetGrades)
	if err != nil {
		return 0, fmt.Errorf("error creating confirmations for event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.HealthEvent, error) {
	query := `
		SELECT id, title, description, event_type, scheduled_at, location, staff_name, target_grades, created_by, created_at
		FROM health_events
		WHERE id = $1
	`

	var event models.HealthEvent
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventType,
		&event.ScheduledAt,
		&event.Location,
		&event.StaffName,
		&event.TargetGrades,
		&event.CreatedBy,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving health event: %w", err)
	}

	return &event, nil
}

// GetAll retrieves all events, newest schedule first
func (r *EventRepository) GetAll(ctx context.Context) ([]models.HealthEvent, error) {
	query := `
		SELECT id, title, description, event_type, scheduled_at, location, staff_name, target_grades, created_by, created_at
		FROM health_events
		ORDER BY scheduled_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.HealthEvent
	for rows.Next() {
		var event models.HealthEvent
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.EventType,
			&event.ScheduledAt,
			&event.Location,
			&event.StaffName,
			&event.TargetGrades,
			&event.CreatedBy,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// GetTargetClasses retrieves the classes covered by an event's target grades
func (r *EventRepository) GetTargetClasses(ctx context.Context, eventID int64) ([]models.Class, error) {
	query := `
		SELECT c.id, c.name, c.grade_level, c.home_teacher
		FROM classes c
		JOIN health_events e ON c.grade_level = ANY(e.target_grades)
		WHERE e.id = $1
		ORDER BY c.grade_level, c.name
	`

	rows, err := r.db.Query(ctx, query, eventID)
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

// Delete deletes an event by ID. Confirmations are removed by the cascading
// foreign key.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM health_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting health event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
