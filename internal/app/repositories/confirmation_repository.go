package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

// ConfirmationRepository handles database operations for per-student
// confirmation records
type ConfirmationRepository struct {
	db *pgxpool.Pool
}

// NewConfirmationRepository creates a new confirmation repository
func NewConfirmationRepository(db *pgxpool.Pool) *ConfirmationRepository {
	return &ConfirmationRepository{
		db: db,
	}
}

// GetByID retrieves a confirmation along with its owning event
func (r *ConfirmationRepository) GetByID(ctx context.Context, id int64) (*models.Confirmation, error) {
	query := `
		SELECT c.id, c.event_id, c.student_id, c.status, c.parent_notes, c.rejection_reason,
		       c.result, c.examination_notes, c.recommendations, c.follow_up_required, c.follow_up_date,
		       c.created_at, c.updated_at,
		       e.id, e.title, e.description, e.event_type, e.scheduled_at, e.location,
		       e.staff_name, e.target_grades, e.created_by, e.created_at
		FROM confirmations c
		JOIN health_events e ON e.id = c.event_id
		WHERE c.id = $1
	`

	var c models.Confirmation
	var event models.HealthEvent
	var resultJSON []byte

	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.EventID, &c.StudentID, &c.Status, &c.ParentNotes, &c.RejectionReason,
		&resultJSON, &c.ExaminationNotes, &c.Recommendations, &c.FollowUpRequired, &c.FollowUpDate,
		&c.CreatedAt, &c.UpdatedAt,
		&event.ID, &event.Title, &event.Description, &event.EventType, &event.ScheduledAt,
		&event.Location, &event.StaffName, &event.TargetGrades, &event.CreatedBy, &event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConfirmationNotFound
		}
		return nil, fmt.Errorf("error retrieving confirmation: %w", err)
	}

	if len(resultJSON) > 0 {
		var result models.HealthResult
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return nil, fmt.Errorf("error decoding result payload: %w", err)
		}
		c.Result = &result
	}
	c.Event = &event

	return &c, nil
}

// GetByEventAndClass retrieves the full confirmation records for one class
// within one event, with student details populated
func (r *ConfirmationRepository) GetByEventAndClass(ctx context.Context, eventID, classID int64) ([]models.Confirmation, error) {
	query := `
		SELECT c.id, c.event_id, c.student_id, c.status, c.parent_notes, c.rejection_reason,
		       c.result, c.examination_notes, c.recommendations, c.follow_up_required, c.follow_up_date,
		       c.created_at, c.updated_at,
		       s.id, s.student_code, s.full_name, s.birth_date, s.gender, s.class_id, s.parent_id
		FROM confirmations c
		JOIN students s ON s.id = c.student_id
		WHERE c.event_id = $1 AND s.class_id = $2
		ORDER BY s.full_name
	`

	rows, err := r.db.Query(ctx, query, eventID, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var confirmations []models.Confirmation
	for rows.Next() {
		var c models.Confirmation
		var student models.Student
		var resultJSON []byte

		if err := rows.Scan(
			&c.ID, &c.EventID, &c.StudentID, &c.Status, &c.ParentNotes, &c.RejectionReason,
			&resultJSON, &c.ExaminationNotes, &c.Recommendations, &c.FollowUpRequired, &c.FollowUpDate,
			&c.CreatedAt, &c.UpdatedAt,
			&student.ID, &student.StudentCode, &student.FullName, &student.BirthDate,
			&student.Gender, &student.ClassID, &student.ParentID,
		); err != nil {
			return nil, err
		}

		if len(resultJSON) > 0 {
			var result models.HealthResult
			if err := json.Unmarshal(resultJSON, &result); err != nil {
				return nil, fmt.Errorf("error decoding result payload: %w", err)
			}
			c.Result = &result
		}
		c.Student = &student
		confirmations = append(confirmations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return confirmations, nil
}

// CountsByClass computes per-class status counts for an event in a single
// grouped query. Counts are derived fresh on every call.
func (r *ConfirmationRepository) CountsByClass(ctx context.Context, eventID int64) (map[int64]models.StatusCounts, error) {
	query := `
		SELECT s.class_id, c.status, COUNT(*)
		FROM confirmations c
		JOIN students s ON s.id = c.student_id
		WHERE c.event_id = $1
		GROUP BY s.class_id, c.status
	`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]models.StatusCounts)
	for rows.Next() {
		var classID int64
		var status models.ConfirmationStatus
		var n int

		if err := rows.Scan(&classID, &status, &n); err != nil {
			return nil, err
		}

		c := counts[classID]
		c.Total += n
		switch status {
		case models.StatusPending:
			c.Pending += n
		case models.StatusApproved:
			c.Approved += n
		case models.StatusRejected:
			c.Rejected += n
		case models.StatusCompleted:
			c.Completed += n
		}
		counts[classID] = c
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// UpdateResponse persists a parent response transition. Last write wins; no
// version check is performed.
func (r *ConfirmationRepository) UpdateResponse(ctx context.Context, c *models.Confirmation) error {
	query := `
		UPDATE confirmations
		SET status = $1, parent_notes = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, c.Status, c.ParentNotes, c.RejectionReason, c.ID)
	if err != nil {
		return fmt.Errorf("error updating confirmation response: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConfirmationNotFound
	}

	return nil
}

// UpdateResult persists a completed clinical result
func (r *ConfirmationRepository) UpdateResult(ctx context.Context, c *models.Confirmation) error {
	resultJSON, err := json.Marshal(c.Result)
	if err != nil {
		return fmt.Errorf("error encoding result payload: %w", err)
	}

	query := `
		UPDATE confirmations
		SET status = $1, result = $2, examination_notes = $3, recommendations = $4,
		    follow_up_required = $5, follow_up_date = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		c.Status, resultJSON, c.ExaminationNotes, c.Recommendations,
		c.FollowUpRequired, c.FollowUpDate, c.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating confirmation result: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConfirmationNotFound
	}

	return nil
}
