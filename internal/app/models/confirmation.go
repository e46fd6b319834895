package models

import (
	"strings"
	"time"

	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

// ConfirmationStatus is the state of a per-student confirmation record
type ConfirmationStatus string

const (
	StatusPending   ConfirmationStatus = "PENDING"
	StatusApproved  ConfirmationStatus = "APPROVED"
	StatusRejected  ConfirmationStatus = "REJECTED"
	StatusCompleted ConfirmationStatus = "COMPLETED"
)

// Confirmation tracks parent consent and clinical completion for one student
// in one health event. A confirmation moves PENDING -> APPROVED|REJECTED by
// parent decision, and APPROVED -> COMPLETED when staff records a result.
// REJECTED and COMPLETED are terminal.
type Confirmation struct {
	ID               int64              `json:"id" db:"id" example:"1"`
	EventID          int64              `json:"eventId" db:"event_id"`
	StudentID        int64              `json:"studentId" db:"student_id"`
	Status           ConfirmationStatus `json:"status" db:"status" example:"PENDING"`
	ParentNotes      string             `json:"parentNotes,omitempty" db:"parent_notes"`
	RejectionReason  string             `json:"rejectionReason,omitempty" db:"rejection_reason"`
	Result           *HealthResult      `json:"result,omitempty" db:"result"`
	ExaminationNotes string             `json:"examinationNotes,omitempty" db:"examination_notes"`
	Recommendations  string             `json:"recommendations,omitempty" db:"recommendations"`
	FollowUpRequired bool               `json:"followUpRequired" db:"follow_up_required"`
	FollowUpDate     *time.Time         `json:"followUpDate,omitempty" db:"follow_up_date"`
	CreatedAt        time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student     `json:"student,omitempty"`
	Event   *HealthEvent `json:"event,omitempty"`
}

// Approve records the parent's consent with an optional note
func (c *Confirmation) Approve(notes string) error {
	if c.Status != StatusPending {
		return apperrors.ErrConfirmationAlreadyResponded
	}
	c.Status = StatusApproved
	c.ParentNotes = notes
	c.RejectionReason = ""
	return nil
}

// Reject records the parent's refusal. A non-empty reason is required.
func (c *Confirmation) Reject(reason string) error {
	if c.Status != StatusPending {
		return apperrors.ErrConfirmationAlreadyResponded
	}
	if strings.TrimSpace(reason) == "" {
		return apperrors.ErrRejectionReasonRequired
	}
	c.Status = StatusRejected
	c.RejectionReason = reason
	c.ParentNotes = ""
	return nil
}

// Complete attaches a clinical result to an approved confirmation. Result
// recording is gated on prior parent approval for every event type; a
// follow-up date is required whenever follow-up is flagged.
func (c *Confirmation) Complete(result HealthResult, notes, recommendations string, followUp bool, followUpDate *time.Time) error {
	switch c.Status {
	case StatusApproved:
		// ok
	case StatusCompleted:
		return apperrors.ErrConfirmationAlreadyCompleted
	default:
		return apperrors.ErrConfirmationNotApproved
	}
	if followUp && followUpDate == nil {
		return apperrors.ErrFollowUpDateRequired
	}
	c.Status = StatusCompleted
	c.Result = &result
	c.ExaminationNotes = notes
	c.Recommendations = recommendations
	c.FollowUpRequired = followUp
	if followUp {
		c.FollowUpDate = followUpDate
	} else {
		c.FollowUpDate = nil
	}
	return nil
}
