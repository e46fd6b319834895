package dto

import (
	"time"

	"github.com/khanhle/schoolhealth/internal/app/models"
)

// Parent response statuses on the wire, kept as the backend expects them
const (
	RespondAgree    = "Agree"
	RespondDisagree = "Disagree"
)

// RespondRequest is the parent's decision on a pending confirmation.
// A rejection reason is required when the status is Disagree; validation
// fails before any state is touched.
type RespondRequest struct {
	Status          string `json:"status" binding:"required,oneof=Agree Disagree"`
	Notes           string `json:"notes" binding:"omitempty,max=1000"`
	RejectionReason string `json:"rejectionReason" binding:"omitempty,max=1000"`
}

// RecordResultRequest records a clinical result on an approved confirmation.
// The payload variant must match the event's type.
type RecordResultRequest struct {
	HealthResult     models.HealthResult `json:"healthResult" binding:"required"`
	ExaminationNotes string              `json:"examinationNotes" binding:"omitempty,max=2000"`
	Recommendations  string              `json:"recommendations" binding:"omitempty,max=2000"`
	FollowUpRequired bool                `json:"followUpRequired"`
	FollowUpDate     *time.Time          `json:"followUpDate" binding:"omitempty"`
}
