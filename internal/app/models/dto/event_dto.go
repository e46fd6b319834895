package dto

import (
	"time"

	"github.com/khanhle/schoolhealth/internal/app/models"
)

// CreateEventRequest creates a health event and fans out one pending
// confirmation per student in the target grades
type CreateEventRequest struct {
	Title        string    `json:"title" binding:"required,min=2,max=200"`
	Description  string    `json:"description" binding:"omitempty,max=2000"`
	EventType    string    `json:"eventType" binding:"required,oneof=PERIODIC DENTAL EYE VACCINATION"`
	ScheduledAt  time.Time `json:"scheduledAt" binding:"required"`
	Location     string    `json:"location" binding:"omitempty,max=200"`
	StaffName    string    `json:"staffName" binding:"omitempty,max=100"`
	TargetGrades []int     `json:"targetGrades" binding:"required,min=1,dive,min=1,max=12"`
}

// ClassSummary is the per-class aggregation view inside an event
type ClassSummary struct {
	ClassID        int64               `json:"classId"`
	ClassName      string              `json:"className"`
	GradeLevel     int                 `json:"gradeLevel"`
	Counts         models.StatusCounts `json:"counts"`
	ApprovalRate   float64             `json:"approvalRate"`
	CompletionRate float64             `json:"completionRate"`
	Badge          models.StatusBadge  `json:"badge"`
}

// EventSummary is one event with nested class summaries and event totals
type EventSummary struct {
	Event          models.HealthEvent  `json:"event"`
	Classes        []ClassSummary      `json:"classes"`
	Counts         models.StatusCounts `json:"counts"`
	ApprovalRate   float64             `json:"approvalRate"`
	CompletionRate float64             `json:"completionRate"`
	Badge          models.StatusBadge  `json:"badge"`
}

// EventListResponse is the event list envelope. Failed aggregations do not
// block other events; the first failure is reported alongside the loaded set.
type EventListResponse struct {
	Events []EventSummary `json:"events"`
	Error  *ErrorDetail   `json:"error,omitempty"`
}

// ClassDetailResponse is the per-class drilldown with full confirmations
type ClassDetailResponse struct {
	Class         models.Class          `json:"class"`
	Event         models.HealthEvent    `json:"event"`
	Confirmations []models.Confirmation `json:"confirmations"`
	Counts        models.StatusCounts   `json:"counts"`
}
