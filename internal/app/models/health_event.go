package models

import "time"

// HealthEvent represents a scheduled examination or vaccination campaign
// targeting one or more classes. Events are immutable once created; deleting
// an event cascades deletion of its confirmations.
type HealthEvent struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Title        string    `json:"title" db:"title" example:"Annual periodic examination 2026"`
	Description  string    `json:"description" db:"description"`
	EventType    EventType `json:"eventType" db:"event_type" example:"PERIODIC"`
	ScheduledAt  time.Time `json:"scheduledAt" db:"scheduled_at"`
	Location     string    `json:"location" db:"location" example:"School medical room"`
	StaffName    string    `json:"staffName" db:"staff_name" example:"Nguyen Thi Lan"`
	TargetGrades []int     `json:"targetGrades" db:"target_grades" example:"6,7"`
	CreatedBy    int64     `json:"createdBy" db:"created_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
