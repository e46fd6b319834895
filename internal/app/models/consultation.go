package models

import "time"

// Consultation is a follow-up consultation request scheduled for a student,
// typically created when a completed result is flagged for follow-up
type Consultation struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	StudentID        int64     `json:"studentId" db:"student_id"`
	ConsultationDate time.Time `json:"consultationDate" db:"consultation_date"`
	ConsultationTime string    `json:"consultationTime" db:"consultation_time" example:"14:30"`
	Notes            string    `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`

	Student *Student `json:"student,omitempty"`
}
