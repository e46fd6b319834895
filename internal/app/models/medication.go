package models

import "time"

// Medication is a medication tracked for a student by the health office
type Medication struct {
	ID        int64      `json:"id" db:"id" example:"1"`
	StudentID int64      `json:"studentId" db:"student_id"`
	Name      string     `json:"name" db:"name" example:"Salbutamol"`
	Dosage    string     `json:"dosage" db:"dosage" example:"2 puffs"`
	Schedule  string     `json:"schedule" db:"schedule" example:"as needed"`
	StartDate time.Time  `json:"startDate" db:"start_date"`
	EndDate   *time.Time `json:"endDate,omitempty" db:"end_date"`
	Notes     string     `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
