package dto

import "time"

// CreateMedicationRequest tracks a medication for a student
type CreateMedicationRequest struct {
	StudentID int64      `json:"studentId" binding:"required,min=1"`
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Dosage    string     `json:"dosage" binding:"required,max=100"`
	Schedule  string     `json:"schedule" binding:"omitempty,max=200"`
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate" binding:"omitempty"`
	Notes     string     `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateMedicationRequest updates a tracked medication
type UpdateMedicationRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Dosage    string     `json:"dosage" binding:"required,max=100"`
	Schedule  string     `json:"schedule" binding:"omitempty,max=200"`
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate" binding:"omitempty"`
	Notes     string     `json:"notes" binding:"omitempty,max=2000"`
}
