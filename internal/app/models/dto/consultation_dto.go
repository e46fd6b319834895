package dto

import "time"

// ScheduleConsultationRequest schedules a follow-up consultation for a student
type ScheduleConsultationRequest struct {
	StudentID        int64     `json:"studentId" binding:"required,min=1"`
	ConsultationDate time.Time `json:"consultationDate" binding:"required"`
	ConsultationTime string    `json:"consultationTime" binding:"required" example:"14:30"`
	Notes            string    `json:"notes" binding:"omitempty,max=2000"`
}
