package dto

import (
	"time"

	"github.com/khanhle/schoolhealth/internal/app/models"
)

// CreateStudentRequest creates a student record in a class
type CreateStudentRequest struct {
	StudentCode string    `json:"studentCode" binding:"required"`
	FullName    string    `json:"fullName" binding:"required,min=2,max=100"`
	BirthDate   time.Time `json:"birthDate" binding:"required"`
	Gender      string    `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	ClassID     int64     `json:"classId" binding:"required,min=1"`
	ParentID    *int64    `json:"parentId" binding:"omitempty,min=1"`
}

// UpdateStudentRequest updates core student fields
type UpdateStudentRequest struct {
	FullName  string    `json:"fullName" binding:"required,min=2,max=100"`
	BirthDate time.Time `json:"birthDate" binding:"required"`
	Gender    string    `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	ClassID   int64     `json:"classId" binding:"required,min=1"`
	ParentID  *int64    `json:"parentId" binding:"omitempty,min=1"`
}

// UpdateHealthRecordRequest updates the student's persistent health profile
type UpdateHealthRecordRequest struct {
	HeightCm          float64 `json:"heightCm" binding:"omitempty,min=0"`
	WeightKg          float64 `json:"weightKg" binding:"omitempty,min=0"`
	BloodType         string  `json:"bloodType" binding:"omitempty,max=5"`
	Vision            string  `json:"vision" binding:"omitempty,max=50"`
	Hearing           string  `json:"hearing" binding:"omitempty,max=50"`
	Allergies         string  `json:"allergies" binding:"omitempty,max=1000"`
	ChronicConditions string  `json:"chronicConditions" binding:"omitempty,max=1000"`
	TreatmentHistory  string  `json:"treatmentHistory" binding:"omitempty,max=2000"`
	Notes             string  `json:"notes" binding:"omitempty,max=2000"`
}

// StudentListResponse is a paginated student roster
type StudentListResponse struct {
	Students   []*models.Student `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}
