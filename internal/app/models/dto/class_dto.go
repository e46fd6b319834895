package dto

import "github.com/khanhle/schoolhealth/internal/app/models"

// CreateClassRequest creates a class
type CreateClassRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	GradeLevel  int    `json:"gradeLevel" binding:"required,min=1,max=12"`
	HomeTeacher string `json:"homeTeacher" binding:"omitempty,max=100"`
}

// UpdateClassRequest updates a class
type UpdateClassRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	GradeLevel  int    `json:"gradeLevel" binding:"required,min=1,max=12"`
	HomeTeacher string `json:"homeTeacher" binding:"omitempty,max=100"`
}

// GradeGroup is a grade level with its classes, for grouped roster views
type GradeGroup struct {
	GradeLevel int            `json:"gradeLevel"`
	Classes    []models.Class `json:"classes"`
}
