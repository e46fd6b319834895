package models

// Class represents a school class with a grade level
type Class struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"6A1"`
	GradeLevel  int    `json:"gradeLevel" db:"grade_level" example:"6"`
	HomeTeacher string `json:"homeTeacher" db:"home_teacher" example:"Tran Van Minh"`
}
