package models

import "time"

// User represents an account in the system (admin, school health staff or parent)
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"nurse@school.edu.vn"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name" example:"Nguyen Thi Lan"`
	Phone        string    `json:"phone" db:"phone" example:"0901234567"`
	RoleType     RoleType  `json:"roleType" db:"role_type" example:"STAFF"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
