package models

import "time"

// Student defines the student model based on the 'students' table.
// Health record fields live on the student row; they are mutated by admin
// edits and by periodic examination results.
type Student struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	StudentCode string    `json:"studentCode" db:"student_code" example:"HS230015"` // School-issued identifier
	FullName    string    `json:"fullName" db:"full_name" example:"Le Minh An"`
	BirthDate   time.Time `json:"birthDate" db:"birth_date"`
	Gender      Gender    `json:"gender" db:"gender" example:"FEMALE"`
	ClassID     int64     `json:"classId" db:"class_id" example:"1"`
	ParentID    *int64    `json:"parentId,omitempty" db:"parent_id"` // Linked parent account, if registered

	HealthRecord HealthRecord `json:"healthRecord"`

	// Relations (populated when needed)
	Class  *Class `json:"class,omitempty"`
	Parent *User  `json:"parent,omitempty"`
}

// HealthRecord holds the persistent health profile of a student
type HealthRecord struct {
	HeightCm          float64 `json:"heightCm" db:"height_cm" example:"152.5"`
	WeightKg          float64 `json:"weightKg" db:"weight_kg" example:"45"`
	BloodType         string  `json:"bloodType" db:"blood_type" example:"O+"`
	Vision            string  `json:"vision" db:"vision" example:"10/10"`
	Hearing           string  `json:"hearing" db:"hearing" example:"normal"`
	Allergies         string  `json:"allergies" db:"allergies"`
	ChronicConditions string  `json:"chronicConditions" db:"chronic_conditions"`
	TreatmentHistory  string  `json:"treatmentHistory" db:"treatment_history"`
	Notes             string  `json:"notes" db:"notes"`
}
