package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin  RoleType = "ADMIN"
	RoleStaff  RoleType = "STAFF"
	RoleParent RoleType = "PARENT"
)

// EventType tags a health event and drives which result fields are collected
type EventType string

const (
	EventPeriodic    EventType = "PERIODIC"
	EventDental      EventType = "DENTAL"
	EventEye         EventType = "EYE"
	EventVaccination EventType = "VACCINATION"
)

// ValidEventType reports whether t is a known event type
func ValidEventType(t EventType) bool {
	switch t {
	case EventPeriodic, EventDental, EventEye, EventVaccination:
		return true
	}
	return false
}

// Gender of a student
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)
