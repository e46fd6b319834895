package models

import "time"

// Feedback is a message sent by a parent or staff member to the health office
type Feedback struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	UserID    int64     `json:"userId" db:"user_id"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"user,omitempty"`
}
