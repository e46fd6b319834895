package dto

// CreateFeedbackRequest submits feedback to the health office
type CreateFeedbackRequest struct {
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required,min=1,max=5000"`
}
