package services

import (
	"context"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
)

// FeedbackService handles feedback messages sent to the health office
type FeedbackService struct {
	feedbackRepo *repositories.FeedbackRepository
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackRepo *repositories.FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
	}
}

// Create submits feedback on behalf of the authenticated user
func (s *FeedbackService) Create(ctx context.Context, userID int64, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	feedback := &models.Feedback{
		UserID:  userID,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// GetAll returns every feedback message, newest first
func (s *FeedbackService) GetAll(ctx context.Context) ([]models.Feedback, error) {
	return s.feedbackRepo.GetAll(ctx)
}

// Delete removes a feedback message
func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	return s.feedbackRepo.Delete(ctx, id)
}
