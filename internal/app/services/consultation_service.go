package services

import (
	"context"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
	"github.com/khanhle/schoolhealth/internal/pkg/logger"
	"github.com/khanhle/schoolhealth/internal/pkg/metrics"
)

// ConsultationService handles follow-up consultation scheduling
type ConsultationService struct {
	consultationRepo *repositories.ConsultationRepository
	studentRepo      *repositories.StudentRepository
}

// NewConsultationService creates a new consultation service
func NewConsultationService(
	consultationRepo *repositories.ConsultationRepository,
	studentRepo *repositories.StudentRepository,
) *ConsultationService {
	return &ConsultationService{
		consultationRepo: consultationRepo,
		studentRepo:      studentRepo,
	}
}

// Schedule books a consultation for a student
func (s *ConsultationService) Schedule(ctx context.Context, req *dto.ScheduleConsultationRequest) (*models.Consultation, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	consultation := &models.Consultation{
		StudentID:        req.StudentID,
		ConsultationDate: req.ConsultationDate,
		ConsultationTime: req.ConsultationTime,
		Notes:            req.Notes,
	}

	if err := s.consultationRepo.Create(ctx, consultation); err != nil {
		return nil, err
	}

	metrics.ConsultationsScheduled.Inc()
	logger.Info().
		Int64("studentID", consultation.StudentID).
		Time("date", consultation.ConsultationDate).
		Msg("Consultation scheduled")

	return consultation, nil
}

// GetByStudent returns the consultations booked for one student
func (s *ConsultationService) GetByStudent(ctx context.Context, studentID int64) ([]models.Consultation, error) {
	return s.consultationRepo.GetByStudentID(ctx, studentID)
}
