package services

import (
	"context"
	"fmt"

	appauth "github.com/khanhle/schoolhealth/internal/app/auth"
	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
	"github.com/khanhle/schoolhealth/internal/pkg/logger"
	"github.com/khanhle/schoolhealth/internal/pkg/metrics"
)

// ConfirmationService defines the interface for parent responses and
// clinical result recording
type ConfirmationService interface {
	Respond(ctx context.Context, confirmationID, userID int64, role models.RoleType, req *dto.RespondRequest) (*models.Confirmation, error)
	RecordExaminationResult(ctx context.Context, confirmationID int64, req *dto.RecordResultRequest) (*models.Confirmation, error)
	RecordVaccinationResult(ctx context.Context, confirmationID int64, req *dto.RecordResultRequest) (*models.Confirmation, error)
}

// confirmationServiceImpl implements the ConfirmationService interface
type confirmationServiceImpl struct {
	confirmationRepo *repositories.ConfirmationRepository
	studentRepo      *repositories.StudentRepository
	consultationRepo *repositories.ConsultationRepository
	authzService     *appauth.AuthorizationService
}

// NewConfirmationService creates a new confirmation service instance
func NewConfirmationService(
	confirmationRepo *repositories.ConfirmationRepository,
	studentRepo *repositories.StudentRepository,
	consultationRepo *repositories.ConsultationRepository,
	authzService *appauth.AuthorizationService,
) ConfirmationService {
	return &confirmationServiceImpl{
		confirmationRepo: confirmationRepo,
		studentRepo:      studentRepo,
		consultationRepo: consultationRepo,
		authzService:     authzService,
	}
}

// Respond applies a parent's Agree or Disagree decision to a pending
// confirmation. Only the linked parent may respond; a decision on an
// already-responded confirmation is rejected rather than overwritten.
func (s *confirmationServiceImpl) Respond(ctx context.Context, confirmationID, userID int64, role models.RoleType, req *dto.RespondRequest) (*models.Confirmation, error) {
	confirmation, err := s.confirmationRepo.GetByID(ctx, confirmationID)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.CanRespondToConfirmation(ctx, userID, role, confirmation); err != nil {
		return nil, err
	}

	switch req.Status {
	case dto.RespondAgree:
		err = confirmation.Approve(req.Notes)
	case dto.RespondDisagree:
		err = confirmation.Reject(req.RejectionReason)
	default:
		err = fmt.Errorf("%w: unknown response status %q", apperrors.ErrValidationFailed, req.Status)
	}
	if err != nil {
		return nil, err
	}

	if err := s.confirmationRepo.UpdateResponse(ctx, confirmation); err != nil {
		return nil, err
	}

	metrics.ConfirmationTransitions.WithLabelValues(string(confirmation.Status)).Inc()
	logger.Info().
		Int64("confirmationID", confirmation.ID).
		Str("status", string(confirmation.Status)).
		Msg("Parent response recorded")

	return confirmation, nil
}

// RecordExaminationResult records a clinical result for an examination
// confirmation (periodic, dental or eye). Vaccination confirmations use the
// vaccination path.
func (s *confirmationServiceImpl) RecordExaminationResult(ctx context.Context, confirmationID int64, req *dto.RecordResultRequest) (*models.Confirmation, error) {
	return s.recordResult(ctx, confirmationID, req, false)
}

// RecordVaccinationResult records the observed vaccination outcome for a
// vaccination confirmation
func (s *confirmationServiceImpl) RecordVaccinationResult(ctx context.Context, confirmationID int64, req *dto.RecordResultRequest) (*models.Confirmation, error) {
	return s.recordResult(ctx, confirmationID, req, true)
}

func (s *confirmationServiceImpl) recordResult(ctx context.Context, confirmationID int64, req *dto.RecordResultRequest, wantVaccination bool) (*models.Confirmation, error) {
	confirmation, err := s.confirmationRepo.GetByID(ctx, confirmationID)
	if err != nil {
		return nil, err
	}
	if confirmation.Event == nil {
		return nil, apperrors.ErrEventNotFound
	}

	isVaccination := confirmation.Event.EventType == models.EventVaccination
	if isVaccination != wantVaccination {
		return nil, apperrors.ErrResultTypeMismatch
	}

	result := req.HealthResult
	if err := result.Validate(confirmation.Event.EventType); err != nil {
		return nil, err
	}

	if err := confirmation.Complete(result, req.ExaminationNotes, req.Recommendations, req.FollowUpRequired, req.FollowUpDate); err != nil {
		return nil, err
	}

	if err := s.confirmationRepo.UpdateResult(ctx, confirmation); err != nil {
		return nil, err
	}

	metrics.ConfirmationTransitions.WithLabelValues(string(models.StatusCompleted)).Inc()
	logger.Info().
		Int64("confirmationID", confirmation.ID).
		Str("eventType", string(confirmation.Event.EventType)).
		Msg("Result recorded")

	// Side effects never fail the recording; they are logged and moved past.
	s.applyResultToHealthRecord(ctx, confirmation)
	s.scheduleFollowUp(ctx, confirmation)

	return confirmation, nil
}

// applyResultToHealthRecord copies periodic measurements onto the student's
// persistent health profile so the roster reflects the latest examination
func (s *confirmationServiceImpl) applyResultToHealthRecord(ctx context.Context, confirmation *models.Confirmation) {
	if confirmation.Result == nil || confirmation.Result.Periodic == nil {
		return
	}

	student, err := s.studentRepo.GetByID(ctx, confirmation.StudentID)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", confirmation.StudentID).Msg("Failed to load student for health record update")
		return
	}

	record := student.HealthRecord
	periodic := confirmation.Result.Periodic
	record.HeightCm = periodic.HeightCm
	record.WeightKg = periodic.WeightKg
	if periodic.Vision != "" {
		record.Vision = periodic.Vision
	}

	if err := s.studentRepo.UpdateHealthRecord(ctx, student.ID, record); err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Failed to update health record from examination result")
	}
}

// scheduleFollowUp creates a consultation when the recorded result flags
// follow-up
func (s *confirmationServiceImpl) scheduleFollowUp(ctx context.Context, confirmation *models.Confirmation) {
	if !confirmation.FollowUpRequired || confirmation.FollowUpDate == nil {
		return
	}

	consultation := &models.Consultation{
		StudentID:        confirmation.StudentID,
		ConsultationDate: *confirmation.FollowUpDate,
		Notes:            confirmation.Recommendations,
	}
	if err := s.consultationRepo.Create(ctx, consultation); err != nil {
		logger.Error().Err(err).Int64("confirmationID", confirmation.ID).Msg("Failed to schedule follow-up consultation")
		return
	}

	metrics.ConsultationsScheduled.Inc()
	logger.Info().
		Int64("studentID", confirmation.StudentID).
		Time("date", *confirmation.FollowUpDate).
		Msg("Follow-up consultation scheduled")
}
