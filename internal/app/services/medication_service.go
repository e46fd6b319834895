package services

import (
	"context"
	"fmt"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

// MedicationService handles tracked medications for students
type MedicationService struct {
	medicationRepo *repositories.MedicationRepository
	studentRepo    *repositories.StudentRepository
}

// NewMedicationService creates a new medication service
func NewMedicationService(
	medicationRepo *repositories.MedicationRepository,
	studentRepo *repositories.StudentRepository,
) *MedicationService {
	return &MedicationService{
		medicationRepo: medicationRepo,
		studentRepo:    studentRepo,
	}
}

func validateMedicationDates(req *dto.CreateMedicationRequest) error {
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date cannot precede start date", apperrors.ErrValidationFailed)
	}
	return nil
}

// Create tracks a new medication for a student
func (s *MedicationService) Create(ctx context.Context, req *dto.CreateMedicationRequest) (*models.Medication, error) {
	if err := validateMedicationDates(req); err != nil {
		return nil, err
	}
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	medication := &models.Medication{
		StudentID: req.StudentID,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Schedule:  req.Schedule,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}

	if err := s.medicationRepo.Create(ctx, medication); err != nil {
		return nil, err
	}
	return medication, nil
}

// GetByStudent returns the medications tracked for one student
func (s *MedicationService) GetByStudent(ctx context.Context, studentID int64) ([]models.Medication, error) {
	return s.medicationRepo.GetByStudentID(ctx, studentID)
}

// Update replaces a tracked medication's fields
func (s *MedicationService) Update(ctx context.Context, id int64, req *dto.UpdateMedicationRequest) (*models.Medication, error) {
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date cannot precede start date", apperrors.ErrValidationFailed)
	}

	medication, err := s.medicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	medication.Name = req.Name
	medication.Dosage = req.Dosage
	medication.Schedule = req.Schedule
	medication.StartDate = req.StartDate
	medication.EndDate = req.EndDate
	medication.Notes = req.Notes

	if err := s.medicationRepo.Update(ctx, medication); err != nil {
		return nil, err
	}
	return medication, nil
}

// Delete stops tracking a medication
func (s *MedicationService) Delete(ctx context.Context, id int64) error {
	return s.medicationRepo.Delete(ctx, id)
}
