package services

import (
	"context"
	"fmt"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
	"github.com/khanhle/schoolhealth/internal/pkg/helpers"
	"github.com/khanhle/schoolhealth/internal/pkg/validation"
)

// StudentService handles student roster and health record operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	classRepo   *repositories.ClassRepository
	userRepo    *repositories.UserRepository
}

// NewStudentService creates a new student service
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	classRepo *repositories.ClassRepository,
	userRepo *repositories.UserRepository,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		classRepo:   classRepo,
		userRepo:    userRepo,
	}
}

// validateLinks checks that the referenced class exists and that any linked
// parent account exists and carries the PARENT role
func (s *StudentService) validateLinks(ctx context.Context, classID int64, parentID *int64) error {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return err
	}
	if parentID != nil {
		parent, err := s.userRepo.GetByID(ctx, *parentID)
		if err != nil {
			return err
		}
		if parent.RoleType != models.RoleParent {
			return fmt.Errorf("%w: linked account is not a parent", apperrors.ErrValidationFailed)
		}
	}
	return nil
}

// Create adds a student to a class
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if !validation.IsValidStudentCode(req.StudentCode) {
		return nil, fmt.Errorf("%w: student code must match HS followed by 6 digits", apperrors.ErrValidationFailed)
	}
	if err := s.validateLinks(ctx, req.ClassID, req.ParentID); err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentCode: req.StudentCode,
		FullName:    req.FullName,
		BirthDate:   req.BirthDate,
		Gender:      models.Gender(req.Gender),
		ClassID:     req.ClassID,
		ParentID:    req.ParentID,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetByID retrieves one student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// List returns a paginated roster, optionally narrowed to one class and by
// free-text search over name and code. Filtering happens in memory on the
// fetched set; class rosters are small.
func (s *StudentService) List(ctx context.Context, classID int64, search string, page, size int) (*dto.StudentListResponse, error) {
	var students []*models.Student
	var err error

	if classID > 0 {
		students, err = s.studentRepo.GetByClassID(ctx, classID)
	} else {
		students, err = s.studentRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	students = FilterStudents(students, search)

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	total := int64(len(students))
	start := int(offset)
	if start > len(students) {
		start = len(students)
	}
	end := start + limit
	if end > len(students) {
		end = len(students)
	}

	return &dto.StudentListResponse{
		Students:   students[start:end],
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// ListByParent returns the children linked to a parent account
func (s *StudentService) ListByParent(ctx context.Context, parentID int64) ([]*models.Student, error) {
	return s.studentRepo.GetByParentID(ctx, parentID)
}

// Update replaces core student fields
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateLinks(ctx, req.ClassID, req.ParentID); err != nil {
		return nil, err
	}

	student.FullName = req.FullName
	student.BirthDate = req.BirthDate
	student.Gender = models.Gender(req.Gender)
	student.ClassID = req.ClassID
	student.ParentID = req.ParentID

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateHealthRecord replaces the student's persistent health profile
func (s *StudentService) UpdateHealthRecord(ctx context.Context, id int64, req *dto.UpdateHealthRecordRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record := models.HealthRecord{
		HeightCm:          req.HeightCm,
		WeightKg:          req.WeightKg,
		BloodType:         req.BloodType,
		Vision:            req.Vision,
		Hearing:           req.Hearing,
		Allergies:         req.Allergies,
		ChronicConditions: req.ChronicConditions,
		TreatmentHistory:  req.TreatmentHistory,
		Notes:             req.Notes,
	}

	if err := s.studentRepo.UpdateHealthRecord(ctx, id, record); err != nil {
		return nil, err
	}

	student.HealthRecord = record
	return student, nil
}

// Delete removes a student. Confirmations referencing the student cascade.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
