package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

// ClassService handles class management operations
type ClassService struct {
	classRepo *repositories.ClassRepository
}

// NewClassService creates a new class service
func NewClassService(classRepo *repositories.ClassRepository) *ClassService {
	return &ClassService{
		classRepo: classRepo,
	}
}

func (s *ClassService) validateClass(name string, gradeLevel int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if gradeLevel < 1 || gradeLevel > 12 {
		return fmt.Errorf("%w: grade level must be between 1 and 12", apperrors.ErrValidationFailed)
	}
	return nil
}

// Create adds a class
func (s *ClassService) Create(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error) {
	if err := s.validateClass(req.Name, req.GradeLevel); err != nil {
		return nil, err
	}

	class := &models.Class{
		Name:        req.Name,
		GradeLevel:  req.GradeLevel,
		HomeTeacher: req.HomeTeacher,
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// GetByID retrieves one class
func (s *ClassService) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// GetAll returns every class
func (s *ClassService) GetAll(ctx context.Context) ([]models.Class, error) {
	return s.classRepo.GetAll(ctx)
}

// GetGroupedByGrade returns classes grouped under their grade level
func (s *ClassService) GetGroupedByGrade(ctx context.Context) ([]dto.GradeGroup, error) {
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return GroupClassesByGrade(classes), nil
}

// Update replaces class fields
func (s *ClassService) Update(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*models.Class, error) {
	if err := s.validateClass(req.Name, req.GradeLevel); err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	class.Name = req.Name
	class.GradeLevel = req.GradeLevel
	class.HomeTeacher = req.HomeTeacher

	if err := s.classRepo.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// Delete removes a class. Classes with enrolled students cannot be deleted.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	return s.classRepo.Delete(ctx, id)
}
