package auth

import (
	"context"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

// AuthorizationService answers ownership questions that role checks alone
// cannot: a parent may only act on confirmations belonging to their own
// children.
type AuthorizationService struct {
	studentRepo *repositories.StudentRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(studentRepo *repositories.StudentRepository) *AuthorizationService {
	return &AuthorizationService{
		studentRepo: studentRepo,
	}
}

// CanRespondToConfirmation reports whether the user may submit a parent
// response for the given confirmation. Admins and staff pass unconditionally;
// parents pass only for their own child.
func (s *AuthorizationService) CanRespondToConfirmation(ctx context.Context, userID int64, role models.RoleType, confirmation *models.Confirmation) error {
	if role == models.RoleAdmin || role == models.RoleStaff {
		return nil
	}

	student, err := s.studentRepo.GetByID(ctx, confirmation.StudentID)
	if err != nil {
		return err
	}
	if student.ParentID == nil || *student.ParentID != userID {
		return apperrors.ErrPermissionDenied
	}

	return nil
}

// CanViewStudent reports whether the user may read a student's records.
// Parents are limited to their own children.
func (s *AuthorizationService) CanViewStudent(ctx context.Context, userID int64, role models.RoleType, studentID int64) error {
	if role == models.RoleAdmin || role == models.RoleStaff {
		return nil
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if student.ParentID == nil || *student.ParentID != userID {
		return apperrors.ErrPermissionDenied
	}

	return nil
}
