package services

import (
	"context"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
)

// UserService handles account listing for admin views, such as picking a
// parent account when enrolling a student
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// List returns accounts narrowed by role and free-text search. The "all"
// role returns every account.
func (s *UserService) List(ctx context.Context, search, role string) ([]*models.User, error) {
	var users []*models.User
	var err error

	if role == "" || role == FilterAll {
		users, err = s.userRepo.GetAll(ctx)
	} else {
		users, err = s.userRepo.GetByRole(ctx, models.RoleType(role))
	}
	if err != nil {
		return nil, err
	}

	return FilterUsers(users, search, FilterAll), nil
}

// GetByID retrieves one account
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
