package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/khanhle/schoolhealth/internal/app/models"
	appRepos "github.com/khanhle/schoolhealth/internal/app/repositories"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

// CreateDefaultData creates the default admin account and a starter set of
// classes if they don't exist. Errors are collected rather than aborting
// startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	classRepo := appRepos.NewClassRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	exists, err := userRepo.EmailExists(ctx, "admin@school.edu.vn")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:        "admin@school.edu.vn",
				PasswordHash: string(hashedPassword),
				FullName:     "System Administrator",
				RoleType:     appModels.RoleAdmin,
				IsActive:     true,
			}
			if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating default admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Msg("Default admin user ready (admin@school.edu.vn)")
			}
		}
	}

	// --- Starter classes --- //
	starterClasses := []appModels.Class{
		{Name: "6A1", GradeLevel: 6},
		{Name: "6A2", GradeLevel: 6},
		{Name: "7A1", GradeLevel: 7},
	}
	for i := range starterClasses {
		err := classRepo.Create(ctx, &starterClasses[i])
		if err != nil && !errors.Is(err, apperrors.ErrClassAlreadyExists) {
			lgr.Error().Err(err).Str("class", starterClasses[i].Name).Msg("Error creating starter class")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
