package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/khanhle/schoolhealth/docs" // Import generated swagger docs
	appAuth "github.com/khanhle/schoolhealth/internal/app/auth"
	appControllers "github.com/khanhle/schoolhealth/internal/app/controllers"
	appMigrations "github.com/khanhle/schoolhealth/internal/app/migrations"
	appRepos "github.com/khanhle/schoolhealth/internal/app/repositories"
	appRoutes "github.com/khanhle/schoolhealth/internal/app/routes"
	appServices "github.com/khanhle/schoolhealth/internal/app/services"
	"github.com/khanhle/schoolhealth/internal/config"
	"github.com/khanhle/schoolhealth/internal/db"
	appMiddleware "github.com/khanhle/schoolhealth/internal/middleware"
	pkgAuth "github.com/khanhle/schoolhealth/internal/pkg/auth"
	"github.com/khanhle/schoolhealth/internal/pkg/helpers"
	"github.com/khanhle/schoolhealth/internal/pkg/logger"
	"github.com/khanhle/schoolhealth/internal/pkg/metrics"
	"github.com/khanhle/schoolhealth/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	EventService        appServices.EventService
	ConfirmationService appServices.ConfirmationService
	StudentService      *appServices.StudentService
	ClassService        *appServices.ClassService
	ConsultationService *appServices.ConsultationService
	MedicationService   *appServices.MedicationService
	FeedbackService     *appServices.FeedbackService
	UserService         *appServices.UserService
	ReportService       *appServices.ReportService

	AuthController         *appControllers.AuthController
	EventController        *appControllers.EventController
	ConfirmationController *appControllers.ConfirmationController
	StudentController      *appControllers.StudentController
	ClassController        *appControllers.ClassController
	ConsultationController *appControllers.ConsultationController
	MedicationController   *appControllers.MedicationController
	FeedbackController     *appControllers.FeedbackController
	UserController         *appControllers.UserController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.StudentRepository)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)
	deps.EventService = appServices.NewEventService(
		deps.Repos.EventRepository,
		deps.Repos.ConfirmationRepository,
		deps.Repos.ClassRepository,
	)
	deps.ConfirmationService = appServices.NewConfirmationService(
		deps.Repos.ConfirmationRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ConsultationRepository,
		deps.AuthzService,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.ClassRepository,
		deps.Repos.UserRepository,
	)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository)
	deps.ConsultationService = appServices.NewConsultationService(
		deps.Repos.ConsultationRepository,
		deps.Repos.StudentRepository,
	)
	deps.MedicationService = appServices.NewMedicationService(
		deps.Repos.MedicationRepository,
		deps.Repos.StudentRepository,
	)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.EventRepository,
		deps.Repos.ConfirmationRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.EventController = appControllers.NewEventController(deps.EventService, deps.ReportService)
	deps.ConfirmationController = appControllers.NewConfirmationController(deps.ConfirmationService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.AuthzService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.ConsultationController = appControllers.NewConsultationController(deps.ConsultationService)
	deps.MedicationController = appControllers.NewMedicationController(deps.MedicationService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventController,
		deps.ConfirmationController,
		deps.StudentController,
		deps.ClassController,
		deps.ConsultationController,
		deps.MedicationController,
		deps.FeedbackController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
