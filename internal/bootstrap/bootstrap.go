package bootstrap

import (
	"context"
	"fmt"
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

	_ "github.com/derya/mentorlink/docs" // Import generated swagger docs
	appControllers "github.com/derya/mentorlink/internal/app/controllers"
	appMigrations "github.com/derya/mentorlink/internal/app/migrations"
	appRepos "github.com/derya/mentorlink/internal/app/repositories"
	appRoutes "github.com/derya/mentorlink/internal/app/routes"
	appServices "github.com/derya/mentorlink/internal/app/services"
	"github.com/derya/mentorlink/internal/config"
	"github.com/derya/mentorlink/internal/db"
	appMiddleware "github.com/derya/mentorlink/internal/middleware"
	"github.com/derya/mentorlink/internal/pkg/logger"
	"github.com/derya/mentorlink/internal/pkg/validation"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService       appServices.UserService
	MentorService     appServices.MentorService
	RequestService    appServices.MentorshipRequestService
	SessionService    appServices.MentoringSessionService
	LanguageService   appServices.LanguageService
	CountryService    appServices.CountryService
	MajorService      appServices.MajorService
	UserController    *appControllers.UserController
	MentorController  *appControllers.MentorController
	RequestController *appControllers.MentorshipRequestController
	SessionController *appControllers.MentoringSessionController
	RefController     *appControllers.ReferenceController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
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

	if cfg.Validation.EmailPattern != "" {
		if err := validation.SetEmailPattern(cfg.Validation.EmailPattern); err != nil {
			logger.Error().Err(err).Msg("Invalid email pattern in configuration")
			return nil, zerolog.Logger{}, err
		}
	}

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
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)
	deps.MentorService = appServices.NewMentorService(
		deps.Repos.MentorRepository,
		deps.Repos.UserRepository,
		cfg.Seed.AdminPassword,
		lgr,
	)
	deps.RequestService = appServices.NewMentorshipRequestService(
		deps.Repos.MentorshipRequestRepository,
		deps.Repos.MentorRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.SessionService = appServices.NewMentoringSessionService(
		deps.Repos.MentoringSessionRepository,
		deps.Repos.MentorRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.LanguageService = appServices.NewLanguageService(deps.Repos.LanguageRepository, lgr)
	deps.CountryService = appServices.NewCountryService(deps.Repos.CountryRepository, lgr)
	deps.MajorService = appServices.NewMajorService(deps.Repos.MajorRepository, lgr)

	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.MentorController = appControllers.NewMentorController(deps.MentorService)
	deps.RequestController = appControllers.NewMentorshipRequestController(deps.RequestService)
	deps.SessionController = appControllers.NewMentoringSessionController(deps.SessionService)
	deps.RefController = appControllers.NewReferenceController(
		deps.LanguageService,
		deps.CountryService,
		deps.MajorService,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterCustomValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.CORS([]string{cfg.CORS.Origin}))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.MentorController,
		deps.RequestController,
		deps.SessionController,
		deps.RefController,
	)

	return router, nil
}
