// Package bootstrap loads configuration and assembles application dependencies
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
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/IndiraMehta/EduTask/internal/app/controllers"
	appMigrations "github.com/IndiraMehta/EduTask/internal/app/migrations"
	appRepos "github.com/IndiraMehta/EduTask/internal/app/repositories"
	appRoutes "github.com/IndiraMehta/EduTask/internal/app/routes"
	appServices "github.com/IndiraMehta/EduTask/internal/app/services"
	"github.com/IndiraMehta/EduTask/internal/config"
	"github.com/IndiraMehta/EduTask/internal/db"
	"github.com/IndiraMehta/EduTask/internal/pkg/auth"
	"github.com/IndiraMehta/EduTask/internal/pkg/filestorage"
	"github.com/IndiraMehta/EduTask/internal/pkg/helpers"
	"github.com/IndiraMehta/EduTask/internal/pkg/logger"
	"github.com/IndiraMehta/EduTask/internal/pkg/observability"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	JWTService           *auth.JWTService
	FileStorage          *filestorage.LocalStorage
	AuthService          *appServices.AuthService
	UserService          *appServices.UserService
	AssignmentService    *appServices.AssignmentService
	TestService          *appServices.TestService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	AssignmentController *appControllers.AssignmentController
	TestController       *appControllers.TestController
	Logger               zerolog.Logger
	SentryFlush          func()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is honored when present.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

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
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	flush, err := observability.InitSentry(cfg.Sentry.DSN, cfg.Sentry.Environment)
	if err != nil {
		lgr.Warn().Err(err).Msg("Failed to initialize error reporting, proceeding without it")
		flush = func() {}
	}
	deps.SentryFlush = flush

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 30*24*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage

	deps.AuthService = appServices.NewAuthService(deps.Repos.IdentityRepository, deps.JWTService)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.AssignmentService = appServices.NewAssignmentService(
		deps.Repos.AssignmentRepository, deps.Repos.SubmissionRepository, storage,
	)
	deps.TestService = appServices.NewTestService(
		deps.Repos.TestRepository, deps.Repos.GradeRepository, deps.Repos.UserRepository,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService, lgr)
	deps.TestController = appControllers.NewTestController(deps.TestService, lgr)

	return deps, nil
}

// SetupRouter creates the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.AssignmentController,
		deps.TestController,
		deps.JWTService,
		deps.UserService,
		dbPool,
	)

	lgr.Info().Msg("Router configured")
	return router
}
