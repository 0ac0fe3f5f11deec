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

	appControllers "github.com/upgoma/upg-portal/internal/app/controllers"
	appMigrations "github.com/upgoma/upg-portal/internal/app/migrations"
	appRepos "github.com/upgoma/upg-portal/internal/app/repositories"
	appRoutes "github.com/upgoma/upg-portal/internal/app/routes"
	appServices "github.com/upgoma/upg-portal/internal/app/services"
	"github.com/upgoma/upg-portal/internal/app/workflow"
	"github.com/upgoma/upg-portal/internal/config"
	"github.com/upgoma/upg-portal/internal/db"
	appMiddleware "github.com/upgoma/upg-portal/internal/middleware"
	pkgAuth "github.com/upgoma/upg-portal/internal/pkg/auth"
	"github.com/upgoma/upg-portal/internal/pkg/email"
	"github.com/upgoma/upg-portal/internal/pkg/filestorage"
	"github.com/upgoma/upg-portal/internal/pkg/helpers"
	"github.com/upgoma/upg-portal/internal/pkg/logger"
	"github.com/upgoma/upg-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	NewsService            appServices.NewsService
	AuthService            appServices.AuthService
	RegistrationService    appServices.RegistrationService
	ChatService            *appServices.ChatService
	CatalogController      *appControllers.CatalogController
	NewsController         *appControllers.NewsController
	AuthController         *appControllers.AuthController
	RegistrationController *appControllers.RegistrationController
	ChatController         *appControllers.ChatController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	DraftStore             *workflow.Store
	Logger                 zerolog.Logger
	FileStorage            *filestorage.LocalStorage
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

// SetupDatabase establishes the record store connection and runs
// migrations. The store is a collaborator, not a requirement: when it is
// not configured the portal starts without it, serves the bundled news
// fallback and rejects submissions.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	if !cfg.DatabaseConfigured() {
		lgr.Warn().Msg("Record store not configured, starting in fallback mode")
		return nil, nil
	}

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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if dbPool != nil {
		deps.Repos = appRepos.NewRepositories(dbPool)
	}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.DraftStore = workflow.NewStore()

	mailer := email.NewMailjetService(email.MailjetConfig{
		APIKeyPublic:  cfg.Mail.APIKeyPublic,
		APIKeyPrivate: cfg.Mail.APIKeyPrivate,
		FromEmail:     cfg.Mail.FromEmail,
		FromName:      cfg.Mail.FromName,
	}, lgr)

	var newsStore appServices.NewsStore
	var registrationStore appServices.RegistrationStore
	var adminStore appServices.AdminStore
	if deps.Repos != nil {
		newsStore = deps.Repos.NewsRepository
		registrationStore = deps.Repos.RegistrationRepository
		adminStore = deps.Repos.AdminRepository
	}

	deps.NewsService = appServices.NewNewsService(newsStore, lgr)
	deps.AuthService = appServices.NewAuthService(cfg.Admin.Email, adminStore, deps.JWTService, lgr)
	deps.RegistrationService = appServices.NewRegistrationService(registrationStore, deps.FileStorage, mailer, lgr)

	var completer appServices.Completer
	if cfg.AssistantConfigured() {
		gemini, err := appServices.NewGeminiCompleter(context.Background(), cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			// The assistant degrades to the apology reply instead of
			// blocking startup.
			lgr.Error().Err(err).Msg("Failed to initialize assistant client, replies will degrade")
		} else {
			completer = gemini
		}
	} else {
		lgr.Warn().Msg("Assistant API key not configured, replies will degrade")
	}
	deps.ChatService = appServices.NewChatService(completer, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Admin.Email)

	deps.CatalogController = appControllers.NewCatalogController()
	deps.NewsController = appControllers.NewNewsController(deps.NewsService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.DraftStore, deps.RegistrationService)
	deps.ChatController = appControllers.NewChatController(deps.ChatService)

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

	appRoutes.SetupRouter(router,
		deps.CatalogController,
		deps.NewsController,
		deps.AuthController,
		deps.RegistrationController,
		deps.ChatController,
		deps.AuthMiddleware,
	)

	return router
}
