package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"talentiq_backend/database"
	"talentiq_backend/internal/cache"
	"talentiq_backend/internal/config"
	"talentiq_backend/internal/email"
	"talentiq_backend/internal/handlers"
	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/middleware"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/routes"
	"talentiq_backend/internal/services"
	"talentiq_backend/internal/validator"
	"talentiq_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB, sqlDB)

	// Workers stop when the shutdown signal cancels this context.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, cfg, gormDB, serviceContainer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter assembles the full engine: cache, services, handlers and
// routes. Integration tests call it directly against a test database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) (*gin.Engine, *services.ServiceContainer) {
	cacheStore := initializeCache(cfg)

	serviceContainer := initializeServices(cfg, gormDB, sqlDB, cacheStore)

	if err := serviceContainer.InterviewService.SeedQuestions(); err != nil {
		logger.Fatal("Failed to seed interview questions", "error", err)
	}

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, serviceContainer
}

func initializeCache(cfg *config.Config) cache.Cache {
	if !cfg.Redis.Enabled {
		logger.Info("Redis disabled, using in-memory cache")
		return cache.NewMemoryCache()
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory cache", "error", err)
		return cache.NewMemoryCache()
	}
	logger.Info("Redis connected", "addr", cfg.Redis.Addr)
	return cache.NewRedisCache(client)
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB, cacheStore cache.Cache) *services.ServiceContainer {
	emailProvider := email.NewFromConfig(cfg)
	if !cfg.Email.Enabled {
		logger.Warn("Email sending disabled, outgoing mail is dropped")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	questionRepo := repositories.NewQuestionRepository(gormDB)
	sessionRepo := repositories.NewSessionRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	analyticsRepo := repositories.NewAnalyticsRepository(sqlDB)

	authService := services.NewAuthService(userRepo, profileRepo, emailProvider)
	profileService := services.NewProfileService(profileRepo, userRepo)
	jobService := services.NewJobService(jobRepo, userRepo, applicationRepo, notificationRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, userRepo, profileRepo, notificationRepo, emailProvider)
	interviewService := services.NewInterviewService(questionRepo, sessionRepo, jobRepo, userRepo, notificationRepo, cacheStore)
	matchingService := services.NewMatchingService(jobRepo, profileRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	analyticsService := services.NewAnalyticsService(analyticsRepo, cacheStore)
	adminService := services.NewAdminService(userRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		ProfileService:      profileService,
		JobService:          jobService,
		ApplicationService:  applicationService,
		InterviewService:    interviewService,
		MatchingService:     matchingService,
		NotificationService: notificationService,
		AnalyticsService:    analyticsService,
		AdminService:        adminService,
		EmailProvider:       emailProvider,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, services.ProfileService),
		JobHandler:          handlers.NewJobHandler(baseHandler, services.JobService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		InterviewHandler:    handlers.NewInterviewHandler(baseHandler, services.InterviewService),
		MatchingHandler:     handlers.NewMatchingHandler(baseHandler, services.MatchingService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(baseHandler, services.AnalyticsService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, services.AdminService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, serviceContainer *services.ServiceContainer) {
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	jobWorker := workers.NewJobWorker(
		serviceContainer.JobService,
		time.Duration(cfg.Workers.JobCloseIntervalMin)*time.Minute,
	)
	sessionWorker := workers.NewSessionWorker(
		serviceContainer.InterviewService,
		time.Duration(cfg.Workers.SessionExpiryIntervalMin)*time.Minute,
		time.Duration(cfg.Workers.SessionMaxAgeHours)*time.Hour,
	)
	notificationWorker := workers.NewNotificationWorker(
		notificationRepo,
		time.Duration(cfg.Workers.CleanupIntervalHours)*time.Hour,
		time.Duration(cfg.Workers.NotificationRetentionDays)*24*time.Hour,
	)

	jobWorker.Start(ctx)
	sessionWorker.Start(ctx)
	notificationWorker.Start(ctx)
	logger.Info("Background workers started")
}

// seedFirstAdmin creates the bootstrap admin account from FIRST_ADMIN_EMAIL
// and FIRST_ADMIN_PASSWORD. Without one there is no way to moderate users
// or manage the question bank.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set in .env. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
