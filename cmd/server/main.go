package main

import (
	"context"
	"log"
	"time"

	"planforge-backend/auth"
	"planforge-backend/config"
	"planforge-backend/handlers"
	"planforge-backend/repository"
	"planforge-backend/service"
	"planforge-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/api/option"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := initPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize Postgres:", err)
	}
	defer db.Close()

	fileStorage, err := storage.New(storage.Config{
		Type:      storage.StorageType(cfg.StorageType),
		LocalPath: cfg.LocalStoragePath,
		S3Bucket:  cfg.S3Bucket,
		S3Region:  cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	planRepo := repository.NewPlanRepository(db)
	quotaRepo := repository.NewQuotaRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	fileRepo := repository.NewFileRepository(db)

	// Services
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
	notifier := service.NewConsoleNotifier()

	authService := service.NewAuthService(userRepo, profileRepo, roleRepo, tokens)
	planService := service.NewPlanService(service.WithPlanStore(planRepo))
	quotaService := service.NewQuotaService(quotaRepo, planRepo)
	accessService := service.NewAccessService(inviteRepo, roleRepo, subscriptionRepo, profileRepo)
	exportService := service.NewExportService()
	paymentService := service.NewPaymentService(
		subscriptionRepo, profileRepo, roleRepo, inviteRepo,
		cfg.PaystackSecretKey,
		service.PaymentWithBaseURL(cfg.PaystackBaseURL),
	)
	invitationService := service.NewInvitationService(inviteRepo, notifier)
	adminService := service.NewAdminService(userRepo, planRepo, quotaRepo, roleRepo, subscriptionRepo, profileRepo)
	reminderService := service.NewReminderService(userRepo, planRepo, notificationRepo, notifier)

	suggestionOpts := []service.SuggestionServiceOption{}
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := initGemini(cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("Warning: Gemini unavailable, suggestions use templates only: %v", err)
		} else {
			suggestionOpts = append(suggestionOpts, service.SuggestionWithGeminiClient(geminiClient))
		}
	}
	suggestionService := service.NewSuggestionService(suggestionOpts...)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	planHandler := handlers.NewPlanHandler(planService)
	exportHandler := handlers.NewExportHandler(planService, quotaService, exportService)
	accessHandler := handlers.NewAccessHandler(accessService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	adminHandler := handlers.NewAdminHandler(adminService, invitationService, reminderService)
	fileHandler := handlers.NewFileHandler(fileRepo, planService, fileStorage)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("", handlers.AuthRequired(tokens))
		{
			authed.GET("/profile", authHandler.GetProfile)
			authed.PUT("/profile", authHandler.CompleteProfile)
			authed.GET("/access", accessHandler.CheckAccess)
			authed.POST("/payments/verify", paymentHandler.VerifyPayment)

			// The builder surface sits behind the access gate.
			builder := authed.Group("", handlers.AccessRequired(accessService))
			{
				builder.POST("/plans", planHandler.CreatePlan)
				builder.GET("/plans", planHandler.ListPlans)
				builder.GET("/plans/:id", planHandler.GetPlan)
				builder.PUT("/plans/:id", planHandler.UpdatePlan)
				builder.DELETE("/plans/:id", planHandler.DeletePlan)
				builder.GET("/plans/:id/export", exportHandler.ExportPlan)
				builder.GET("/plans/:id/files", fileHandler.ListPlanFiles)
				builder.GET("/downloads/quota", exportHandler.GetQuota)
				builder.POST("/suggestions", suggestionHandler.Suggest)
				builder.POST("/files/upload", fileHandler.UploadFile)
				builder.GET("/files/:id", fileHandler.GetFile)
			}

			admin := authed.Group("/admin", handlers.AdminRequired(roleRepo))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.DELETE("/users/:id", adminHandler.DeleteUser)
				admin.POST("/invites", adminHandler.CreateInvite)
				admin.GET("/invites", adminHandler.ListInvites)
				admin.POST("/reminders", adminHandler.SendReminders)
			}
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initPostgres(connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Postgres connection established")
	return pool, nil
}

func initGemini(apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	log.Println("Gemini client initialized")
	return client, nil
}
