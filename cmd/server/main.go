package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/config"
	"github.com/teamtrack/backend/internal/handler"
	"github.com/teamtrack/backend/internal/model"
	"github.com/teamtrack/backend/internal/router"
	"github.com/teamtrack/backend/internal/service"
	"github.com/teamtrack/backend/internal/storage"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Database
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Task{},
		&model.Notification{},
		&model.MemberUpload{},
		&model.ChatMessage{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	// Upload storage
	store, err := storage.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("init upload storage: %v", err)
	}

	// Services
	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	projectService := service.NewProjectService(db)
	taskService := service.NewTaskService(db)
	notificationService := service.NewNotificationService(db)
	dashboardService := service.NewDashboardService(db)
	chatService := service.NewChatService(db)
	uploadService := service.NewUploadService(db, store)

	// Handlers
	baseURL := cfg.Server.BaseURL
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService, dashboardService)
	projectHandler := handler.NewProjectHandler(projectService, store, baseURL)
	taskHandler := handler.NewTaskHandler(taskService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, baseURL)
	chatHandler := handler.NewChatHandler(chatService)
	uploadHandler := handler.NewUploadHandler(uploadService, projectService, baseURL)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Setup routes
	router.Setup(r, router.Deps{
		DB:                  db,
		JWTSecret:           cfg.JWT.Secret,
		UploadDir:           store.Dir(),
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		ProjectHandler:      projectHandler,
		TaskHandler:         taskHandler,
		NotificationHandler: notificationHandler,
		DashboardHandler:    dashboardHandler,
		ChatHandler:         chatHandler,
		UploadHandler:       uploadHandler,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
