package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-dev/coursehub-api/internal/config"
	"github.com/campus-dev/coursehub-api/internal/database"
	"github.com/campus-dev/coursehub-api/internal/handler"
	"github.com/campus-dev/coursehub-api/internal/middleware"
	"github.com/campus-dev/coursehub-api/internal/models"
	"github.com/campus-dev/coursehub-api/internal/repository"
	"github.com/campus-dev/coursehub-api/internal/router"
	"github.com/campus-dev/coursehub-api/internal/service"
	"github.com/campus-dev/coursehub-api/pkg/blobstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Course{}, &models.User{}, &models.Enrollment{}, &models.Assignment{}, &models.Submission{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	blobs, err := blobstore.New(blobstore.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryUploadFolder,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create blob store: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	courseRepo := repository.NewCourseRepository(db)
	userRepo := repository.NewUserRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	listCache := service.NewCourseListCache(redisClient, cfg.CourseCacheTTL, logger)

	courseService := service.NewCourseService(courseRepo, enrollmentRepo, listCache, validate, logger)
	userService := service.NewUserService(userRepo, enrollmentRepo, validate, logger)
	membershipService := service.NewMembershipService(courseRepo, userRepo, enrollmentRepo, validate, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, courseRepo, listCache, validate, logger)
	submissionService := service.NewSubmissionService(submissionRepo, assignmentRepo, userRepo, enrollmentRepo, blobs, validate, logger)

	courseHandler := handler.NewCourseHandler(courseService, membershipService, assignmentService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService, submissionService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		CourseHandler:     courseHandler,
		UserHandler:       userHandler,
		AssignmentHandler: assignmentHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
