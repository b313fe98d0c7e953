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

	"github.com/talentpulse/eval360-api/internal/config"
	"github.com/talentpulse/eval360-api/internal/database"
	"github.com/talentpulse/eval360-api/internal/handler"
	"github.com/talentpulse/eval360-api/internal/middleware"
	"github.com/talentpulse/eval360-api/internal/models"
	"github.com/talentpulse/eval360-api/internal/repository"
	"github.com/talentpulse/eval360-api/internal/router"
	"github.com/talentpulse/eval360-api/internal/service"
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

	if err := db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Evaluation{},
		&models.Question{},
		&models.AnswerKey{},
		&models.EvaluationAssignment{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	natsConn, err := database.ConnectNats(cfg.NatsURL, cfg.AppName)
	if err != nil {
		log.Fatalf("failed to connect to nats: %v", err)
	}
	if natsConn != nil {
		defer natsConn.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerKeyRepo := repository.NewAnswerKeyRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	events := service.NewEventPublisher(natsConn, cfg.EventSubjectBase, logger)

	authService := service.NewAuthService(userRepo, validate, cfg.JWTSecret, cfg.JWTTTL, logger)
	employeeService := service.NewEmployeeService(employeeRepo, validate, logger)
	evaluationService := service.NewEvaluationService(evaluationRepo, validate, logger)
	questionService := service.NewQuestionService(questionRepo, validate, logger)
	answerKeyService := service.NewAnswerKeyService(answerKeyRepo, questionRepo, validate, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, employeeRepo, evaluationRepo, questionRepo, answerKeyRepo, validate, events, logger)
	reportService := service.NewReportService(assignmentRepo, employeeRepo, questionRepo, redisClient, cfg.ReportCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(authService, logger),
		EmployeeHandler:   handler.NewEmployeeHandler(employeeService, logger),
		EvaluationHandler: handler.NewEvaluationHandler(evaluationService, logger),
		QuestionHandler:   handler.NewQuestionHandler(questionService, logger),
		AnswerKeyHandler:  handler.NewAnswerKeyHandler(answerKeyService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		ReportHandler:     handler.NewReportHandler(reportService, logger),
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
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
