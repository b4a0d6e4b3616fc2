// @title NoteQuiz API
// @version 1.0
// @description Generates multiple-choice quizzes from uploaded study notes and drives the quiz-taking session.
// @host localhost:3001
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"notequiz/internal/adapter"
	"notequiz/internal/adapter/quizgen"
	"notequiz/internal/cache"
	"notequiz/internal/config"
	"notequiz/internal/database"
	"notequiz/internal/domain"
	"notequiz/internal/handler"
	"notequiz/internal/logger"
	"notequiz/internal/middleware"
	"notequiz/internal/repository"
	"notequiz/internal/service"
	"notequiz/internal/validation"

	_ "notequiz/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// LLM client for question generation
	ollamaHTTPClient := &http.Client{Timeout: 150 * time.Second}
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.LLM.ServerURL),
		ollama.WithModel(cfg.LLM.Model),
		ollama.WithHTTPClient(ollamaHTTPClient),
	)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	questionGenerator := quizgen.NewLLMQuestionGenerator(llm)
	appLogger.Info("Question generator initialized", zap.String("model", cfg.LLM.Model))

	// Database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	noteSetRepository := repository.NewSQLXNoteSetRepository(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)

	// Session store: redis for multi-instance deployments, in-process map
	// otherwise.
	var sessionRepository domain.SessionRepository
	var resultCacheService service.ResultCacheService
	switch cfg.Session.Store {
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")
		sessionRepository = adapter.NewRedisSessionRepository(redisClient, cfg.Session.TTL)
		resultCacheService = service.NewResultCacheService(adapter.NewRedisCacheAdapter(redisClient), cfg.Session.AnonymousResultTTL)
	default:
		sessionRepository = repository.NewMemorySessionRepository()
		resultCacheService = service.NewResultCacheService(nil, cfg.Session.AnonymousResultTTL)
		appLogger.Info("Using in-memory session store")
	}

	validator := validation.NewValidator()

	// Services
	quizService := service.NewQuizService(questionGenerator, noteSetRepository, sessionRepository, validator)
	attemptService := service.NewAttemptService(attemptRepository, noteSetRepository)
	sessionService := service.NewSessionService(sessionRepository, attemptService, resultCacheService, validator)
	authService, err := service.NewAuthService(userRepository, cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	appLogger.Info("Services initialized")

	// Handlers
	quizHandler := handler.NewQuizHandler(quizService)
	sessionHandler := handler.NewSessionHandler(sessionService, resultCacheService)
	attemptHandler := handler.NewAttemptHandler(attemptService)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Session-ID", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Get("/me", middleware.Protected(authService), authHandler.GetMyProfile)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// Quiz generation and session routes: open to anonymous callers keyed by
	// X-Session-ID, attributed to the user when a bearer token is present.
	sessionChain := []fiber.Handler{middleware.OptionalAuth(authService), middleware.SessionOwner()}

	apiGroup.Post("/process-document", append(sessionChain, quizHandler.ProcessDocument)...)

	sessionGroup := apiGroup.Group("/quiz", sessionChain...)
	sessionGroup.Get("/session", sessionHandler.GetSession)
	sessionGroup.Delete("/session", sessionHandler.ExitQuiz)
	sessionGroup.Post("/session/answer", sessionHandler.SelectAnswer)
	sessionGroup.Post("/session/next", sessionHandler.Next)
	sessionGroup.Post("/session/skip", sessionHandler.Skip)
	sessionGroup.Post("/session/previous", sessionHandler.Previous)
	sessionGroup.Post("/session/goto", sessionHandler.GoTo)
	sessionGroup.Post("/session/review", sessionHandler.Review)
	sessionGroup.Post("/session/back", sessionHandler.BackToResults)
	sessionGroup.Post("/session/retake", sessionHandler.Retake)
	sessionGroup.Get("/result", sessionHandler.GetLastResult)

	// Attempt history (signed-in users only)
	apiGroup.Get("/quiz-attempts", middleware.Protected(authService), attemptHandler.GetMyAttempts)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
