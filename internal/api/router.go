package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peakform/fitness-api/internal/api/handler"
	"github.com/peakform/fitness-api/internal/api/middleware"
	"github.com/peakform/fitness-api/internal/core/ports"
	"github.com/peakform/fitness-api/internal/core/service"
)

// Deps carries the constructed services the router wires into routes.
// Mongo and Redis are optional: nil means the in-memory variant is in use
// and the readiness probe reports it as such.
type Deps struct {
	Auth      ports.AuthService
	Fitness   ports.FitnessService
	Reminders ports.ReminderService
	Assistant ports.Assistant
	Sessions  *service.SessionManager

	SessionTTL    time.Duration
	SecureCookies bool

	Mongo *mongo.Database
	Redis *redis.Client

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fitness"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.SessionTTL, deps.SecureCookies)
	fitnessHandler := handler.NewFitnessHandler(deps.Fitness)
	chatHandler := handler.NewChatHandler(deps.Assistant)
	reminderHandler := handler.NewReminderHandler(deps.Reminders)

	// --- Auth routes (no session required) ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/register", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.POST("/logout", authHandler.Logout)
	apiGroup.GET("/user", authHandler.Me)

	// --- Domain routes: session guard applied uniformly ---
	guarded := apiGroup.Group("", middleware.Session(deps.Sessions))
	guarded.POST("/workout-plans", fitnessHandler.CreateWorkoutPlan)
	guarded.GET("/workout-plans", fitnessHandler.ListWorkoutPlans)
	guarded.POST("/diet-logs", fitnessHandler.CreateDietLog)
	guarded.GET("/diet-logs", fitnessHandler.ListDietLogs)
	guarded.POST("/progress-logs", fitnessHandler.CreateProgressLog)
	guarded.GET("/progress-logs", fitnessHandler.ListProgressLogs)
	guarded.POST("/chat", chatHandler.Chat)
	guarded.POST("/reminders", reminderHandler.Schedule)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
