package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/corpops/travel-desk/docs"
	"github.com/corpops/travel-desk/internal/api/handler"
	"github.com/corpops/travel-desk/internal/api/middleware"
	"github.com/corpops/travel-desk/internal/core/service"
	"github.com/corpops/travel-desk/internal/infrastructure/config"
	mongodb "github.com/corpops/travel-desk/internal/infrastructure/db/mongo"
	redisdb "github.com/corpops/travel-desk/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	credentialRepo := mongodb.NewCredentialRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	authService := service.NewAuthService(credentialRepo, log)
	requestService := service.NewRequestService(requestRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions)
	requestHandler := handler.NewRequestHandler(requestService)

	// Resolve the session cookie into an actor for every route; the guards
	// below decide who gets through.
	e.Use(middleware.LoadActor(sessions, credentialRepo))

	// --- Public routes ---
	e.GET("/", authHandler.Home)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Authenticated routes ---
	authed := e.Group("", middleware.RequireAuthenticated())
	authed.GET("/dashboard", authHandler.Dashboard)
	authed.GET("/requests/new", requestHandler.NewRequestForm)
	authed.POST("/requests/new", requestHandler.Create)
	authed.GET("/requests/my", requestHandler.ListMine)
	authed.GET("/requests/:id", requestHandler.Detail)
	authed.POST("/requests/:id", requestHandler.Decide)

	// --- Manager routes ---
	managed := e.Group("/requests/manage", middleware.RequireAuthenticated(), middleware.RequireManager())
	managed.GET("", requestHandler.ListAll)

	// --- Health probes, metrics, API docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
