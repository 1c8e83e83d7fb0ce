package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/quickbites/auth-service/docs"
	"github.com/quickbites/auth-service/internal/api/handler"
	"github.com/quickbites/auth-service/internal/api/middleware"
	"github.com/quickbites/auth-service/internal/api/realtime"
	"github.com/quickbites/auth-service/internal/auth"
	"github.com/quickbites/auth-service/internal/core/ports"
	"github.com/quickbites/auth-service/internal/core/service"
	mongodb "github.com/quickbites/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/quickbites/auth-service/internal/infrastructure/db/redis"
	"github.com/quickbites/auth-service/internal/pkg/config"
	"github.com/quickbites/auth-service/internal/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	hasher := security.NewPasswordHasher(security.DefaultCost)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)
	}

	authService := service.NewAuthService(userRepo, hasher, tokens, limiter, log)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes ---
	g := e.Group("/api/auth")
	g.POST("/signup", authHandler.Signup)
	g.POST("/login", authHandler.Login)
	g.GET("/me", handler.Me, middleware.Auth(tokens))

	// --- Realtime channel ---
	hub := realtime.NewHub(log)
	realtimeHandler := handler.NewRealtimeHandler(hub)
	e.GET("/ws", realtimeHandler.Serve)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
