package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/identitykit/identity-service/docs"
	"github.com/identitykit/identity-service/internal/api/handler"
	"github.com/identitykit/identity-service/internal/api/middleware"
	"github.com/identitykit/identity-service/internal/core/ports"
	"github.com/identitykit/identity-service/internal/core/service"
	mongostore "github.com/identitykit/identity-service/internal/infrastructure/db/mongo"
	redisstore "github.com/identitykit/identity-service/internal/infrastructure/db/redis"
	"github.com/identitykit/identity-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is constructed and lifecycle-managed by the caller so its
// workers stop with the process, not with the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	roleRepo := mongostore.NewRoleRepository(db)
	throttle := redisstore.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, throttle, audit, service.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL,
	}, log)
	userService := service.NewUserService(userRepo, audit, log)
	roleService := service.NewRoleService(userRepo, roleRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)

	authMW := middleware.Auth(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	adminMW := middleware.RBAC("SuperUser", "Admin")

	// --- Authentication routes ---
	auth := e.Group("/api/v1/authentication")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	auth.GET("/listall", userHandler.ListAll, authMW, adminMW)
	auth.POST("/roles", roleHandler.Create, authMW, adminMW)
	auth.POST("/roles/:id/addroles", roleHandler.AddRoles, authMW, adminMW)
	auth.POST("/roles/:id/removeroles", roleHandler.RemoveRoles, authMW, adminMW)
	auth.GET("/:id", userHandler.Get, authMW)
	auth.DELETE("/:id", userHandler.Delete, authMW, adminMW)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
