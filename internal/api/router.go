package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/releason/blog-api/internal/api/handler"
	"github.com/releason/blog-api/internal/api/middleware"
	"github.com/releason/blog-api/internal/core/domain"
	"github.com/releason/blog-api/internal/core/service"
	"github.com/releason/blog-api/internal/infrastructure/config"
	mongodb "github.com/releason/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/releason/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, seeder handler.DataResetter, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	idem := redisdb.NewIdempotencyStore(rdb)

	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	userService := service.NewUserService(userRepo, idem, log)
	postService := service.NewPostService(postRepo, userRepo, idem, log)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, idem, log)
	authService := service.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret, 24*time.Hour)

	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(seeder)

	// --- User routes ---
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.POST("/users", userHandler.Create)
	e.PUT("/users/:id", userHandler.Update)
	e.DELETE("/users/:id", userHandler.Delete)

	// --- Post routes ---
	e.GET("/posts", postHandler.List)
	e.GET("/posts/:id", postHandler.Get)
	e.POST("/posts", postHandler.Create)
	e.PUT("/posts/:id", postHandler.Update)
	e.DELETE("/posts/:id", postHandler.Delete)

	// --- Comment routes (no update: comments are immutable) ---
	e.GET("/comments", commentHandler.List)
	e.GET("/comments/:id", commentHandler.Get)
	e.POST("/comments", commentHandler.Create)
	e.DELETE("/comments/:id", commentHandler.Delete)

	// --- Auth + admin maintenance ---
	e.POST("/auth/login", authHandler.Login)
	admin := e.Group("/admin", middleware.Auth(cfg.JWTSecret), middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/seed/reset", adminHandler.ResetSeed)

	// --- Health probes + metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(cfg.ServiceName)
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
