package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anik404/memory-lane/backend/internal/handlers"
	"github.com/anik404/memory-lane/backend/internal/middleware"
	"github.com/anik404/memory-lane/backend/internal/repositories"
	"github.com/anik404/memory-lane/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database, cfg *config.Config) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)

	// Auth gate for mutating routes only
	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret)

	// --- Auth routes ---
	authGroup := e.Group("/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Post routes ---
	postHandler := handlers.NewPostHandler(postRepo, userRepo, commentRepo)
	postHandler.RegisterPostRoutes(e, auth)
	log.Println("Post routes configured.")

	// --- Comment routes ---
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo)
	commentHandler.RegisterCommentRoutes(e, auth)
	log.Println("Comment routes configured.")

	// --- Profile routes ---
	profileHandler := handlers.NewProfileHandler(userRepo, postRepo, commentRepo)
	profileHandler.RegisterProfileRoutes(e)
	log.Println("Profile routes configured.")

	log.Println("All routes configured.")
}
