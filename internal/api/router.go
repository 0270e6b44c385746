package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fintechpulse/pulse-cms/docs"
	"github.com/fintechpulse/pulse-cms/internal/api/handler"
	"github.com/fintechpulse/pulse-cms/internal/api/middleware"
	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/core/service"
	mongodb "github.com/fintechpulse/pulse-cms/internal/infrastructure/db/mongo"
	redisdb "github.com/fintechpulse/pulse-cms/internal/infrastructure/db/redis"
	"github.com/fintechpulse/pulse-cms/internal/pkg/config"
	"github.com/fintechpulse/pulse-cms/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The view enqueuer is constructed by the caller because the dispatcher's
// worker lifecycle belongs to main, not the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, views handler.ViewEnqueuer, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("pulse"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)

	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, token.DefaultTTL)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	articleService := service.NewArticleService(articleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	articleHandler := handler.NewArticleHandler(articleService, views)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	editorPortal := middleware.RequirePortal(domain.PortalEditor)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- API routes ---
	root := e.Group("/api")

	users := root.Group("/users")
	users.POST("/login", authHandler.Login)
	users.GET("", userHandler.List, authMW, adminOnly)
	users.POST("", userHandler.Create, authMW, adminOnly)
	users.DELETE("/:id", userHandler.Delete, authMW, adminOnly)

	categories := root.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create, authMW, adminOnly)
	categories.PATCH("/:id", categoryHandler.Update, authMW, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authMW, adminOnly)

	articles := root.Group("/articles")
	articles.GET("", articleHandler.List)
	articles.GET("/:slug", articleHandler.Get)
	articles.POST("", articleHandler.Create, authMW, editorPortal)
	articles.PUT("/:id", articleHandler.Update, authMW, editorPortal)
	articles.DELETE("/:id", articleHandler.Delete, authMW, adminOnly)

	return e
}
