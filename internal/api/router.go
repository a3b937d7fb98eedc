package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/huaxing/corpsite-api/internal/api/handler"
	"github.com/huaxing/corpsite-api/internal/api/middleware"
	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/service"
	"github.com/huaxing/corpsite-api/internal/infrastructure/config"
	mongodb "github.com/huaxing/corpsite-api/internal/infrastructure/db/mongo"
	redisdb "github.com/huaxing/corpsite-api/internal/infrastructure/db/redis"
)

// loginRatePerSecond bounds credential-guessing on the login endpoint.
const loginRatePerSecond = 5

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
	e.Use(echoprometheus.NewMiddleware("corpsite"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	pageRepo := mongodb.NewPageRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.TokenTTL, log)
	pageService := service.NewPageService(pageRepo, log)
	productService := service.NewProductService(productRepo, log)
	messageService := service.NewMessageService(messageRepo, log)
	userService := service.NewUserService(userRepo, log)
	settingsService := service.NewSettingsService(settingsRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	pageHandler := handler.NewPageHandler(pageService)
	productHandler := handler.NewProductHandler(productService)
	messageHandler := handler.NewMessageHandler(messageService)
	userHandler := handler.NewUserHandler(userService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	authRequired := middleware.Auth(cfg.JWTSecret, denylist)
	editors := middleware.RBAC(domain.RoleAdmin, domain.RoleEditor)
	adminsOnly := middleware.RBAC(domain.RoleAdmin)

	loginLimiter := echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(loginRatePerSecond)),
	)

	// --- Public routes ---
	pub := e.Group("/api")
	pub.POST("/auth/login", authHandler.Login, loginLimiter)
	pub.GET("/pages/:key", pageHandler.GetPublic)
	pub.GET("/products", productHandler.ListPublic)
	pub.GET("/products/:id", productHandler.GetPublic)
	pub.POST("/messages", messageHandler.Submit)
	pub.GET("/settings", settingsHandler.GetPublic)

	// --- Authenticated routes ---
	auth := e.Group("/api/auth", authRequired)
	auth.POST("/logout", authHandler.Logout)

	admin := e.Group("/api/admin", authRequired, editors)
	admin.GET("/pages", pageHandler.List)
	admin.GET("/pages/:key", pageHandler.Get)
	admin.PUT("/pages/:key", pageHandler.Update)
	admin.GET("/products", productHandler.ListAdmin)
	admin.GET("/products/:id", productHandler.GetAdmin)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.GET("/messages", messageHandler.List)
	admin.PUT("/messages/:id/read", messageHandler.MarkRead)
	admin.PUT("/messages/:id/reply", messageHandler.Reply)
	admin.DELETE("/messages/:id", messageHandler.Delete)

	// Account and settings management is admin-only, except password change
	// which the handler scopes per-role.
	admin.GET("/users", userHandler.List, adminsOnly)
	admin.POST("/users", userHandler.Create, adminsOnly)
	admin.DELETE("/users/:id", userHandler.Delete, adminsOnly)
	admin.PUT("/users/:id/password", userHandler.ChangePassword)
	admin.GET("/settings", settingsHandler.Get, adminsOnly)
	admin.PUT("/settings", settingsHandler.Update, adminsOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
