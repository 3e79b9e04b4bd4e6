package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahidahmed02/hungry-den-server/internal/api/handler"
	"github.com/nahidahmed02/hungry-den-server/internal/api/middleware"
	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
	"github.com/nahidahmed02/hungry-den-server/internal/core/service"
	"github.com/nahidahmed02/hungry-den-server/internal/infrastructure/config"
	mongodb "github.com/nahidahmed02/hungry-den-server/internal/infrastructure/db/mongo"
	redisdb "github.com/nahidahmed02/hungry-den-server/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, gateway ports.PaymentGateway, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hungryden"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	foodRepo := mongodb.NewFoodRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	menuCache := redisdb.NewMenuCache(rdb, cfg.Redis.MenuCacheTTL)

	tokenService := service.NewTokenService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	foodService := service.NewFoodService(foodRepo, menuCache, log)
	reviewService := service.NewReviewService(reviewRepo)
	orderService := service.NewOrderService(orderRepo, log)
	paymentService := service.NewPaymentService(gateway, log)

	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	foodHandler := handler.NewFoodHandler(foodService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	orderHandler := handler.NewOrderHandler(orderService)
	profileHandler := handler.NewProfileHandler(profileRepo)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	guard := middleware.Auth(cfg.JWTSecret)

	// Role mutations are guarded for identity only by default; the admin
	// check is opt-in (see config.EnforceAdminRole).
	roleGate := []echo.MiddlewareFunc{guard}
	if cfg.EnforceAdminRole {
		roleGate = append(roleGate, middleware.RequireRole(userRepo, domain.RoleAdmin))
	}

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Auth ---
	e.GET("/jwt", tokenHandler.Issue)

	// --- Users & roles ---
	e.GET("/users", userHandler.List)
	e.PUT("/users/:email", userHandler.Register)
	e.PUT("/users/admin/:email", userHandler.MakeAdmin, roleGate...)
	e.PUT("/users/dman/:email", userHandler.MakeDeliveryMan, roleGate...)
	e.PUT("/admin/:email", userHandler.RevokeAdmin, roleGate...)
	e.PUT("/dman/:email", userHandler.RevokeDeliveryMan, roleGate...)

	// --- Foods ---
	e.GET("/foods", foodHandler.Menu)
	e.POST("/foods", foodHandler.Create, guard)
	e.DELETE("/foods/:id", foodHandler.Delete, guard)

	// --- Reviews ---
	e.GET("/reviews", reviewHandler.List)
	e.GET("/reviews/:email", reviewHandler.ListByEmail, guard)
	e.POST("/reviews", reviewHandler.Create)
	e.DELETE("/reviews/:id", reviewHandler.Delete, guard)

	// --- Orders ---
	e.POST("/orders", orderHandler.Create, guard)
	e.GET("/orders", orderHandler.List, guard)
	e.DELETE("/orders/:id", orderHandler.Delete, guard)

	// --- Profile ---
	e.POST("/profile", profileHandler.Create)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.Create, guard)

	return e
}
