package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/courierly/courier-api/internal/api/handler"
	"github.com/courierly/courier-api/internal/api/middleware"
	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/service"
	mongorepo "github.com/courierly/courier-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/courierly/courier-api/internal/infrastructure/db/redis"
	"github.com/courierly/courier-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("courier"))

	// --- Repositories ---
	tariffRepo := mongorepo.NewTariffRepository(db)
	shipmentRepo := mongorepo.NewShipmentRepository(db)
	eventRepo := mongorepo.NewEventRepository(db)
	catalogRepo := mongorepo.NewCatalogRepository(db)
	quoteRepo := mongorepo.NewQuoteRepository(db)
	authRepo := mongorepo.NewAuthRepository(db)
	quoteGuard := redisrepo.NewSubmissionGuard(rdb)

	// --- Services ---
	rateService := service.NewRateService(tariffRepo, log)
	tariffService := service.NewTariffService(tariffRepo, log)
	trackingService := service.NewTrackingService(shipmentRepo, eventRepo, log)
	shipmentService := service.NewShipmentService(shipmentRepo, eventRepo, log)
	catalogService := service.NewCatalogService(catalogRepo, log)
	quoteService := service.NewQuoteService(quoteRepo, quoteGuard, log)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)
	statsService := service.NewStatsService(shipmentRepo, quoteRepo, authRepo, catalogRepo, log)

	// --- Handlers ---
	rateHandler := handler.NewRateHandler(rateService)
	tariffHandler := handler.NewTariffHandler(tariffService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	authHandler := handler.NewAuthHandler(authService)
	statsHandler := handler.NewStatsHandler(statsService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	authRequired := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public API ---
	v1 := e.Group("/v1")
	v1.POST("/rates/calculate", rateHandler.Calculate)
	v1.GET("/tracking/:tracking_number", trackingHandler.Track)
	v1.GET("/services", catalogHandler.ListPublic)
	v1.POST("/quotes", quoteHandler.Submit)

	// --- Authenticated customer routes ---
	v1.GET("/shipments/my", shipmentHandler.ListMine, authRequired)

	// --- Admin routes ---
	admin := v1.Group("/admin", authRequired, adminOnly)

	admin.POST("/shipments", shipmentHandler.Create)
	admin.GET("/shipments", shipmentHandler.List)
	admin.GET("/shipments/:id", shipmentHandler.Get)
	admin.POST("/shipments/:id/track", trackingHandler.RecordEvent)

	admin.GET("/rates", tariffHandler.List)
	admin.POST("/rates", tariffHandler.Create)
	admin.PUT("/rates/:id", tariffHandler.Update)
	admin.DELETE("/rates/:id", tariffHandler.Delete)

	admin.GET("/services", catalogHandler.List)
	admin.POST("/services", catalogHandler.Create)
	admin.PUT("/services/:id", catalogHandler.Update)
	admin.DELETE("/services/:id", catalogHandler.Delete)

	admin.GET("/quotes", quoteHandler.List)
	admin.GET("/quotes/:id", quoteHandler.Get)
	admin.PUT("/quotes/:id/process", quoteHandler.Process)

	admin.GET("/users", authHandler.ListCustomers)
	admin.GET("/stats", statsHandler.Dashboard)

	return e
}
