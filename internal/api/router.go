package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/artonus/pos-api/docs"
	"github.com/artonus/pos-api/internal/api/handler"
	"github.com/artonus/pos-api/internal/api/middleware"
	"github.com/artonus/pos-api/internal/core/domain"
	"github.com/artonus/pos-api/internal/core/ports"
	"github.com/artonus/pos-api/internal/core/service"
	mongodb "github.com/artonus/pos-api/internal/infrastructure/db/mongo"
	redisdb "github.com/artonus/pos-api/internal/infrastructure/db/redis"
)

const (
	loginRateWindow = time.Minute
	loginRateMax    = 10
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, mail ports.Mailer, log zerolog.Logger, jwtSecret string, tokenTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("pos"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, tokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	bookingRepo := mongodb.NewBookingRepository(db)
	bookingService := service.NewBookingService(bookingRepo, mail, log)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authMiddleware := middleware.Auth(jwtSecret)
	loginLimiter := redisdb.NewFixedWindowLimiter(rdb, "login", loginRateWindow)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the Artonus POS API!")
	})
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login, middleware.RateLimit(loginLimiter, loginRateMax, log))

	// --- Protected routes ---
	e.POST("/create-booking", bookingHandler.Create, authMiddleware)
	e.GET("/bookings", bookingHandler.List, authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
