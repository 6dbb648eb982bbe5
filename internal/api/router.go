package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vidly/rental-system/internal/api/handler"
	"github.com/vidly/rental-system/internal/api/middleware"
	"github.com/vidly/rental-system/internal/core/service"
	mongodb "github.com/vidly/rental-system/internal/infrastructure/db/mongo"
	redisdb "github.com/vidly/rental-system/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the router needs beyond its dependencies.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	CacheTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rental"))

	// --- Dependencies ---
	genreRepo := mongodb.NewGenreRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	rentalRepo := mongodb.NewRentalRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	tx := mongodb.NewTxRunner(client)
	cache := redisdb.NewListCache(rdb, cfg.CacheTTL)

	genreService := service.NewGenreService(genreRepo, cache, log)
	customerService := service.NewCustomerService(customerRepo, log)
	movieService := service.NewMovieService(movieRepo, genreRepo, cache, log)
	rentalService := service.NewRentalService(rentalRepo, movieRepo, customerRepo, tx, cache, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	genreHandler := handler.NewGenreHandler(genreService)
	customerHandler := handler.NewCustomerHandler(customerService)
	movieHandler := handler.NewMovieHandler(movieService)
	rentalHandler := handler.NewRentalHandler(rentalService)
	returnHandler := handler.NewReturnHandler(rentalService)
	userHandler := handler.NewUserHandler(authService)
	authHandler := handler.NewAuthHandler(authService)

	auth := middleware.Auth(cfg.JWTSecret)
	admin := middleware.RequireAdmin()

	// --- Catalog routes ---
	genres := e.Group("/api/genres")
	genres.GET("", genreHandler.List)
	genres.GET("/:id", genreHandler.Get)
	genres.POST("", genreHandler.Create, auth)
	genres.PUT("/:id", genreHandler.Update, auth)
	genres.DELETE("/:id", genreHandler.Delete, auth, admin)

	customers := e.Group("/api/customers")
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.POST("", customerHandler.Create, auth)
	customers.PUT("/:id", customerHandler.Update, auth)
	customers.DELETE("/:id", customerHandler.Delete, auth, admin)

	movies := e.Group("/api/movies")
	movies.GET("", movieHandler.List)
	movies.GET("/:id", movieHandler.Get)
	movies.POST("", movieHandler.Create, auth)
	movies.PUT("/:id", movieHandler.Update, auth)
	movies.DELETE("/:id", movieHandler.Delete, auth, admin)

	// --- Rental lifecycle ---
	rentals := e.Group("/api/rentals")
	rentals.GET("", rentalHandler.List)
	rentals.POST("", rentalHandler.Create, auth)

	e.POST("/api/returns", returnHandler.Process, auth)

	// --- Users and auth ---
	users := e.Group("/api/users")
	users.POST("", userHandler.Register)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me, auth)
	users.PUT("/:id", userHandler.Update, auth)
	users.DELETE("/:id", userHandler.Delete, auth, admin)

	e.POST("/api/auth", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
