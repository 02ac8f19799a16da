package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movieRecommender/app/echo-server/router"
	"movieRecommender/business/catalog"
	"movieRecommender/business/preference"
	"movieRecommender/business/recommend"
	"movieRecommender/internal/middleware"
	"movieRecommender/internal/repository/csvfile"
	psqlRepo "movieRecommender/internal/repository/postgres"
	redisRepo "movieRecommender/internal/repository/redis"
	"movieRecommender/internal/rest"
	"movieRecommender/pkg/config"
	"movieRecommender/pkg/database"
	redisdb "movieRecommender/pkg/database/redis"
	"movieRecommender/pkg/logger"
	"movieRecommender/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting movie recommender", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init validate
	validate := validator.New()

	// Init repo
	movieRepo := psqlRepo.NewMovieRepository(db)
	var prefRepo preference.Repository = psqlRepo.NewPreferenceRepository(db)

	if cfg.Redis.Enabled {
		client, err := redisdb.NewClient(context.Background(), cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer redisdb.Close(client)

		prefRepo = redisRepo.NewPreferenceCache(client, prefRepo, cfg.Recommender.PreferenceCacheTTL)
		logger.Info("Preference cache enabled", "ttl", cfg.Recommender.PreferenceCacheTTL.String())
	}

	// Load catalog
	var source catalog.MovieSource = movieRepo
	if cfg.Catalog.Source == config.CatalogSourceCSV {
		source = csvfile.NewMovieReader(cfg.Catalog.CSVPath)
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), time.Minute)
	movies, err := catalog.Load(loadCtx, source)
	cancelLoad()
	if err != nil {
		logger.Fatal("Failed to load catalog", "source", cfg.Catalog.Source, "error", err)
	}
	metrics.CatalogSize.Set(float64(movies.Len()))

	// Init service
	recoCfg := recommend.DefaultConfig()
	recoCfg.DefaultTopK = cfg.Recommender.TopK
	recoCfg.DefaultEpsilon = cfg.Recommender.Epsilon
	recoCfg.DefaultCandidateWidth = cfg.Recommender.CandidateWidth
	recoCfg.DefaultExploreExtra = cfg.Recommender.ExploreExtra
	recoCfg.DefaultRuntimeTolerance = cfg.Recommender.RuntimeTolerance

	recommendationService := recommend.NewRecommendationService(movies, prefRepo, recoCfg)
	preferenceService := preference.NewService(prefRepo, validate)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)
	preferenceHandler := rest.NewPreferenceHandler(preferenceService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Setup routes
	router.SetupOpsRoutes(e, movies.Len)
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupPreferenceRoutes(api, preferenceHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
