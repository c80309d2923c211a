package main

import (
	"log"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"
	"github.com/studyforge/scoring-service/internal/attempts"
	"github.com/studyforge/scoring-service/internal/cache"
	"github.com/studyforge/scoring-service/internal/config"
	"github.com/studyforge/scoring-service/internal/handlers"
	"github.com/studyforge/scoring-service/internal/leaderboard"
	"github.com/studyforge/scoring-service/internal/repositories/postgres"
	"github.com/studyforge/scoring-service/internal/services"
	"github.com/studyforge/scoring-service/internal/utils"
	"github.com/studyforge/scoring-service/internal/validator"
	"github.com/studyforge/scoring-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		log.Fatal(err)
	}

	var lbCache cache.LeaderboardCache = cache.NoopLeaderboardCache{}
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("redis unavailable, leaderboard snapshot disabled", "error", err)
		} else {
			defer redisClient.Close()
			lbCache = cache.NewRedisLeaderboardCache(redisClient)
		}
	}

	publisher, err := cfg.Events.CreateEventPublisher(utils.ToSlogLogger(logger))
	if err != nil {
		logger.Error("failed to create event publisher", "error", err)
		log.Fatal(err)
	}
	defer publisher.Close()

	var identity *casdoorsdk.Client
	if cfg.Casdoor.Enabled() {
		identity = casdoorsdk.NewClient(
			cfg.Casdoor.Endpoint,
			cfg.Casdoor.ClientID,
			cfg.Casdoor.ClientSecret,
			cfg.Casdoor.Certificate,
			cfg.Casdoor.Organization,
			cfg.Casdoor.Application,
		)
	}

	v := validator.New()
	repo := postgres.NewAttemptPostgreSQL(db)
	recorder := attempts.NewRecorder(repo, logger)

	var board *leaderboard.Board
	if cfg.LeaderboardCapacity > 0 {
		board = leaderboard.NewWithCapacity(cfg.LeaderboardCapacity)
	} else {
		board = leaderboard.New()
	}

	testService := services.NewTestService(
		services.NewSessionStore(),
		v,
		board,
		recorder,
		repo,
		lbCache,
		publisher,
		logger,
	)
	exportService := services.NewExportService(repo, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	hm := handlers.NewHandlerManager(testService, exportService, v, identity, logger)
	hm.SetupRoutes(router)

	logger.Info("starting scoring service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server exited", "error", err)
		log.Fatal(err)
	}
}
