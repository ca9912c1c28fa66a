package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/mkovalev/gain-planner/internal/cache"
	"github.com/mkovalev/gain-planner/internal/config"
	"github.com/mkovalev/gain-planner/internal/database"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
	"github.com/mkovalev/gain-planner/internal/foodref"
	"github.com/mkovalev/gain-planner/internal/logger"
	"github.com/mkovalev/gain-planner/internal/repository"
	"github.com/mkovalev/gain-planner/internal/server"
	"github.com/mkovalev/gain-planner/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("starting gain planner")

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	var snapshotCache cache.SnapshotCache
	if cfg.Redis.Enabled {
		ttl := time.Duration(cfg.Engine.SnapshotTTLHours) * time.Hour
		snapshotCache, err = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Port, ttl)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		logger.Info("using redis snapshot cache", "host", cfg.Redis.Host)
	} else {
		snapshotCache = cache.NewMemoryCache()
		logger.Info("using in-memory snapshot cache")
	}
	defer snapshotCache.Close()

	foods := foodref.Default()
	logger.Info("food reference table loaded", "foods", foods.Len())

	profileRepo := repository.NewProfileRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	logbookRepo := repository.NewLogbookRepository(db)
	adaptationRepo := repository.NewAdaptationRepository(db)

	planService := services.NewPlanService(profileRepo, snapshotRepo, snapshotCache, cfg.Engine.SnapshotTTLHours)
	profileService := services.NewProfileService(profileRepo, planService)
	logbookService := services.NewLogbookService(logbookRepo)
	adaptationService := services.NewAdaptationService(profileRepo, logbookRepo, adaptationRepo, planService)
	logger.Info("services initialized")

	srv := server.New(profileService, planService, logbookService, adaptationService,
		foods, apperrors.NewHandler(logger.GetLogger()))

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("listening", "addr", addr)
	if err := srv.Run(addr); err != nil {
		logger.Fatalf("Server stopped with error: %v", err)
	}
}
