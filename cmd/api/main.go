package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"openflexSite/internal/api"
	"openflexSite/internal/config"
	"openflexSite/internal/database"
	"openflexSite/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	log.Printf("api bootstrapped with db host=%s port=%d db=%s sslmode=%s upload_backend=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Upload.Backend,
	)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	log.Printf("database connection ready")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	log.Printf("database migrated")

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
	})

	uploader, err := newUploader(cfg)
	if err != nil {
		log.Fatalf("init upload backend: %v", err)
	}

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, db, redisClient, logger, uploader, cfg)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	log.Printf("api listening on %s", address)

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}

func newUploader(cfg *config.Config) (storage.Uploader, error) {
	switch cfg.Upload.Backend {
	case "minio":
		return storage.NewMinIOUploader(cfg.MinIO)
	case "local":
		return storage.NewLocalUploader(cfg.Upload.LocalDir, cfg.Upload.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Upload.Backend)
	}
}
