package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"newskoop/newsroom/internal/api"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/config"
	"newskoop/newsroom/internal/db"
	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/metrics"
	"newskoop/newsroom/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("newsroom starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Read-side connection (sqlx) for stats and health checks
	if err := db.InitPostgres(cfg.PostgresDSN()); err != nil {
		logging.Error("failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("connected to Postgres (sqlx)")

	// Primary connection (GORM) for repositories and services
	if _, err := db.InitPostgresORM(cfg.PostgresDSN()); err != nil {
		logging.Error("failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("connected to Postgres (GORM)")

	// Redis backs the cache and the refresh-token revocation list. Fall
	// back to the in-process cache when no Redis address is configured.
	var cache common.CacheInterface
	if cfg.RedisAddr != "" {
		redisCache, err := common.NewRedisCacheService(common.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword))
		if err != nil {
			logging.Warn("Redis unavailable, using in-process cache", "error", err.Error())
			cache = common.NewCacheService(600, 1200)
		} else {
			cache = redisCache
			logging.Info("connected to Redis", "addr", cfg.RedisAddr)
		}
	} else {
		cache = common.NewCacheService(600, 1200)
	}
	defer cache.Close()

	deps, err := api.InitDependencies(cfg, cache)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, upSince)

	// Metrics endpoint lives outside the chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/", router)

	addr := ":" + cfg.Port
	logging.Info("server starting", "addr", addr, "environment", cfg.AppEnv)
	log.Fatal(http.ListenAndServe(addr, mux))
}
