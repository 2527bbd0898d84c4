package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hrms-dev/hrms_service/internal/api"
	"github.com/hrms-dev/hrms_service/internal/config"
	"github.com/hrms-dev/hrms_service/internal/controllers"
	"github.com/hrms-dev/hrms_service/internal/database"
	"github.com/hrms-dev/hrms_service/internal/seed"
	"github.com/hrms-dev/hrms_service/internal/store"
	logging "github.com/hrms-dev/hrms_service/internal/utils"
)

func main() {
	logger, err := logging.SetupLogger("server.log", slog.LevelInfo)
	if err != nil {
		log.Fatal("Failed to setup logger:", err)
		return
	}
	slog.SetDefault(logger)

	cfg, err := config.GetConfig(logger)
	if err != nil {
		log.Fatal("Failed to load config:", err)
		return
	}

	ctx := context.Background()

	deps := &controllers.Dependens{
		Logger: logger,
		Config: cfg,
	}

	switch cfg.Store.Backend {
	case "redis":
		rdb, redisErr := database.NewRedisConn(cfg, logger)
		if redisErr != nil {
			log.Fatal("Failed to connect to Redis:", redisErr)
			return
		}
		deps.Store = store.NewRedisStore(rdb)
		deps.Redis = rdb
	case "postgres":
		db, dbErr := database.NewConnect(cfg, logger)
		if dbErr != nil {
			log.Fatal("Failed to connect to database:", dbErr)
			return
		}
		if migrateErr := store.Migrate(ctx, db); migrateErr != nil {
			log.Fatal("Failed to migrate database:", migrateErr)
			return
		}
		deps.Store = store.NewPostgresStore(db)
	default:
		deps.Store = store.NewMemoryStore()
	}

	// The memory and postgres backends can still use Redis for the logout
	// denylist when an address is configured.
	if deps.Redis == nil && cfg.Redis.RedisAddr != "" {
		rdb, redisErr := database.NewRedisConn(cfg, logger)
		if redisErr != nil {
			log.Fatal("Failed to connect to Redis:", redisErr)
			return
		}
		deps.Redis = rdb
	}

	if cfg.Seed.Enabled {
		if seedErr := seed.Seed(ctx, deps.Store, logger); seedErr != nil {
			log.Fatal("Failed to seed store:", seedErr)
			return
		}
	}

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	prometheus.MustRegister(httpRequestsTotal)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)

	r.Use(logging.Middleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			httpRequestsTotal.WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(ww.Status())).Inc()
		})
	})
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	server, err := api.NewServer(deps)
	if err != nil {
		log.Fatal("Failed to build server:", err)
		return
	}
	server.RegisterRoutes(r)

	s := &http.Server{
		Handler:           r,
		Addr:              cfg.Server.Host,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	logger.Info("Server is starting", slog.String("address", cfg.Server.Host))
	log.Fatal(s.ListenAndServe())
}
