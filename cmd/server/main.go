package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"localbuzz-feed-service/internal/cache/redis"
	cached_user "localbuzz-feed-service/internal/clients/user/cached"
	user_http "localbuzz-feed-service/internal/clients/user/http"
	"localbuzz-feed-service/internal/config"
	delivery_http "localbuzz-feed-service/internal/delivery/http"
	"localbuzz-feed-service/internal/delivery/http/handlers"
	delivery_metrics "localbuzz-feed-service/internal/delivery/metrics"
	"localbuzz-feed-service/internal/logger"
	prometheus_metrics "localbuzz-feed-service/internal/metrics/prometheus"
	comment_postgres "localbuzz-feed-service/internal/repository/comment/postgres"
	image_postgres "localbuzz-feed-service/internal/repository/image/postgres"
	post_postgres "localbuzz-feed-service/internal/repository/post/postgres"
	"localbuzz-feed-service/internal/repository/postgres"
	report_postgres "localbuzz-feed-service/internal/repository/report/postgres"
	vote_postgres "localbuzz-feed-service/internal/repository/vote/postgres"
	comment_service "localbuzz-feed-service/internal/service/comment"
	feed_service "localbuzz-feed-service/internal/service/feed"
	post_service "localbuzz-feed-service/internal/service/post"
	vote_service "localbuzz-feed-service/internal/service/vote"
	s3_storage "localbuzz-feed-service/internal/storage/s3"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := runMigrations(dsn, cfg.Database.MigrationsPath, log); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	userCache := redis.NewUserCache(redisClient, log)
	adCache := redis.NewAdCache(redisClient, log)

	userClient := cached_user.NewUserClient(
		user_http.NewUserClient(cfg.UserService, log),
		userCache,
		log,
		metrics,
	)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	voteRepo := vote_postgres.NewVoteRepository(pool, log, metrics)
	imageRepo := image_postgres.NewImageRepository(pool, log)
	commentRepo := comment_postgres.NewCommentRepository(pool, log)
	reportRepo := report_postgres.NewReportRepository(pool, log)

	adProvider := feed_service.NewAdProviderCacheDecorator(
		feed_service.NewAdProvider(postRepo, cfg.Feed.AdSlateSize),
		adCache,
		log,
		metrics,
	)

	feedService := feed_service.NewFeedService(postRepo, imageRepo, adProvider, userClient, cfg.Feed, log, metrics)
	postService := post_service.NewPostService(postRepo, voteRepo, imageRepo, reportRepo, unitOfWork, log, metrics)
	voteService := vote_service.NewVoteService(unitOfWork, log, metrics)
	commentService := comment_service.NewCommentService(commentRepo, postRepo, log)

	store, err := s3_storage.NewS3Store(cfg.S3, log)
	if err != nil {
		log.Error("Failed to create S3 store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handler := handlers.New(
		feedService,
		postService,
		voteService,
		commentService,
		store,
		cfg.Feed.RecomputeLookbackDays,
		log,
	)

	httpServer := delivery_http.NewServer(handler, userClient, metrics, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)
	metricsServer := delivery_metrics.NewServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(dsn, migrationsPath string, log *logger.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Error("Failed to close migrator",
				slog.Any("source_error", srcErr),
				slog.Any("database_error", dbErr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("Migrations applied")
	return nil
}
