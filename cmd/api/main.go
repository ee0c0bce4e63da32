package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-board-backend/config"
	v1 "job-board-backend/internal/delivery/http/v1"
	"job-board-backend/internal/domain"
	mongorepo "job-board-backend/internal/repository/mongo"
	"job-board-backend/internal/repository/postgres"
	"job-board-backend/internal/repository/sqlite"
	"job-board-backend/internal/usecase"
	"job-board-backend/pkg/database"
	"job-board-backend/pkg/logger"
	"job-board-backend/pkg/opengraph"
)

// @title           Job Board API
// @version         1.0
// @description     Job listings, submissions and Open Graph link previews.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board", "port", cfg.Port, "store", cfg.StoreDriver)

	// 3. Setup Job Store (one shared pool for the process)
	ctx := context.Background()
	store, err := openJobStore(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to open job store", "store", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer store.close()

	// 4. Setup UseCases
	ogClient := opengraph.NewClient(cfg.PreviewTimeout, opengraph.WithUserAgent(cfg.PreviewUserAgent))
	jobUC := usecase.NewJobUsecase(store.repo)
	exportUC := usecase.NewExportUsecase(store.repo)
	previewUC := usecase.NewPreviewUsecase(ogClient)
	healthUC := usecase.NewHealthUsecase(cfg.StoreDriver, store.ping)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:     jobUC,
		ExportUC:  exportUC,
		PreviewUC: previewUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// previews may wait on slow sites
		WriteTimeout: cfg.PreviewTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

type jobStore struct {
	repo  domain.JobRepository
	ping  usecase.StorePinger
	close func()
}

// openJobStore connects the configured backend and prepares its schema.
func openJobStore(ctx context.Context, cfg *config.Config) (*jobStore, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Log.Info("Postgres connection established")
		return &jobStore{repo: postgres.NewJobRepository(pool), ping: pool.Ping, close: pool.Close}, nil

	case config.StoreSQLite:
		db, err := database.NewSQLiteConnection(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Log.Info("SQLite database opened", "path", cfg.SQLitePath)
		return &jobStore{
			repo:  sqlite.NewJobRepository(db),
			ping:  sqlDB.PingContext,
			close: func() { _ = sqlDB.Close() },
		}, nil

	case config.StoreMongo:
		client, err := database.NewMongoConnection(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			_ = database.DisconnectMongo(client)
			return nil, err
		}
		logger.Log.Info("MongoDB connection established", "database", cfg.MongoDatabase)
		return &jobStore{
			repo:  mongorepo.NewJobRepository(db),
			ping:  func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close: func() {
				if err := database.DisconnectMongo(client); err != nil {
					logger.Log.Error("Mongo disconnect failed", "error", err)
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
