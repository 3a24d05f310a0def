package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"board/api/router"
	"board/config"
	"board/db"
	"board/internal/logger"
	"board/repositories"
)

// @title           Board API
// @version         1.0
// @description     Board (forum post) CRUD API
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg.Storage)
	if err != nil {
		logger.Log.Errorf("failed to initialize %s storage: %v", cfg.Storage.Driver, err)
		os.Exit(1)
	}
	defer closeStore()

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Location", "X-Request-Id"},
	}).Handler(router.New(cfg, repos))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		logger.Log.Infof("board api listening on %s (storage=%s)", cfg.Server.Addr, cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("http server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("graceful shutdown: %v", err)
	}
	logger.Log.Info("board api stopped")
}

// openStore connects the configured backing store and returns its repositories.
func openStore(ctx context.Context, cfg config.StorageConfig) (repositories.Set, func(), error) {
	switch cfg.Driver {
	case config.DriverMongo:
		if err := db.InitMongo(ctx, cfg); err != nil {
			return repositories.Set{}, nil, err
		}
		return repositories.NewMongoSet(db.Database()), func() {
			_ = db.Client().Disconnect(context.Background())
		}, nil
	default:
		gdb, err := db.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return repositories.Set{}, nil, err
		}
		return repositories.NewGormSet(gdb), func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	}
}
