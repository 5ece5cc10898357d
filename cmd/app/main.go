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

	"github.com/bagdasarian/team-attendance/internal/config"
	"github.com/bagdasarian/team-attendance/internal/db"
	"github.com/bagdasarian/team-attendance/internal/handler"
	"github.com/bagdasarian/team-attendance/internal/handler/server"
	"github.com/bagdasarian/team-attendance/internal/logging"
	"github.com/bagdasarian/team-attendance/internal/repository"
	"github.com/bagdasarian/team-attendance/internal/repository/memory"
	"github.com/bagdasarian/team-attendance/internal/repository/postgres"
	"github.com/bagdasarian/team-attendance/internal/service"
	"github.com/bagdasarian/team-attendance/internal/storage/blob"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to open storage", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	objects, err := openBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to open object storage", "error", err)
		os.Exit(1)
	}

	documentService := service.NewDocumentService(store, objects, logger)
	teamService := service.NewTeamService(store, documentService, logger)
	sessionService := service.NewSessionService(store, logger)
	attendanceService := service.NewAttendanceService(store, logger)
	memberService := service.NewMemberService(store, teamService, logger)

	h := handler.NewHandler(teamService, sessionService, attendanceService, memberService, documentService, logger)
	srv := server.NewServer(h, cfg.HTTP, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "server forced to shutdown", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config, logger logging.Logger) (repository.Store, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn(ctx, "using in-memory storage, data is lost on restart")
		return memory.NewStore(), func() {}, nil
	}

	database, err := db.NewPostgres(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info(ctx, "connected to database", "host", cfg.Database.Host, "db", cfg.Database.DBName)

	if err := db.Migrate(ctx, database); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	return postgres.NewStore(database), func() { database.Close() }, nil
}

func openBlobStore(ctx context.Context, cfg *config.Config, logger logging.Logger) (blob.Store, error) {
	if cfg.S3.Endpoint == "" {
		logger.Info(ctx, "S3 endpoint not set, documents are kept in memory")
		return blob.NewMemoryStore(), nil
	}

	logger.Info(ctx, "using S3 object storage", "endpoint", cfg.S3.Endpoint, "bucket", cfg.S3.Bucket)
	store, err := blob.NewS3Store(ctx, cfg.S3)
	if err != nil {
		return nil, err
	}
	return store, nil
}
