package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rvcoutinho/santinho/internal/auth"
	"github.com/rvcoutinho/santinho/internal/config"
	"github.com/rvcoutinho/santinho/internal/service"
	"github.com/rvcoutinho/santinho/internal/storage/sqldb"
	"github.com/rvcoutinho/santinho/internal/upload"
	"github.com/rvcoutinho/santinho/internal/web"
	"github.com/rvcoutinho/santinho/pkg/logging"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	// Initialize storage
	store, err := sqldb.New(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.DatabaseDriver, "database", cfg.DatabaseURL)

	// Initialize photo storage
	photos, err := upload.NewPhotoStore(cfg.UploadDir)
	if err != nil {
		slog.Error("Failed to initialize photo store", "error", err)
		os.Exit(1)
	}
	slog.Info("Photo store initialized", "dir", photos.Dir())

	render, err := web.NewRenderer()
	if err != nil {
		slog.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
	users := auth.NewPasswordAuthenticator(store)
	postSvc := service.NewPostService(store, photos)
	feedSvc := service.NewFeedService(store)

	handler := web.NewRouter(users, sessions, postSvc, feedSvc, render, cfg.UploadDir)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		slog.Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	slog.Info("Listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
