package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pgmanager/server/config"
	"pgmanager/server/internal/api"
	"pgmanager/server/internal/fixtures"
	"pgmanager/server/internal/queue"
	"pgmanager/server/internal/shell"
	"pgmanager/server/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap := (&config.Config{LogLevel: "info"}).NewLogger()
		bootstrap.WithError(err).Fatal("Failed to load configuration")
	}
	logger := cfg.NewLogger()

	// Report inconsistencies in the sample data without changing it
	for _, problem := range fixtures.Check(fixtures.Default()) {
		logger.WithError(problem).Warn("Sample data inconsistency")
	}

	logger.WithField("backend", cfg.Store.Backend).Info("Opening store")
	reader, err := store.Open(cfg.Store.Backend, cfg.Store.SQLiteDSN, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open store")
	}
	defer reader.Close()

	// Actions are logged and never applied to the data
	actions := queue.NewActionQueue(cfg.Actions.QueueSize, logger)
	actions.Subscribe(queue.LogHandler(logger))
	actions.Start()

	city := config.GetCityByName(cfg.City)
	handler := api.NewHandler(reader, shell.NewState(), actions, *city, logger)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(handler, cfg.CORSOrigins, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	if err := actions.Close(); err != nil {
		logger.WithError(err).Error("Failed to drain action queue")
	}
	logger.Info("Server stopped")
}
