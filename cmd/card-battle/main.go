package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hariz09/game-hub-sub001/internal/api"
	"github.com/Hariz09/game-hub-sub001/internal/config"
	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/logging"
	"github.com/Hariz09/game-hub-sub001/internal/service"
	"github.com/Hariz09/game-hub-sub001/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
	logging.Info("starting card battle", logging.Fields{"version": version.Current().String()})

	catalog := loadCatalogOrExit(cfg)
	store := createProgressStoreOrExit(cfg)
	sessions := service.NewManager(catalog, store, cfg.SessionTTL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background scanner: periodically drop sessions nobody has touched
	// within the TTL, closing their streams.
	startJanitor(ctx, sessions)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.NewGameHandler(sessions))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Failed to start server", err, nil)
		}
	}()

	<-ctx.Done()
	logging.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("graceful shutdown failed", err, nil)
	}
}
