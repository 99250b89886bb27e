package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kamrah334/FreeSEOToolkit/internal/config"
	"github.com/kamrah334/FreeSEOToolkit/internal/density"
	"github.com/kamrah334/FreeSEOToolkit/internal/detect"
	"github.com/kamrah334/FreeSEOToolkit/internal/httpapi"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load configuration", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	server := httpapi.New(cfg, density.NewEngine(density.DefaultConfig()), detect.NewDefault(), log)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: server.Router(),
	}

	go func() {
		log.Info("starting analysis server", "addr", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server exited")
}
