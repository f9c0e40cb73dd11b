package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"forecast-api/configs"
	"forecast-api/internal/application/server"
	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
)

// @title Forecast API
// @version 1.0
// @description Proxies the OpenWeatherMap 5 day forecast and groups it by calendar date.
// @BasePath /
func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal("Fail to load configuration", zap.Error(err))
	}

	log.Init(cfg.ApplicationName, cfg.LogLevel)
	defer log.Sync()

	if err := msg.Init(cfg.MessagesPath); err != nil {
		log.Warn("Message catalog not loaded, falling back to message keys", zap.Error(err))
	}

	log.Info(msg.GetMessage("app.start"))

	e := server.New(cfg)

	listener, err := server.Listen(":"+cfg.Port, cfg.MaxConnections)
	if err != nil {
		log.Fatal(msg.GetMessage("app.serve-fail", err), zap.Error(err))
	}
	e.Listener = listener

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info(msg.GetMessage("app.started", cfg.Port), zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(msg.GetMessage("app.serve-fail", err), zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}
