package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"max.ks1230/finances-tracker/internal/clients/cache"
	"max.ks1230/finances-tracker/internal/config"
	"max.ks1230/finances-tracker/internal/logger"
	"max.ks1230/finances-tracker/internal/model/records"
	"max.ks1230/finances-tracker/internal/model/storage"
	"max.ks1230/finances-tracker/internal/server"
	"max.ks1230/finances-tracker/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

type reportInvalidator interface {
	InvalidateReports(periods []string) error
}

func main() {
	logger.Info("API init - start")
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init("finances-api", conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	db, err := storage.Open(conf.App().StorageBackend(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer db.Close()

	var invalidator reportInvalidator
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached(), conf.App().ReportCacheTTL())
		if err != nil {
			logger.Fatal("failed to init memcached:", zap.Error(err))
		}
		invalidator = mc
	}

	srv := server.NewHTTPServer(records.NewService(db, invalidator, conf.App()))

	logger.Info("API init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := srv.Run(conf.HTTP().ListenAddr()); err != nil {
			logger.Error("http server failed", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", zap.Error(err))
	}
}
