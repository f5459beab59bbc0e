package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"max.ks1230/finances-tracker/internal/clients/kafka"
	"max.ks1230/finances-tracker/internal/config"
	"max.ks1230/finances-tracker/internal/logger"
	"max.ks1230/finances-tracker/internal/model/reports"
	"max.ks1230/finances-tracker/internal/model/storage"
	"max.ks1230/finances-tracker/internal/tracing"
)

func main() {
	logger.Info("Reporter init - start")
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init("finances-reporter", conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	if conf.App().StorageBackend() == storage.MemoryBackend {
		logger.Warn("reporter runs on in-memory storage, reports will be empty")
	}
	db, err := storage.Open(conf.App().StorageBackend(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer db.Close()

	sender, err := reports.NewSender(conf.GRPC().AcceptorAddr())
	if err != nil {
		logger.Fatal("failed to init report sender:", zap.Error(err))
	}
	defer sender.Close()

	generator := reports.NewGenerator(conf.App(), db)

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator, sender)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Error("failed to consume", zap.Error(err))
	}
}
