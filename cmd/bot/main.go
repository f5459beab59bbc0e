package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"max.ks1230/finances-tracker/internal/clients/cache"
	"max.ks1230/finances-tracker/internal/clients/kafka"
	"max.ks1230/finances-tracker/internal/clients/tg"
	"max.ks1230/finances-tracker/internal/config"
	"max.ks1230/finances-tracker/internal/logger"
	"max.ks1230/finances-tracker/internal/model/messages"
	"max.ks1230/finances-tracker/internal/model/records"
	"max.ks1230/finances-tracker/internal/model/reports"
	"max.ks1230/finances-tracker/internal/model/storage"
	"max.ks1230/finances-tracker/internal/tracing"
)

type reportCache interface {
	GetReport(period string) (string, bool, error)
	ReportGeneration(period string) (uint64, error)
	CacheReport(period string, report string, generation uint64) error
	InvalidateReports(periods []string) error
}

type reportRequester interface {
	RequestReport(chatID int64, period string, generation uint64) error
}

func main() {
	logger.Info("Bot init - start")
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init("finances-bot", conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	db, err := storage.Open(conf.App().StorageBackend(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer db.Close()

	var reportsCache reportCache
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached(), conf.App().ReportCacheTTL())
		if err != nil {
			logger.Fatal("failed to init memcached:", zap.Error(err))
		}
		reportsCache = mc
	}

	// Without kafka the bot builds reports itself and nothing is delivered over gRPC.
	var requester reportRequester
	if len(conf.Kafka().Brokers()) > 0 {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		requester = producer
	}

	recordsService := records.NewService(db, reportsCache, conf.App())
	msgService := messages.NewService(client, recordsService, requester, reportsCache)

	if requester != nil {
		acceptor, err := reports.NewServer(conf.GRPC().AcceptorPort(), msgService)
		if err != nil {
			logger.Fatal("failed to init report acceptor:", zap.Error(err))
		}
		go acceptor.Serve()
		defer acceptor.Shutdown()
	}

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client.ListenUpdates(ctx, msgService)
}
