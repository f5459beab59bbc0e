package kafka

import (
	"strconv"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-tracker/api/reportpb"
	"max.ks1230/finances-tracker/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	ReportsTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new sync producer")
	}
	return newProducer(producer, cfg.ReportsTopic()), nil
}

func newProducer(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
	}
}

// RequestReport asks the reporter to build the report of period for chatID.
// generation is handed back with the result to tell whether it may be cached.
func (p *Producer) RequestReport(chatID int64, period string, generation uint64) error {
	message, err := (&reportpb.ReportRequest{ChatID: chatID, Period: period, Generation: generation}).Marshal()
	if err != nil {
		return errors.Wrap(err, "request report")
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(chatID, 10)),
		Value: sarama.ByteEncoder(message),
	})
	return errors.Wrap(err, "request report")
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
