package config

const (
	defaultReportsTopic  = "report-requests"
	defaultConsumerGroup = "finances-reporter"
)

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Consumer   string   `yaml:"consumer-group"`
	RepTopic   string   `yaml:"reports-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	if s.Consumer == "" {
		return defaultConsumerGroup
	}
	return s.Consumer
}

func (s *KafkaConfig) ReportsTopic() string {
	if s.RepTopic == "" {
		return defaultReportsTopic
	}
	return s.RepTopic
}
