package kafka

import (
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/Shopify/sarama"
	"github.com/rcrowley/go-metrics"
)

func initConfig(brokers []string, ops *Options) (*sarama.Config, error) {
	if len(brokers) == 0 {
		return nil, ErrEmptyBrokers
	}
	for _, address := range brokers {
		if _, _, err := net.SplitHostPort(address); err != nil {
			return nil, fmt.Errorf("invalid broker address %q: %w", address, err)
		}
	}

	if ops.Timeout <= 0 {
		return nil, ErrInvalidTimeout
	}

	sarama.Logger = log.New(ops.logWriter, "KAFKA Client: ", log.LstdFlags)
	version, err := sarama.ParseKafkaVersion(ops.ClusterVersion)
	if err != nil {
		return nil, err
	}

	config := sarama.NewConfig()
	config.Version = version
	config.ClientID = ops.ClientID

	config.Net.DialTimeout = ops.Timeout
	config.Net.ReadTimeout = ops.Timeout
	config.Net.WriteTimeout = ops.Timeout
	config.Metadata.Retry.Max = 0
	config.Metadata.Full = true

	switch strings.ToLower(ops.OffsetReset) {
	case OffsetResetEarliest:
		config.Consumer.Offsets.Initial = sarama.OffsetOldest
	case OffsetResetLatest:
		config.Consumer.Offsets.Initial = sarama.OffsetNewest
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOffsetReset, ops.OffsetReset)
	}

	metrics.UseNilMetrics = true

	if ops.TLS != nil {
		config.Net.TLS.Enable = true
		config.Net.TLS.Config = ops.TLS
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Kafka client configuration: %w", err)
	}

	return config, nil
}
