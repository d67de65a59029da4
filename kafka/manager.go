package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/dustin/go-humanize"

	"github.com/xitonix/kmeta/internal"
)

// metadataRequestVersion the lowest metadata request version which reports the controller ID.
const metadataRequestVersion = 1

// Manager a type to query Kafka metadata.
type Manager struct {
	internal.Printer
	config       *Options
	brokers      []string
	clientConfig *sarama.Config
}

type fetchResult struct {
	meta *ClusterMetadata
	err  error
}

// NewManager creates a new instance of Kafka manager.
//
// No network connection is made until the metadata is requested.
func NewManager(brokers []string, options ...Option) (*Manager, error) {
	ops := NewOptions()
	for _, option := range options {
		option(ops)
	}

	config, err := initConfig(brokers, ops)
	if err != nil {
		return nil, err
	}

	return &Manager{
		Printer:      ops.logger,
		config:       ops,
		brokers:      brokers,
		clientConfig: config,
	}, nil
}

// DescribeCluster loads the cluster metadata from the first bootstrap broker which responds.
//
// Each bootstrap address is tried once, in order. The whole operation is bounded by the configured
// timeout. The returned brokers, topics and partitions are sorted by ID, name and ID respectively.
func (m *Manager) DescribeCluster(ctx context.Context) (*ClusterMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	m.Logf(internal.Verbose, "Retrieving cluster metadata (timeout: %s)", m.config.Timeout)
	m.Logf(internal.VeryVerbose, "Client configuration: group %q, offset reset %q", m.config.ConsumerGroup, m.config.OffsetReset)

	done := make(chan fetchResult, 1)
	go func() {
		meta, err := m.fetch(ctx)
		done <- fetchResult{meta: meta, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: no response within %s: %v", ErrMetadataUnavailable, m.config.Timeout, ctx.Err())
	case result := <-done:
		if result.err != nil {
			return nil, result.err
		}
		m.Logf(internal.Verbose, "%s brokers, %s topics and %s partitions have been found on the server",
			humanize.Comma(int64(len(result.meta.Brokers))),
			humanize.Comma(int64(len(result.meta.Topics))),
			humanize.Comma(result.meta.TotalPartitions()))
		return result.meta, nil
	}
}

func (m *Manager) fetch(ctx context.Context) (*ClusterMetadata, error) {
	var lastErr error
	for _, address := range m.brokers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, ctx.Err())
		default:
		}
		response, err := m.requestMetadata(address)
		if err != nil {
			m.Logf(internal.Verbose, "Failed to fetch the metadata from %s: %s", address, err)
			lastErr = err
			continue
		}
		return fromMetadataResponse(response)
	}
	return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, lastErr)
}

func (m *Manager) requestMetadata(address string) (*sarama.MetadataResponse, error) {
	m.Logf(internal.SuperVerbose, "Connecting to %s", address)
	broker := sarama.NewBroker(address)
	if err := broker.Open(m.clientConfig); err != nil {
		return nil, err
	}
	defer func() {
		_ = broker.Close()
	}()

	return broker.GetMetadata(&sarama.MetadataRequest{
		Version:                metadataRequestVersion,
		AllowAutoTopicCreation: false,
	})
}
