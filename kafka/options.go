package kafka

import (
	"crypto/tls"
	"io"
	"io/ioutil"
	"time"

	"github.com/xitonix/kmeta/internal"
)

const (
	// DefaultClusterVersion the Kafka cluster version assumed when none is provided.
	DefaultClusterVersion = "2.1.1"
	// DefaultClientID the client ID reported to the brokers.
	DefaultClientID = "kmeta"
	// DefaultTimeout the default upper bound of a metadata round trip.
	DefaultTimeout = 10 * time.Second
	// DefaultConsumerGroup the default logical group label.
	DefaultConsumerGroup = "meta-inspect"
)

const (
	// OffsetResetEarliest start from the oldest available offset.
	OffsetResetEarliest = "earliest"
	// OffsetResetLatest start from the newest offset.
	OffsetResetLatest = "latest"
)

// Options holds the configuration settings for the Kafka metadata manager.
type Options struct {
	// ClusterVersion kafka cluster version.
	ClusterVersion string
	// ClientID the client ID to report to the brokers.
	ClientID string
	// Timeout the upper bound of the metadata round trip.
	Timeout time.Duration
	// ConsumerGroup the logical group label.
	//
	// Metadata requests are not group scoped. The label is carried for
	// compatibility with consumer style configurations.
	ConsumerGroup string
	// OffsetReset the initial offset policy (earliest or latest).
	//
	// It has no effect on metadata requests.
	OffsetReset string
	// TLS transport layer security settings. TLS is disabled if nil.
	TLS *tls.Config

	logWriter io.Writer
	logger    internal.Printer
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		ClusterVersion: DefaultClusterVersion,
		ClientID:       DefaultClientID,
		Timeout:        DefaultTimeout,
		ConsumerGroup:  DefaultConsumerGroup,
		OffsetReset:    OffsetResetEarliest,
		logWriter:      ioutil.Discard,
		logger:         internal.NewLogger(internal.Forced, ioutil.Discard, false),
	}
}

// Option represents a configuration function.
type Option func(options *Options)

// WithClusterVersion kafka cluster version.
func WithClusterVersion(version string) Option {
	return func(options *Options) {
		if internal.IsEmpty(version) {
			version = DefaultClusterVersion
		}
		options.ClusterVersion = version
	}
}

// WithClientID sets the client ID. Empty values are ignored.
func WithClientID(id string) Option {
	return func(options *Options) {
		if !internal.IsEmpty(id) {
			options.ClientID = id
		}
	}
}

// WithTimeout sets the upper bound of the metadata round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(options *Options) {
		options.Timeout = timeout
	}
}

// WithConsumerGroup sets the logical group label.
func WithConsumerGroup(group string) Option {
	return func(options *Options) {
		if !internal.IsEmpty(group) {
			options.ConsumerGroup = group
		}
	}
}

// WithOffsetReset sets the initial offset policy.
func WithOffsetReset(policy string) Option {
	return func(options *Options) {
		if !internal.IsEmpty(policy) {
			options.OffsetReset = policy
		}
	}
}

// WithTLS enables TLS.
func WithTLS(tlsConfig *tls.Config) Option {
	return func(options *Options) {
		options.TLS = tlsConfig
	}
}

// WithLogWriter sets the writer to write the internal sarama logs to.
func WithLogWriter(writer io.Writer) Option {
	return func(options *Options) {
		if writer != nil {
			options.logWriter = writer
		}
	}
}

// WithLogger sets the logger to report the progress to.
func WithLogger(logger internal.Printer) Option {
	return func(options *Options) {
		if logger != nil {
			options.logger = logger
		}
	}
}
