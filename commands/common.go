package commands

import (
	"context"
	"io"
	"io/ioutil"
	"os"

	"github.com/xitonix/kmeta/internal"
	"github.com/xitonix/kmeta/kafka"
)

// NewLogger creates a new logger which writes to stderr at the requested verbosity level.
func NewLogger(globalParams *GlobalParameters) *internal.Logger {
	return internal.NewLogger(globalParams.Verbosity, os.Stderr, globalParams.EnableColor)
}

// InitKafkaManager initialises the Kafka manager and a context which gets cancelled
// as soon as an interruption signal is received.
func InitKafkaManager(globalParams *GlobalParameters,
	kafkaParams *KafkaParameters,
	logger internal.Printer,
	options ...kafka.Option) (*kafka.Manager, context.Context, context.CancelFunc, error) {

	var saramaLogWriter io.Writer = ioutil.Discard
	if globalParams.Verbosity >= internal.Chatty {
		saramaLogWriter = os.Stderr
	}

	ops := []kafka.Option{
		kafka.WithClusterVersion(kafkaParams.Version),
		kafka.WithClientID(kafkaParams.ClientID),
		kafka.WithTLS(kafkaParams.TLS),
		kafka.WithLogWriter(saramaLogWriter),
		kafka.WithLogger(logger),
	}

	manager, err := kafka.NewManager(kafkaParams.BrokerList(), append(ops, options...)...)
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		internal.WaitForCancellationSignal()
		logger.Log(internal.Verbose, "Interruption signal received. Stopping.")
		cancel()
	}()

	return manager, ctx, cancel, nil
}
