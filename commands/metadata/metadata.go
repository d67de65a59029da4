package metadata

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/xitonix/kmeta/commands"
	"github.com/xitonix/kmeta/internal"
	"github.com/xitonix/kmeta/internal/output"
	"github.com/xitonix/kmeta/kafka"
)

// DefaultTopicPrefix the default topic name prefix to filter the topics by.
const DefaultTopicPrefix = "topic-"

type metadata struct {
	globalParams *commands.GlobalParameters
	kafkaParams  *commands.KafkaParameters
	out          io.Writer
	group        string
	offsetReset  string
	timeout      time.Duration
	topicPrefix  string
}

// AddCommands adds the metadata command to the app. It is the default command of the application.
func AddCommands(app *kingpin.Application, global *commands.GlobalParameters, kafkaParams *commands.KafkaParameters, out io.Writer) {
	cmd := &metadata{
		globalParams: global,
		kafkaParams:  kafkaParams,
		out:          out,
	}
	c := app.Command("metadata", "Prints the brokers of the cluster and the partition leaders of the topics.").
		Default().
		Action(cmd.run)
	c.Flag("group", "The consumer group label of the client. It does not affect the metadata.").
		Short('g').
		Default(kafka.DefaultConsumerGroup).
		StringVar(&cmd.group)
	c.Flag("offset-reset", "The initial offset policy of the client. It does not affect the metadata.").
		Default(kafka.OffsetResetEarliest).
		EnumVar(&cmd.offsetReset, kafka.OffsetResetEarliest, kafka.OffsetResetLatest)
	c.Flag("timeout", "The maximum amount of time to wait for the cluster metadata.").
		Short('t').
		Default(kafka.DefaultTimeout.String()).
		DurationVar(&cmd.timeout)
	c.Flag("topic-prefix", "Only the topics starting with this prefix will be listed. Set to '' to list all the topics.").
		Short('p').
		Default(DefaultTopicPrefix).
		StringVar(&cmd.topicPrefix)
}

func (c *metadata) run(_ *kingpin.ParseContext) error {
	logger := commands.NewLogger(c.globalParams)
	manager, ctx, cancel, err := commands.InitKafkaManager(c.globalParams,
		c.kafkaParams,
		logger,
		kafka.WithTimeout(c.timeout),
		kafka.WithConsumerGroup(c.group),
		kafka.WithOffsetReset(c.offsetReset))

	if err != nil {
		return err
	}

	defer cancel()

	meta, err := manager.DescribeCluster(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch the cluster metadata: %w", err)
	}

	logger.Logf(internal.VeryVerbose, "Filtering the topics by %q prefix", c.topicPrefix)
	return output.WriteReport(c.out, meta, c.topicPrefix)
}
