package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/xitonix/kmeta/kafka"
)

const (
	brokersTitle = "Brokers in the cluster:"
	topicsTitle  = "Topics and their partitions:"
)

// ErrNoMetadata occurs when there is no metadata snapshot to report.
var ErrNoMetadata = errors.New("no cluster metadata to report")

// WriteReport renders the broker and the topic sections of the metadata report into w.
//
// Brokers are listed by ID, followed by the partitions of the topics starting with prefix,
// ordered by topic name and partition ID. The report is fully rendered before anything is
// written to w. The input snapshot is not modified.
func WriteReport(w io.Writer, meta *kafka.ClusterMetadata, prefix string) error {
	if meta == nil {
		return ErrNoMetadata
	}
	var buf bytes.Buffer
	writeBrokers(&buf, meta.Brokers)
	NewLines(&buf, 1)
	writeTopics(&buf, meta.FilterTopics(prefix))
	_, err := w.Write(buf.Bytes())
	return err
}

func writeBrokers(buf *bytes.Buffer, brokers []*kafka.Broker) {
	sorted := make([]*kafka.Broker, len(brokers))
	copy(sorted, brokers)
	sort.Sort(kafka.BrokersByID(sorted))

	buf.WriteString(brokersTitle + "\n")
	for _, broker := range sorted {
		var label string
		if broker.IsController {
			label = kafka.ControllerBrokerLabel
		}
		fmt.Fprintf(buf, "- Broker ID: %d, Host: %s, Port: %d %s\n", broker.ID, broker.Host, broker.Port, label)
	}
}

func writeTopics(buf *bytes.Buffer, topics []*kafka.Topic) {
	sort.Stable(kafka.TopicsByName(topics))

	buf.WriteString(topicsTitle + "\n")
	for _, topic := range topics {
		partitions := make([]*kafka.PartitionMeta, len(topic.Partitions))
		copy(partitions, topic.Partitions)
		sort.Sort(kafka.PartitionMetaByID(partitions))
		for _, pm := range partitions {
			fmt.Fprintf(buf, "- Topic: %s, Partition: %d, Leader: %d\n", topic.Name, pm.ID, pm.Leader)
		}
	}
}
