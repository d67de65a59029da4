package kafka

import (
	"sort"
	"strings"

	"github.com/Shopify/sarama"
)

// ClusterMetadata a snapshot of the Kafka cluster metadata.
type ClusterMetadata struct {
	// ControllerID the ID of the controller broker.
	ControllerID int32
	// Brokers the list of the brokers within the cluster.
	Brokers []*Broker
	// Topics the list of the topics within the cluster.
	Topics []*Topic
}

// FilterTopics returns the topics whose name starts with the given prefix, in their original order.
//
// An empty prefix matches every topic.
func (c *ClusterMetadata) FilterTopics(prefix string) []*Topic {
	result := make([]*Topic, 0, len(c.Topics))
	for _, topic := range c.Topics {
		if strings.HasPrefix(topic.Name, prefix) {
			result = append(result, topic)
		}
	}
	return result
}

// Controller returns the controller broker or nil if the controller is not in the broker list.
func (c *ClusterMetadata) Controller() *Broker {
	for _, broker := range c.Brokers {
		if broker.ID == c.ControllerID {
			return broker
		}
	}
	return nil
}

// TotalPartitions returns the number of partitions across all the topics.
func (c *ClusterMetadata) TotalPartitions() int64 {
	var total int64
	for _, topic := range c.Topics {
		total += int64(len(topic.Partitions))
	}
	return total
}

func fromMetadataResponse(response *sarama.MetadataResponse) (*ClusterMetadata, error) {
	meta := &ClusterMetadata{
		ControllerID: response.ControllerID,
		Brokers:      make([]*Broker, 0, len(response.Brokers)),
		Topics:       make([]*Topic, 0, len(response.Topics)),
	}

	for _, b := range response.Brokers {
		if b == nil {
			continue
		}
		broker, err := NewBroker(b.ID(), b.Addr(), response.ControllerID)
		if err != nil {
			return nil, err
		}
		meta.Brokers = append(meta.Brokers, broker)
	}

	for _, tm := range response.Topics {
		if tm == nil {
			continue
		}
		topic := &Topic{
			Name:       tm.Name,
			Internal:   tm.IsInternal,
			Partitions: make([]*PartitionMeta, 0, len(tm.Partitions)),
		}
		for _, pm := range tm.Partitions {
			if pm == nil {
				continue
			}
			topic.Partitions = append(topic.Partitions, &PartitionMeta{
				ID:              pm.ID,
				Leader:          pm.Leader,
				Replicas:        pm.Replicas,
				ISRs:            pm.Isr,
				OfflineReplicas: pm.OfflineReplicas,
			})
		}
		sort.Sort(PartitionMetaByID(topic.Partitions))
		meta.Topics = append(meta.Topics, topic)
	}

	sort.Sort(BrokersByID(meta.Brokers))
	sort.Sort(TopicsByName(meta.Topics))
	return meta, nil
}
