package kafka

import "fmt"

// Topic represents a Kafka topic with its partitions.
type Topic struct {
	// Name topic name.
	Name string
	// Internal is true for the topics managed by Kafka itself (eg. __consumer_offsets).
	Internal bool
	// Partitions the partitions of the topic.
	Partitions []*PartitionMeta
}

// String returns the string representation of the topic metadata.
func (t *Topic) String() string {
	return fmt.Sprintf("%s (Partitions: %d)", t.Name, len(t.Partitions))
}

// TopicsByName sorts the topic list by name.
type TopicsByName []*Topic

func (t TopicsByName) Len() int {
	return len(t)
}

func (t TopicsByName) Swap(i, j int) {
	t[i], t[j] = t[j], t[i]
}

func (t TopicsByName) Less(i, j int) bool {
	return t[i].Name < t[j].Name
}

// GetNames returns a list of all the topic names.
func (t TopicsByName) GetNames() []string {
	result := make([]string, len(t))
	for i, topic := range t {
		result[i] = topic.Name
	}
	return result
}
