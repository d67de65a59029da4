package kafka

// NoLeader the leader ID reported for partitions without a leader.
const NoLeader int32 = -1

// PartitionMeta represents partition metadata.
type PartitionMeta struct {
	// ID partition id.
	ID int32
	// Leader the ID of the leader broker.
	Leader int32
	// Replicas the IDs of the replication nodes.
	Replicas []int32
	// ISRs the IDs of the in-sync replicas.
	ISRs []int32
	// OfflineReplicas the IDs of the offline replicas.
	OfflineReplicas []int32
}

// HasLeader returns true if the partition has an elected leader.
func (p *PartitionMeta) HasLeader() bool {
	return p.Leader != NoLeader
}

// PartitionMetaByID sorts partition metadata by partition ID.
type PartitionMetaByID []*PartitionMeta

func (b PartitionMetaByID) Len() int {
	return len(b)
}

func (b PartitionMetaByID) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

func (b PartitionMetaByID) Less(i, j int) bool {
	return b[i].ID < b[j].ID
}
