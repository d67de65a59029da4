package kafka

import (
	"fmt"
	"net"
	"strconv"
)

// ControllerBrokerLabel controller node marker.
const ControllerBrokerLabel = "(Controller)"

// Broker represents a Kafka broker node.
type Broker struct {
	// Address the raw address of the broker.
	Address string
	// ID the broker id returned from the server.
	ID int32
	// Host the host name of the broker.
	Host string
	// Port the port the broker is listening on.
	Port int32
	// IsController is true if the broker is the controller node.
	IsController bool
}

// NewBroker creates a new instance of Kafka broker from its host:port address.
func NewBroker(id int32, address string, controllerID int32) (*Broker, error) {
	host, rawPort, err := net.SplitHostPort(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q for broker %d: %w", address, id, err)
	}
	port, err := strconv.ParseInt(rawPort, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q for broker %d: %w", rawPort, id, err)
	}
	return &Broker{
		Address:      address,
		ID:           id,
		Host:         host,
		Port:         int32(port),
		IsController: id == controllerID,
	}, nil
}

// MarkedHostName returns the host name followed by the controller label if the broker is the controller node.
func (b *Broker) MarkedHostName() string {
	if b.IsController {
		return b.Host + " " + ControllerBrokerLabel
	}
	return b.Host
}

// String returns the string representation of the broker.
func (b *Broker) String() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("%d/%s", b.ID, b.Address)
}

// BrokersByID sorts the brokers by ID.
type BrokersByID []*Broker

func (b BrokersByID) Len() int {
	return len(b)
}

func (b BrokersByID) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

func (b BrokersByID) Less(i, j int) bool {
	return b[i].ID < b[j].ID
}
