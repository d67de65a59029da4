package commands

import (
	"crypto/tls"

	"github.com/xitonix/kmeta/internal"
)

// DefaultBrokers the bootstrap address used when no broker is specified.
const DefaultBrokers = "localhost:19092"

// KafkaParameters holds CLI parameters to connect to Kafka.
type KafkaParameters struct {
	// Brokers a comma separated list of host:port pairs.
	Brokers string
	// Version Kafka cluster version.
	Version string
	// ClientID the client ID reported to the brokers.
	ClientID string
	// TLS TLS settings.
	TLS *tls.Config
}

// BrokerList returns the list of the bootstrap addresses.
func (p *KafkaParameters) BrokerList() []string {
	return internal.SplitList(p.Brokers)
}

// TLSParameters holds TLS connection parameters.
type TLSParameters struct {
	// Enabled true if TLS is requested by the user.
	Enabled bool
	// CACert the path to CA Cert file.
	CACert string
}
