package kafka

import "errors"

var (
	// ErrEmptyBrokers occurs when no bootstrap address has been provided.
	ErrEmptyBrokers = errors.New("the brokers list cannot be empty")

	// ErrInvalidOffsetReset occurs when the offset reset policy is neither earliest nor latest.
	ErrInvalidOffsetReset = errors.New("invalid offset reset policy")

	// ErrInvalidTimeout occurs when the metadata timeout is not a positive duration.
	ErrInvalidTimeout = errors.New("the timeout must be greater than zero")

	// ErrMetadataUnavailable occurs when none of the bootstrap brokers responded
	// to the metadata request in time.
	ErrMetadataUnavailable = errors.New("cluster metadata unavailable")
)
