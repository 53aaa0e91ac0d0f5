package ingester

import "time"

const (
	// DefaultPollInterval approximates the DeSo block time.
	DefaultPollInterval = 5 * time.Minute

	DefaultVerifyChunkSize uint64 = 10_000

	// DefaultRepairLookupWorkers bounds concurrent transaction lookups while repairing a block.
	// One worker keeps a single store operation in flight.
	DefaultRepairLookupWorkers = 1
)
