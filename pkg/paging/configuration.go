package paging

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BufferConfiguration describes how the blocks of a Buffer are
// allocated and instrumented.
type BufferConfiguration struct {
	// Number of elements stored in every block. Defaults to
	// DefaultBlockCapacity when zero.
	BlockCapacity int `json:"blockCapacity"`

	// Maximum number of blocks that a single Buffer may allocate.
	// Zero means that growth is unbounded.
	MaximumBlocks int `json:"maximumBlocks"`

	// Whether every block fault should be written to the log.
	LogBlockFaults bool `json:"logBlockFaults"`

	// When set, block allocations and faults are exposed through
	// Prometheus, using this value as the "name" label.
	MetricsName string `json:"metricsName"`
}

// NewBlockAllocatorFromConfiguration creates a BlockAllocator as
// described by a BufferConfiguration. Every call yields a new
// allocator. When a maximum is configured, it applies to that allocator
// only.
func NewBlockAllocatorFromConfiguration[T any](configuration *BufferConfiguration) (BlockAllocator[T], error) {
	if configuration == nil {
		return nil, status.Error(codes.InvalidArgument, "No buffer configuration provided")
	}
	blockCapacity := configuration.BlockCapacity
	if blockCapacity == 0 {
		blockCapacity = DefaultBlockCapacity
	} else if blockCapacity < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid block capacity: %d", blockCapacity)
	}
	if configuration.MaximumBlocks < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid maximum number of blocks: %d", configuration.MaximumBlocks)
	}

	blockAllocator := NewInMemoryBlockAllocator[T](blockCapacity)
	if configuration.MetricsName != "" {
		blockAllocator = NewMetricsBlockAllocator(blockAllocator, configuration.MetricsName)
	}
	if configuration.MaximumBlocks > 0 {
		blockAllocator = NewMaximumCountBlockAllocator(blockAllocator, configuration.MaximumBlocks)
	}
	return blockAllocator, nil
}

// NewBlockFaultObserverFromConfiguration creates a BlockFaultObserver
// as described by a BufferConfiguration.
func NewBlockFaultObserverFromConfiguration(configuration *BufferConfiguration, name string) BlockFaultObserver {
	var blockFaultObserver BlockFaultObserver = NopBlockFaultObserver
	if configuration.LogBlockFaults {
		blockFaultObserver = NewLoggingBlockFaultObserver(name)
	}
	if configuration.MetricsName != "" {
		blockFaultObserver = NewMetricsBlockFaultObserver(blockFaultObserver, configuration.MetricsName)
	}
	return blockFaultObserver
}

// NewBufferFromConfiguration creates an empty Buffer whose blocks are
// allocated and instrumented as described by a BufferConfiguration.
// The name is used to identify the Buffer in logs.
func NewBufferFromConfiguration[T any](configuration *BufferConfiguration, name string) (*Buffer[T], error) {
	blockAllocator, err := NewBlockAllocatorFromConfiguration[T](configuration)
	if err != nil {
		return nil, err
	}
	return NewBuffer(blockAllocator, NewBlockFaultObserverFromConfiguration(configuration, name)), nil
}
