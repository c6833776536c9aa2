package paging

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	blockAllocatorPrometheusMetrics sync.Once

	blockAllocatorOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "paging",
			Name:      "block_allocator_operations_total",
			Help:      "Total number of operations against block allocators.",
		},
		[]string{"name", "operation", "outcome"})
	blockAllocatorBlocksAllocated = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "buildbarn",
			Subsystem: "paging",
			Name:      "block_allocator_blocks_allocated",
			Help:      "Number of blocks that have been handed out by block allocators and have not been released.",
		},
		[]string{"name"})
)

type metricsBlockAllocator[T any] struct {
	base BlockAllocator[T]

	newBlockSucceeded prometheus.Counter
	newBlockFailed    prometheus.Counter
	release           prometheus.Counter
	blocksAllocated   prometheus.Gauge
}

// NewMetricsBlockAllocator is a decorator for BlockAllocator that
// exposes the number of allocations and releases performed against the
// underlying BlockAllocator through Prometheus.
func NewMetricsBlockAllocator[T any](base BlockAllocator[T], name string) BlockAllocator[T] {
	blockAllocatorPrometheusMetrics.Do(func() {
		prometheus.MustRegister(blockAllocatorOperationsTotal)
		prometheus.MustRegister(blockAllocatorBlocksAllocated)
	})

	return &metricsBlockAllocator[T]{
		base: base,

		newBlockSucceeded: blockAllocatorOperationsTotal.WithLabelValues(name, "NewBlock", "Success"),
		newBlockFailed:    blockAllocatorOperationsTotal.WithLabelValues(name, "NewBlock", "Failure"),
		release:           blockAllocatorOperationsTotal.WithLabelValues(name, "Release", "Success"),
		blocksAllocated:   blockAllocatorBlocksAllocated.WithLabelValues(name),
	}
}

func (ba *metricsBlockAllocator[T]) NewBlock() (Block[T], error) {
	block, err := ba.base.NewBlock()
	if err != nil {
		ba.newBlockFailed.Inc()
		return nil, err
	}
	ba.newBlockSucceeded.Inc()
	ba.blocksAllocated.Inc()
	return &metricsBlock[T]{
		Block:     block,
		allocator: ba,
	}, nil
}

func (ba *metricsBlockAllocator[T]) GetBlockCapacity() int {
	return ba.base.GetBlockCapacity()
}

type metricsBlock[T any] struct {
	Block[T]
	allocator *metricsBlockAllocator[T]
}

func (b *metricsBlock[T]) Release() {
	b.allocator.release.Inc()
	b.allocator.blocksAllocated.Dec()
	b.Block.Release()
}
