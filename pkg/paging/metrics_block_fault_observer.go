package paging

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	blockFaultObserverPrometheusMetrics sync.Once

	blockFaultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "paging",
			Name:      "block_faults_total",
			Help:      "Total number of writes that caused a block to be allocated.",
		},
		[]string{"name"})
)

type metricsBlockFaultObserver struct {
	base        BlockFaultObserver
	blockFaults prometheus.Counter
}

// NewMetricsBlockFaultObserver is a decorator for BlockFaultObserver
// that counts the number of block faults through Prometheus.
func NewMetricsBlockFaultObserver(base BlockFaultObserver, name string) BlockFaultObserver {
	blockFaultObserverPrometheusMetrics.Do(func() {
		prometheus.MustRegister(blockFaultsTotal)
	})

	return &metricsBlockFaultObserver{
		base:        base,
		blockFaults: blockFaultsTotal.WithLabelValues(name),
	}
}

func (o *metricsBlockFaultObserver) BlockFaulted(blockIndex, logicalIndex int) {
	o.blockFaults.Inc()
	o.base.BlockFaulted(blockIndex, logicalIndex)
}
