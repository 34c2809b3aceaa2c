package dynarray

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsAllocator wraps an upstream Allocator and exports what flows through
// it as prometheus metrics. Accounting uses block lengths as seen by Resize.
type MetricsAllocator struct {
	upstream Allocator

	allocateBytesCounter   prometheus.Counter
	inuseBytesGauge        prometheus.Gauge
	allocateObjectsCounter prometheus.Counter
	inuseObjectsGauge      prometheus.Gauge
	resizeCounter          prometheus.Counter
}

var _ Allocator = (*MetricsAllocator)(nil)

// NewMetricsAllocator returns a MetricsAllocator forwarding to upstream (the
// default allocator when nil). Metrics are registered with reg when it is
// not nil, under the given namespace.
func NewMetricsAllocator(upstream Allocator, reg prometheus.Registerer, namespace string) *MetricsAllocator {
	if upstream == nil {
		upstream = DefaultAllocator
	}
	m := &MetricsAllocator{
		upstream: upstream,
		allocateBytesCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dynarray",
			Name:      "allocate_bytes_total",
			Help:      "Bytes requested from the allocator, counting only growth.",
		}),
		inuseBytesGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dynarray",
			Name:      "inuse_bytes",
			Help:      "Bytes held in live blocks.",
		}),
		allocateObjectsCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dynarray",
			Name:      "allocate_objects_total",
			Help:      "Fresh blocks allocated.",
		}),
		inuseObjectsGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dynarray",
			Name:      "inuse_objects",
			Help:      "Live blocks.",
		}),
		resizeCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dynarray",
			Name:      "resize_total",
			Help:      "Resizes of existing blocks.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.allocateBytesCounter,
			m.inuseBytesGauge,
			m.allocateObjectsCounter,
			m.inuseObjectsGauge,
			m.resizeCounter,
		)
	}
	return m
}

// Resize implements Allocator.
func (m *MetricsAllocator) Resize(block []byte, size int) []byte {
	old := len(block)
	ret := m.upstream.Resize(block, size)

	switch {
	case block == nil && size == 0:
	case block == nil:
		m.allocateObjectsCounter.Inc()
		m.inuseObjectsGauge.Inc()
		m.allocateBytesCounter.Add(float64(size))
		m.inuseBytesGauge.Add(float64(size))
	case size == 0:
		m.inuseObjectsGauge.Dec()
		m.inuseBytesGauge.Sub(float64(old))
	default:
		m.resizeCounter.Inc()
		if size > old {
			m.allocateBytesCounter.Add(float64(size - old))
		}
		m.inuseBytesGauge.Add(float64(size - old))
	}
	return ret
}
