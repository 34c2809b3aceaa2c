package dynarray

// Utilization returns the ratio of bytes in use to reserved bytes (0.0 to 1.0).
// Returns 0.0 if the array has no capacity.
func (a *Array) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Size()) / float64(capacity)
}

// Slack returns the number of reserved bytes not in logical use.
func (a *Array) Slack() int {
	return a.Capacity() - a.Size()
}

// Metrics returns a snapshot of array statistics.
func (a *Array) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Allocated:   a.Allocated(),
		Size:        a.Size(),
		Capacity:    a.Capacity(),
		Slack:       a.Slack(),
		Utilization: a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Allocated   bool    // Handle owns storage
	Size        int     // Bytes in logical use
	Capacity    int     // Bytes reserved
	Slack       int     // Capacity - Size
	Utilization float64 // Ratio of used to reserved bytes (0.0-1.0)
}

// Thread-safe metrics for SafeArray

// Size thread-safely returns the byte extent in logical use.
func (s *SafeArray) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Size()
}

// Capacity thread-safely returns the reserved byte extent.
func (s *SafeArray) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of bytes in use to reserved bytes.
func (s *SafeArray) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of array statistics.
func (s *SafeArray) Metrics() ArrayMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
