package util

const metricsWindow = 256

// MetricsGetter gives access to a tracked metric.
type MetricsGetter interface {
	Avg() uint64
	GetLast() uint64
}

// MetricsHandler tracks a metric (e.g. render times in microseconds) over
// its most recent values, keeping a running sum for the average.
type MetricsHandler struct {
	window [metricsWindow]uint64
	next   int
	filled int
	sum    uint64
}

// Add records a value, dropping the oldest one once the window is full.
func (h *MetricsHandler) Add(value uint64) {
	h.sum -= h.window[h.next]
	h.window[h.next] = value
	h.sum += value
	h.next = (h.next + 1) % metricsWindow
	h.filled = min(h.filled+1, metricsWindow)
}

// GetLast returns the most recently recorded value, 0 if there is none.
func (h *MetricsHandler) GetLast() uint64 {
	if h.filled == 0 {
		return 0
	}
	return h.window[(h.next+metricsWindow-1)%metricsWindow]
}

// Avg returns the average over the recorded values, 0 if there are none.
func (h *MetricsHandler) Avg() uint64 {
	if h.filled == 0 {
		return 0
	}
	return h.sum / uint64(h.filled)
}
