package core

import (
	"sync"
	"time"
)

const AVG_COUNT = 30

// Metrics keeps a rolling average over the last AVG_COUNT recorded durations.
type Metrics struct {
	mu      sync.Mutex
	samples [AVG_COUNT]time.Duration
	next    int
	filled  int
	total   int
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Record(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.samples[m.next] = d
	m.next = (m.next + 1) % AVG_COUNT
	if m.filled < AVG_COUNT {
		m.filled++
	}
	m.total++
}

// Average returns the mean of the samples in the window, or 0 if none were recorded.
func (m *Metrics) Average() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.filled == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < m.filled; i++ {
		sum += m.samples[i]
	}
	return sum / time.Duration(m.filled)
}

// Count returns how many samples were recorded in total.
func (m *Metrics) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}
