package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters for the HTTP surface.
type Metrics struct {
	mu              sync.Mutex
	requestCount    map[string]int64
	requestDuration map[string]time.Duration
	errorCount      map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:    make(map[string]int64),
		requestDuration: make(map[string]time.Duration),
		errorCount:      make(map[string]int64),
	}
}

// RecordRequest increments the request counter and accumulates the
// total time spent handling requests for the key.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.requestDuration[key] += duration
}

// RecordError increments error counters by domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RequestStats returns the count and accumulated duration recorded for
// a path/method/status combination.
func (m *Metrics) RequestStats(path, method string, status int) (int64, time.Duration) {
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCount[key], m.requestDuration[key]
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
