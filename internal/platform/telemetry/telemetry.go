// Package telemetry provides lightweight observability for the clinic
// server: counters, gauges, and histograms with a Prometheus text
// exposition endpoint, plus an Echo middleware that records HTTP server
// metrics.
package telemetry

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
)

// defaultDurationBuckets are the histogram bucket boundaries (in seconds)
// used for HTTP request duration.
var defaultDurationBuckets = []float64{
	0.010, 0.025, 0.050, 0.100, 0.250, 0.500, 1.0, 2.5, 5.0, 10.0,
}

// histogram is a thread-safe histogram with configurable bucket boundaries.
// Bucket counts are non-cumulative in storage; cumulative counts are
// computed at export time.
type histogram struct {
	boundaries   []float64
	bucketCounts []int64
	count        int64
	sum          uint64 // math.Float64bits for atomic add
	mu           sync.Mutex
}

func newHistogram(boundaries []float64) *histogram {
	return &histogram{
		boundaries:   boundaries,
		bucketCounts: make([]int64, len(boundaries)),
	}
}

// Observe records a single value.
func (h *histogram) Observe(v float64) {
	atomic.AddInt64(&h.count, 1)
	for {
		old := atomic.LoadUint64(&h.sum)
		next := math.Float64frombits(old) + v
		if atomic.CompareAndSwapUint64(&h.sum, old, math.Float64bits(next)) {
			break
		}
	}

	h.mu.Lock()
	for i, b := range h.boundaries {
		if v <= b {
			h.bucketCounts[i]++
			break
		}
	}
	// Values beyond the last boundary land only in +Inf at export.
	h.mu.Unlock()
}

// Count returns the total number of observations.
func (h *histogram) Count() int64 {
	return atomic.LoadInt64(&h.count)
}

// Sum returns the total sum of all observations.
func (h *histogram) Sum() float64 {
	return math.Float64frombits(atomic.LoadUint64(&h.sum))
}

func (h *histogram) cumulativeBuckets() []int64 {
	h.mu.Lock()
	raw := make([]int64, len(h.bucketCounts))
	copy(raw, h.bucketCounts)
	h.mu.Unlock()

	cum := make([]int64, len(raw))
	var running int64
	for i, c := range raw {
		running += c
		cum[i] = running
	}
	return cum
}

// Provider manages all observability state for the clinic server.
type Provider struct {
	serviceName string

	mu         sync.RWMutex
	counters   map[string]*int64
	gauges     map[string]*int64
	histograms map[string]*histogram
}

// NewProvider creates a telemetry provider for the named service.
func NewProvider(serviceName string) *Provider {
	if serviceName == "" {
		serviceName = "clinic-server"
	}
	return &Provider{
		serviceName: serviceName,
		counters:    make(map[string]*int64),
		gauges:      make(map[string]*int64),
		histograms:  make(map[string]*histogram),
	}
}

func (p *Provider) counter(key string) *int64 {
	p.mu.RLock()
	v, ok := p.counters[key]
	p.mu.RUnlock()
	if ok {
		return v
	}
	p.mu.Lock()
	v, ok = p.counters[key]
	if !ok {
		v = new(int64)
		p.counters[key] = v
	}
	p.mu.Unlock()
	return v
}

func (p *Provider) gauge(name string) *int64 {
	p.mu.RLock()
	v, ok := p.gauges[name]
	p.mu.RUnlock()
	if ok {
		return v
	}
	p.mu.Lock()
	v, ok = p.gauges[name]
	if !ok {
		v = new(int64)
		p.gauges[name] = v
	}
	p.mu.Unlock()
	return v
}

func (p *Provider) histogramByKey(key string) *histogram {
	p.mu.RLock()
	h, ok := p.histograms[key]
	p.mu.RUnlock()
	if ok {
		return h
	}
	p.mu.Lock()
	h, ok = p.histograms[key]
	if !ok {
		h = newHistogram(defaultDurationBuckets)
		p.histograms[key] = h
	}
	p.mu.Unlock()
	return h
}

// BookingOperationCounter increments the booking.operation.count metric
// for a given booking kind (appointment, diagnostic, prescription) and
// operation (create, list, update_status, delete).
func (p *Provider) BookingOperationCounter(kind, operation string) {
	atomic.AddInt64(p.counter("booking.operation.count|"+kind+"|"+operation), 1)
}

// GetCounter returns the current value of the booking operation counter
// for the given kind and operation.
func (p *Provider) GetCounter(kind, operation string) int64 {
	return atomic.LoadInt64(p.counter("booking.operation.count|" + kind + "|" + operation))
}

// SetGauge sets a named gauge to the given value.
func (p *Provider) SetGauge(name string, val int64) {
	atomic.StoreInt64(p.gauge(name), val)
}

// AddGauge adds delta to a named gauge.
func (p *Provider) AddGauge(name string, delta int64) {
	atomic.AddInt64(p.gauge(name), delta)
}

// GetGauge returns the current value of a named gauge.
func (p *Provider) GetGauge(name string) int64 {
	return atomic.LoadInt64(p.gauge(name))
}

// GetRequestHistogram returns the request duration histogram for the given
// method, route and status code, or nil if nothing was recorded for it.
func (p *Provider) GetRequestHistogram(method, route, status string) *histogram {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.histograms[method+"|"+route+"|"+status]
}

// MetricsMiddleware returns an Echo middleware that records request
// duration histograms and the active-request gauge.
func (p *Provider) MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p.AddGauge("http.server.active_requests", 1)
			start := time.Now()

			err := next(c)

			p.AddGauge("http.server.active_requests", -1)
			duration := time.Since(start).Seconds()

			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}
			key := c.Request().Method + "|" + route + "|" + fmt.Sprintf("%d", c.Response().Status)
			p.histogramByKey(key).Observe(duration)

			return err
		}
	}
}

// PrometheusHandler returns an Echo handler serving all metrics in
// Prometheus text exposition format.
func (p *Provider) PrometheusHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var b strings.Builder

		p.mu.RLock()
		histograms := make(map[string]*histogram, len(p.histograms))
		for k, v := range p.histograms {
			histograms[k] = v
		}
		counters := make(map[string]int64, len(p.counters))
		for k, v := range p.counters {
			counters[k] = atomic.LoadInt64(v)
		}
		gauges := make(map[string]int64, len(p.gauges))
		for k, v := range p.gauges {
			gauges[k] = atomic.LoadInt64(v)
		}
		p.mu.RUnlock()

		b.WriteString("# HELP http_server_request_duration_seconds Duration of HTTP requests in seconds.\n")
		b.WriteString("# TYPE http_server_request_duration_seconds histogram\n")
		for key, h := range histograms {
			parts := strings.SplitN(key, "|", 3)
			if len(parts) != 3 {
				continue
			}
			labels := fmt.Sprintf("method=%q,route=%q,status_code=%q", parts[0], parts[1], parts[2])
			writeHistogram(&b, "http_server_request_duration_seconds", labels, h)
		}
		b.WriteByte('\n')

		b.WriteString("# HELP http_server_active_requests Number of active HTTP requests.\n")
		b.WriteString("# TYPE http_server_active_requests gauge\n")
		fmt.Fprintf(&b, "http_server_active_requests %d\n\n", gauges["http.server.active_requests"])

		b.WriteString("# HELP booking_operation_count Total booking operations by kind and operation.\n")
		b.WriteString("# TYPE booking_operation_count counter\n")
		for key, val := range counters {
			parts := strings.SplitN(key, "|", 3)
			if len(parts) == 3 && parts[0] == "booking.operation.count" {
				fmt.Fprintf(&b, "booking_operation_count{kind=%q,operation=%q} %d\n", parts[1], parts[2], val)
			}
		}
		b.WriteByte('\n')

		poolGauges := []struct {
			promName string
			name     string
			help     string
		}{
			{"db_pool_active_connections", "db.pool.active_connections", "Number of active database pool connections."},
			{"db_pool_idle_connections", "db.pool.idle_connections", "Number of idle database pool connections."},
		}
		for _, g := range poolGauges {
			fmt.Fprintf(&b, "# HELP %s %s\n", g.promName, g.help)
			fmt.Fprintf(&b, "# TYPE %s gauge\n", g.promName)
			fmt.Fprintf(&b, "%s %d\n\n", g.promName, gauges[g.name])
		}

		return c.String(http.StatusOK, b.String())
	}
}

func writeHistogram(b *strings.Builder, name, labels string, h *histogram) {
	cum := h.cumulativeBuckets()
	total := h.Count()

	for i, boundary := range h.boundaries {
		fmt.Fprintf(b, "%s_bucket{%s,le=\"%g\"} %d\n", name, labels, boundary, cum[i])
	}
	fmt.Fprintf(b, "%s_bucket{%s,le=\"+Inf\"} %d\n", name, labels, total)
	fmt.Fprintf(b, "%s_sum{%s} %g\n", name, labels, h.Sum())
	fmt.Fprintf(b, "%s_count{%s} %d\n", name, labels, total)
}
