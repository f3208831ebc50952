package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHistogram_ObserveAndBuckets(t *testing.T) {
	h := newHistogram([]float64{0.1, 0.5, 1.0})
	h.Observe(0.05)
	h.Observe(0.3)
	h.Observe(0.7)
	h.Observe(5.0) // beyond all boundaries

	if got := h.Count(); got != 4 {
		t.Errorf("expected count 4, got %d", got)
	}
	if got := h.Sum(); got != 6.05 {
		t.Errorf("expected sum 6.05, got %g", got)
	}

	cum := h.cumulativeBuckets()
	want := []int64{1, 2, 3}
	for i, w := range want {
		if cum[i] != w {
			t.Errorf("bucket %d: expected %d, got %d", i, w, cum[i])
		}
	}
}

func TestProvider_BookingOperationCounter(t *testing.T) {
	p := NewProvider("test")
	p.BookingOperationCounter("appointment", "create")
	p.BookingOperationCounter("appointment", "create")
	p.BookingOperationCounter("diagnostic", "create")

	if got := p.GetCounter("appointment", "create"); got != 2 {
		t.Errorf("expected 2 appointment creates, got %d", got)
	}
	if got := p.GetCounter("diagnostic", "create"); got != 1 {
		t.Errorf("expected 1 diagnostic create, got %d", got)
	}
	if got := p.GetCounter("prescription", "create"); got != 0 {
		t.Errorf("expected 0 prescription creates, got %d", got)
	}
}

func TestProvider_Gauges(t *testing.T) {
	p := NewProvider("test")
	p.SetGauge("db.pool.active_connections", 5)
	p.AddGauge("db.pool.active_connections", -2)

	if got := p.GetGauge("db.pool.active_connections"); got != 3 {
		t.Errorf("expected gauge 3, got %d", got)
	}
}

func TestMetricsMiddleware_RecordsDuration(t *testing.T) {
	p := NewProvider("test")
	e := echo.New()
	e.Use(p.MetricsMiddleware())
	e.GET("/api/v1/doctors", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	h := p.GetRequestHistogram(http.MethodGet, "/api/v1/doctors", "200")
	if h == nil {
		t.Fatal("expected histogram for GET /api/v1/doctors 200")
	}
	if h.Count() != 1 {
		t.Errorf("expected 1 observation, got %d", h.Count())
	}
	if p.GetGauge("http.server.active_requests") != 0 {
		t.Errorf("expected active requests gauge back at 0, got %d", p.GetGauge("http.server.active_requests"))
	}
}

func TestPrometheusHandler_Exposition(t *testing.T) {
	p := NewProvider("test")
	p.BookingOperationCounter("appointment", "create")
	p.SetGauge("db.pool.active_connections", 2)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := p.PrometheusHandler()(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"# TYPE booking_operation_count counter",
		`booking_operation_count{kind="appointment",operation="create"} 1`,
		"db_pool_active_connections 2",
		"# TYPE http_server_active_requests gauge",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected exposition to contain %q", want)
		}
	}
}
