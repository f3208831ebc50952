package clinic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_GetClinic(t *testing.T) {
	h := NewHandler(Default())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinic", nil)
	rec := httptest.NewRecorder()

	if err := h.GetClinic(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["name"] != "ABC Clinic" {
		t.Errorf("expected clinic name, got %v", resp["name"])
	}
}

func TestHandler_ListDoctors(t *testing.T) {
	h := NewHandler(Default())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	rec := httptest.NewRecorder()

	if err := h.ListDoctors(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var docs []Doctor
	if err := json.Unmarshal(rec.Body.Bytes(), &docs); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(docs) != 4 {
		t.Errorf("expected 4 doctors, got %d", len(docs))
	}
}

func TestHandler_GetDoctor(t *testing.T) {
	h := NewHandler(Default())
	e := echo.New()

	t.Run("known", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("meera-iyer")

		if err := h.GetDoctor(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var doc Doctor
		if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if doc.Name != "Dr. Meera Iyer" {
			t.Errorf("unexpected doctor %q", doc.Name)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues("nobody")

		err := h.GetDoctor(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %v", err)
		}
	})
}

func TestHandler_ListPackagesAndTestimonials(t *testing.T) {
	h := NewHandler(Default())
	e := echo.New()

	rec := httptest.NewRecorder()
	if err := h.ListPackages(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatalf("ListPackages: %v", err)
	}
	var pkgs []DiagnosticPackage
	if err := json.Unmarshal(rec.Body.Bytes(), &pkgs); err != nil {
		t.Fatalf("unmarshal packages: %v", err)
	}
	if len(pkgs) != 6 {
		t.Errorf("expected 6 packages, got %d", len(pkgs))
	}

	rec = httptest.NewRecorder()
	if err := h.ListTestimonials(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatalf("ListTestimonials: %v", err)
	}
	var ts []Testimonial
	if err := json.Unmarshal(rec.Body.Bytes(), &ts); err != nil {
		t.Fatalf("unmarshal testimonials: %v", err)
	}
	if len(ts) != 6 {
		t.Errorf("expected 6 testimonials, got %d", len(ts))
	}
}
