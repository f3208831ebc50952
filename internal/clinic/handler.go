package clinic

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the static site content: clinic profile, doctor
// roster, diagnostic packages, and testimonials.
type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/clinic", h.GetClinic)
	g.GET("/doctors", h.ListDoctors)
	g.GET("/doctors/:id", h.GetDoctor)
	g.GET("/packages", h.ListPackages)
	g.GET("/testimonials", h.ListTestimonials)
}

func (h *Handler) GetClinic(c echo.Context) error {
	// The roster and package lists have their own endpoints.
	return c.JSON(http.StatusOK, map[string]interface{}{
		"name":    h.catalog.Name,
		"tagline": h.catalog.Tagline,
		"contact": h.catalog.Contact,
		"address": h.catalog.Address,
		"hours":   h.catalog.Hours,
		"stats":   h.catalog.Stats,
	})
}

func (h *Handler) ListDoctors(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Doctors)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	doc := h.catalog.DoctorByID(c.Param("id"))
	if doc == nil {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) ListPackages(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Packages)
}

func (h *Handler) ListTestimonials(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Testimonials)
}
