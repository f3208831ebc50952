package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/abcclinic/clinic/internal/platform/auth"
)

type Handler struct {
	svc      *Service
	verifier *auth.Verifier
	issuer   *auth.TokenIssuer
	logger   zerolog.Logger
}

func NewHandler(svc *Service, verifier *auth.Verifier, issuer *auth.TokenIssuer, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, verifier: verifier, issuer: issuer, logger: logger}
}

// RegisterRoutes wires login on the public group and the dashboard on
// the authenticated admin group.
func (h *Handler) RegisterRoutes(public, admin *echo.Group) {
	public.POST("/admin/login", h.Login)
	admin.GET("/dashboard", h.GetDashboard)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !h.verifier.Verify(req.Username, req.Password) {
		h.logger.Warn().Str("username", req.Username).Msg("failed admin login")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.issuer.Issue(req.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not issue token")
	}

	h.logger.Info().Str("username", req.Username).Msg("admin login")
	return c.JSON(http.StatusOK, loginResponse{Token: token, Username: req.Username})
}

func (h *Handler) GetDashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}
