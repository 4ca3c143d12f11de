package handler

import (
	"net/http"

	"agency/internal/delivery/api/response"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
)

type statusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

type diagnosticResponse struct {
	Backend          string   `json:"backend"`
	Store            string   `json:"store,omitempty"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// HealthHandler serves the banner, liveness and store diagnostic endpoints.
type HealthHandler struct {
	uc usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(uc usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

// Root handles GET /.
func (h *HealthHandler) Root(c echo.Context) error {
	status := h.uc.Status(c.Request().Context())

	return response.JSON(c, http.StatusOK, statusResponse{
		Status:  status.Status,
		Service: status.Service,
	})
}

// Health handles GET /health. It does not touch the store.
func (h *HealthHandler) Health(c echo.Context) error {
	return response.JSON(c, http.StatusOK, statusResponse{Status: "ok"})
}

// Diagnose handles GET /test. Store failures are reported in the body with a 200.
func (h *HealthHandler) Diagnose(c echo.Context) error {
	report := h.uc.Diagnose(c.Request().Context())

	collections := report.Collections
	if collections == nil {
		collections = []string{}
	}

	return response.JSON(c, http.StatusOK, diagnosticResponse{
		Backend:          report.Backend,
		Store:            report.Store,
		Database:         report.Database,
		DatabaseURL:      report.DatabaseURL,
		DatabaseName:     report.DatabaseName,
		ConnectionStatus: report.ConnectionStatus,
		Collections:      collections,
	})
}
