package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"oilsaas/internal/service"
)

// StatusHandler serves the diagnostic endpoint.
type StatusHandler struct {
	statusService service.StatusService
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(statusService service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// Check godoc
// @Summary Backend and database diagnostics
// @Tags status
// @Produce json
// @Success 200 {object} service.StatusReport
// @Router /test [get]
func (h *StatusHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, h.statusService.Check(c.Request().Context()))
}
