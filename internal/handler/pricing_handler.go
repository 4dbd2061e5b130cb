package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "oilsaas/internal/errors"
	"oilsaas/internal/service"
)

// PricingHandler handles the pricing listing endpoint.
type PricingHandler struct {
	pricingService service.PricingService
}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler(pricingService service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// List godoc
// @Summary List pricing plans
// @Tags pricing
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/pricing [get]
func (h *PricingHandler) List(c echo.Context) error {
	plans, err := h.pricingService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, plans)
}
