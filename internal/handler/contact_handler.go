package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "oilsaas/internal/errors"
	"oilsaas/internal/service"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactResponse acknowledges a stored submission.
type ContactResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// Submit godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact data"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body", Code: "INVALID_BODY"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error(), Code: "VALIDATION_FAILED"})
	}

	id, err := h.contactService.Submit(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ContactResponse{Status: "ok", ID: id})
}
