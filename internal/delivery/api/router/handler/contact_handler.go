package handler

import (
	"net/http"

	"agency/internal/delivery/api/response"
	"agency/internal/delivery/middleware"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type contactRequest struct {
	Name    *string `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Message *string `json:"message" validate:"required"`
}

type contactResponse struct {
	OK       bool `json:"ok"`
	Received bool `json:"received"`
}

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		middleware.RecordContactSubmission(middleware.OutcomeRejected)

		return err
	}

	output, err := h.uc.SubmitContact(c.Request().Context(), &usecase.ContactInput{
		Name:    *req.Name,
		Email:   req.Email,
		Message: *req.Message,
	})
	middleware.RecordContactSubmission(outcome(err))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, contactResponse{
		OK:       output.OK,
		Received: output.Received,
	})
}
