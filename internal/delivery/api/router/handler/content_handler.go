package handler

import (
	"net/http"

	"agency/internal/delivery/api/response"
	"agency/internal/domain/entity"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
)

type pricingTierResponse struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

type testimonialResponse struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Quote  string  `json:"quote"`
	Avatar *string `json:"avatar"`
}

// ContentHandler serves the static marketing content.
type ContentHandler struct {
	uc usecase.ContentUsecase
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// Pricing handles GET /pricing.
func (h *ContentHandler) Pricing(c echo.Context) error {
	tiers := h.uc.ListPricingTiers(c.Request().Context())

	body := make([]pricingTierResponse, 0, len(tiers))
	for _, tier := range tiers {
		body = append(body, toPricingTierResponse(tier))
	}

	return response.JSON(c, http.StatusOK, body)
}

// Testimonials handles GET /testimonials.
func (h *ContentHandler) Testimonials(c echo.Context) error {
	testimonials := h.uc.ListTestimonials(c.Request().Context())

	body := make([]testimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		body = append(body, testimonialResponse{
			Name:   t.Name,
			Role:   t.Role,
			Quote:  t.Quote,
			Avatar: t.Avatar,
		})
	}

	return response.JSON(c, http.StatusOK, body)
}

func toPricingTierResponse(tier entity.PricingTier) pricingTierResponse {
	features := tier.Features
	if features == nil {
		features = []string{}
	}

	return pricingTierResponse{
		Name:        tier.Name,
		Price:       tier.Price,
		Description: tier.Description,
		Features:    features,
	}
}
