package usecase

import (
	"context"

	"agency/internal/domain/entity"
)

// ContentUsecase serves the static marketing content.
type ContentUsecase interface {
	ListPricingTiers(ctx context.Context) []entity.PricingTier
	ListTestimonials(ctx context.Context) []entity.Testimonial
}
