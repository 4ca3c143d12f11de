package impl

import (
	"context"
	"slices"

	"agency/internal/domain/entity"
	"agency/internal/usecase"
)

var pricingTiers = []entity.PricingTier{
	{
		Name:        "Starter",
		Price:       299,
		Description: "Perfect for quick social edits",
		Features:    []string{"Up to 60s video", "1 revision", "48h delivery"},
	},
	{
		Name:        "Pro",
		Price:       699,
		Description: "For creators and brands",
		Features:    []string{"Up to 5 min", "3 revisions", "Color + sound mix"},
	},
	{
		Name:        "Studio",
		Price:       1499,
		Description: "Agency-level polish",
		Features:    []string{"10+ min", "Unlimited revisions", "Motion graphics"},
	},
}

var testimonials = []entity.Testimonial{
	{Name: "Ava Stone", Role: "Creator", Quote: "They made my content pop — fast and flawless!"},
	{Name: "Liam Chen", Role: "Brand Manager", Quote: "Consistent quality and on-time delivery every time."},
	{Name: "Maya Patel", Role: "Founder", Quote: "Our ads converted 2x better after their edits."},
}

type contentService struct{}

// NewContentService serves the fixed pricing and testimonial lists.
func NewContentService() usecase.ContentUsecase {
	return &contentService{}
}

// ListPricingTiers returns a copy so callers cannot alter the shared list.
func (srv *contentService) ListPricingTiers(_ context.Context) []entity.PricingTier {
	tiers := make([]entity.PricingTier, len(pricingTiers))
	for i, tier := range pricingTiers {
		tier.Features = slices.Clone(tier.Features)
		tiers[i] = tier
	}

	return tiers
}

func (srv *contentService) ListTestimonials(_ context.Context) []entity.Testimonial {
	return slices.Clone(testimonials)
}
