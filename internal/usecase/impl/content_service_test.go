package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_ListPricingTiers(t *testing.T) {
	srv := NewContentService()

	tiers := srv.ListPricingTiers(context.Background())
	require.Len(t, tiers, 3)
	assert.Equal(t, "Starter", tiers[0].Name)
	assert.InDelta(t, 299.0, tiers[0].Price, 0)
	assert.Equal(t, []string{"Up to 60s video", "1 revision", "48h delivery"}, tiers[0].Features)
	assert.Equal(t, "Pro", tiers[1].Name)
	assert.InDelta(t, 699.0, tiers[1].Price, 0)
	assert.Equal(t, "Studio", tiers[2].Name)
	assert.InDelta(t, 1499.0, tiers[2].Price, 0)
	assert.Equal(t, "Agency-level polish", tiers[2].Description)
}

func TestContentService_ListPricingTiers_IsolatedCopies(t *testing.T) {
	srv := NewContentService()
	ctx := context.Background()

	first := srv.ListPricingTiers(ctx)
	first[0].Name = "Changed"
	first[0].Features[0] = "Changed"

	second := srv.ListPricingTiers(ctx)
	assert.Equal(t, "Starter", second[0].Name)
	assert.Equal(t, "Up to 60s video", second[0].Features[0])
}

func TestContentService_ListTestimonials(t *testing.T) {
	srv := NewContentService()
	ctx := context.Background()

	got := srv.ListTestimonials(ctx)
	require.Len(t, got, 3)
	assert.Equal(t, "Ava Stone", got[0].Name)
	assert.Equal(t, "Creator", got[0].Role)
	assert.Equal(t, "Liam Chen", got[1].Name)
	assert.Equal(t, "Maya Patel", got[2].Name)
	assert.Equal(t, "Our ads converted 2x better after their edits.", got[2].Quote)
	assert.Nil(t, got[0].Avatar)

	got[0].Name = "Changed"
	assert.Equal(t, "Ava Stone", srv.ListTestimonials(ctx)[0].Name)
}
