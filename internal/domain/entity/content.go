package entity

// PricingTier is one package on the public pricing page. Tiers have no identity
// beyond their position in the list.
type PricingTier struct {
	Name        string
	Price       float64
	Description string
	Features    []string
}

// Testimonial is a client quote shown on the marketing site.
type Testimonial struct {
	Name   string
	Role   string
	Quote  string
	Avatar *string // Optional avatar URL.
}
