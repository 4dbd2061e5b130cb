package model

// CollectionPricingPlan is the document collection holding pricing plans.
const CollectionPricingPlan = "pricingplan"

// PricingPlan represents a subscription tier shown on the pricing page.
type PricingPlan struct {
	Name         string   `json:"name"`
	PriceMonthly float64  `json:"price_monthly"`
	PriceYearly  float64  `json:"price_yearly"`
	Features     []string `json:"features"`
	MostPopular  bool     `json:"most_popular"`
}

// DefaultPlans returns the three fixed plans used to lazily seed an empty
// pricing collection.
func DefaultPlans() []PricingPlan {
	return []PricingPlan{
		{
			Name:         "Starter",
			PriceMonthly: 49,
			PriceYearly:  490,
			Features: []string{
				"Up to 1,000 barrels tracked",
				"Basic analytics",
				"Email support",
			},
			MostPopular: false,
		},
		{
			Name:         "Pro",
			PriceMonthly: 199,
			PriceYearly:  1990,
			Features: []string{
				"Up to 25,000 barrels tracked",
				"Advanced analytics",
				"API access",
				"Priority support",
			},
			MostPopular: true,
		},
		{
			Name:         "Enterprise",
			PriceMonthly: 0,
			PriceYearly:  0,
			Features: []string{
				"Unlimited scale",
				"Custom SLAs",
				"Dedicated onboarding",
				"SAML SSO",
			},
			MostPopular: false,
		},
	}
}
