package domain

// RateSummary is the trimmed view of a rate attached to failed
// calculations so the storefront can show the customer what the supplier
// does offer.
type RateSummary struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	RateType         RateType `json:"rate_type"`
	MinOrderAmount   float64  `json:"min_order_amount,omitempty"`
	MaxOrderAmount   float64  `json:"max_order_amount,omitempty"`
	EstimatedDaysMin int      `json:"estimated_days_min,omitempty"`
	EstimatedDaysMax int      `json:"estimated_days_max,omitempty"`
}

// Summarize converts a rate list into summaries, preserving order.
func Summarize(rates []ShippingRate) []RateSummary {
	summaries := make([]RateSummary, 0, len(rates))
	for _, r := range rates {
		summaries = append(summaries, RateSummary{
			ID:               r.ID,
			Name:             r.Name,
			RateType:         r.RateType,
			MinOrderAmount:   r.MinOrderAmount,
			MaxOrderAmount:   r.MaxOrderAmount,
			EstimatedDaysMin: r.EstimatedDaysMin,
			EstimatedDaysMax: r.EstimatedDaysMax,
		})
	}
	return summaries
}

// ShippingCalculation is the per-supplier outcome. A calculation with a
// non-empty FailureReason carries a zero amount plus the supplier's
// available rates; it is a business condition, not an error.
type ShippingCalculation struct {
	SupplierID   string `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	// Rate is the winning rate. Nil when no rate was eligible.
	Rate             *ShippingRate `json:"rate,omitempty"`
	ShippingAmount   float64       `json:"shipping_amount"`
	ShippingMethod   string        `json:"shipping_method"`
	EstimatedDaysMin int           `json:"estimated_days_min,omitempty"`
	EstimatedDaysMax int           `json:"estimated_days_max,omitempty"`
	ItemCount        int           `json:"item_count"`
	TotalWeightKg    float64       `json:"total_weight_kg"`
	Subtotal         float64       `json:"subtotal"`
	FailureReason    string        `json:"failure_reason,omitempty"`
	AvailableRates   []RateSummary `json:"available_rates,omitempty"`
}

// ShippingBreakdown is the cart-level result. Estimated day totals are
// the maximum across suppliers, not the sum: parallel shipments complete
// when the slowest one does.
type ShippingBreakdown struct {
	Calculations          []ShippingCalculation `json:"calculations"`
	TotalShippingAmount   float64               `json:"total_shipping_amount"`
	TotalEstimatedDaysMin int                   `json:"total_estimated_days_min"`
	TotalEstimatedDaysMax int                   `json:"total_estimated_days_max"`
}
