package domain

import "errors"

// RateType selects the pricing formula a shipping rate uses.
type RateType string

const (
	// RateTypeFlat charges a fixed amount, per item or per order.
	RateTypeFlat RateType = "flat"
	// RateTypeWeightBased charges by total cart weight in tiered increments.
	RateTypeWeightBased RateType = "weight_based"
	// RateTypeLocationBased charges from a per-state/per-country lookup table.
	RateTypeLocationBased RateType = "location_based"
)

// ChargeBasis determines whether an amount applies once per order or once per item.
type ChargeBasis string

const (
	ChargeBasisPerItem  ChargeBasis = "per_item"
	ChargeBasisPerOrder ChargeBasis = "per_order"
)

var (
	ErrInvalidRateType    = errors.New("invalid rate type")
	ErrInvalidChargeBasis = errors.New("invalid charge basis")
	ErrNegativeAmount     = errors.New("rate amounts must not be negative")
	ErrInvalidOrderBounds = errors.New("min order amount exceeds max order amount")
	ErrMissingSupplier    = errors.New("shipping rate requires a supplier id")
)

// LocationRate is one row of a location-based rate's lookup table.
// State and Country are free-text and matched case-insensitively against
// the destination address.
type LocationRate struct {
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
	Rate    float64 `json:"rate"`
}

// ShippingRate is one shipping policy configured by a supplier.
//
// RateType decides which field group is meaningful; fields outside the
// active group are ignored by the pricing formulas even when populated.
// Pointer fields distinguish "not configured" from an explicit zero, which
// matters for the granular location per-item fields and the weight
// surcharge guard.
type ShippingRate struct {
	ID          string   `json:"id"`
	SupplierID  string   `json:"supplier_id"`
	RateType    RateType `json:"rate_type"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`

	// Flat fields.
	FlatRateAmount float64     `json:"flat_rate_amount,omitempty"`
	FlatRateType   ChargeBasis `json:"flat_rate_type,omitempty"`

	// Weight-based fields. BaseWeightRate covers everything up to
	// BaseWeightKg; each started AdditionalWeightKg increment beyond that
	// costs AdditionalWeightRate.
	BaseWeightKg         *float64 `json:"base_weight_kg,omitempty"`
	BaseWeightRate       *float64 `json:"base_weight_rate,omitempty"`
	AdditionalWeightKg   *float64 `json:"additional_weight_kg,omitempty"`
	AdditionalWeightRate *float64 `json:"additional_weight_rate,omitempty"`

	// Location-based fields.
	LocationRates    []LocationRate `json:"location_rates,omitempty"`
	LocationRateType ChargeBasis    `json:"location_rate_type,omitempty"`
	// Granular per-item pricing; when both are set they supersede the
	// LocationRates lookup for per-item computation.
	LocationBaseItemRate       *float64 `json:"location_base_item_rate,omitempty"`
	LocationAdditionalItemRate *float64 `json:"location_additional_item_rate,omitempty"`
	// Weight surcharge added on top of the location charge when all four
	// are configured and at least one is non-zero.
	LocationBaseWeightKg         *float64 `json:"location_base_weight_kg,omitempty"`
	LocationBaseWeightRate       *float64 `json:"location_base_weight_rate,omitempty"`
	LocationAdditionalWeightKg   *float64 `json:"location_additional_weight_kg,omitempty"`
	LocationAdditionalWeightRate *float64 `json:"location_additional_weight_rate,omitempty"`

	// Eligibility bounds. Zero means "no bound".
	MinOrderAmount float64 `json:"min_order_amount,omitempty"`
	MaxOrderAmount float64 `json:"max_order_amount,omitempty"`

	// Delivery window, informational. Zero means "not set" and defaults
	// to 1/7 days in calculation results.
	EstimatedDaysMin int `json:"estimated_days_min,omitempty"`
	EstimatedDaysMax int `json:"estimated_days_max,omitempty"`

	IsActive  bool `json:"is_active"`
	IsDefault bool `json:"is_default"`
}

// Validate checks the structural invariants a rate must satisfy before it
// can be persisted. It does not check formula-group completeness: a rate
// with missing optional fields is legal and simply prices to zero.
func (r *ShippingRate) Validate() error {
	if r.SupplierID == "" {
		return ErrMissingSupplier
	}

	switch r.RateType {
	case RateTypeFlat, RateTypeWeightBased, RateTypeLocationBased:
	default:
		return ErrInvalidRateType
	}

	if r.FlatRateType != "" && r.FlatRateType != ChargeBasisPerItem && r.FlatRateType != ChargeBasisPerOrder {
		return ErrInvalidChargeBasis
	}
	if r.LocationRateType != "" && r.LocationRateType != ChargeBasisPerItem && r.LocationRateType != ChargeBasisPerOrder {
		return ErrInvalidChargeBasis
	}

	if r.FlatRateAmount < 0 || r.MinOrderAmount < 0 || r.MaxOrderAmount < 0 {
		return ErrNegativeAmount
	}
	for _, lr := range r.LocationRates {
		if lr.Rate < 0 {
			return ErrNegativeAmount
		}
	}

	if r.MinOrderAmount > 0 && r.MaxOrderAmount > 0 && r.MinOrderAmount > r.MaxOrderAmount {
		return ErrInvalidOrderBounds
	}

	return nil
}

// Supplier is the slice of the marketplace supplier record the engine
// needs: display name and home state for same-state detection.
type Supplier struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	State       string `json:"state,omitempty"`
}
