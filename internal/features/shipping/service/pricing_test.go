package service

import (
	"testing"

	"solarmarket-shipping/internal/features/shipping/domain"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

// TestFlatAmount verifies the per-item and per-order flat formulas.
func TestFlatAmount(t *testing.T) {
	perItem := &domain.ShippingRate{
		RateType:       domain.RateTypeFlat,
		FlatRateAmount: 500,
		FlatRateType:   domain.ChargeBasisPerItem,
	}
	assert.Equal(t, 1500.0, calculateAmount(perItem, 3, 0, domain.ShippingAddress{}))

	perOrder := &domain.ShippingRate{
		RateType:       domain.RateTypeFlat,
		FlatRateAmount: 500,
		FlatRateType:   domain.ChargeBasisPerOrder,
	}
	assert.Equal(t, 500.0, calculateAmount(perOrder, 3, 0, domain.ShippingAddress{}))
	assert.Equal(t, 500.0, calculateAmount(perOrder, 12, 0, domain.ShippingAddress{}))
}

// TestWeightBasedAmount verifies tier pricing, including that a partial
// increment is charged as a full one.
func TestWeightBasedAmount(t *testing.T) {
	rate := &domain.ShippingRate{
		RateType:             domain.RateTypeWeightBased,
		BaseWeightKg:         f(5),
		BaseWeightRate:       f(1000),
		AdditionalWeightKg:   f(2),
		AdditionalWeightRate: f(300),
	}

	tests := []struct {
		name     string
		weightKg float64
		expected float64
	}{
		{name: "WithinBaseAllowance", weightKg: 4, expected: 1000},
		{name: "ExactlyAtBase", weightKg: 5, expected: 1000},
		{name: "PartialIncrementChargedFull", weightKg: 5.1, expected: 1300},
		{name: "ExactIncrement", weightKg: 7, expected: 1300},
		{name: "TwoIncrements", weightKg: 7.5, expected: 1600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calculateAmount(rate, 1, tt.weightKg, domain.ShippingAddress{}))
		})
	}
}

// TestWeightBasedAmount_MissingBaseFields verifies a weight rate without
// its base configuration prices to zero.
func TestWeightBasedAmount_MissingBaseFields(t *testing.T) {
	rate := &domain.ShippingRate{RateType: domain.RateTypeWeightBased}
	assert.Zero(t, calculateAmount(rate, 1, 10, domain.ShippingAddress{}))

	rate = &domain.ShippingRate{RateType: domain.RateTypeWeightBased, BaseWeightKg: f(5)}
	assert.Zero(t, calculateAmount(rate, 1, 10, domain.ShippingAddress{}))
}

// TestWeightBasedAmount_ZeroIncrementSize verifies a zero additional
// increment never divides by zero and charges the base rate only.
func TestWeightBasedAmount_ZeroIncrementSize(t *testing.T) {
	rate := &domain.ShippingRate{
		RateType:             domain.RateTypeWeightBased,
		BaseWeightKg:         f(5),
		BaseWeightRate:       f(1000),
		AdditionalWeightKg:   f(0),
		AdditionalWeightRate: f(300),
	}
	assert.Equal(t, 1000.0, calculateAmount(rate, 1, 9, domain.ShippingAddress{}))
}

// TestLocationBasedAmount_PerOrder verifies the per-order lookup charge.
func TestLocationBasedAmount_PerOrder(t *testing.T) {
	rate := &domain.ShippingRate{
		RateType: domain.RateTypeLocationBased,
		LocationRates: []domain.LocationRate{
			{State: "Abuja", Rate: 1200},
			{State: "Kano", Rate: 1800},
		},
		LocationRateType: domain.ChargeBasisPerOrder,
	}

	amount := calculateAmount(rate, 4, 0, domain.ShippingAddress{State: "kano"})
	assert.Equal(t, 1800.0, amount)
}

// TestLocationBasedAmount_PerItemLookup verifies the per-item charge from
// the lookup table when no granular fields are configured, and that the
// basis defaults to per_item when unset.
func TestLocationBasedAmount_PerItemLookup(t *testing.T) {
	rate := &domain.ShippingRate{
		RateType:      domain.RateTypeLocationBased,
		LocationRates: []domain.LocationRate{{State: "Abuja", Rate: 400}},
	}

	amount := calculateAmount(rate, 3, 0, domain.ShippingAddress{State: "Abuja"})
	assert.Equal(t, 1200.0, amount)
}

// TestLocationBasedAmount_GranularPerItem verifies first-item/additional-item
// pricing supersedes the lookup table.
func TestLocationBasedAmount_GranularPerItem(t *testing.T) {
	rate := &domain.ShippingRate{
		RateType:                   domain.RateTypeLocationBased,
		LocationRates:              []domain.LocationRate{{State: "Abuja", Rate: 9999}},
		LocationRateType:           domain.ChargeBasisPerItem,
		LocationBaseItemRate:       f(800),
		LocationAdditionalItemRate: f(200),
	}

	assert.Equal(t, 800.0, calculateAmount(rate, 1, 0, domain.ShippingAddress{State: "Abuja"}))
	assert.Equal(t, 1400.0, calculateAmount(rate, 4, 0, domain.ShippingAddress{State: "Abuja"}))
}

// TestLocationBasedAmount_GranularZeroRates verifies explicitly-zero
// granular fields still supersede the lookup table.
func TestLocationBasedAmount_GranularZeroRates(t *testing.T) {
	rate := &domain.ShippingRate{
		RateType:                   domain.RateTypeLocationBased,
		LocationRates:              []domain.LocationRate{{State: "Abuja", Rate: 500}},
		LocationBaseItemRate:       f(0),
		LocationAdditionalItemRate: f(0),
	}

	assert.Zero(t, calculateAmount(rate, 3, 0, domain.ShippingAddress{State: "Abuja"}))
}

// TestResolveLocationRate verifies the lookup preference: state match, then
// country match, then the first entry as catch-all.
func TestResolveLocationRate(t *testing.T) {
	entries := []domain.LocationRate{
		{State: "Abuja", Rate: 1200},
		{Country: "Nigeria", Rate: 2000},
		{State: "Kano", Rate: 1800},
	}

	assert.Equal(t, 1800.0, resolveLocationRate(entries, domain.ShippingAddress{State: "KANO", Country: "Nigeria"}))
	assert.Equal(t, 2000.0, resolveLocationRate(entries, domain.ShippingAddress{State: "Oyo", Country: "nigeria"}))
	assert.Equal(t, 1200.0, resolveLocationRate(entries, domain.ShippingAddress{State: "Oyo", Country: "Benin"}))
	assert.Zero(t, resolveLocationRate(nil, domain.ShippingAddress{State: "Oyo"}))
}

// TestLocationWeightSurcharge verifies the add-on tiers and its guards.
func TestLocationWeightSurcharge(t *testing.T) {
	base := func() *domain.ShippingRate {
		return &domain.ShippingRate{
			RateType:                     domain.RateTypeLocationBased,
			LocationRates:                []domain.LocationRate{{State: "Abuja", Rate: 1000}},
			LocationRateType:             domain.ChargeBasisPerOrder,
			LocationBaseWeightKg:         f(10),
			LocationBaseWeightRate:       f(500),
			LocationAdditionalWeightKg:   f(5),
			LocationAdditionalWeightRate: f(250),
		}
	}
	addr := domain.ShippingAddress{State: "Abuja"}

	t.Run("WithinBaseAllowance", func(t *testing.T) {
		assert.Equal(t, 1000.0, calculateAmount(base(), 1, 8, addr))
	})

	t.Run("OneStartedIncrement", func(t *testing.T) {
		// 1000 + 500 + ceil(2/5)*250
		assert.Equal(t, 1750.0, calculateAmount(base(), 1, 12, addr))
	})

	t.Run("ZeroIncrementSizeChargesBaseFlat", func(t *testing.T) {
		rate := base()
		rate.LocationAdditionalWeightKg = f(0)
		assert.Equal(t, 1500.0, calculateAmount(rate, 1, 12, addr))
	})

	t.Run("AllZeroConfigStaysInert", func(t *testing.T) {
		rate := base()
		rate.LocationBaseWeightKg = f(0)
		rate.LocationBaseWeightRate = f(0)
		rate.LocationAdditionalWeightKg = f(0)
		rate.LocationAdditionalWeightRate = f(0)
		assert.Equal(t, 1000.0, calculateAmount(rate, 1, 12, addr))
	})

	t.Run("MissingFieldStaysInert", func(t *testing.T) {
		rate := base()
		rate.LocationAdditionalWeightRate = nil
		assert.Equal(t, 1000.0, calculateAmount(rate, 1, 12, addr))
	})
}

// TestCalculateAmount_UnrecognizedType verifies the defensive zero default.
func TestCalculateAmount_UnrecognizedType(t *testing.T) {
	rate := &domain.ShippingRate{RateType: "carrier_pigeon"}
	assert.Zero(t, calculateAmount(rate, 3, 10, domain.ShippingAddress{}))
}

// TestEligibleRates covers the filter conditions in one table.
func TestEligibleRates(t *testing.T) {
	address := domain.ShippingAddress{State: "Abuja", Country: "Nigeria"}

	flat := domain.ShippingRate{ID: "flat", RateType: domain.RateTypeFlat}
	weight := domain.ShippingRate{ID: "weight", RateType: domain.RateTypeWeightBased}
	locMatch := domain.ShippingRate{
		ID: "loc-match", RateType: domain.RateTypeLocationBased,
		LocationRates: []domain.LocationRate{{State: "Abuja", Rate: 1000}},
	}
	locMiss := domain.ShippingRate{
		ID: "loc-miss", RateType: domain.RateTypeLocationBased,
		LocationRates: []domain.LocationRate{{State: "Kano", Rate: 1000}},
	}
	bounded := domain.ShippingRate{
		ID: "bounded", RateType: domain.RateTypeWeightBased,
		MinOrderAmount: 1000, MaxOrderAmount: 5000,
	}

	tests := []struct {
		name      string
		rates     []domain.ShippingRate
		subtotal  float64
		sameState bool
		wantIDs   []string
	}{
		{
			name:      "FlatOnlyEligibleSameState",
			rates:     []domain.ShippingRate{flat},
			subtotal:  500,
			sameState: true,
			wantIDs:   []string{"flat"},
		},
		{
			name:     "FlatIneligibleCrossState",
			rates:    []domain.ShippingRate{flat},
			subtotal: 500,
			wantIDs:  nil,
		},
		{
			name:     "LocationNeedsMatchingEntry",
			rates:    []domain.ShippingRate{locMatch, locMiss},
			subtotal: 500,
			wantIDs:  []string{"loc-match"},
		},
		{
			name:     "WeightAlwaysCandidate",
			rates:    []domain.ShippingRate{weight},
			subtotal: 500,
			wantIDs:  []string{"weight"},
		},
		{
			name:     "BelowMinimumExcluded",
			rates:    []domain.ShippingRate{bounded},
			subtotal: 800,
			wantIDs:  nil,
		},
		{
			name:     "AboveMaximumExcluded",
			rates:    []domain.ShippingRate{bounded},
			subtotal: 6000,
			wantIDs:  nil,
		},
		{
			name:     "InsideBoundsIncluded",
			rates:    []domain.ShippingRate{bounded},
			subtotal: 3000,
			wantIDs:  []string{"bounded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eligible := eligibleRates(tt.rates, tt.subtotal, address, tt.sameState)
			ids := make([]string, 0, len(eligible))
			for _, r := range eligible {
				ids = append(ids, r.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}
