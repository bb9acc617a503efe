package service

import (
	"math"
	"strings"

	"solarmarket-shipping/internal/features/shipping/domain"
)

// calculateAmount computes the shipping charge for the selected rate.
// Only the field group matching the rate's type is consulted; an
// unrecognized type prices to zero.
func calculateAmount(rate *domain.ShippingRate, itemCount int, totalWeightKg float64, address domain.ShippingAddress) float64 {
	switch rate.RateType {
	case domain.RateTypeFlat:
		return flatAmount(rate, itemCount)
	case domain.RateTypeWeightBased:
		return weightBasedAmount(rate, totalWeightKg)
	case domain.RateTypeLocationBased:
		return locationBasedAmount(rate, itemCount, totalWeightKg, address)
	default:
		return 0
	}
}

func flatAmount(rate *domain.ShippingRate, itemCount int) float64 {
	if rate.FlatRateType == domain.ChargeBasisPerItem {
		return rate.FlatRateAmount * float64(itemCount)
	}
	return rate.FlatRateAmount
}

// weightBasedAmount charges the base rate for anything up to the base
// weight, plus one increment charge per started increment beyond it. A
// 0.1 kg excess over a 5 kg increment still costs one full increment.
func weightBasedAmount(rate *domain.ShippingRate, totalWeightKg float64) float64 {
	if rate.BaseWeightKg == nil || rate.BaseWeightRate == nil {
		return 0
	}

	amount := *rate.BaseWeightRate

	if totalWeightKg > *rate.BaseWeightKg &&
		rate.AdditionalWeightKg != nil && rate.AdditionalWeightRate != nil &&
		*rate.AdditionalWeightKg > 0 {
		increments := math.Ceil((totalWeightKg - *rate.BaseWeightKg) / *rate.AdditionalWeightKg)
		amount += increments * *rate.AdditionalWeightRate
	}

	return amount
}

func locationBasedAmount(rate *domain.ShippingRate, itemCount int, totalWeightKg float64, address domain.ShippingAddress) float64 {
	baseRate := resolveLocationRate(rate.LocationRates, address)

	var amount float64
	if rate.LocationRateType == domain.ChargeBasisPerOrder {
		amount = baseRate
	} else {
		// Default basis is per_item. Granular first/additional item
		// pricing supersedes the lookup table when both fields are
		// configured, even at zero.
		if rate.LocationBaseItemRate != nil && rate.LocationAdditionalItemRate != nil {
			amount = *rate.LocationBaseItemRate
			if itemCount > 1 {
				amount += *rate.LocationAdditionalItemRate * float64(itemCount-1)
			}
		} else {
			amount = baseRate * float64(itemCount)
		}
	}

	return amount + locationWeightSurcharge(rate, totalWeightKg)
}

// resolveLocationRate looks up the destination in the rate table: first
// entry matching by state wins, then first matching by country, then the
// first entry as a catch-all. An empty table resolves to zero.
func resolveLocationRate(entries []domain.LocationRate, address domain.ShippingAddress) float64 {
	if len(entries) == 0 {
		return 0
	}

	for _, entry := range entries {
		if entry.State != "" && address.State != "" && strings.EqualFold(entry.State, address.State) {
			return entry.Rate
		}
	}
	for _, entry := range entries {
		if entry.Country != "" && address.Country != "" && strings.EqualFold(entry.Country, address.Country) {
			return entry.Rate
		}
	}

	return entries[0].Rate
}

// locationWeightSurcharge adds weight-tier pricing on top of the location
// charge. It only engages when all four fields are configured and at least
// one is non-zero, so an all-zero default config stays inert. A zero
// increment size charges the base surcharge flat instead of dividing by
// zero.
func locationWeightSurcharge(rate *domain.ShippingRate, totalWeightKg float64) float64 {
	if rate.LocationBaseWeightKg == nil || rate.LocationBaseWeightRate == nil ||
		rate.LocationAdditionalWeightKg == nil || rate.LocationAdditionalWeightRate == nil {
		return 0
	}
	if *rate.LocationBaseWeightKg == 0 && *rate.LocationBaseWeightRate == 0 &&
		*rate.LocationAdditionalWeightKg == 0 && *rate.LocationAdditionalWeightRate == 0 {
		return 0
	}
	if totalWeightKg <= *rate.LocationBaseWeightKg {
		return 0
	}

	if *rate.LocationAdditionalWeightKg > 0 {
		increments := math.Ceil((totalWeightKg - *rate.LocationBaseWeightKg) / *rate.LocationAdditionalWeightKg)
		return *rate.LocationBaseWeightRate + *rate.LocationAdditionalWeightRate*increments
	}
	return *rate.LocationBaseWeightRate
}
