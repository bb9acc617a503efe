package service

import (
	"fmt"
	"strconv"
	"strings"

	"solarmarket-shipping/internal/features/shipping/domain"
)

// eligibleRates filters a supplier's active rates down to the ones that may
// serve this order. A rate survives when the subtotal sits inside its order
// bounds and its type-specific condition holds: flat rates model local
// delivery and only apply within the supplier's own state, location-based
// rates need at least one lookup entry matching the destination, and
// weight-based rates carry no extra condition.
func eligibleRates(rates []domain.ShippingRate, subtotal float64, address domain.ShippingAddress, sameState bool) []domain.ShippingRate {
	var eligible []domain.ShippingRate

	for _, rate := range rates {
		if rate.MinOrderAmount > 0 && subtotal < rate.MinOrderAmount {
			continue
		}
		if rate.MaxOrderAmount > 0 && subtotal > rate.MaxOrderAmount {
			continue
		}

		switch rate.RateType {
		case domain.RateTypeFlat:
			if !sameState {
				continue
			}
		case domain.RateTypeLocationBased:
			if !hasLocationMatch(rate.LocationRates, address) {
				continue
			}
		}

		eligible = append(eligible, rate)
	}

	return eligible
}

// selectRate picks exactly one winner from a non-empty eligible set.
// Same-state orders prefer flat rates over location-based ones; cross-state
// orders prefer the mirror image. Within the preferred type the supplier's
// default rate wins, otherwise the first configured. Anything still
// unresolved (only weight-based rates eligible) falls back to the first
// eligible rate.
func selectRate(eligible []domain.ShippingRate, sameState bool) *domain.ShippingRate {
	preferred, fallback := domain.RateTypeLocationBased, domain.RateTypeFlat
	if sameState {
		preferred, fallback = domain.RateTypeFlat, domain.RateTypeLocationBased
	}

	if rate := pickByType(eligible, preferred); rate != nil {
		return rate
	}
	if rate := pickByType(eligible, fallback); rate != nil {
		return rate
	}

	return &eligible[0]
}

// pickByType returns the default-flagged rate of the given type, else the
// first of that type in list order, else nil.
func pickByType(rates []domain.ShippingRate, rateType domain.RateType) *domain.ShippingRate {
	var first *domain.ShippingRate
	for i := range rates {
		if rates[i].RateType != rateType {
			continue
		}
		if rates[i].IsDefault {
			return &rates[i]
		}
		if first == nil {
			first = &rates[i]
		}
	}
	return first
}

// hasLocationMatch reports whether any lookup entry matches the destination
// by state or by country. Empty fields never match.
func hasLocationMatch(entries []domain.LocationRate, address domain.ShippingAddress) bool {
	for _, entry := range entries {
		if entry.State != "" && address.State != "" && strings.EqualFold(entry.State, address.State) {
			return true
		}
		if entry.Country != "" && address.Country != "" && strings.EqualFold(entry.Country, address.Country) {
			return true
		}
	}
	return false
}

// failureReason explains why none of the supplier's rates were eligible.
// Deliverability problems are always surfaced before order-amount problems:
// an address the supplier cannot serve at all is a more fundamental failure
// than a bound mismatch.
func (s *ShippingService) failureReason(rates []domain.ShippingRate, subtotal float64, address domain.ShippingAddress, sameState bool) string {
	if sameState {
		if !hasRateOfType(rates, domain.RateTypeFlat) {
			return fmt.Sprintf("No same-state delivery rates available for %s", address.State)
		}
	} else {
		covered := false
		hasLocationRates := false
		for _, rate := range rates {
			if rate.RateType != domain.RateTypeLocationBased {
				continue
			}
			hasLocationRates = true
			if hasLocationMatch(rate.LocationRates, address) {
				covered = true
				break
			}
		}
		if !hasLocationRates || !covered {
			return fmt.Sprintf("We currently don't deliver to %s. Please contact us or choose a different delivery address.", describeLocation(address))
		}
	}

	if minBound, violated := smallestViolatedMinimum(rates, subtotal); violated {
		return fmt.Sprintf("Order subtotal (%s) is below minimum order amount (%s)",
			s.formatAmount(subtotal), s.formatAmount(minBound))
	}
	if maxBound, violated := largestViolatedMaximum(rates, subtotal); violated {
		return fmt.Sprintf("Order subtotal (%s) exceeds maximum order amount (%s)",
			s.formatAmount(subtotal), s.formatAmount(maxBound))
	}

	return "No suitable shipping rates found for this order"
}

func hasRateOfType(rates []domain.ShippingRate, rateType domain.RateType) bool {
	for _, rate := range rates {
		if rate.RateType == rateType {
			return true
		}
	}
	return false
}

// smallestViolatedMinimum returns the smallest min_order_amount the
// subtotal fails to reach, if any.
func smallestViolatedMinimum(rates []domain.ShippingRate, subtotal float64) (float64, bool) {
	var bound float64
	found := false
	for _, rate := range rates {
		if rate.MinOrderAmount > 0 && subtotal < rate.MinOrderAmount {
			if !found || rate.MinOrderAmount < bound {
				bound = rate.MinOrderAmount
				found = true
			}
		}
	}
	return bound, found
}

// largestViolatedMaximum returns the largest max_order_amount the subtotal
// exceeds, if any.
func largestViolatedMaximum(rates []domain.ShippingRate, subtotal float64) (float64, bool) {
	var bound float64
	found := false
	for _, rate := range rates {
		if rate.MaxOrderAmount > 0 && subtotal > rate.MaxOrderAmount {
			if !found || rate.MaxOrderAmount > bound {
				bound = rate.MaxOrderAmount
				found = true
			}
		}
	}
	return bound, found
}

// describeLocation names the destination for customer-facing messages,
// preferring state over country.
func describeLocation(address domain.ShippingAddress) string {
	if address.State != "" {
		return address.State
	}
	if address.Country != "" {
		return address.Country
	}
	return "your location"
}

func (s *ShippingService) formatAmount(amount float64) string {
	return s.currencySymbol + strconv.FormatFloat(amount, 'f', -1, 64)
}
