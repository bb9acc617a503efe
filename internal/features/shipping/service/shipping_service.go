package service

import (
	"context"
	"fmt"
	"strings"

	"solarmarket-shipping/internal/core/logger"
	"solarmarket-shipping/internal/features/shipping/domain"
	"solarmarket-shipping/internal/features/shipping/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// Delivery window applied when a rate leaves its estimate unset.
	defaultEstimatedDaysMin = 1
	defaultEstimatedDaysMax = 7

	noSuitableRateMethod = "No suitable rate found"
)

// ShippingService resolves shipping rates and computes shipping charges for
// multi-supplier carts. It holds no mutable state; every calculation is
// computed fresh from the supplier directory and the rate repository.
type ShippingService struct {
	suppliers ports.SupplierDirectory
	rates     ports.RateRepository
	// currencySymbol prefixes amounts quoted in failure reasons.
	currencySymbol string
}

// NewShippingService creates a new ShippingService.
func NewShippingService(suppliers ports.SupplierDirectory, rates ports.RateRepository, currencySymbol string) *ShippingService {
	return &ShippingService{
		suppliers:      suppliers,
		rates:          rates,
		currencySymbol: currencySymbol,
	}
}

// CalculateShippingForCart prices shipping for a whole cart. Items are
// grouped by supplier and each group is resolved independently; suppliers
// that cannot be resolved at all (missing record, no active rates, data
// layer fault) are omitted from the breakdown rather than aborting it.
//
// The method never fails: an empty cart yields an empty breakdown, and
// "rates exist but none match" surfaces as a calculation with a
// FailureReason, not as an error.
func (s *ShippingService) CalculateShippingForCart(ctx context.Context, items []domain.CartItem, address domain.ShippingAddress) *domain.ShippingBreakdown {
	breakdown := &domain.ShippingBreakdown{
		Calculations: []domain.ShippingCalculation{},
	}

	for _, group := range domain.GroupBySupplier(items) {
		calc := s.calculateSupplierShipping(ctx, group.SupplierID, group.Items, address)
		if calc == nil {
			continue
		}

		breakdown.Calculations = append(breakdown.Calculations, *calc)
		breakdown.TotalShippingAmount += calc.ShippingAmount

		// The order arrives when the slowest parcel arrives, so the
		// cart-level window is the max across suppliers.
		daysMin := calc.EstimatedDaysMin
		if daysMin == 0 {
			daysMin = defaultEstimatedDaysMin
		}
		daysMax := calc.EstimatedDaysMax
		if daysMax == 0 {
			daysMax = defaultEstimatedDaysMax
		}
		if daysMin > breakdown.TotalEstimatedDaysMin {
			breakdown.TotalEstimatedDaysMin = daysMin
		}
		if daysMax > breakdown.TotalEstimatedDaysMax {
			breakdown.TotalEstimatedDaysMax = daysMax
		}
	}

	return breakdown
}

// calculateSupplierShipping resolves shipping for one supplier's share of
// the cart. It returns nil only for structural failures: supplier record
// missing, zero active rates, or a data-layer fault. Rule mismatches come
// back as a calculation with a FailureReason so the storefront can explain
// the situation to the customer.
func (s *ShippingService) calculateSupplierShipping(ctx context.Context, supplierID string, items []domain.CartItem, address domain.ShippingAddress) *domain.ShippingCalculation {
	supplier, err := s.suppliers.GetSupplier(ctx, supplierID)
	if err != nil {
		logger.Get().Warn("Supplier lookup failed, skipping supplier",
			zap.String("supplier_id", supplierID),
			zap.Error(err),
		)
		return nil
	}
	if supplier == nil {
		logger.Get().Warn("Supplier not found, skipping supplier",
			zap.String("supplier_id", supplierID),
		)
		return nil
	}

	rates, err := s.rates.GetActiveRates(ctx, supplierID)
	if err != nil {
		logger.Get().Warn("Rate lookup failed, skipping supplier",
			zap.String("supplier_id", supplierID),
			zap.Error(err),
		)
		return nil
	}
	if len(rates) == 0 {
		return nil
	}

	subtotal := domain.Subtotal(items)
	totalWeight := domain.TotalWeightKg(items)
	itemCount := domain.ItemCount(items)
	sameState := supplier.State != "" && address.State != "" &&
		strings.EqualFold(supplier.State, address.State)

	calc := &domain.ShippingCalculation{
		SupplierID:    supplierID,
		SupplierName:  supplier.CompanyName,
		ItemCount:     itemCount,
		TotalWeightKg: totalWeight,
		Subtotal:      subtotal,
	}

	eligible := eligibleRates(rates, subtotal, address, sameState)
	if len(eligible) == 0 {
		calc.ShippingMethod = noSuitableRateMethod
		calc.FailureReason = s.failureReason(rates, subtotal, address, sameState)
		calc.AvailableRates = domain.Summarize(rates)
		return calc
	}

	selected := selectRate(eligible, sameState)

	calc.Rate = selected
	calc.ShippingAmount = calculateAmount(selected, itemCount, totalWeight, address)
	calc.ShippingMethod = selected.Name
	calc.EstimatedDaysMin = selected.EstimatedDaysMin
	if calc.EstimatedDaysMin == 0 {
		calc.EstimatedDaysMin = defaultEstimatedDaysMin
	}
	calc.EstimatedDaysMax = selected.EstimatedDaysMax
	if calc.EstimatedDaysMax == 0 {
		calc.EstimatedDaysMax = defaultEstimatedDaysMax
	}

	return calc
}

// GetSupplierShippingRates lists every rate a supplier has configured,
// active or not. Pass-through for admin rate management screens.
func (s *ShippingService) GetSupplierShippingRates(ctx context.Context, supplierID string) ([]domain.ShippingRate, error) {
	rates, err := s.rates.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list rates for supplier %s: %w", supplierID, err)
	}
	return rates, nil
}

// SaveShippingRate validates and persists one rate record, minting an id
// for new records. Persistence is a pass-through; the decision algorithm
// never runs here.
func (s *ShippingService) SaveShippingRate(ctx context.Context, rate *domain.ShippingRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	if rate.ID == "" {
		rate.ID = uuid.NewString()
	}

	if err := s.rates.Save(ctx, rate); err != nil {
		return fmt.Errorf("service: failed to save rate %s: %w", rate.ID, err)
	}
	return nil
}
