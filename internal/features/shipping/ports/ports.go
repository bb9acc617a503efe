package ports

import (
	"context"

	"solarmarket-shipping/internal/features/shipping/domain"
)

// SupplierDirectory resolves marketplace supplier records. This is a
// Secondary Port (Driven Port); the marketplace core is the system of
// record for suppliers.
type SupplierDirectory interface {
	// GetSupplier returns the supplier with the given id, or (nil, nil)
	// when no such supplier exists.
	GetSupplier(ctx context.Context, supplierID string) (*domain.Supplier, error)
}

// RateRepository stores supplier shipping-rate records.
type RateRepository interface {
	// GetActiveRates returns only rates with IsActive set, in storage
	// order. The calculation engine applies its own priority ordering.
	GetActiveRates(ctx context.Context, supplierID string) ([]domain.ShippingRate, error)
	// ListBySupplier returns every rate the supplier has configured,
	// active or not, for admin-facing listings.
	ListBySupplier(ctx context.Context, supplierID string) ([]domain.ShippingRate, error)
	// Save creates or updates one rate record.
	Save(ctx context.Context, rate *domain.ShippingRate) error
}
