package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"solarmarket-shipping/internal/features/shipping/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRateRepository implements ports.RateRepository against the
// shipping_rates table.
//
// Expected schema:
//
//	CREATE TABLE shipping_rates (
//	    id                              text PRIMARY KEY,
//	    supplier_id                     text NOT NULL,
//	    rate_type                       text NOT NULL,
//	    name                            text NOT NULL,
//	    description                     text NOT NULL DEFAULT '',
//	    flat_rate_amount                double precision NOT NULL DEFAULT 0,
//	    flat_rate_type                  text NOT NULL DEFAULT '',
//	    base_weight_kg                  double precision,
//	    base_weight_rate                double precision,
//	    additional_weight_kg            double precision,
//	    additional_weight_rate          double precision,
//	    location_rates                  jsonb,
//	    location_rate_type              text NOT NULL DEFAULT '',
//	    location_base_item_rate         double precision,
//	    location_additional_item_rate   double precision,
//	    location_base_weight_kg         double precision,
//	    location_base_weight_rate       double precision,
//	    location_additional_weight_kg   double precision,
//	    location_additional_weight_rate double precision,
//	    min_order_amount                double precision NOT NULL DEFAULT 0,
//	    max_order_amount                double precision NOT NULL DEFAULT 0,
//	    estimated_days_min              integer NOT NULL DEFAULT 0,
//	    estimated_days_max              integer NOT NULL DEFAULT 0,
//	    is_active                       boolean NOT NULL DEFAULT true,
//	    is_default                      boolean NOT NULL DEFAULT false,
//	    created_at                      timestamptz NOT NULL DEFAULT now(),
//	    updated_at                      timestamptz NOT NULL DEFAULT now()
//	);
//	CREATE INDEX shipping_rates_supplier_idx ON shipping_rates (supplier_id);
type PostgresRateRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRateRepository creates a new PostgresRateRepository.
func NewPostgresRateRepository(pool *pgxpool.Pool) *PostgresRateRepository {
	return &PostgresRateRepository{pool: pool}
}

const rateColumns = `id, supplier_id, rate_type, name, description,
	flat_rate_amount, flat_rate_type,
	base_weight_kg, base_weight_rate, additional_weight_kg, additional_weight_rate,
	location_rates, location_rate_type,
	location_base_item_rate, location_additional_item_rate,
	location_base_weight_kg, location_base_weight_rate,
	location_additional_weight_kg, location_additional_weight_rate,
	min_order_amount, max_order_amount,
	estimated_days_min, estimated_days_max,
	is_active, is_default`

// GetActiveRates returns the supplier's active rates in configuration order.
func (r *PostgresRateRepository) GetActiveRates(ctx context.Context, supplierID string) ([]domain.ShippingRate, error) {
	query := `SELECT ` + rateColumns + `
		FROM shipping_rates
		WHERE supplier_id = $1 AND is_active
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active rates for supplier %s: %w", supplierID, err)
	}
	defer rows.Close()

	return scanRates(rows)
}

// ListBySupplier returns every rate the supplier has configured.
func (r *PostgresRateRepository) ListBySupplier(ctx context.Context, supplierID string) ([]domain.ShippingRate, error) {
	query := `SELECT ` + rateColumns + `
		FROM shipping_rates
		WHERE supplier_id = $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates for supplier %s: %w", supplierID, err)
	}
	defer rows.Close()

	return scanRates(rows)
}

// Save upserts one rate record.
func (r *PostgresRateRepository) Save(ctx context.Context, rate *domain.ShippingRate) error {
	locationRates, err := json.Marshal(rate.LocationRates)
	if err != nil {
		return fmt.Errorf("failed to marshal location rates: %w", err)
	}

	query := `INSERT INTO shipping_rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		ON CONFLICT (id) DO UPDATE SET
			supplier_id = EXCLUDED.supplier_id,
			rate_type = EXCLUDED.rate_type,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			flat_rate_amount = EXCLUDED.flat_rate_amount,
			flat_rate_type = EXCLUDED.flat_rate_type,
			base_weight_kg = EXCLUDED.base_weight_kg,
			base_weight_rate = EXCLUDED.base_weight_rate,
			additional_weight_kg = EXCLUDED.additional_weight_kg,
			additional_weight_rate = EXCLUDED.additional_weight_rate,
			location_rates = EXCLUDED.location_rates,
			location_rate_type = EXCLUDED.location_rate_type,
			location_base_item_rate = EXCLUDED.location_base_item_rate,
			location_additional_item_rate = EXCLUDED.location_additional_item_rate,
			location_base_weight_kg = EXCLUDED.location_base_weight_kg,
			location_base_weight_rate = EXCLUDED.location_base_weight_rate,
			location_additional_weight_kg = EXCLUDED.location_additional_weight_kg,
			location_additional_weight_rate = EXCLUDED.location_additional_weight_rate,
			min_order_amount = EXCLUDED.min_order_amount,
			max_order_amount = EXCLUDED.max_order_amount,
			estimated_days_min = EXCLUDED.estimated_days_min,
			estimated_days_max = EXCLUDED.estimated_days_max,
			is_active = EXCLUDED.is_active,
			is_default = EXCLUDED.is_default,
			updated_at = now()`

	_, err = r.pool.Exec(ctx, query,
		rate.ID, rate.SupplierID, rate.RateType, rate.Name, rate.Description,
		rate.FlatRateAmount, rate.FlatRateType,
		rate.BaseWeightKg, rate.BaseWeightRate, rate.AdditionalWeightKg, rate.AdditionalWeightRate,
		locationRates, rate.LocationRateType,
		rate.LocationBaseItemRate, rate.LocationAdditionalItemRate,
		rate.LocationBaseWeightKg, rate.LocationBaseWeightRate,
		rate.LocationAdditionalWeightKg, rate.LocationAdditionalWeightRate,
		rate.MinOrderAmount, rate.MaxOrderAmount,
		rate.EstimatedDaysMin, rate.EstimatedDaysMax,
		rate.IsActive, rate.IsDefault,
	)
	if err != nil {
		return fmt.Errorf("failed to save rate %s: %w", rate.ID, err)
	}
	return nil
}

func scanRates(rows pgx.Rows) ([]domain.ShippingRate, error) {
	var rates []domain.ShippingRate

	for rows.Next() {
		var rate domain.ShippingRate
		var locationRates []byte

		err := rows.Scan(
			&rate.ID, &rate.SupplierID, &rate.RateType, &rate.Name, &rate.Description,
			&rate.FlatRateAmount, &rate.FlatRateType,
			&rate.BaseWeightKg, &rate.BaseWeightRate, &rate.AdditionalWeightKg, &rate.AdditionalWeightRate,
			&locationRates, &rate.LocationRateType,
			&rate.LocationBaseItemRate, &rate.LocationAdditionalItemRate,
			&rate.LocationBaseWeightKg, &rate.LocationBaseWeightRate,
			&rate.LocationAdditionalWeightKg, &rate.LocationAdditionalWeightRate,
			&rate.MinOrderAmount, &rate.MaxOrderAmount,
			&rate.EstimatedDaysMin, &rate.EstimatedDaysMax,
			&rate.IsActive, &rate.IsDefault,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rate row: %w", err)
		}

		if len(locationRates) > 0 {
			if err := json.Unmarshal(locationRates, &rate.LocationRates); err != nil {
				return nil, fmt.Errorf("failed to unmarshal location rates for %s: %w", rate.ID, err)
			}
		}

		rates = append(rates, rate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rate rows: %w", err)
	}
	return rates, nil
}
