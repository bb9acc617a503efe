package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"solarmarket-shipping/internal/core/config"
	"solarmarket-shipping/internal/core/httpclient"
	"solarmarket-shipping/internal/features/shipping/domain"
)

// MarketplaceAdapter implements the SupplierDirectory interface against the
// marketplace core REST API.
type MarketplaceAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the marketplace connection details.
	config config.MarketplaceConfig
}

// NewMarketplaceAdapter creates a new instance of MarketplaceAdapter.
func NewMarketplaceAdapter(cfg config.MarketplaceConfig) *MarketplaceAdapter {
	return &MarketplaceAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// marketplaceSupplier represents the JSON structure of a supplier from the
// marketplace core API.
type marketplaceSupplier struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	State       string `json:"state"`
}

// GetSupplier fetches a supplier profile and maps it to the domain entity.
// A missing supplier returns (nil, nil); the engine treats that as "this
// supplier cannot participate in this checkout".
func (a *MarketplaceAdapter) GetSupplier(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	endpoint := fmt.Sprintf("%s/api/v1/suppliers/%s", a.config.URL, url.PathEscape(supplierID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("marketplace API returned status: %d", resp.StatusCode)
	}

	var supplier marketplaceSupplier
	if err := json.NewDecoder(resp.Body).Decode(&supplier); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &domain.Supplier{
		ID:          supplier.ID,
		CompanyName: supplier.CompanyName,
		State:       supplier.State,
	}, nil
}

// HealthCheck verifies that the marketplace API is reachable and the
// credentials are valid.
func (a *MarketplaceAdapter) HealthCheck() error {
	endpoint := fmt.Sprintf("%s/api/v1/suppliers?per_page=1", a.config.URL)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

func (a *MarketplaceAdapter) authorize(req *http.Request) {
	credentials := a.config.APIKey + ":" + a.config.APISecret
	encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
	req.Header.Add("Authorization", "Basic "+encoded)
}
