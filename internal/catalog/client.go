package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
	"github.com/Johncsss/food-supplier-platform-sub001/pkg/errors"
)

// Client calls the product catalog API with a service key. The cart copies
// what GetProduct returns at add time and never re-validates it.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a catalog HTTP client
func NewClient(baseURL, serviceKey string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// GetProduct fetches a single product by id. Returns ErrNotFound when the
// catalog has no such product.
func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("catalog client not configured: base URL required")
	}

	u := c.baseURL + "/v1/catalog/products/" + url.PathEscape(productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Catalog product request failed", zap.Error(err), zap.String("product_id", productID))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &errors.ErrNotFound{Resource: "product", ID: productID}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog returned %d: %s", resp.StatusCode, string(body))
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to decode catalog product: %w", err)
	}
	return &product, nil
}
