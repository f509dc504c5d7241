package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
)

// Client submits finalized cart snapshots to the order-creation service.
// Retry policy belongs here or in the remote service, never in the cart
// engine.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates an order-service HTTP client
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

type createOrderResponse struct {
	OrderID string `json:"order_id"`
}

// CreateOrder submits the order payload and returns the opaque order id
// assigned by the order service
func (c *Client) CreateOrder(ctx context.Context, payload domain.OrderPayload) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("orders client not configured: base URL required")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Order creation request failed", zap.Error(err), zap.String("buyer_id", payload.Buyer.ID))
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("order service returned %d: %s", resp.StatusCode, string(respBody))
	}

	var out createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode order response: %w", err)
	}
	if out.OrderID == "" {
		return "", fmt.Errorf("order service returned no order id")
	}
	return out.OrderID, nil
}
