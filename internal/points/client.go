package points

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Client calls the points ledger. Debit is invoked once per successful
// order; a debit failure after order creation is tolerated upstream.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a points-ledger HTTP client
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

type debitRequest struct {
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// Debit removes amount from a member's balance and returns the new balance
func (c *Client) Debit(ctx context.Context, memberID string, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	if c.baseURL == "" {
		return decimal.Zero, fmt.Errorf("points client not configured: base URL required")
	}

	body, err := json.Marshal(debitRequest{
		UserID:      memberID,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		return decimal.Zero, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/points/debit", bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Points debit request failed", zap.Error(err), zap.String("member_id", memberID))
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return decimal.Zero, fmt.Errorf("points ledger returned %d: %s", resp.StatusCode, string(respBody))
	}

	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode points response: %w", err)
	}
	return out.Balance, nil
}

// GetBalance fetches a member's current points balance
func (c *Client) GetBalance(ctx context.Context, memberID string) (decimal.Decimal, error) {
	if c.baseURL == "" {
		return decimal.Zero, fmt.Errorf("points client not configured: base URL required")
	}

	u, err := url.Parse(c.baseURL + "/v1/points/balance")
	if err != nil {
		return decimal.Zero, err
	}
	q := u.Query()
	q.Set("user_id", memberID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Points balance request failed", zap.Error(err), zap.String("member_id", memberID))
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return decimal.Zero, fmt.Errorf("points ledger returned %d: %s", resp.StatusCode, string(respBody))
	}

	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode points response: %w", err)
	}
	return out.Balance, nil
}
