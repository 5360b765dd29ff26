package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"edubright-backend/internal/domains/event/gateway"
)

// =====================================================
// STRIPE CLIENT IMPLEMENTATION
// =====================================================

type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates new Stripe client
func NewClient(config *Config) (gateway.PaymentGateway, error) {
	if config.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not configured")
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// CreatePaymentIntent creates a payment intent via the Stripe API.
// Stripe takes form-encoded bodies, not JSON.
func (c *Client) CreatePaymentIntent(
	ctx context.Context,
	req gateway.PaymentIntentRequest,
) (*gateway.PaymentIntentResponse, error) {
	// Step 1: Build form body
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.AmountCents, 10))
	form.Set("currency", req.Currency)
	for k, v := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	// Step 2: Call Stripe API
	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		c.config.GetPaymentIntentsURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.SecretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call Stripe API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Step 3: Parse response
	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("Stripe API error: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("Stripe API returned status %d", resp.StatusCode)
	}

	var intent struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(bodyBytes, &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &gateway.PaymentIntentResponse{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
