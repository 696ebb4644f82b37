package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PaymentClient calls the external payment-simulation service.
// It returns the raw status; interpreting it (and swallowing transport
// failures on an already-committed loan) is the underwriting engine's
// responsibility.
type PaymentClient struct {
	baseURL    string
	httpClient *http.Client
}

// paymentResponse is the payment simulator payload
type paymentResponse struct {
	Status string `json:"status"`
}

// NewPaymentClient creates a new payment client with a bounded timeout
func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Check asks the simulator for the payment status of a loan
func (c *PaymentClient) Check(ctx context.Context, loanID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment simulator returned status %d", resp.StatusCode)
	}

	var payload paymentResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}

	return payload.Status, nil
}
