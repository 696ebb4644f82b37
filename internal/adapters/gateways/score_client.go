package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"payconsig/internal/core/domain"
)

// ScoreClient consults the external credit scoring service.
// Any failure (timeout, connectivity, non-2xx, malformed body) is
// reported as domain.ErrScoreUnavailable; the underwriting engine owns
// the fallback to the salary-band score.
type ScoreClient struct {
	baseURL    string
	httpClient *http.Client
}

// scoreResponse is the scoring service payload
type scoreResponse struct {
	Score int `json:"score"`
}

// NewScoreClient creates a new score client with a bounded timeout
func NewScoreClient(baseURL string, timeout time.Duration) *ScoreClient {
	return &ScoreClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the applicant's credit score from the external service.
// The score is passed through verbatim; no range validation is applied.
func (c *ScoreClient) Fetch(ctx context.Context, employeeID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrScoreUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrScoreUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrScoreUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", domain.ErrScoreUnavailable, resp.StatusCode)
	}

	var payload scoreResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrScoreUnavailable, err)
	}

	return payload.Score, nil
}
