package custody

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// TokenClient implements ports.TokenCustody against the token transfer
// service. Escrowed funds are held under the engine's escrow account.
type TokenClient struct {
	baseURL    string
	escrow     string
	httpClient *http.Client
}

// NewTokenClient creates a new token transfer client.
func NewTokenClient(baseURL, escrow string, timeout time.Duration) *TokenClient {
	return &TokenClient{
		baseURL:    baseURL,
		escrow:     escrow,
		httpClient: newHTTPClient(timeout),
	}
}

// Pull moves token funds from an account into engine escrow. Requires a
// prior allowance at the transfer service.
func (c *TokenClient) Pull(ctx context.Context, token, from string, amount decimal.Decimal) error {
	payload := map[string]string{"token": token, "from": from, "amount": amount.String(), "escrow": c.escrow}
	if err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/tokens/pull", payload, nil); err != nil {
		return fmt.Errorf("custody token pull: %w", err)
	}
	return nil
}

// Release moves escrowed token funds to an account.
func (c *TokenClient) Release(ctx context.Context, token, to string, amount decimal.Decimal) error {
	payload := map[string]string{"token": token, "to": to, "amount": amount.String(), "escrow": c.escrow}
	if err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/tokens/release", payload, nil); err != nil {
		return fmt.Errorf("custody token release: %w", err)
	}
	return nil
}
