package custody

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// VaultClient implements ports.NativeVault against the native-currency
// vault. Escrowed funds are held under the engine's escrow account.
type VaultClient struct {
	baseURL    string
	escrow     string
	httpClient *http.Client
}

// NewVaultClient creates a new native vault client.
func NewVaultClient(baseURL, escrow string, timeout time.Duration) *VaultClient {
	return &VaultClient{
		baseURL:    baseURL,
		escrow:     escrow,
		httpClient: newHTTPClient(timeout),
	}
}

// Pull moves native funds from an account into engine escrow.
func (c *VaultClient) Pull(ctx context.Context, from string, amount decimal.Decimal) error {
	payload := map[string]string{"from": from, "amount": amount.String(), "escrow": c.escrow}
	if err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/vault/pull", payload, nil); err != nil {
		return fmt.Errorf("custody vault pull: %w", err)
	}
	return nil
}

// Release moves escrowed native funds to an account.
func (c *VaultClient) Release(ctx context.Context, to string, amount decimal.Decimal) error {
	payload := map[string]string{"to": to, "amount": amount.String(), "escrow": c.escrow}
	if err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/vault/release", payload, nil); err != nil {
		return fmt.Errorf("custody vault release: %w", err)
	}
	return nil
}
