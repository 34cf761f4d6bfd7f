package custody

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// AssetClient implements ports.AssetCustody against the NFT custodian.
// escrow is the engine's custody account; pulled assets are held under it.
type AssetClient struct {
	baseURL    string
	escrow     string
	httpClient *http.Client
}

// NewAssetClient creates a new asset custodian client.
func NewAssetClient(baseURL, escrow string, timeout time.Duration) *AssetClient {
	return &AssetClient{
		baseURL:    baseURL,
		escrow:     escrow,
		httpClient: newHTTPClient(timeout),
	}
}

// OwnerOf returns the current owner of an asset.
func (c *AssetClient) OwnerOf(ctx context.Context, contract, assetID string) (string, error) {
	payload := map[string]string{"contract": contract, "asset_id": assetID}
	var resp struct {
		Owner string `json:"owner"`
	}
	if err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/assets/owner", payload, &resp); err != nil {
		return "", fmt.Errorf("custody owner lookup: %w", err)
	}
	return resp.Owner, nil
}

// Pull moves an asset from its owner into engine escrow. Fails when the
// engine was not approved for the asset.
func (c *AssetClient) Pull(ctx context.Context, contract, assetID, from string) error {
	payload := map[string]string{"contract": contract, "asset_id": assetID, "from": from, "escrow": c.escrow}
	if err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/assets/pull", payload, nil); err != nil {
		return fmt.Errorf("custody asset pull: %w", err)
	}
	return nil
}

// Release moves an escrowed asset to its recipient.
func (c *AssetClient) Release(ctx context.Context, contract, assetID, to string) error {
	payload := map[string]string{"contract": contract, "asset_id": assetID, "to": to, "escrow": c.escrow}
	if err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/assets/release", payload, nil); err != nil {
		return fmt.Errorf("custody asset release: %w", err)
	}
	return nil
}
