package helius

import (
	"context"
	"fmt"
	"time"

	xhttp "VotePulse/pkg/http"
)

// Client resolves token logos through the Helius getAsset JSON-RPC method.
// It is a best-effort LogoProvider: every failure is reported as "no result".
type Client struct {
	rpcURL string
	apiKey string
	http   *xhttp.Client
}

// New creates a new Helius logo provider.
func New(rpcURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		rpcURL: rpcURL,
		apiKey: apiKey,
		http:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type assetResponse struct {
	Result struct {
		Content struct {
			Links struct {
				Image string `json:"image"`
			} `json:"links"`
			Metadata struct {
				Image string `json:"image"`
			} `json:"metadata"`
		} `json:"content"`
	} `json:"result"`
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return "helius" }

// Logo looks up the asset image for a mint address. Tries the metaplex v2
// links field first, then the legacy metadata image.
func (c *Client) Logo(ctx context.Context, address string) (string, bool) {
	body := rpcRequest{
		JSONRPC: "2.0",
		ID:      "1",
		Method:  "getAsset",
		Params:  map[string]string{"id": address},
	}

	var resp assetResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    fmt.Sprintf("%s/?api-key=%s", c.rpcURL, c.apiKey),
		Body:   body,
	}, &resp)
	if err != nil {
		return "", false
	}

	if img := resp.Result.Content.Links.Image; img != "" {
		return img, true
	}
	if img := resp.Result.Content.Metadata.Image; img != "" {
		return img, true
	}
	return "", false
}
