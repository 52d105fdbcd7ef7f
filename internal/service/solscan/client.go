package solscan

import (
	"context"
	"time"

	xhttp "VotePulse/pkg/http"
)

// Client resolves token logos from the Solscan token-meta endpoint. Like
// every LogoProvider it swallows all failures and reports "no result".
type Client struct {
	metaURL string
	http    *xhttp.Client
}

// New creates a new Solscan logo provider.
func New(metaURL string, timeout time.Duration) *Client {
	return &Client{
		metaURL: metaURL,
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type metaResponse struct {
	Icon string `json:"icon"`
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return "solscan" }

// Logo looks up the token icon for an address.
func (c *Client) Logo(ctx context.Context, address string) (string, bool) {
	var resp metaResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.metaURL,
		QueryParams: map[string][]string{"tokenAddress": {address}},
	}, &resp)
	if err != nil {
		return "", false
	}

	if resp.Icon == "" {
		return "", false
	}
	return resp.Icon, true
}
