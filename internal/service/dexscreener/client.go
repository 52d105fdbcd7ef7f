package dexscreener

import (
	"context"
	"fmt"
	"strings"
	"time"

	"VotePulse/internal/domain/models"
	xhttp "VotePulse/pkg/http"
)

// Client fetches trending profiles and batch market data from Dexscreener.
// It backs both the ProfileSource and MarketSource domain interfaces.
type Client struct {
	profilesURL string
	tokensURL   string
	http        *xhttp.Client
}

// New creates a new Dexscreener client.
func New(profilesURL, tokensURL string, timeout time.Duration) *Client {
	return &Client{
		profilesURL: profilesURL,
		tokensURL:   tokensURL,
		http:        xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// LatestProfiles returns the most recent trending token profiles across all
// chains. Chain filtering happens downstream.
func (c *Client) LatestProfiles(ctx context.Context) ([]models.TokenProfile, error) {
	var profiles []models.TokenProfile
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.profilesURL,
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("dexscreener profiles: %w", err)
	}
	return profiles, nil
}

// Tokens fetches market data for the given addresses in one batched call.
// The provider takes the address list comma-joined in the path.
func (c *Client) Tokens(ctx context.Context, chain string, addresses []string) ([]models.TokenMarket, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	url := fmt.Sprintf("%s/%s/%s", c.tokensURL, chain, strings.Join(addresses, ","))

	var tokens []models.TokenMarket
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    url,
	}, &tokens)
	if err != nil {
		return nil, fmt.Errorf("dexscreener tokens: %w", err)
	}
	return tokens, nil
}
