package repository

import (
	"context"

	"VotePulse/internal/domain/models"
)

// ProfileSource serves the trending-profile discovery feed.
type ProfileSource interface {
	LatestProfiles(ctx context.Context) ([]models.TokenProfile, error)
}

// MarketSource serves batch market data for a set of token addresses.
type MarketSource interface {
	Tokens(ctx context.Context, chain string, addresses []string) ([]models.TokenMarket, error)
}

// LogoProvider is one best-effort logo lookup. ok=false means "no result";
// implementations never surface transport or parse failures.
type LogoProvider interface {
	Name() string
	Logo(ctx context.Context, address string) (url string, ok bool)
}

// VoteLedger is the durable per-token vote counter.
type VoteLedger interface {
	Get(address string) int
	Increment(address string) (int, error)
}

type Metrics interface {
	RecordRanking(chain string, tokens int)
	RecordUpstreamError(source string)
	RecordLogoFallback(provider, outcome string)
	RecordVote(address string)
	RecordLatency(op string, seconds float64)
}
