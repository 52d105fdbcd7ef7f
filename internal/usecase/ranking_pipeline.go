package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"VotePulse/internal/domain/models"
	"VotePulse/internal/domain/repository"
	applogger "VotePulse/pkg/logger"
)

// RankingPipeline produces the ranked token list for one chain: trending
// profiles are joined with batch market data, thin markets are dropped,
// records are reconciled and overlaid with vote counts, then sorted.
type RankingPipeline struct {
	profiles   repository.ProfileSource
	markets    repository.MarketSource
	votes      repository.VoteLedger
	reconciler *TokenReconciler
	metrics    repository.Metrics
	logger     *applogger.Logger

	trendingLimit   int
	volumeThreshold float64
}

// NewRankingPipeline creates the ranking pipeline. trendingLimit bounds the
// number of candidates taken from the trending feed (and with it the cost of
// per-token fallback lookups); volumeThreshold is the 24h-volume liquidity
// floor, compared strictly.
func NewRankingPipeline(
	profiles repository.ProfileSource,
	markets repository.MarketSource,
	votes repository.VoteLedger,
	reconciler *TokenReconciler,
	metrics repository.Metrics,
	logger *applogger.Logger,
	trendingLimit int,
	volumeThreshold float64,
) *RankingPipeline {
	return &RankingPipeline{
		profiles:        profiles,
		markets:         markets,
		votes:           votes,
		reconciler:      reconciler,
		metrics:         metrics,
		logger:          logger,
		trendingLimit:   trendingLimit,
		volumeThreshold: volumeThreshold,
	}
}

// Rank runs the full pipeline for one chain tag. Either upstream call
// failing aborts the run; there are no partial results and no retries.
func (p *RankingPipeline) Rank(ctx context.Context, chain string) ([]models.TokenRecord, error) {
	start := time.Now()

	profiles, err := p.profiles.LatestProfiles(ctx)
	if err != nil {
		if p.metrics != nil {
			p.metrics.RecordUpstreamError("profiles")
		}
		return nil, fmt.Errorf("fetch trending profiles: %w", err)
	}

	trending := make([]models.TokenProfile, 0, p.trendingLimit)
	for _, prof := range profiles {
		if prof.ChainID != chain || prof.TokenAddress == "" {
			continue
		}
		trending = append(trending, prof)
		if len(trending) == p.trendingLimit {
			break
		}
	}

	if len(trending) == 0 {
		return []models.TokenRecord{}, nil
	}

	index := make(map[string]models.TokenProfile, len(trending))
	addresses := make([]string, 0, len(trending))
	for _, prof := range trending {
		index[prof.TokenAddress] = prof
		addresses = append(addresses, prof.TokenAddress)
	}

	markets, err := p.markets.Tokens(ctx, chain, addresses)
	if err != nil {
		if p.metrics != nil {
			p.metrics.RecordUpstreamError("tokens")
		}
		return nil, fmt.Errorf("fetch market data: %w", err)
	}

	records := make([]models.TokenRecord, 0, len(markets))
	seen := make(map[string]bool, len(markets))
	for _, m := range markets {
		if m.Address == "" || seen[m.Address] {
			// market feed may list one token once per pair; keep the first
			continue
		}
		if !(m.Volume24h() > p.volumeThreshold) {
			continue
		}
		seen[m.Address] = true

		rec := p.reconciler.Reconcile(ctx, m, index[m.Address])
		rec.Votes = p.votes.Get(rec.Address)
		records = append(records, rec)
	}

	// Stable: ties keep market-response order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Votes > records[j].Votes
	})

	if p.metrics != nil {
		p.metrics.RecordRanking(chain, len(records))
		p.metrics.RecordLatency("rank", time.Since(start).Seconds())
	}
	if p.logger != nil {
		p.logger.Debug("ranking complete",
			applogger.String("chain", chain),
			applogger.Int("trending", len(trending)),
			applogger.Int("ranked", len(records)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}

	return records, nil
}
