package di

import (
	"fmt"

	"VotePulse/internal/domain/repository"
	"VotePulse/internal/handler/api"
	internalrepo "VotePulse/internal/repository"
	"VotePulse/internal/service/cache"
	"VotePulse/internal/service/dexscreener"
	"VotePulse/internal/service/helius"
	"VotePulse/internal/service/solscan"
	"VotePulse/internal/usecase"
	"VotePulse/pkg/config"
	xhttp "VotePulse/pkg/http"
	applogger "VotePulse/pkg/logger"
	"VotePulse/pkg/metrics"
	"VotePulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideVoteLedger loads the vote ledger snapshot.
func ProvideVoteLedger(cfg *config.Config) (repository.VoteLedger, error) {
	ledger, err := internalrepo.NewFileLedger(cfg.Ledger.Path)
	if err != nil {
		return nil, fmt.Errorf("vote ledger: %w", err)
	}
	return ledger, nil
}

// ProvideDexscreenerClient creates the shared Dexscreener client.
func ProvideDexscreenerClient(cfg *config.Config) *dexscreener.Client {
	return dexscreener.New(cfg.Dexscreener.ProfilesURL, cfg.Dexscreener.TokensURL, cfg.Dexscreener.Timeout)
}

// ProvideProfileSource exposes the Dexscreener client as the trending feed.
func ProvideProfileSource(c *dexscreener.Client) repository.ProfileSource {
	return c
}

// ProvideMarketSource exposes the Dexscreener client as the market feed.
func ProvideMarketSource(c *dexscreener.Client) repository.MarketSource {
	return c
}

// ProvideLogoResolver builds the fallback chain: Helius first, Solscan last.
func ProvideLogoResolver(cfg *config.Config, m repository.Metrics, l *applogger.Logger) *usecase.LogoResolver {
	return usecase.NewLogoResolver(m, l,
		helius.New(cfg.Helius.RPCURL, cfg.Helius.APIKey, cfg.Helius.Timeout),
		solscan.New(cfg.Solscan.MetaURL, cfg.Solscan.Timeout),
	)
}

// ProvideReconciler creates the token reconciler.
func ProvideReconciler(logos *usecase.LogoResolver) *usecase.TokenReconciler {
	return usecase.NewTokenReconciler(logos)
}

// ProvideRankingPipeline creates the ranking pipeline use case.
func ProvideRankingPipeline(
	profiles repository.ProfileSource,
	markets repository.MarketSource,
	votes repository.VoteLedger,
	reconciler *usecase.TokenReconciler,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.RankingPipeline {
	return usecase.NewRankingPipeline(
		profiles,
		markets,
		votes,
		reconciler,
		m,
		l,
		cfg.Ranking.TrendingLimit,
		cfg.Ranking.VolumeThreshold,
	)
}

// ProvideRankingCache picks the ranking cache backend from config.
func ProvideRankingCache(cfg *config.Config) cache.BytesCache {
	if cfg.Redis.Enabled {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	return cache.NewTTLCache()
}

// ProvideTokensHandler creates the HTTP handler for both endpoints.
func ProvideTokensHandler(
	l *applogger.Logger,
	pipeline *usecase.RankingPipeline,
	votes repository.VoteLedger,
	m repository.Metrics,
	rankings cache.BytesCache,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewTokensEchoHandler(l, pipeline, votes, m, rankings, cfg.Ranking.CacheTTL, cfg.Ranking.Chain)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler) *server.App {
	return server.New(cfg, l, h)
}
