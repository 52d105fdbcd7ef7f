package usecase

import (
	"context"

	"VotePulse/internal/domain/repository"
	applogger "VotePulse/pkg/logger"
)

// LogoResolver walks an ordered chain of best-effort logo providers and
// returns the first usable image URL. Provider order matters: the cheaper,
// more authoritative provider goes first. A provider failure of any kind is
// indistinguishable from "no result" and never stops the chain.
type LogoResolver struct {
	providers []repository.LogoProvider
	metrics   repository.Metrics
	logger    *applogger.Logger
}

// NewLogoResolver creates a resolver over the given providers, tried in order.
func NewLogoResolver(metrics repository.Metrics, logger *applogger.Logger, providers ...repository.LogoProvider) *LogoResolver {
	return &LogoResolver{providers: providers, metrics: metrics, logger: logger}
}

// Resolve returns the first logo URL any provider yields, or ok=false when
// the whole chain comes up empty.
func (r *LogoResolver) Resolve(ctx context.Context, address string) (string, bool) {
	for _, p := range r.providers {
		url, ok := p.Logo(ctx, address)
		if ok && url != "" {
			if r.metrics != nil {
				r.metrics.RecordLogoFallback(p.Name(), "hit")
			}
			return url, true
		}
		if r.metrics != nil {
			r.metrics.RecordLogoFallback(p.Name(), "miss")
		}
		if r.logger != nil {
			r.logger.Debug("logo fallback miss",
				applogger.String("provider", p.Name()),
				applogger.String("address", address),
			)
		}
	}
	return "", false
}
