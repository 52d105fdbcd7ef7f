//go:build wireinject
// +build wireinject

package di

import (
	"VotePulse/pkg/config"
	"VotePulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideDexscreenerClient,
		ProvideVoteLedger,
		ProvideRankingCache,

		// Sources
		ProvideProfileSource,
		ProvideMarketSource,
		ProvideLogoResolver,

		// Use cases
		ProvideReconciler,
		ProvideRankingPipeline,

		// HTTP surface
		ProvideTokensHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
