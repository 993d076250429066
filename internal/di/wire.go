//go:build wireinject
// +build wireinject

package di

import (
	"TradeBoard/pkg/config"
	"TradeBoard/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// State
		ProvideStore,

		// External collaborators
		ProvideSnapshotSource,
		ProvideMarketStream,
		ProvideViewCache,

		// Use cases
		ProvideSnapshotLoader,
		ProvideTickCollector,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
