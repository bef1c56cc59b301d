package fx

import (
	"cod-tracker/internal/catalog"
	"cod-tracker/internal/config"
	"cod-tracker/internal/database"
	"cod-tracker/internal/logger"
	"cod-tracker/internal/repository"
	"cod-tracker/internal/resolver"
	"cod-tracker/internal/server"
	"cod-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideResolver(c *catalog.Catalog[database.Table]) *resolver.Resolver[database.Table] {
	return resolver.New(c)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// catalog failure aborts startup
	fx.Provide(database.NewCatalog),
	fx.Provide(ProvideResolver),
	// repos
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewPartitionRepository),
	// svc
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewMatchService),
	// server
	fx.Provide(server.NewTrackerServer),
)
