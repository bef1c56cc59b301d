package service

import (
	"cod-tracker/internal/catalog"
	"cod-tracker/internal/config"
	"cod-tracker/internal/database"
	"cod-tracker/internal/domain"
	"cod-tracker/internal/metrics"
	"cod-tracker/internal/resolver"
)

type PartitionRef = catalog.PartitionRef[database.Table]

// Partition labels data with the partition it was read from.
type Partition struct {
	GameMode domain.GameMode `json:"game_mode"`
	Source   domain.Source   `json:"source"`
	Year     domain.Year     `json:"year,omitempty"`
	Table    string          `json:"table"`
}

func partitionOf(ref PartitionRef) Partition {
	return Partition{
		GameMode: ref.GameMode,
		Source:   ref.Source,
		Year:     ref.Year,
		Table:    ref.CatalogName,
	}
}

func resolve(r *resolver.Resolver[database.Table], req resolver.Request) []PartitionRef {
	refs := r.ResolveRequest(req)
	metrics.RecordResolution(req.Label(), string(req.Source), len(refs))
	return refs
}

func readConcurrency(cfg *config.Config) int {
	if cfg.ReadConcurrency > 0 {
		return cfg.ReadConcurrency
	}
	return 1
}
