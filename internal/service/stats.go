package service

import (
	"context"
	"fmt"
	"time"

	"cod-tracker/internal/config"
	"cod-tracker/internal/constants"
	"cod-tracker/internal/database"
	"cod-tracker/internal/metrics"
	"cod-tracker/internal/repository"
	"cod-tracker/internal/resolver"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type PartitionStats struct {
	Partition
	Rows   int64 `json:"rows"`
	LastID int64 `json:"last_id"`
}

type StatsSummary struct {
	Partitions []PartitionStats `json:"partitions"`
	Rows       int64            `json:"rows"`
}

type StatsService struct {
	resolver   *resolver.Resolver[database.Table]
	partitions *repository.PartitionRepository
	cfg        *config.Config
	logger     zerolog.Logger
}

func NewStatsService(r *resolver.Resolver[database.Table], partitions *repository.PartitionRepository, cfg *config.Config, logger zerolog.Logger) *StatsService {
	return &StatsService{resolver: r, partitions: partitions, cfg: cfg, logger: logger}
}

// Stats counts the rows of every partition the request resolves to. The
// result keeps resolution order; an empty resolution is an empty summary.
func (s *StatsService) Stats(ctx context.Context, req resolver.Request) (*StatsSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	refs := resolve(s.resolver, req)
	summary := &StatsSummary{Partitions: make([]PartitionStats, len(refs))}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency(s.cfg))

	for i, ref := range refs {
		g.Go(func() error {
			start := time.Now()
			stats, err := s.partitions.Stats(gCtx, ref.Handle)
			metrics.RecordRead("stats", ref.CatalogName, start, err)
			if err != nil {
				return fmt.Errorf("failed to read stats of %s: %w", ref.Key(), err)
			}
			summary.Partitions[i] = PartitionStats{
				Partition: partitionOf(ref),
				Rows:      stats.Rows,
				LastID:    stats.LastID,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("source", string(req.Source)).Msg("failed to collect partition stats")
		return nil, err
	}

	for _, p := range summary.Partitions {
		summary.Rows += p.Rows
	}

	s.logger.Debug().
		Str("game_mode", string(req.GameMode)).
		Str("source", string(req.Source)).
		Str("year", req.Year.String()).
		Int("partitions", len(refs)).
		Int64("rows", summary.Rows).
		Msg("partition stats collected")

	return summary, nil
}
