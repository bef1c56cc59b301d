package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cod-tracker/internal/catalog"
	"cod-tracker/internal/config"
	"cod-tracker/internal/constants"
	"cod-tracker/internal/database"
	"cod-tracker/internal/domain"
	"cod-tracker/internal/metrics"
	"cod-tracker/internal/repository"
	"cod-tracker/internal/resolver"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrNoPartition means rows were addressed to a key that has no partition.
var ErrNoPartition = errors.New("no partition")

// LabeledMatch is a match row together with the partition it came from.
type LabeledMatch struct {
	domain.Match
	Partition
}

type MatchService struct {
	resolver  *resolver.Resolver[database.Table]
	catalog   *catalog.Catalog[database.Table]
	matchRepo *repository.MatchRepository
	cfg       *config.Config
	logger    zerolog.Logger
}

func NewMatchService(r *resolver.Resolver[database.Table], c *catalog.Catalog[database.Table], matchRepo *repository.MatchRepository, cfg *config.Config, logger zerolog.Logger) *MatchService {
	return &MatchService{resolver: r, catalog: c, matchRepo: matchRepo, cfg: cfg, logger: logger}
}

// PlayerMatches reads a player's rows from every partition the request
// resolves to and merges them newest first. At most limit rows are read per
// partition and returned overall; limit <= 0 uses the configured default.
func (s *MatchService) PlayerMatches(ctx context.Context, uno string, req resolver.Request, limit int) ([]LabeledMatch, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if limit <= 0 {
		limit = s.cfg.MatchesLimit
	}
	if limit > constants.MaxMatchesLimit {
		limit = constants.MaxMatchesLimit
	}

	refs := resolve(s.resolver, req)
	perPartition := make([][]domain.Match, len(refs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency(s.cfg))

	for i, ref := range refs {
		g.Go(func() error {
			start := time.Now()
			matches, err := s.matchRepo.GetByUno(gCtx, ref.Handle, uno, limit)
			metrics.RecordRead("matches", ref.CatalogName, start, err)
			if err != nil {
				return fmt.Errorf("failed to read matches from %s: %w", ref.Key(), err)
			}
			perPartition[i] = matches
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("uno", uno).Msg("failed to read player matches")
		return nil, err
	}

	merged := []LabeledMatch{}
	for i, matches := range perPartition {
		label := partitionOf(refs[i])
		for _, m := range matches {
			merged = append(merged, LabeledMatch{Match: m, Partition: label})
		}
	}
	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Time.After(merged[b].Time)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}

	s.logger.Debug().
		Str("uno", uno).
		Int("partitions", len(refs)).
		Int("matches", len(merged)).
		Msg("player matches merged")

	return merged, nil
}

// Store writes rows into the single partition named by a concrete key.
func (s *MatchService) Store(ctx context.Context, g domain.GameMode, src domain.Source, y domain.Year, matches []domain.Match) error {
	ref, ok := s.catalog.Lookup(g, src, y)
	if !ok {
		key := catalog.Key{GameMode: g, Source: src, Year: y}
		s.logger.Warn().Str("key", key.String()).Msg("no partition for matches")
		return fmt.Errorf("%w: %s", ErrNoPartition, key)
	}

	if err := s.matchRepo.InsertBatch(ctx, ref.Handle, matches); err != nil {
		s.logger.Error().Err(err).Str("table", ref.CatalogName).Msg("failed to store matches")
		return fmt.Errorf("failed to store matches: %w", err)
	}

	s.logger.Info().Str("table", ref.CatalogName).Int("rows", len(matches)).Msg("matches stored")
	return nil
}
