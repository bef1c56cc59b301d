package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cod-tracker/internal/config"
	"cod-tracker/internal/database"
	"cod-tracker/internal/domain"
	"cod-tracker/internal/repository"
	"cod-tracker/internal/resolver"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	stats   *StatsService
	matches *MatchService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	cfg := &config.Config{
		DBPath:          filepath.Join(t.TempDir(), "tracker.db"),
		ReadConcurrency: 3,
		MatchesLimit:    50,
	}
	logger := zerolog.Nop()

	db, err := database.New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	c, err := database.NewCatalog(db, logger)
	require.NoError(t, err)
	r := resolver.New(c)

	return fixture{
		stats:   NewStatsService(r, repository.NewPartitionRepository(db, logger), cfg, logger),
		matches: NewMatchService(r, c, repository.NewMatchRepository(db, logger), cfg, logger),
	}
}

var base = time.Date(2021, 6, 1, 18, 0, 0, 0, time.UTC)

func row(matchID string, offset time.Duration) domain.Match {
	return domain.Match{MatchID: matchID, Uno: "uno1", Time: base.Add(offset), Kills: 5}
}

func TestStoreRequiresConcretePartition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rows := []domain.Match{row("m1", 0)}

	assert.ErrorIs(t, f.matches.Store(ctx, domain.GameModeCWMP, domain.SourceMain, domain.YearNone, rows), ErrNoPartition)
	assert.ErrorIs(t, f.matches.Store(ctx, domain.GameModeMWWZ, domain.SourceBasic, domain.YearNone, rows), ErrNoPartition)
	assert.ErrorIs(t, f.matches.Store(ctx, domain.GameModeAll, domain.SourceMatches, domain.YearNone, rows), ErrNoPartition)
	assert.ErrorIs(t, f.matches.Store(ctx, domain.GameModeMWMP, domain.SourceAll, domain.YearNone, rows), ErrNoPartition)
	assert.NoError(t, f.matches.Store(ctx, domain.GameModeMWWZ, domain.SourceBasic, domain.Year2021, rows))
}

func TestPlayerMatchesLabelsAndMerges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.matches.Store(ctx, domain.GameModeMWWZ, domain.SourceBasic, domain.Year2020, []domain.Match{row("wz20", 0)}))
	require.NoError(t, f.matches.Store(ctx, domain.GameModeMWWZ, domain.SourceBasic, domain.Year2021, []domain.Match{row("wz21", 2*time.Hour)}))
	require.NoError(t, f.matches.Store(ctx, domain.GameModeMWMP, domain.SourceBasic, domain.YearNone, []domain.Match{row("mp", time.Hour)}))
	require.NoError(t, f.matches.Store(ctx, domain.GameModeMWMP, domain.SourceMain, domain.YearNone, []domain.Match{row("main", 3*time.Hour)}))

	got, err := f.matches.PlayerMatches(ctx, "uno1", resolver.Request{
		GameMode: domain.GameModeAll,
		Source:   domain.SourceBasic,
	}, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "wz21", got[0].MatchID)
	assert.Equal(t, Partition{GameMode: domain.GameModeMWWZ, Source: domain.SourceBasic, Year: domain.Year2021, Table: "cod_fullmatches_basic_mw_wz_2021"}, got[0].Partition)
	assert.Equal(t, "mp", got[1].MatchID)
	assert.Equal(t, Partition{GameMode: domain.GameModeMWMP, Source: domain.SourceBasic, Table: "cod_fullmatches_basic_mw_mp"}, got[1].Partition)
	assert.Equal(t, "wz20", got[2].MatchID)
	assert.Equal(t, domain.Year2020, got[2].Year)

	got, err = f.matches.PlayerMatches(ctx, "uno1", resolver.Request{
		GameMode: domain.GameModeAll,
		Source:   domain.SourceAll,
	}, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "main", got[0].MatchID)
	assert.Equal(t, "wz21", got[1].MatchID)
}

func TestPlayerMatchesEmptyResolution(t *testing.T) {
	f := newFixture(t)

	got, err := f.matches.PlayerMatches(context.Background(), "uno1", resolver.Request{
		GameMode: domain.GameModeVGMP,
		Source:   domain.SourceAll,
	}, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.matches.Store(ctx, domain.GameModeMWWZ, domain.SourceMain, domain.Year2022,
		[]domain.Match{row("a", 0), row("b", time.Minute)}))
	require.NoError(t, f.matches.Store(ctx, domain.GameModeMWMP, domain.SourceMain, domain.YearNone,
		[]domain.Match{row("c", 0)}))

	summary, err := f.stats.Stats(ctx, resolver.Request{GameMode: domain.GameModeAll, Source: domain.SourceMain})
	require.NoError(t, err)
	require.Len(t, summary.Partitions, 5)
	assert.Equal(t, int64(3), summary.Rows)

	wantTables := []string{
		"cod_fullmatches_mw_wz_2020",
		"cod_fullmatches_mw_wz_2021",
		"cod_fullmatches_mw_wz_2022",
		"cod_fullmatches_mw_wz_2023",
		"cod_fullmatches_mw_mp",
	}
	for i, p := range summary.Partitions {
		assert.Equal(t, wantTables[i], p.Table)
	}
	assert.Equal(t, int64(2), summary.Partitions[2].Rows)
	assert.Equal(t, int64(2), summary.Partitions[2].LastID)
	assert.Equal(t, int64(1), summary.Partitions[4].Rows)

	summary, err = f.stats.Stats(ctx, resolver.Request{GameMode: domain.GameModeCWMP, Source: domain.SourceFullmatches})
	require.NoError(t, err)
	assert.Empty(t, summary.Partitions)
	assert.Zero(t, summary.Rows)
}

func TestStatsByTitle(t *testing.T) {
	f := newFixture(t)

	summary, err := f.stats.Stats(context.Background(), resolver.Request{
		Game:   domain.GameMW,
		Mode:   domain.ModeAll,
		Source: domain.SourceMatches,
	})
	require.NoError(t, err)
	require.Len(t, summary.Partitions, 2)
	assert.Equal(t, domain.GameModeMWMP, summary.Partitions[0].GameMode)
	assert.Equal(t, domain.GameModeMWWZ, summary.Partitions[1].GameMode)
}
