package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cod-tracker/internal/database"

	"github.com/rs/zerolog"
)

type TableStats struct {
	Rows   int64
	LastID int64
}

type PartitionRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPartitionRepository(sqlDB *sql.DB, logger zerolog.Logger) *PartitionRepository {
	return &PartitionRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// Stats counts the rows of a partition; LastID is the rowid of the most
// recently added row.
func (r *PartitionRepository) Stats(ctx context.Context, table database.Table) (TableStats, error) {
	var stats TableStats
	err := r.db.QueryRowContext(ctx, fmt.Sprintf(
		"SELECT COUNT(*), COALESCE(MAX(rowid), 0) FROM %s", table.Quoted(),
	)).Scan(&stats.Rows, &stats.LastID)
	if err != nil {
		r.logger.Error().Err(err).Str("table", table.Name).Msg("failed to count partition rows")
		return TableStats{}, fmt.Errorf("failed to count rows of %s: %w", table.Name, err)
	}
	return stats, nil
}
