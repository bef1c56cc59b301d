package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cod-tracker/internal/catalog"
	"cod-tracker/internal/constants"

	"github.com/rs/zerolog"
)

var ErrTableNotFound = errors.New("table not found")

// Table is the storage handle of one partition.
type Table struct {
	Name string
}

// Quoted returns the name as an SQL identifier.
func (t Table) Quoted() string {
	return `"` + t.Name + `"`
}

func OpenTable(ctx context.Context, db *sql.DB, name string) (Table, error) {
	var found string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return Table{}, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	if err != nil {
		return Table{}, fmt.Errorf("failed to look up table %s: %w", name, err)
	}
	return Table{Name: found}, nil
}

// NewCatalog opens every partition table of the layout. A missing table fails
// startup.
func NewCatalog(db *sql.DB, logger zerolog.Logger) (*catalog.Catalog[Table], error) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
	defer cancel()

	c, err := catalog.Build(func(key catalog.Key, name string) (Table, error) {
		return OpenTable(ctx, db, name)
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to build partition catalog")
		return nil, fmt.Errorf("failed to build partition catalog: %w", err)
	}

	logger.Info().Int("partitions", c.Len()).Msg("partition catalog built")
	return c, nil
}
