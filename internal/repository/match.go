package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cod-tracker/internal/constants"
	"cod-tracker/internal/database"
	"cod-tracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

const matchColumns = "id, match_id, uno, username, clantag, time, map, mode, team, result, kills, deaths, assists, score, duration, created_at"

type MatchRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// InsertBatch writes matches into one partition. Rows already present for the
// same (match_id, uno) are replaced.
func (r *MatchRepository) InsertBatch(ctx context.Context, table database.Table, matches []domain.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (match_id, uno) DO UPDATE SET
			username = excluded.username, clantag = excluded.clantag, time = excluded.time,
			map = excluded.map, mode = excluded.mode, team = excluded.team, result = excluded.result,
			kills = excluded.kills, deaths = excluded.deaths, assists = excluded.assists,
			score = excluded.score, duration = excluded.duration`,
		table.Quoted(), matchColumns))
	if err != nil {
		return fmt.Errorf("failed to prepare insert into %s: %w", table.Name, err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := 0; i < len(matches); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(matches) {
			end = len(matches)
		}

		for _, m := range matches[i:end] {
			id := m.ID
			if id == "" {
				id, err = gonanoid.New()
				if err != nil {
					return fmt.Errorf("failed to generate nanoid: %w", err)
				}
			}
			createdAt := m.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}

			_, err := stmt.ExecContext(ctx,
				id, m.MatchID, m.Uno, m.Username, m.Clantag, m.Time.UTC(), m.Map, m.Mode, m.Team,
				m.Result, m.Kills, m.Deaths, m.Assists, m.Score, m.Duration, createdAt.UTC(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert match %s/%s into %s: %w", m.MatchID, m.Uno, table.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit matches into %s: %w", table.Name, err)
	}

	r.logger.Debug().Str("table", table.Name).Int("rows", len(matches)).Msg("matches stored")
	return nil
}

// GetByUno returns up to limit of a player's rows from one partition, newest
// first.
func (r *MatchRepository) GetByUno(ctx context.Context, table database.Table, uno string, limit int) ([]domain.Match, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s FROM %s WHERE uno = ? ORDER BY time DESC, rowid DESC LIMIT ?",
		matchColumns, table.Quoted()), uno, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table.Name, err)
	}
	defer rows.Close()

	matches := []domain.Match{}
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(
			&m.ID, &m.MatchID, &m.Uno, &m.Username, &m.Clantag, &m.Time, &m.Map, &m.Mode, &m.Team,
			&m.Result, &m.Kills, &m.Deaths, &m.Assists, &m.Score, &m.Duration, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table.Name, err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table.Name, err)
	}
	return matches, nil
}
