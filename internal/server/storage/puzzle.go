package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// GetOrCreatePuzzle persists the day's puzzle exactly once per
// (date, partition) key and returns the winning row. Concurrent callers may
// both attempt the insert; the unique key makes the race benign and the
// loser simply reads back the row that won. The stored entity is never
// recomputed.
func (s *Store) GetOrCreatePuzzle(date, partition string, entityID int) (PuzzleRecord, bool, error) {
	var rec PuzzleRecord
	created := false

	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO daily_puzzle (puzzle_date, partition_key, entity_id, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (puzzle_date, partition_key) DO NOTHING`,
			date, partition, entityID, time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert daily puzzle: %w", err)
		}

		if n, err := res.RowsAffected(); err == nil && n > 0 {
			created = true
		}

		row := tx.QueryRow(
			`SELECT puzzle_date, partition_key, entity_id, created_at
			FROM daily_puzzle WHERE puzzle_date = ? AND partition_key = ?`,
			date, partition,
		)
		if err := row.Scan(&rec.PuzzleDate, &rec.PartitionKey, &rec.EntityID, &rec.CreatedAt); err != nil {
			return fmt.Errorf("failed to read daily puzzle: %w", err)
		}
		return nil
	})

	return rec, created, err
}

// GetPuzzle retrieves a persisted puzzle, or sql.ErrNoRows when the key has
// never been materialized
func (s *Store) GetPuzzle(date, partition string) (*PuzzleRecord, error) {
	var rec PuzzleRecord
	err := s.db.QueryRow(
		`SELECT puzzle_date, partition_key, entity_id, created_at
		FROM daily_puzzle WHERE puzzle_date = ? AND partition_key = ?`,
		date, partition,
	).Scan(&rec.PuzzleDate, &rec.PartitionKey, &rec.EntityID, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// QueryPuzzles lists persisted puzzles, newest first, for the admin CLI
func (s *Store) QueryPuzzles(partition string, limit int) ([]PuzzleRecord, error) {
	query := `SELECT puzzle_date, partition_key, entity_id, created_at FROM daily_puzzle`
	var args []any

	if partition != "" && partition != "*" {
		query += ` WHERE partition_key = ?`
		args = append(args, partition)
	}

	query += ` ORDER BY puzzle_date DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var puzzles []PuzzleRecord
	for rows.Next() {
		var p PuzzleRecord
		if err := rows.Scan(&p.PuzzleDate, &p.PartitionKey, &p.EntityID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		puzzles = append(puzzles, p)
	}

	return puzzles, rows.Err()
}
