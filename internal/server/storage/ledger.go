package storage

import (
	"database/sql"
	"fmt"
	"time"

	"pokedle/internal/server/game"
)

// ApplyOutcome feeds one completed game into every period aggregate for the
// user: daily, weekly, monthly, yearly and all-time rows are incremented (or
// inserted) inside a single transaction. The increment is one atomic
// insert-or-update statement per key, never a caller-side read-then-write,
// so concurrent completions for the same user and period cannot lose an
// update. Callers must not pass an anonymous identity.
func (s *Store) ApplyOutcome(userID string, date time.Time, points int, success bool) error {
	if userID == "" {
		return fmt.Errorf("points ledger requires an identified user")
	}

	return s.withTx(func(tx *sql.Tx) error {
		return applyOutcomeTx(tx, userID, date, points, success)
	})
}

func applyOutcomeTx(tx *sql.Tx, userID string, date time.Time, points int, success bool) error {
	succeeded := 0
	if success {
		succeeded = 1
	}

	for _, period := range game.AllPeriods {
		start := game.Anchor(period, date)

		var periodEnd *string
		if end, ok := game.AnchorEnd(period, start); ok {
			v := end.Format(game.DateLayout)
			periodEnd = &v
		}

		_, err := tx.Exec(
			`INSERT INTO points_aggregate (
				user_id, period_type, period_start, period_end,
				points, games_completed, games_succeeded
			) VALUES (?, ?, ?, ?, ?, 1, ?)
			ON CONFLICT (user_id, period_type, period_start) DO UPDATE SET
				points = points + excluded.points,
				games_completed = games_completed + excluded.games_completed,
				games_succeeded = games_succeeded + excluded.games_succeeded`,
			userID, string(period), start.Format(game.DateLayout), periodEnd,
			points, succeeded,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert %s aggregate: %w", period, err)
		}
	}
	return nil
}

// RecordOutcome stores a player's result and, when the write creates the
// day's record for an identified user, feeds the points ledger inside the
// same transaction. A ledger failure rolls the record back too, so a retried
// submission is still the day's first write and awards normally. Resubmitted
// records update in place and leave the ledger alone.
func (s *Store) RecordOutcome(rec ScoreRecord, points int) (ScoreRecord, bool, error) {
	date, err := time.Parse(game.DateLayout, rec.PuzzleDate)
	if err != nil {
		return ScoreRecord{}, false, fmt.Errorf("invalid puzzle date %q: %w", rec.PuzzleDate, err)
	}

	const maxAttempts = 2

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var out ScoreRecord
		var created bool
		err := s.withTx(func(tx *sql.Tx) error {
			var err error
			out, created, err = upsertScoreTx(tx, rec)
			if err != nil {
				return err
			}
			if created && rec.UserID != "" {
				return applyOutcomeTx(tx, rec.UserID, date, points, rec.Success)
			}
			return nil
		})
		if err == nil {
			return out, created, nil
		}
		if !isUniqueViolation(err) {
			return ScoreRecord{}, false, err
		}
		lastErr = err
	}
	return ScoreRecord{}, false, lastErr
}

// GetAggregate retrieves one period aggregate row, or sql.ErrNoRows
func (s *Store) GetAggregate(userID string, period game.PeriodType, start time.Time) (*AggregateRecord, error) {
	var rec AggregateRecord
	err := s.db.QueryRow(
		`SELECT aggregate_id, user_id, period_type, period_start, period_end,
			points, games_completed, games_succeeded
		FROM points_aggregate
		WHERE user_id = ? AND period_type = ? AND period_start = ?`,
		userID, string(period), start.Format(game.DateLayout),
	).Scan(
		&rec.AggregateID, &rec.UserID, &rec.PeriodType, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.Points, &rec.GamesCompleted, &rec.GamesSucceeded,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// TopAggregates lists the highest-scoring rows of one period window for the
// admin CLI
func (s *Store) TopAggregates(period game.PeriodType, start time.Time, limit int) ([]AggregateRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT aggregate_id, user_id, period_type, period_start, period_end,
			points, games_completed, games_succeeded
		FROM points_aggregate
		WHERE period_type = ? AND period_start = ?
		ORDER BY points DESC, games_succeeded DESC, user_id ASC
		LIMIT ?`,
		string(period), start.Format(game.DateLayout), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var records []AggregateRecord
	for rows.Next() {
		var rec AggregateRecord
		err := rows.Scan(
			&rec.AggregateID, &rec.UserID, &rec.PeriodType, &rec.PeriodStart, &rec.PeriodEnd,
			&rec.Points, &rec.GamesCompleted, &rec.GamesSucceeded,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
