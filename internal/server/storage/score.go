package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// UpsertScore writes one player's result for the day: insert on the first
// submission, update-in-place on every resubmission. The reported flag is
// true only when a new row was created, which is the trigger for the points
// ledger. A unique-key collision from a concurrent first submission is a
// benign race and is retried as an update against the winning row.
func (s *Store) UpsertScore(rec ScoreRecord) (ScoreRecord, bool, error) {
	const maxAttempts = 2

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, created, err := s.upsertScoreOnce(rec)
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

func (s *Store) upsertScoreOnce(rec ScoreRecord) (ScoreRecord, bool, error) {
	var out ScoreRecord
	var created bool
	err := s.withTx(func(tx *sql.Tx) error {
		var err error
		out, created, err = upsertScoreTx(tx, rec)
		return err
	})
	return out, created, err
}

func upsertScoreTx(tx *sql.Tx, rec ScoreRecord) (ScoreRecord, bool, error) {
	now := time.Now().UTC()
	out := rec

	var existingID string
	var existingCreated time.Time
	err := tx.QueryRow(
		`SELECT record_id, created_at FROM score_record
		WHERE user_id = ? AND game_type = ? AND puzzle_date = ?`,
		rec.UserID, rec.GameType, rec.PuzzleDate,
	).Scan(&existingID, &existingCreated)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		out.RecordID = uuid.New().String()
		out.CreatedAt = now
		out.UpdatedAt = now
		_, err = tx.Exec(
			`INSERT INTO score_record (
				record_id, user_id, game_type, puzzle_date, entity_id,
				attempts, success, completion_seconds, hint_count, hints_enabled,
				created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			out.RecordID, out.UserID, out.GameType, out.PuzzleDate, out.EntityID,
			out.Attempts, out.Success, out.CompletionSeconds, out.HintCount, out.HintsEnabled,
			out.CreatedAt, out.UpdatedAt,
		)
		if err != nil {
			return ScoreRecord{}, false, err
		}
		return out, true, nil

	case err != nil:
		return ScoreRecord{}, false, fmt.Errorf("failed to look up score record: %w", err)

	default:
		out.RecordID = existingID
		out.CreatedAt = existingCreated
		out.UpdatedAt = now
		_, err = tx.Exec(
			`UPDATE score_record SET
				entity_id = ?, attempts = ?, success = ?, completion_seconds = ?,
				hint_count = ?, hints_enabled = ?, updated_at = ?
			WHERE record_id = ?`,
			out.EntityID, out.Attempts, out.Success, out.CompletionSeconds,
			out.HintCount, out.HintsEnabled, out.UpdatedAt, out.RecordID,
		)
		if err != nil {
			return ScoreRecord{}, false, fmt.Errorf("failed to update score record: %w", err)
		}
		return out, false, nil
	}
}

// GetScore retrieves one player's record for a game and date
func (s *Store) GetScore(userID, gameType, date string) (*ScoreRecord, error) {
	row := s.db.QueryRow(
		`SELECT record_id, user_id, game_type, puzzle_date, entity_id,
			attempts, success, completion_seconds, hint_count, hints_enabled,
			created_at, updated_at
		FROM score_record WHERE user_id = ? AND game_type = ? AND puzzle_date = ?`,
		userID, gameType, date,
	)
	return scanScore(row)
}

// SuccessfulScoresForDate returns the day's solved records in the primary
// leaderboard order: fewest attempts first, fastest completion as tie-break
func (s *Store) SuccessfulScoresForDate(gameType, date string) ([]ScoreRecord, error) {
	rows, err := s.db.Query(
		`SELECT record_id, user_id, game_type, puzzle_date, entity_id,
			attempts, success, completion_seconds, hint_count, hints_enabled,
			created_at, updated_at
		FROM score_record
		WHERE game_type = ? AND puzzle_date = ? AND success = 1
		ORDER BY attempts ASC, completion_seconds ASC, created_at ASC`,
		gameType, date,
	)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()
	return scanScores(rows)
}

// SuccessfulIdentifiedScores returns every solved record belonging to an
// identified user, for the all-time leaderboard's per-user dedup
func (s *Store) SuccessfulIdentifiedScores(gameType string) ([]ScoreRecord, error) {
	rows, err := s.db.Query(
		`SELECT record_id, user_id, game_type, puzzle_date, entity_id,
			attempts, success, completion_seconds, hint_count, hints_enabled,
			created_at, updated_at
		FROM score_record
		WHERE game_type = ? AND success = 1 AND user_id != ''
		ORDER BY user_id ASC, attempts ASC, completion_seconds ASC, puzzle_date ASC`,
		gameType,
	)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()
	return scanScores(rows)
}

// CountSuccessfulPlayers counts distinct identified users who solved the
// day's puzzle. Anonymous records never count.
func (s *Store) CountSuccessfulPlayers(gameType, date string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT user_id) FROM score_record
		WHERE game_type = ? AND puzzle_date = ? AND success = 1 AND user_id != ''`,
		gameType, date,
	).Scan(&count)
	return count, err
}

// QueryScores retrieves score records with optional filtering for the CLI
func (s *Store) QueryScores(userID, date string) ([]ScoreRecord, error) {
	query := `SELECT record_id, user_id, game_type, puzzle_date, entity_id,
		attempts, success, completion_seconds, hint_count, hints_enabled,
		created_at, updated_at
	FROM score_record WHERE 1=1`

	var args []any
	if userID != "" && userID != "*" {
		query += ` AND user_id = ?`
		args = append(args, userID)
	}
	if date != "" && date != "*" {
		query += ` AND puzzle_date = ?`
		args = append(args, date)
	}
	query += ` ORDER BY puzzle_date DESC, updated_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()
	return scanScores(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScore(row rowScanner) (*ScoreRecord, error) {
	var rec ScoreRecord
	err := row.Scan(
		&rec.RecordID, &rec.UserID, &rec.GameType, &rec.PuzzleDate, &rec.EntityID,
		&rec.Attempts, &rec.Success, &rec.CompletionSeconds, &rec.HintCount, &rec.HintsEnabled,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func scanScores(rows *sql.Rows) ([]ScoreRecord, error) {
	var records []ScoreRecord
	for rows.Next() {
		rec, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
