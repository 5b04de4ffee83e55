package storage

import "time"

// PuzzleRecord represents a row in the daily_puzzle table. Once created it
// is immutable: the persisted entity, not the selection seed, is the durable
// source of truth even if the roster grows later.
type PuzzleRecord struct {
	PuzzleDate   string    `db:"puzzle_date"`   // YYYY-MM-DD, UTC
	PartitionKey string    `db:"partition_key"` // "" = unpartitioned stream
	EntityID     int       `db:"entity_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// ScoreRecord represents one player's result for one game on one date.
// UserID "" is the shared anonymous slot.
type ScoreRecord struct {
	RecordID          string    `db:"record_id"`
	UserID            string    `db:"user_id"`
	GameType          string    `db:"game_type"`
	PuzzleDate        string    `db:"puzzle_date"`
	EntityID          int       `db:"entity_id"`
	Attempts          int       `db:"attempts"`
	Success           bool      `db:"success"`
	CompletionSeconds int       `db:"completion_seconds"`
	HintCount         *int      `db:"hint_count"`    // nil when the client did not report
	HintsEnabled      *bool     `db:"hints_enabled"` // nil when the client did not report
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// AggregateRecord represents a row in the points_aggregate table. Totals are
// monotonically non-decreasing; rows never exist for anonymous identities.
type AggregateRecord struct {
	AggregateID    int64   `db:"aggregate_id"`
	UserID         string  `db:"user_id"`
	PeriodType     string  `db:"period_type"`
	PeriodStart    string  `db:"period_start"` // YYYY-MM-DD
	PeriodEnd      *string `db:"period_end"`   // nil for the all-time window
	Points         int     `db:"points"`
	GamesCompleted int     `db:"games_completed"`
	GamesSucceeded int     `db:"games_succeeded"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS daily_puzzle (
	puzzle_date TEXT NOT NULL,
	partition_key TEXT NOT NULL DEFAULT '',
	entity_id INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (puzzle_date, partition_key)
);

CREATE TABLE IF NOT EXISTS score_record (
	record_id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL DEFAULT '',
	game_type TEXT NOT NULL,
	puzzle_date TEXT NOT NULL,
	entity_id INTEGER NOT NULL,
	attempts INTEGER NOT NULL DEFAULT 0,
	success INTEGER NOT NULL DEFAULT 0,
	completion_seconds INTEGER NOT NULL DEFAULT 0,
	hint_count INTEGER,
	hints_enabled INTEGER,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (user_id, game_type, puzzle_date)
);

CREATE INDEX IF NOT EXISTS idx_score_record_day ON score_record(game_type, puzzle_date, success);
CREATE INDEX IF NOT EXISTS idx_score_record_user ON score_record(user_id);

CREATE TABLE IF NOT EXISTS points_aggregate (
	aggregate_id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	period_type TEXT NOT NULL CHECK(period_type IN ('daily', 'weekly', 'monthly', 'yearly', 'total')),
	period_start TEXT NOT NULL,
	period_end TEXT,
	points INTEGER NOT NULL DEFAULT 0,
	games_completed INTEGER NOT NULL DEFAULT 0,
	games_succeeded INTEGER NOT NULL DEFAULT 0,
	UNIQUE (user_id, period_type, period_start)
);

CREATE INDEX IF NOT EXISTS idx_points_aggregate_window ON points_aggregate(period_type, period_start);
`
