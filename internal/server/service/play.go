package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pokedle/internal/server/core"
	"pokedle/internal/server/game"
	"pokedle/internal/server/storage"
)

// Daily describes the day's puzzle for one partition stream
type Daily struct {
	Date       string
	Partition  string
	EntityID   int
	RosterSize int
	Persisted  bool
}

// DailyPuzzle returns the mystery entity for a date and partition, creating
// the persisted record on first access. Once a row exists it is the durable
// source of truth: the selector is never re-run against a grown roster. With
// persistence disabled (or in volatile mode) the selection is recomputed per
// call.
func (s *Service) DailyPuzzle(date time.Time, partition string) (*Daily, error) {
	roster, err := s.roster(partition)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("partition %q: %w", partition, game.ErrEmptyRoster)
	}

	daily := &Daily{
		Date:       date.Format(game.DateLayout),
		Partition:  partition,
		RosterSize: len(roster),
	}

	if s.store == nil || s.volatile {
		pick, err := game.PickDaily(roster, date, partition, s.volatile)
		if err != nil {
			return nil, err
		}
		daily.EntityID = pick.ID
		return daily, nil
	}

	// Fast path: the puzzle was already materialized
	if rec, err := s.store.GetPuzzle(daily.Date, partition); err == nil {
		daily.EntityID = rec.EntityID
		daily.Persisted = true
		return daily, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to read daily puzzle: %w", err)
	}

	pick, err := game.PickDaily(roster, date, partition, false)
	if err != nil {
		return nil, err
	}

	// A concurrent creator may win the insert; the returned row is
	// authoritative either way
	rec, _, err := s.store.GetOrCreatePuzzle(daily.Date, partition, pick.ID)
	if err != nil {
		return nil, err
	}

	daily.EntityID = rec.EntityID
	daily.Persisted = true
	return daily, nil
}

// Guess compares a guessed entity against the day's mystery entity and
// returns the hint set. Read-only: nothing about the guess is persisted.
func (s *Service) Guess(date time.Time, partition string, guessID int) (*core.GuessResult, error) {
	daily, err := s.DailyPuzzle(date, partition)
	if err != nil {
		return nil, err
	}

	return game.Compare(s.catalog, s.catalog.PredecessorOf, guessID, daily.EntityID)
}

// Result carries one completed game into the score store and, for new
// identified records, the points ledger
type Result struct {
	UserID            string // "" = anonymous
	GameType          string
	Date              time.Time
	EntityID          int
	Attempts          int
	Success           bool
	CompletionSeconds int
	HintCount         *int
	HintsEnabled      *bool
}

// SubmitResult upserts the player's record for the day and returns the
// stored record id, whether it was newly created, and the computed points.
//
// The ledger is fed exactly once, when the day's record is first written;
// the record and its ledger increments commit in one transaction. A
// resubmission (even one that turns a failure into a success) updates the
// stored record but never re-awards points; the first completed attempt of
// the day is the one that counts. Anonymous identities never reach the
// ledger.
func (s *Service) SubmitResult(r Result) (*core.ResultResponse, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}

	if _, err := s.catalog.EntityByID(r.EntityID); err != nil {
		return nil, err
	}

	points := s.scoring.Points(game.Outcome{
		GameType:          r.GameType,
		Success:           r.Success,
		Attempts:          r.Attempts,
		CompletionSeconds: r.CompletionSeconds,
	})

	rec, created, err := s.store.RecordOutcome(storage.ScoreRecord{
		UserID:            r.UserID,
		GameType:          r.GameType,
		PuzzleDate:        r.Date.Format(game.DateLayout),
		EntityID:          r.EntityID,
		Attempts:          r.Attempts,
		Success:           r.Success,
		CompletionSeconds: r.CompletionSeconds,
		HintCount:         r.HintCount,
		HintsEnabled:      r.HintsEnabled,
	}, points)
	if err != nil {
		return nil, fmt.Errorf("failed to store result: %w", err)
	}

	return &core.ResultResponse{
		RecordID: rec.RecordID,
		Created:  created,
		Points:   points,
	}, nil
}
