package service

import (
	"sort"
	"time"

	"pokedle/internal/server/core"
	"pokedle/internal/server/game"
	"pokedle/internal/server/storage"
)

// DefaultLeaderboardLimit caps the all-time view when the caller gives none
const DefaultLeaderboardLimit = 25

// DailyLeaderboard ranks every successful record for a date. Primary order
// is attempts ascending then completion time ascending; computed points act
// as a stable secondary tie-break.
func (s *Service) DailyLeaderboard(gameType string, date time.Time) (*core.LeaderboardResponse, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}

	day := date.Format(game.DateLayout)
	records, err := s.store.SuccessfulScoresForDate(gameType, day)
	if err != nil {
		return nil, err
	}

	entries := s.rankEntries(records, 0)
	return &core.LeaderboardResponse{
		GameType: gameType,
		Period:   day,
		Entries:  entries,
	}, nil
}

// AllTimeLeaderboard deduplicates to one row per identified user (their best
// successful attempt) and ranks across users, limited to n entries. Anonymous
// records are excluded entirely.
func (s *Service) AllTimeLeaderboard(gameType string, n int) (*core.LeaderboardResponse, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	if n <= 0 {
		n = DefaultLeaderboardLimit
	}

	records, err := s.store.SuccessfulIdentifiedScores(gameType)
	if err != nil {
		return nil, err
	}

	// Records arrive grouped per user with the best attempt first, so the
	// first row seen for each user is their best
	var best []storage.ScoreRecord
	seen := make(map[string]bool)
	for _, rec := range records {
		if seen[rec.UserID] {
			continue
		}
		seen[rec.UserID] = true
		best = append(best, rec)
	}

	entries := s.rankEntries(best, n)
	return &core.LeaderboardResponse{
		GameType: gameType,
		Period:   "alltime",
		Entries:  entries,
	}, nil
}

// SuccessfulPlayers counts identified users who solved the day's puzzle
func (s *Service) SuccessfulPlayers(gameType string, date time.Time) (int, error) {
	if s.store == nil {
		return 0, ErrStorageDisabled
	}
	return s.store.CountSuccessfulPlayers(gameType, date.Format(game.DateLayout))
}

// rankEntries computes points per record, applies the shared ordering
// (points descending, attempts ascending, time ascending) as a stable sort
// over the store's primary order, and assigns ranks. A positive limit
// truncates the result.
func (s *Service) rankEntries(records []storage.ScoreRecord, limit int) []core.LeaderboardEntry {
	entries := make([]core.LeaderboardEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, core.LeaderboardEntry{
			UserID:            rec.UserID,
			Date:              rec.PuzzleDate,
			EntityID:          rec.EntityID,
			Attempts:          rec.Attempts,
			CompletionSeconds: rec.CompletionSeconds,
			Points: s.scoring.Points(game.Outcome{
				GameType:          rec.GameType,
				Success:           rec.Success,
				Attempts:          rec.Attempts,
				CompletionSeconds: rec.CompletionSeconds,
			}),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Attempts != b.Attempts {
			return a.Attempts < b.Attempts
		}
		return a.CompletionSeconds < b.CompletionSeconds
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
