package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedle/internal/server/catalog"
	"pokedle/internal/server/game"
	"pokedle/internal/server/storage"
)

func f(v float64) *float64 { return &v }

func testCatalog() *catalog.Memory {
	return catalog.NewMemory([]catalog.Entity{
		{ID: 1, DexNumber: 1, Name: "bulbasaur", Types: []string{"grass", "poison"},
			Attack: 118, Defense: 111, Stamina: 128, Generation: 1,
			HeightM: f(0.7), WeightKG: f(6.9), DefaultForm: true},
		{ID: 2, DexNumber: 2, Name: "ivysaur", Types: []string{"grass", "poison"},
			Attack: 151, Defense: 143, Stamina: 155, Generation: 1,
			HeightM: f(1.0), WeightKG: f(13.0), DefaultForm: true, PredecessorID: 1},
		{ID: 4, DexNumber: 4, Name: "charmander", Types: []string{"fire"},
			Attack: 116, Defense: 93, Stamina: 118, Generation: 1,
			HeightM: f(0.6), WeightKG: f(8.5), DefaultForm: true},
		{ID: 152, DexNumber: 152, Name: "chikorita", Types: []string{"grass"},
			Attack: 92, Defense: 122, Stamina: 128, Generation: 2,
			HeightM: f(0.9), WeightKG: f(6.4), DefaultForm: true},
		{ID: 10001, DexNumber: 4, Name: "charmander-alt", Types: []string{"fire"},
			Attack: 116, Defense: 93, Stamina: 118, Generation: 1, DefaultForm: false},
	})
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := storage.NewStore(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	require.NoError(t, store.InitDB())
	t.Cleanup(func() { store.Close() })

	return New(testCatalog(), store, nil, false)
}

func day(s string) time.Time {
	d, err := time.Parse(game.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDailyPuzzleStableAcrossCalls(t *testing.T) {
	svc := newTestService(t)
	date := day("2026-08-31")

	first, err := svc.DailyPuzzle(date, "")
	require.NoError(t, err)
	assert.True(t, first.Persisted)
	assert.Equal(t, 4, first.RosterSize, "non-default forms stay out of the pool")

	for i := 0; i < 10; i++ {
		again, err := svc.DailyPuzzle(date, "")
		require.NoError(t, err)
		assert.Equal(t, first.EntityID, again.EntityID)
	}
}

func TestDailyPuzzlePartitions(t *testing.T) {
	svc := newTestService(t)
	date := day("2026-08-31")

	gen2, err := svc.DailyPuzzle(date, "gen2")
	require.NoError(t, err)
	assert.Equal(t, 152, gen2.EntityID, "gen2 has a single candidate")
	assert.Equal(t, 1, gen2.RosterSize)

	gen1, err := svc.DailyPuzzle(date, "gen1")
	require.NoError(t, err)
	assert.Equal(t, 3, gen1.RosterSize)
	assert.Contains(t, []int{1, 2, 4}, gen1.EntityID)
}

func TestDailyPuzzleUnknownPartition(t *testing.T) {
	svc := newTestService(t)

	for _, partition := range []string{"region1", "gen", "genx", "gen0", "gen-1"} {
		_, err := svc.DailyPuzzle(day("2026-08-31"), partition)
		assert.ErrorIs(t, err, ErrNoMatchingPartition, "partition %q", partition)
	}
}

func TestDailyPuzzleEmptyPartition(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.DailyPuzzle(day("2026-08-31"), "gen9")
	assert.ErrorIs(t, err, game.ErrEmptyRoster)
}

func TestDailyPuzzleWithoutStorage(t *testing.T) {
	svc := New(testCatalog(), nil, nil, false)

	daily, err := svc.DailyPuzzle(day("2026-08-31"), "")
	require.NoError(t, err)
	assert.False(t, daily.Persisted)

	// Still deterministic: the seed depends only on date and partition
	again, err := svc.DailyPuzzle(day("2026-08-31"), "")
	require.NoError(t, err)
	assert.Equal(t, daily.EntityID, again.EntityID)
}

func TestGuessAgainstDaily(t *testing.T) {
	svc := newTestService(t)
	date := day("2026-08-31")

	daily, err := svc.DailyPuzzle(date, "")
	require.NoError(t, err)

	result, err := svc.Guess(date, "", daily.EntityID)
	require.NoError(t, err)
	assert.True(t, result.IsCorrect)

	_, err = svc.Guess(date, "", 99999)
	assert.ErrorIs(t, err, catalog.ErrEntityNotFound)
}

func TestSubmitResultAwardsOnce(t *testing.T) {
	svc := newTestService(t)
	date := day("2026-08-31")

	first, err := svc.SubmitResult(Result{
		UserID: "alice", GameType: "pokedle", Date: date,
		EntityID: 1, Attempts: 8, Success: false, CompletionSeconds: 120,
	})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, 10, first.Points)

	// The failure banked 10 points in the daily window
	agg, err := svc.store.GetAggregate("alice", game.PeriodDaily, date)
	require.NoError(t, err)
	assert.Equal(t, 10, agg.Points)

	// Turning the day into a success updates the record but not the ledger
	second, err := svc.SubmitResult(Result{
		UserID: "alice", GameType: "pokedle", Date: date,
		EntityID: 1, Attempts: 9, Success: true, CompletionSeconds: 400,
	})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.RecordID, second.RecordID)
	assert.Equal(t, 10+50+5, second.Points, "the response reports the recomputed value")

	agg, err = svc.store.GetAggregate("alice", game.PeriodDaily, date)
	require.NoError(t, err)
	assert.Equal(t, 10, agg.Points, "resubmission never re-awards")
	assert.Equal(t, 1, agg.GamesCompleted)
}

func TestSubmitResultAnonymousSkipsLedger(t *testing.T) {
	svc := newTestService(t)
	date := day("2026-08-31")

	resp, err := svc.SubmitResult(Result{
		UserID: "", GameType: "pokedle", Date: date,
		EntityID: 1, Attempts: 1, Success: true, CompletionSeconds: 30,
	})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, 10+50+45+27, resp.Points, "points are still computed and reported")

	top, err := svc.store.TopAggregates(game.PeriodDaily, date, 10)
	require.NoError(t, err)
	assert.Empty(t, top, "no ledger rows for anonymous players")
}

func TestSubmitResultUnknownEntity(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitResult(Result{
		UserID: "alice", GameType: "pokedle", Date: day("2026-08-31"),
		EntityID: 99999, Success: true,
	})
	assert.ErrorIs(t, err, catalog.ErrEntityNotFound)
}

func TestSubmitResultStorageDisabled(t *testing.T) {
	svc := New(testCatalog(), nil, nil, false)

	_, err := svc.SubmitResult(Result{
		UserID: "alice", GameType: "pokedle", Date: day("2026-08-31"),
		EntityID: 1, Success: true,
	})
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestSubmitResultAppliesModifier(t *testing.T) {
	scoring := game.NewModifierRegistry()
	require.NoError(t, scoring.Register("double", func(points int, o game.Outcome) int {
		return points * 2
	}))

	store, err := storage.NewStore(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	require.NoError(t, store.InitDB())
	t.Cleanup(func() { store.Close() })

	svc := New(testCatalog(), store, scoring, false)

	resp, err := svc.SubmitResult(Result{
		UserID: "alice", GameType: "double", Date: day("2026-08-31"),
		EntityID: 1, Success: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 120, resp.Points)

	agg, err := store.GetAggregate("alice", game.PeriodDaily, day("2026-08-31"))
	require.NoError(t, err)
	assert.Equal(t, 120, agg.Points, "the ledger banks the modified value")
}

func TestDailyLeaderboard(t *testing.T) {
	svc := newTestService(t)
	date := day("2026-08-31")

	seed := []Result{
		{UserID: "slow", GameType: "pokedle", Date: date, EntityID: 1, Attempts: 2, Success: true, CompletionSeconds: 400},
		{UserID: "fast", GameType: "pokedle", Date: date, EntityID: 1, Attempts: 2, Success: true, CompletionSeconds: 50},
		{UserID: "many", GameType: "pokedle", Date: date, EntityID: 1, Attempts: 9, Success: true, CompletionSeconds: 30},
		{UserID: "failed", GameType: "pokedle", Date: date, EntityID: 1, Attempts: 1, Success: false, CompletionSeconds: 10},
	}
	for _, r := range seed {
		_, err := svc.SubmitResult(r)
		require.NoError(t, err)
	}

	board, err := svc.DailyLeaderboard("pokedle", date)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", board.Period)
	require.Len(t, board.Entries, 3)

	assert.Equal(t, "fast", board.Entries[0].UserID)
	assert.Equal(t, "slow", board.Entries[1].UserID)
	assert.Equal(t, "many", board.Entries[2].UserID)
	for i, e := range board.Entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestAllTimeLeaderboardDedupsPerUser(t *testing.T) {
	svc := newTestService(t)

	seed := []Result{
		{UserID: "alice", GameType: "pokedle", Date: day("2026-08-29"), EntityID: 1, Attempts: 5, Success: true, CompletionSeconds: 100},
		{UserID: "alice", GameType: "pokedle", Date: day("2026-08-30"), EntityID: 2, Attempts: 1, Success: true, CompletionSeconds: 40},
		{UserID: "bob", GameType: "pokedle", Date: day("2026-08-30"), EntityID: 2, Attempts: 3, Success: true, CompletionSeconds: 60},
		{UserID: "", GameType: "pokedle", Date: day("2026-08-30"), EntityID: 2, Attempts: 1, Success: true, CompletionSeconds: 5},
	}
	for _, r := range seed {
		_, err := svc.SubmitResult(r)
		require.NoError(t, err)
	}

	board, err := svc.AllTimeLeaderboard("pokedle", 0)
	require.NoError(t, err)
	assert.Equal(t, "alltime", board.Period)
	require.Len(t, board.Entries, 2, "one row per identified user")

	assert.Equal(t, "alice", board.Entries[0].UserID)
	assert.Equal(t, "2026-08-30", board.Entries[0].Date, "the best attempt represents the user")
	assert.Equal(t, "bob", board.Entries[1].UserID)
}

func TestAllTimeLeaderboardLimit(t *testing.T) {
	svc := newTestService(t)

	users := []string{"a", "b", "c"}
	for i, u := range users {
		_, err := svc.SubmitResult(Result{
			UserID: u, GameType: "pokedle", Date: day("2026-08-30"),
			EntityID: 1, Attempts: i + 1, Success: true, CompletionSeconds: 60,
		})
		require.NoError(t, err)
	}

	board, err := svc.AllTimeLeaderboard("pokedle", 2)
	require.NoError(t, err)
	assert.Len(t, board.Entries, 2)
	assert.Equal(t, "a", board.Entries[0].UserID)
}

func TestSuccessfulPlayers(t *testing.T) {
	svc := newTestService(t)
	date := day("2026-08-31")

	_, err := svc.SubmitResult(Result{UserID: "alice", GameType: "pokedle", Date: date, EntityID: 1, Success: true})
	require.NoError(t, err)
	_, err = svc.SubmitResult(Result{UserID: "", GameType: "pokedle", Date: date, EntityID: 1, Success: true})
	require.NoError(t, err)

	count, err := svc.SuccessfulPlayers("pokedle", date)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetStorageHealth(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, "ok", svc.GetStorageHealth())

	bare := New(testCatalog(), nil, nil, false)
	assert.Equal(t, "disabled", bare.GetStorageHealth())
}
