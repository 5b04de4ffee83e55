package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedle/internal/server/catalog"
)

func testRoster(n int) []catalog.Entity {
	roster := make([]catalog.Entity, n)
	for i := range roster {
		roster[i] = catalog.Entity{ID: i + 1, DexNumber: i + 1, Types: []string{"normal"}}
	}
	return roster
}

func TestPickDailyDeterministic(t *testing.T) {
	roster := testRoster(151)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	first, err := PickDaily(roster, date, "", false)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		pick, err := PickDaily(roster, date, "", false)
		require.NoError(t, err)
		assert.Equal(t, first.ID, pick.ID, "same date must always pick the same entity")
	}
}

func TestPickDailyIgnoresClock(t *testing.T) {
	roster := testRoster(100)
	// Midnight and a second before the next midnight share a calendar date
	early := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	a, err := PickDaily(roster, early, "", false)
	require.NoError(t, err)
	b, err := PickDaily(roster, late, "", false)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
}

func TestPickDailySeedVariesByInput(t *testing.T) {
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	next := date.AddDate(0, 0, 1)

	assert.NotEqual(t, DailySeed(date, ""), DailySeed(next, ""))
	assert.NotEqual(t, DailySeed(date, ""), DailySeed(date, "gen1"))
	assert.NotEqual(t, DailySeed(date, "gen1"), DailySeed(date, "gen2"))
}

func TestPickDailyWithinRoster(t *testing.T) {
	roster := testRoster(3)
	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 30; i++ {
		pick, err := PickDaily(roster, date.AddDate(0, 0, i), "", false)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pick.ID, 1)
		assert.LessOrEqual(t, pick.ID, 3)
	}
}

func TestPickDailyEmptyRoster(t *testing.T) {
	_, err := PickDaily(nil, time.Now(), "", false)
	assert.ErrorIs(t, err, ErrEmptyRoster)

	_, err = PickDaily([]catalog.Entity{}, time.Now(), "gen9", true)
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestPickDailyVolatile(t *testing.T) {
	roster := testRoster(200)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// Volatile draws stay inside the roster; with 200 candidates two
	// clock-seeded draws almost never all collide across 20 rounds
	seen := make(map[int]bool)
	for i := 0; i < 20; i++ {
		pick, err := PickDaily(roster, date, "", true)
		require.NoError(t, err)
		seen[pick.ID] = true
	}
	assert.NotEmpty(t, seen)
}
