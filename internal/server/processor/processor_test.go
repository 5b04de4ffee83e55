package processor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedle/internal/server/catalog"
	"pokedle/internal/server/core"
	"pokedle/internal/server/service"
)

func newTestProcessor() *Processor {
	cat := catalog.NewMemory([]catalog.Entity{
		{ID: 1, DexNumber: 1, Name: "bulbasaur", Types: []string{"grass", "poison"},
			Attack: 118, Defense: 111, Stamina: 128, Generation: 1, DefaultForm: true},
		{ID: 4, DexNumber: 4, Name: "charmander", Types: []string{"fire"},
			Attack: 116, Defense: 93, Stamina: 118, Generation: 1, DefaultForm: true},
	})
	// No storage: puzzle and guess paths work, persistence paths degrade
	return New(service.New(cat, nil, nil, false))
}

func TestExecuteGetDaily(t *testing.T) {
	p := newTestProcessor()
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	resp := p.Execute(NewGetDailyCommand(date, ""))
	require.True(t, resp.Success)

	daily, ok := resp.Data.(core.DailyResponse)
	require.True(t, ok)
	assert.Equal(t, "2026-08-31", daily.Date)
	assert.Equal(t, 2, daily.RosterSize)
	assert.False(t, daily.Persisted)
}

func TestExecuteGuess(t *testing.T) {
	p := newTestProcessor()
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	resp := p.Execute(NewGuessCommand(date, "", 1))
	require.True(t, resp.Success)

	result, ok := resp.Data.(*core.GuessResult)
	require.True(t, ok)
	assert.Equal(t, 1, result.GuessID)
}

func TestExecuteErrorMapping(t *testing.T) {
	p := newTestProcessor()
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cmd  Command
		code string
	}{
		{"unknown partition", NewGetDailyCommand(date, "region1"), core.ErrUnknownPartition},
		{"empty roster", NewGetDailyCommand(date, "gen9"), core.ErrEmptyRoster},
		{"unknown entity", NewGuessCommand(date, "", 99999), core.ErrEntityNotFound},
		{"storage disabled", NewDailyLeaderboardCommand("pokedle", date), core.ErrStorageDisabled},
		{"stats need storage", NewDailyStatsCommand("pokedle", date), core.ErrStorageDisabled},
		{
			"results need storage",
			NewSubmitResultCommand(service.Result{UserID: "a", GameType: "pokedle", Date: date, EntityID: 1}),
			core.ErrStorageDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := p.Execute(tt.cmd)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Details)
		})
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	p := newTestProcessor()
	resp := p.Execute(Command{Type: CommandType(99)})
	assert.False(t, resp.Success)
	assert.Equal(t, core.ErrInvalidRequest, resp.Error.Code)
}
