package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasePointsFailure(t *testing.T) {
	// A failed game earns the completion base regardless of effort
	assert.Equal(t, 10, BasePoints(Outcome{Success: false, Attempts: 1, CompletionSeconds: 5}))
	assert.Equal(t, 10, BasePoints(Outcome{Success: false, Attempts: 500, CompletionSeconds: 86400}))
}

func TestBasePointsSuccess(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    int
	}{
		{
			name:    "unreported attempts and time",
			outcome: Outcome{Success: true},
			want:    60, // 10 + 50, no bonus without reported effort
		},
		{
			name:    "first try instant",
			outcome: Outcome{Success: true, Attempts: 1, CompletionSeconds: 5},
			want:    10 + 50 + 45 + 30,
		},
		{
			name:    "attempt bonus floor",
			outcome: Outcome{Success: true, Attempts: 10},
			want:    60, // 50 - 5*10 clamps to zero
		},
		{
			name:    "beyond attempt bonus range",
			outcome: Outcome{Success: true, Attempts: 25},
			want:    60,
		},
		{
			name:    "speed bonus decays",
			outcome: Outcome{Success: true, Attempts: 1, CompletionSeconds: 100},
			want:    10 + 50 + 45 + 20,
		},
		{
			name:    "speed bonus floor",
			outcome: Outcome{Success: true, Attempts: 1, CompletionSeconds: 300},
			want:    10 + 50 + 45,
		},
		{
			name:    "slow but solved",
			outcome: Outcome{Success: true, Attempts: 6, CompletionSeconds: 500},
			want:    10 + 50 + 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BasePoints(tt.outcome))
		})
	}
}

func TestModifierRegistry(t *testing.T) {
	r := NewModifierRegistry()

	err := r.Register("double", func(points int, o Outcome) int {
		return points * 2
	})
	require.NoError(t, err)

	base := Outcome{GameType: "pokedle", Success: true}
	doubled := Outcome{GameType: "double", Success: true}

	assert.Equal(t, 60, r.Points(base), "unregistered game types use the base formula")
	assert.Equal(t, 120, r.Points(doubled))
}

func TestModifierRegistryRejectsDuplicates(t *testing.T) {
	r := NewModifierRegistry()

	identity := func(points int, o Outcome) int { return points }
	require.NoError(t, r.Register("x", identity))
	assert.Error(t, r.Register("x", identity))
}

func TestModifierRegistryRejectsNil(t *testing.T) {
	r := NewModifierRegistry()
	assert.Error(t, r.Register("x", nil))
}

func TestNilRegistryPoints(t *testing.T) {
	var r *ModifierRegistry
	assert.Equal(t, 10, r.Points(Outcome{Success: false}))
	assert.Equal(t, 60, r.Points(Outcome{Success: true}))
}
