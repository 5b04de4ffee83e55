package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// chainLookup builds a PredecessorFunc from an explicit edge map
func chainLookup(edges map[int]int) PredecessorFunc {
	return func(id int) (int, bool, error) {
		prev, ok := edges[id]
		return prev, ok, nil
	}
}

func TestEvolutionStageBaseForm(t *testing.T) {
	pred := chainLookup(map[int]int{})
	assert.Equal(t, 1, EvolutionStage(7, pred))
}

func TestEvolutionStageChain(t *testing.T) {
	// 1 -> 2 -> 3, a classic three-stage line
	pred := chainLookup(map[int]int{2: 1, 3: 2})

	assert.Equal(t, 1, EvolutionStage(1, pred))
	assert.Equal(t, 2, EvolutionStage(2, pred))
	assert.Equal(t, 3, EvolutionStage(3, pred))
}

func TestEvolutionStageNilLookup(t *testing.T) {
	assert.Equal(t, 1, EvolutionStage(42, nil))
}

func TestEvolutionStageCycle(t *testing.T) {
	// Malformed data: 5 and 6 claim each other as predecessor
	pred := chainLookup(map[int]int{5: 6, 6: 5})

	assert.Equal(t, 2, EvolutionStage(5, pred))
	assert.Equal(t, 2, EvolutionStage(6, pred))
}

func TestEvolutionStageSelfCycle(t *testing.T) {
	pred := chainLookup(map[int]int{9: 9})
	assert.Equal(t, 1, EvolutionStage(9, pred))
}

func TestEvolutionStageLookupError(t *testing.T) {
	boom := errors.New("edge source down")
	calls := 0
	pred := func(id int) (int, bool, error) {
		calls++
		if calls > 1 {
			return 0, false, boom
		}
		return id - 1, true, nil
	}

	// One good step, then the failing lookup reads as "no predecessor"
	assert.Equal(t, 2, EvolutionStage(10, pred))
}
