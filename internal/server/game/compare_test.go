package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedle/internal/server/catalog"
	"pokedle/internal/server/core"
)

func f(v float64) *float64 { return &v }

func compareCatalog() *catalog.Memory {
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
		{ID: 92, DexNumber: 92, Name: "gastly", Types: []string{"ghost", "poison"},
			Attack: 186, Defense: 70, Stamina: 102, Generation: 1,
			HeightM: f(1.3), WeightKG: f(0.1), DefaultForm: true},
		{ID: 211, DexNumber: 211, Name: "qwilfish", Types: []string{"poison", "water"},
			Attack: 184, Defense: 138, Stamina: 163, Generation: 2,
			HeightM: f(0.5), WeightKG: f(3.9), DefaultForm: true},
		{ID: 999, DexNumber: 999, Name: "phantom", Types: []string{"ghost"},
			Attack: 100, Defense: 100, Stamina: 100, Generation: 9, DefaultForm: true},
	})
}

func TestCompareSelfGuess(t *testing.T) {
	cat := compareCatalog()
	got, err := Compare(cat, cat.PredecessorOf, 1, 1)
	require.NoError(t, err)

	correct := core.OrdinalCorrect
	want := &core.GuessResult{
		GuessID:        1,
		IsCorrect:      true,
		TypeSlot1:      core.TypeCorrect,
		TypeSlot2:      core.TypeCorrect,
		Attack:         core.OrdinalCorrect,
		Defense:        core.OrdinalCorrect,
		Stamina:        core.OrdinalCorrect,
		EvolutionStage: core.OrdinalCorrect,
		Generation:     core.OrdinalCorrect,
		Height:         &correct,
		Weight:         &correct,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("self guess mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareTypeHints(t *testing.T) {
	cat := compareCatalog()

	tests := []struct {
		name      string
		guessID   int
		mysteryID int
		slot1     core.TypeHint
		slot2     core.TypeHint
	}{
		{
			// poison sits in the mystery's slot 2, water is absent
			name:    "slot1 misplaced",
			guessID: 211, mysteryID: 1,
			slot1: core.TypeMisplaced, slot2: core.TypeWrong,
		},
		{
			// shared slot-2 poison, different slot-1
			name:    "slot2 exact across entities",
			guessID: 92, mysteryID: 1,
			slot1: core.TypeWrong, slot2: core.TypeCorrect,
		},
		{
			// mono-typed guess against a dual-typed mystery
			name:    "slot2 missing",
			guessID: 4, mysteryID: 1,
			slot1: core.TypeWrong, slot2: core.TypeMissing,
		},
		{
			// both mono-typed, empty second slots agree
			name:    "both mono-typed",
			guessID: 4, mysteryID: 999,
			slot1: core.TypeWrong, slot2: core.TypeCorrect,
		},
		{
			// guess's slot-2 poison matches the mystery's slot-1 poison
			name:    "slot2 misplaced",
			guessID: 92, mysteryID: 211,
			slot1: core.TypeWrong, slot2: core.TypeMisplaced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(cat, cat.PredecessorOf, tt.guessID, tt.mysteryID)
			require.NoError(t, err)
			assert.False(t, got.IsCorrect)
			assert.Equal(t, tt.slot1, got.TypeSlot1)
			assert.Equal(t, tt.slot2, got.TypeSlot2)
		})
	}
}

func TestCompareOrdinalDirection(t *testing.T) {
	cat := compareCatalog()

	// gastly attacks harder than bulbasaur, the hint points back down
	got, err := Compare(cat, cat.PredecessorOf, 92, 1)
	require.NoError(t, err)
	assert.Equal(t, core.OrdinalHigher, got.Attack)
	assert.Equal(t, core.OrdinalLower, got.Defense)

	// And the mirrored guess points the other way
	mirror, err := Compare(cat, cat.PredecessorOf, 1, 92)
	require.NoError(t, err)
	assert.Equal(t, core.OrdinalLower, mirror.Attack)
	assert.Equal(t, core.OrdinalHigher, mirror.Defense)
}

func TestCompareEvolutionStage(t *testing.T) {
	cat := compareCatalog()

	// ivysaur is stage 2, charmander stage 1
	got, err := Compare(cat, cat.PredecessorOf, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, core.OrdinalHigher, got.EvolutionStage)

	// With no predecessor source everything flattens to stage 1
	flat, err := Compare(cat, nil, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, core.OrdinalCorrect, flat.EvolutionStage)
}

func TestCompareMeasuresOmittedWhenUnknown(t *testing.T) {
	cat := compareCatalog()

	// phantom has no recorded height or weight
	got, err := Compare(cat, cat.PredecessorOf, 1, 999)
	require.NoError(t, err)
	assert.Nil(t, got.Height)
	assert.Nil(t, got.Weight)

	// Either side being unknown suppresses the hint
	mirror, err := Compare(cat, cat.PredecessorOf, 999, 1)
	require.NoError(t, err)
	assert.Nil(t, mirror.Height)
	assert.Nil(t, mirror.Weight)
}

func TestCompareMeasureTolerance(t *testing.T) {
	a := f(1.005)
	b := f(1.0)
	hint := compareMeasure(a, b)
	require.NotNil(t, hint)
	assert.Equal(t, core.OrdinalCorrect, *hint)

	c := f(1.02)
	hint = compareMeasure(c, b)
	require.NotNil(t, hint)
	assert.Equal(t, core.OrdinalHigher, *hint)
}

func TestCompareUnknownEntity(t *testing.T) {
	cat := compareCatalog()

	_, err := Compare(cat, cat.PredecessorOf, 12345, 1)
	assert.ErrorIs(t, err, catalog.ErrEntityNotFound)

	_, err = Compare(cat, cat.PredecessorOf, 1, 12345)
	assert.ErrorIs(t, err, catalog.ErrEntityNotFound)
}
