package game

import (
	"math"

	"pokedle/internal/server/catalog"
	"pokedle/internal/server/core"
)

// measureTolerance is the equality band for height/weight comparisons, which
// the catalog stores as rounded decimals
const measureTolerance = 0.01

// Compare produces the hint set for one guess against the day's mystery
// entity. Both ids must resolve through the reader; pred supplies the
// evolution edges and may be nil (every entity then counts as a base form).
//
// Correctness depends only on identity: a guess can match every hint
// dimension and still be wrong if it is a different entity.
func Compare(reader catalog.Reader, pred PredecessorFunc, guessID, mysteryID int) (*core.GuessResult, error) {
	guess, err := reader.EntityByID(guessID)
	if err != nil {
		return nil, err
	}
	mystery, err := reader.EntityByID(mysteryID)
	if err != nil {
		return nil, err
	}

	result := &core.GuessResult{
		GuessID:        guessID,
		IsCorrect:      guessID == mysteryID,
		TypeSlot1:      compareSlot1(guess, mystery),
		TypeSlot2:      compareSlot2(guess, mystery),
		Attack:         compareInt(guess.Attack, mystery.Attack),
		Defense:        compareInt(guess.Defense, mystery.Defense),
		Stamina:        compareInt(guess.Stamina, mystery.Stamina),
		EvolutionStage: compareInt(EvolutionStage(guessID, pred), EvolutionStage(mysteryID, pred)),
		Generation:     compareInt(guess.Generation, mystery.Generation),
		Height:         compareMeasure(guess.HeightM, mystery.HeightM),
		Weight:         compareMeasure(guess.WeightKG, mystery.WeightKG),
	}

	return result, nil
}

func compareSlot1(guess, mystery *catalog.Entity) core.TypeHint {
	g := guess.FirstType()
	switch {
	case g == mystery.FirstType():
		return core.TypeCorrect
	case g != "" && g == mystery.SecondType():
		return core.TypeMisplaced
	default:
		return core.TypeWrong
	}
}

func compareSlot2(guess, mystery *catalog.Entity) core.TypeHint {
	g, m := guess.SecondType(), mystery.SecondType()
	switch {
	case g == "" && m == "":
		return core.TypeCorrect
	case g == "":
		return core.TypeMissing
	case g == m:
		return core.TypeCorrect
	case g == mystery.FirstType():
		return core.TypeMisplaced
	default:
		return core.TypeWrong
	}
}

func compareInt(guessed, actual int) core.OrdinalHint {
	switch {
	case guessed == actual:
		return core.OrdinalCorrect
	case guessed > actual:
		return core.OrdinalHigher
	default:
		return core.OrdinalLower
	}
}

// compareMeasure returns nil when either side lacks the attribute: an
// unknown height or weight must not read as equal
func compareMeasure(guessed, actual *float64) *core.OrdinalHint {
	if guessed == nil || actual == nil {
		return nil
	}

	var hint core.OrdinalHint
	switch {
	case math.Abs(*guessed-*actual) <= measureTolerance:
		hint = core.OrdinalCorrect
	case *guessed > *actual:
		hint = core.OrdinalHigher
	default:
		hint = core.OrdinalLower
	}
	return &hint
}
