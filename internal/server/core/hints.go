package core

// TypeHint classifies a guessed type slot against the mystery entity
type TypeHint string

const (
	TypeCorrect   TypeHint = "correct"   // same type at the same slot
	TypeMisplaced TypeHint = "misplaced" // type present in the mystery's set, other slot
	TypeWrong     TypeHint = "wrong"     // type absent from the mystery
	TypeMissing   TypeHint = "missing"   // guess has no second type but the mystery does
)

// OrdinalHint classifies a guessed numeric attribute against the mystery entity
type OrdinalHint string

const (
	OrdinalCorrect OrdinalHint = "correct"
	OrdinalHigher  OrdinalHint = "higher" // guessed value exceeds the mystery's
	OrdinalLower   OrdinalHint = "lower"
)

// GuessResult is the ephemeral hint set for one guess. It is never persisted.
// Height and Weight are omitted when either entity lacks the attribute:
// absence means unknown, not equal.
type GuessResult struct {
	GuessID        int          `json:"guessId"`
	IsCorrect      bool         `json:"isCorrect"`
	TypeSlot1      TypeHint     `json:"typeSlot1"`
	TypeSlot2      TypeHint     `json:"typeSlot2"`
	Attack         OrdinalHint  `json:"attack"`
	Defense        OrdinalHint  `json:"defense"`
	Stamina        OrdinalHint  `json:"stamina"`
	EvolutionStage OrdinalHint  `json:"evolutionStage"`
	Generation     OrdinalHint  `json:"generation"`
	Height         *OrdinalHint `json:"height,omitempty"`
	Weight         *OrdinalHint `json:"weight,omitempty"`
}
