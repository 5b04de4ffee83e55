package game

import "fmt"

const (
	basePoints        = 10
	successPoints     = 50
	maxAttemptBonus   = 50
	attemptPenalty    = 5
	maxSpeedBonus     = 30
	speedBonusDivisor = 10 // seconds per point lost
)

// Outcome describes a completed game for scoring purposes
type Outcome struct {
	GameType          string
	Success           bool
	Attempts          int
	CompletionSeconds int
}

// BasePoints computes the point value of an outcome before any game-type
// modifier runs. Every completion earns the base; success adds a flat bonus
// plus attempt and speed bonuses that clamp at zero, so the total never
// drops below the flat amounts.
func BasePoints(o Outcome) int {
	points := basePoints

	if !o.Success {
		return points
	}

	points += successPoints

	if o.Attempts > 0 {
		if bonus := maxAttemptBonus - attemptPenalty*o.Attempts; bonus > 0 {
			points += bonus
		}
	}

	if o.CompletionSeconds > 0 {
		if bonus := maxSpeedBonus - o.CompletionSeconds/speedBonusDivisor; bonus > 0 {
			points += bonus
		}
	}

	return points
}

// ModifierFunc adjusts a computed point total for one game type
type ModifierFunc func(points int, o Outcome) int

// ModifierRegistry holds per-game-type scoring adjustments. It is the only
// scoring extension point and is owned by whoever constructs it; there is no
// process-global registry.
type ModifierRegistry struct {
	modifiers map[string]ModifierFunc
}

// NewModifierRegistry creates an empty registry
func NewModifierRegistry() *ModifierRegistry {
	return &ModifierRegistry{modifiers: make(map[string]ModifierFunc)}
}

// Register installs a modifier for a game type, rejecting duplicates
func (r *ModifierRegistry) Register(gameType string, fn ModifierFunc) error {
	if fn == nil {
		return fmt.Errorf("nil modifier for game type %q", gameType)
	}
	if _, exists := r.modifiers[gameType]; exists {
		return fmt.Errorf("modifier already registered for game type %q", gameType)
	}
	r.modifiers[gameType] = fn
	return nil
}

// Points computes the final point value of an outcome, applying the
// registered modifier for its game type when one exists. A nil registry is
// valid and applies no modifier.
func (r *ModifierRegistry) Points(o Outcome) int {
	points := BasePoints(o)
	if r == nil {
		return points
	}
	if fn, ok := r.modifiers[o.GameType]; ok {
		points = fn(points, o)
	}
	return points
}
