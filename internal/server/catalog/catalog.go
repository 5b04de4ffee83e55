// Package catalog defines the read-only species catalog contract consumed by
// the game engine. The catalog itself (schema, import pipeline) is owned
// elsewhere; this package only describes what the engine reads.
package catalog

import "errors"

// ErrEntityNotFound indicates an id that cannot be resolved by the reader
var ErrEntityNotFound = errors.New("entity not found")

// Entity is the read-only view of one catalog species form
type Entity struct {
	ID            int
	DexNumber     int
	Name          string
	Types         []string // 1-2 ordered type slots
	Attack        int
	Defense       int
	Stamina       int
	Generation    int
	HeightM       *float64 // nil when unknown
	WeightKG      *float64 // nil when unknown
	DefaultForm   bool
	PredecessorID int // 0 when the entity is a base form
}

// SecondType returns the slot-2 type, empty when the entity is mono-typed
func (e *Entity) SecondType() string {
	if len(e.Types) < 2 {
		return ""
	}
	return e.Types[1]
}

// FirstType returns the slot-1 type
func (e *Entity) FirstType() string {
	if len(e.Types) == 0 {
		return ""
	}
	return e.Types[0]
}

// Filter narrows the roster returned by a reader
type Filter struct {
	Generation int // 0 = all generations
}

// Reader is the catalog access contract. Implementations must return the
// roster in a stable order so deterministic selection is reproducible.
type Reader interface {
	// EntityByID fetches one entity by catalog id
	EntityByID(id int) (*Entity, error)

	// Roster returns the default-form candidate pool, optionally filtered,
	// in stable dex order
	Roster(f Filter) ([]Entity, error)

	// PredecessorOf returns the id of the entity that evolves into the given
	// one, or false when it is a base form
	PredecessorOf(id int) (int, bool, error)
}
