// Package game implements the daily guessing engine: deterministic puzzle
// selection, guess comparison, evolution-stage resolution, scoring, and the
// calendar-period anchors used by the points ledger.
package game

import (
	"errors"
	"hash/fnv"
	"math/rand"
	"time"

	"pokedle/internal/server/catalog"
)

// ErrEmptyRoster indicates selection was attempted over an empty candidate
// pool. Retrying with the same inputs cannot succeed.
var ErrEmptyRoster = errors.New("empty roster")

// DateLayout is the canonical calendar-date encoding used everywhere a date
// becomes a key (seeds, storage, API)
const DateLayout = "2006-01-02"

// DailySeed derives the deterministic selection seed for a calendar date and
// optional partition key
func DailySeed(date time.Time, partition string) int64 {
	h := fnv.New64a()
	h.Write([]byte(date.Format(DateLayout)))
	if partition != "" {
		h.Write([]byte("|"))
		h.Write([]byte(partition))
	}
	return int64(h.Sum64())
}

// PickDaily selects the day's mystery entity from the roster. The generator
// is request-scoped and built from the derived seed, so identical seed and
// identical roster always yield the identical entity. In volatile mode the
// seed comes from the current instant instead of the date, which makes every
// call an independent draw (testing only).
func PickDaily(roster []catalog.Entity, date time.Time, partition string, volatile bool) (catalog.Entity, error) {
	if len(roster) == 0 {
		return catalog.Entity{}, ErrEmptyRoster
	}

	seed := DailySeed(date, partition)
	if volatile {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	return roster[rng.Intn(len(roster))], nil
}
