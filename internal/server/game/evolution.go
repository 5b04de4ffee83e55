package game

// PredecessorFunc looks up the entity that evolves into the given one.
// It reports false when the entity is a base form.
type PredecessorFunc func(id int) (int, bool, error)

// EvolutionStage returns an entity's 1-based position in its evolution
// chain: a base form is stage 1, its direct evolution stage 2, and so on.
//
// A nil lookup means the evolution edge source is unavailable; every entity
// then reports stage 1. Malformed data must never cause non-termination: a
// visited set stops the walk if a node recurs, and a lookup error is treated
// as "no predecessor". Neither condition is surfaced to the caller.
func EvolutionStage(id int, pred PredecessorFunc) int {
	if pred == nil {
		return 1
	}

	visited := map[int]bool{id: true}
	steps := 0
	current := id

	for {
		prev, ok, err := pred(current)
		if err != nil || !ok {
			return steps + 1
		}
		if visited[prev] {
			// Cycle in the evolution data, stop with the count so far
			return steps + 1
		}
		visited[prev] = true
		current = prev
		steps++
	}
}
