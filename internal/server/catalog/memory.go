package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Memory is an in-memory Reader backed by a snapshot of catalog entities.
// The server loads one from a JSON export at startup; tests build them
// directly from literals.
type Memory struct {
	byID  map[int]*Entity
	order []int // ids in stable dex order
}

// NewMemory builds a reader over an entity snapshot
func NewMemory(entities []Entity) *Memory {
	m := &Memory{byID: make(map[int]*Entity, len(entities))}

	for i := range entities {
		e := entities[i]
		m.byID[e.ID] = &e
		m.order = append(m.order, e.ID)
	}

	// Stable dex order, id as tie-break for alternate forms sharing a number
	sort.Slice(m.order, func(i, j int) bool {
		a, b := m.byID[m.order[i]], m.byID[m.order[j]]
		if a.DexNumber != b.DexNumber {
			return a.DexNumber < b.DexNumber
		}
		return a.ID < b.ID
	})

	return m
}

// entityFile mirrors the JSON catalog export format
type entityFile struct {
	ID            int      `json:"id"`
	DexNumber     int      `json:"dexNumber"`
	Name          string   `json:"name"`
	Types         []string `json:"types"`
	Attack        int      `json:"attack"`
	Defense       int      `json:"defense"`
	Stamina       int      `json:"stamina"`
	Generation    int      `json:"generation"`
	HeightM       *float64 `json:"heightM"`
	WeightKG      *float64 `json:"weightKg"`
	DefaultForm   bool     `json:"defaultForm"`
	PredecessorID int      `json:"predecessorId"`
}

// LoadFile reads a catalog snapshot from a JSON export
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var rows []entityFile
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	entities := make([]Entity, 0, len(rows))
	for _, r := range rows {
		if r.ID <= 0 {
			return nil, fmt.Errorf("catalog entry %q has invalid id %d", r.Name, r.ID)
		}
		if len(r.Types) < 1 || len(r.Types) > 2 {
			return nil, fmt.Errorf("catalog entry %q must have 1 or 2 types, has %d", r.Name, len(r.Types))
		}
		entities = append(entities, Entity{
			ID:            r.ID,
			DexNumber:     r.DexNumber,
			Name:          r.Name,
			Types:         r.Types,
			Attack:        r.Attack,
			Defense:       r.Defense,
			Stamina:       r.Stamina,
			Generation:    r.Generation,
			HeightM:       r.HeightM,
			WeightKG:      r.WeightKG,
			DefaultForm:   r.DefaultForm,
			PredecessorID: r.PredecessorID,
		})
	}

	return NewMemory(entities), nil
}

// EntityByID fetches one entity by catalog id
func (m *Memory) EntityByID(id int) (*Entity, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("entity %d: %w", id, ErrEntityNotFound)
	}
	return e, nil
}

// Roster returns default-form entities in stable dex order
func (m *Memory) Roster(f Filter) ([]Entity, error) {
	var roster []Entity
	for _, id := range m.order {
		e := m.byID[id]
		if !e.DefaultForm {
			continue
		}
		if f.Generation != 0 && e.Generation != f.Generation {
			continue
		}
		roster = append(roster, *e)
	}
	return roster, nil
}

// PredecessorOf returns the entity that evolves into the given one
func (m *Memory) PredecessorOf(id int) (int, bool, error) {
	e, ok := m.byID[id]
	if !ok {
		return 0, false, fmt.Errorf("entity %d: %w", id, ErrEntityNotFound)
	}
	if e.PredecessorID == 0 {
		return 0, false, nil
	}
	return e.PredecessorID, true, nil
}
