package display

// TypeHintCell renders one type-slot hint with its conventional color.
// Green means the slot matches; yellow means the type sits in the other slot.
func TypeHintCell(hint string) string {
	switch hint {
	case "correct":
		return Green + "correct" + Reset
	case "misplaced":
		return Yellow + "misplaced" + Reset
	case "missing":
		return Red + "missing" + Reset
	default:
		return Red + "wrong" + Reset
	}
}

// OrdinalHintCell renders a numeric-dimension hint as a direction to move in
func OrdinalHintCell(hint string) string {
	switch hint {
	case "correct":
		return Green + "correct" + Reset
	case "higher":
		return Red + "too high" + Reset
	case "lower":
		return Red + "too low" + Reset
	default:
		return hint
	}
}
