package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeHintCell(t *testing.T) {
	assert.Equal(t, Green+"correct"+Reset, TypeHintCell("correct"))
	assert.Equal(t, Yellow+"misplaced"+Reset, TypeHintCell("misplaced"))
	assert.Equal(t, Red+"missing"+Reset, TypeHintCell("missing"))
	assert.Equal(t, Red+"wrong"+Reset, TypeHintCell("wrong"))
}

func TestOrdinalHintCell(t *testing.T) {
	assert.Equal(t, Green+"correct"+Reset, OrdinalHintCell("correct"))
	assert.Equal(t, Red+"too high"+Reset, OrdinalHintCell("higher"))
	assert.Equal(t, Red+"too low"+Reset, OrdinalHintCell("lower"))
}

func TestStorageState(t *testing.T) {
	assert.Equal(t, Green+"ok"+Reset, StorageState("ok"))
	assert.Equal(t, Yellow+"disabled"+Reset, StorageState("disabled"))
	assert.Equal(t, Red+"degraded"+Reset, StorageState("degraded"))
}

func TestIndentRawJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", IndentRawJSON([]byte(`{"a":1}`)))
	assert.Equal(t, "not json", IndentRawJSON([]byte("not json")))
}
