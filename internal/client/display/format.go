package display

import "encoding/json"

// IndentRawJSON re-indents a raw JSON payload for the verbose request
// tracer. Payloads that do not parse come back unchanged, so non-JSON
// responses still show up readable.
func IndentRawJSON(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(out)
}
