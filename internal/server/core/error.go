package core

// Error codes
const (
	ErrPuzzleNotFound    = "PUZZLE_NOT_FOUND"
	ErrEntityNotFound    = "ENTITY_NOT_FOUND"
	ErrEmptyRoster       = "EMPTY_ROSTER"
	ErrUnknownPartition  = "UNKNOWN_PARTITION"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrStorageDisabled   = "STORAGE_DISABLED"
	ErrInternalError     = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON error envelope returned by every endpoint
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
