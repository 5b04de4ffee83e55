package api

// ErrorResponse mirrors the server's error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse mirrors the /health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Time    int64  `json:"time"`
	Storage string `json:"storage,omitempty"`
}

// DailyResponse describes the day's puzzle
type DailyResponse struct {
	Date       string `json:"date"`
	Partition  string `json:"partition,omitempty"`
	RosterSize int    `json:"rosterSize"`
	Persisted  bool   `json:"persisted"`
}

// GuessRequest submits one guess against a day's puzzle
type GuessRequest struct {
	Date      string `json:"date,omitempty"`
	Partition string `json:"partition,omitempty"`
	GuessID   int    `json:"guessId"`
}

// GuessResponse is the per-dimension hint set for one guess. Height and
// weight are absent when the server could not compare them.
type GuessResponse struct {
	GuessID        int     `json:"guessId"`
	IsCorrect      bool    `json:"isCorrect"`
	TypeSlot1      string  `json:"typeSlot1"`
	TypeSlot2      string  `json:"typeSlot2"`
	Attack         string  `json:"attack"`
	Defense        string  `json:"defense"`
	Stamina        string  `json:"stamina"`
	EvolutionStage string  `json:"evolutionStage"`
	Generation     string  `json:"generation"`
	Height         *string `json:"height,omitempty"`
	Weight         *string `json:"weight,omitempty"`
}

// ResultRequest records a completed game
type ResultRequest struct {
	UserID            string `json:"userId,omitempty"`
	GameType          string `json:"gameType"`
	Date              string `json:"date,omitempty"`
	EntityID          int    `json:"entityId"`
	Attempts          int    `json:"attempts"`
	Success           bool   `json:"success"`
	CompletionSeconds int    `json:"completionSeconds"`
	HintCount         *int   `json:"hintCount,omitempty"`
	HintsEnabled      *bool  `json:"hintsEnabled,omitempty"`
}

// ResultResponse reports the stored record and computed points
type ResultResponse struct {
	RecordID string `json:"recordId"`
	Created  bool   `json:"created"`
	Points   int    `json:"points"`
}

// LeaderboardEntry is one ranked leaderboard row
type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	UserID            string `json:"userId,omitempty"`
	Date              string `json:"date"`
	EntityID          int    `json:"entityId"`
	Attempts          int    `json:"attempts"`
	CompletionSeconds int    `json:"completionSeconds"`
	Points            int    `json:"points"`
}

// LeaderboardResponse carries both leaderboard views
type LeaderboardResponse struct {
	GameType string             `json:"gameType"`
	Period   string             `json:"period"`
	Entries  []LeaderboardEntry `json:"entries"`
}

// DailyStatsResponse counts identified players who solved a day's puzzle
type DailyStatsResponse struct {
	Date              string `json:"date"`
	GameType          string `json:"gameType"`
	SuccessfulPlayers int    `json:"successfulPlayers"`
}
