package core

// GuessRequest submits one guess against a day's mystery entity
type GuessRequest struct {
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Partition string `json:"partition" validate:"omitempty,alphanum,max=32"`
	GuessID   int    `json:"guessId" validate:"required,min=1"`
}

// ResultRequest records a completed game for the day
type ResultRequest struct {
	UserID            string `json:"userId" validate:"omitempty,max=64"` // empty = anonymous
	GameType          string `json:"gameType" validate:"required,min=1,max=32"`
	Date              string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	EntityID          int    `json:"entityId" validate:"required,min=1"`
	Attempts          int    `json:"attempts" validate:"min=0,max=10000"`
	Success           bool   `json:"success"`
	CompletionSeconds int    `json:"completionSeconds" validate:"min=0,max=86400"`
	HintCount         *int   `json:"hintCount,omitempty" validate:"omitempty,min=0,max=100"`
	HintsEnabled      *bool  `json:"hintsEnabled,omitempty"`
}

// ResultResponse reports the outcome of a result submission
type ResultResponse struct {
	RecordID string `json:"recordId"`
	Created  bool   `json:"created"` // false when the day's record already existed
	Points   int    `json:"points"`
}

// DailyResponse describes the day's puzzle without revealing the entity
type DailyResponse struct {
	Date       string `json:"date"`
	Partition  string `json:"partition,omitempty"`
	RosterSize int    `json:"rosterSize"`
	Persisted  bool   `json:"persisted"`
}

// LeaderboardEntry is one ranked row of a leaderboard view
type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	UserID            string `json:"userId,omitempty"`
	Date              string `json:"date"`
	EntityID          int    `json:"entityId"`
	Attempts          int    `json:"attempts"`
	CompletionSeconds int    `json:"completionSeconds"`
	Points            int    `json:"points"`
}

// LeaderboardResponse is the API response for both leaderboard views
type LeaderboardResponse struct {
	GameType string             `json:"gameType"`
	Period   string             `json:"period"` // a date for per-day, "alltime" otherwise
	Entries  []LeaderboardEntry `json:"entries"`
}

// DailyStatsResponse counts identified players who solved a day's puzzle
type DailyStatsResponse struct {
	Date              string `json:"date"`
	GameType          string `json:"gameType"`
	SuccessfulPlayers int    `json:"successfulPlayers"`
}
