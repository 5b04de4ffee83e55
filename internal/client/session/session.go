// Package session holds the interactive client's mutable state: connection
// settings, player identity and the progress of the current puzzle attempt.
package session

import (
	"time"

	"pokedle/internal/client/api"
)

type Session struct {
	APIBaseURL string
	Client     *api.Client
	Verbose    bool

	// Player context
	UserID   string // "" = anonymous
	GameType string

	// Puzzle stream context
	Date      string // "" = today
	Partition string // "" = full roster

	// Progress of the current attempt, tracked locally
	Attempts  int
	Solved    bool
	SolvedID  int
	StartedAt time.Time
}

func (s *Session) GetAPIBaseURL() string    { return s.APIBaseURL }
func (s *Session) SetAPIBaseURL(url string) { s.APIBaseURL = url }
func (s *Session) GetClient() interface{}   { return s.Client }
func (s *Session) IsVerbose() bool          { return s.Verbose }

func (s *Session) GetUserID() string       { return s.UserID }
func (s *Session) SetUserID(id string)     { s.UserID = id }
func (s *Session) GetGameType() string     { return s.GameType }
func (s *Session) SetGameType(gt string)   { s.GameType = gt }
func (s *Session) GetDate() string         { return s.Date }
func (s *Session) SetDate(d string)        { s.Date = d }
func (s *Session) GetPartition() string    { return s.Partition }
func (s *Session) SetPartition(p string)   { s.Partition = p }
func (s *Session) GetAttempts() int        { return s.Attempts }
func (s *Session) SetAttempts(n int)       { s.Attempts = n }
func (s *Session) IsSolved() bool          { return s.Solved }
func (s *Session) GetSolvedID() int        { return s.SolvedID }
func (s *Session) GetStartedAt() time.Time { return s.StartedAt }

// SetSolved records whether the puzzle has been cracked and by which entity
func (s *Session) SetSolved(solved bool, entityID int) {
	s.Solved = solved
	s.SolvedID = entityID
}

// ResetAttempt clears local progress when a new puzzle stream is entered
func (s *Session) ResetAttempt() {
	s.Attempts = 0
	s.Solved = false
	s.SolvedID = 0
	s.StartedAt = time.Now()
}
