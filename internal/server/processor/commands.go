package processor

import (
	"time"

	"pokedle/internal/server/core"
	"pokedle/internal/server/service"
)

type CommandType int

const (
	CmdGetDaily CommandType = iota
	CmdGuess
	CmdSubmitResult
	CmdDailyLeaderboard
	CmdAllTimeLeaderboard
	CmdDailyStats
)

// Command carries one request through the processor
type Command struct {
	Type      CommandType
	Date      time.Time
	Partition string
	GuessID   int
	GameType  string
	Limit     int
	Result    service.Result
}

// ProcessorResponse is the uniform result of command execution
type ProcessorResponse struct {
	Success bool
	Data    any
	Error   core.ErrorResponse
}

func NewGetDailyCommand(date time.Time, partition string) Command {
	return Command{Type: CmdGetDaily, Date: date, Partition: partition}
}

func NewGuessCommand(date time.Time, partition string, guessID int) Command {
	return Command{Type: CmdGuess, Date: date, Partition: partition, GuessID: guessID}
}

func NewSubmitResultCommand(r service.Result) Command {
	return Command{Type: CmdSubmitResult, Result: r}
}

func NewDailyLeaderboardCommand(gameType string, date time.Time) Command {
	return Command{Type: CmdDailyLeaderboard, GameType: gameType, Date: date}
}

func NewAllTimeLeaderboardCommand(gameType string, limit int) Command {
	return Command{Type: CmdAllTimeLeaderboard, GameType: gameType, Limit: limit}
}

func NewDailyStatsCommand(gameType string, date time.Time) Command {
	return Command{Type: CmdDailyStats, GameType: gameType, Date: date}
}
