package processor

import (
	"errors"

	"pokedle/internal/server/catalog"
	"pokedle/internal/server/core"
	"pokedle/internal/server/game"
	"pokedle/internal/server/service"
)

// Processor executes commands against the service layer and translates
// domain errors into the API error envelope
type Processor struct {
	svc *service.Service
}

// New creates a processor over a service instance
func New(svc *service.Service) *Processor {
	return &Processor{svc: svc}
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdGetDaily:
		return p.handleGetDaily(cmd)
	case CmdGuess:
		return p.handleGuess(cmd)
	case CmdSubmitResult:
		return p.handleSubmitResult(cmd)
	case CmdDailyLeaderboard:
		return p.handleDailyLeaderboard(cmd)
	case CmdAllTimeLeaderboard:
		return p.handleAllTimeLeaderboard(cmd)
	case CmdDailyStats:
		return p.handleDailyStats(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest, nil)
	}
}

func (p *Processor) handleGetDaily(cmd Command) ProcessorResponse {
	daily, err := p.svc.DailyPuzzle(cmd.Date, cmd.Partition)
	if err != nil {
		return p.domainError(err)
	}

	return ProcessorResponse{
		Success: true,
		Data: core.DailyResponse{
			Date:       daily.Date,
			Partition:  daily.Partition,
			RosterSize: daily.RosterSize,
			Persisted:  daily.Persisted,
		},
	}
}

func (p *Processor) handleGuess(cmd Command) ProcessorResponse {
	result, err := p.svc.Guess(cmd.Date, cmd.Partition, cmd.GuessID)
	if err != nil {
		return p.domainError(err)
	}
	return ProcessorResponse{Success: true, Data: result}
}

func (p *Processor) handleSubmitResult(cmd Command) ProcessorResponse {
	resp, err := p.svc.SubmitResult(cmd.Result)
	if err != nil {
		return p.domainError(err)
	}
	return ProcessorResponse{Success: true, Data: resp}
}

func (p *Processor) handleDailyLeaderboard(cmd Command) ProcessorResponse {
	board, err := p.svc.DailyLeaderboard(cmd.GameType, cmd.Date)
	if err != nil {
		return p.domainError(err)
	}
	return ProcessorResponse{Success: true, Data: board}
}

func (p *Processor) handleAllTimeLeaderboard(cmd Command) ProcessorResponse {
	board, err := p.svc.AllTimeLeaderboard(cmd.GameType, cmd.Limit)
	if err != nil {
		return p.domainError(err)
	}
	return ProcessorResponse{Success: true, Data: board}
}

func (p *Processor) handleDailyStats(cmd Command) ProcessorResponse {
	count, err := p.svc.SuccessfulPlayers(cmd.GameType, cmd.Date)
	if err != nil {
		return p.domainError(err)
	}

	return ProcessorResponse{
		Success: true,
		Data: core.DailyStatsResponse{
			Date:              cmd.Date.Format(game.DateLayout),
			GameType:          cmd.GameType,
			SuccessfulPlayers: count,
		},
	}
}

// domainError maps service sentinels onto API error codes
func (p *Processor) domainError(err error) ProcessorResponse {
	switch {
	case errors.Is(err, game.ErrEmptyRoster):
		return p.errorResponse("empty roster", core.ErrEmptyRoster, err)
	case errors.Is(err, service.ErrNoMatchingPartition):
		return p.errorResponse("unknown partition", core.ErrUnknownPartition, err)
	case errors.Is(err, catalog.ErrEntityNotFound):
		return p.errorResponse("entity not found", core.ErrEntityNotFound, err)
	case errors.Is(err, service.ErrStorageDisabled):
		return p.errorResponse("storage disabled", core.ErrStorageDisabled, err)
	default:
		return p.errorResponse("internal error", core.ErrInternalError, err)
	}
}

func (p *Processor) errorResponse(msg, code string, err error) ProcessorResponse {
	resp := ProcessorResponse{
		Success: false,
		Error:   core.ErrorResponse{Error: msg, Code: code},
	}
	if err != nil {
		resp.Error.Details = err.Error()
	}
	return resp
}
