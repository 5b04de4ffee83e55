package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pokedle/internal/server/core"
	"pokedle/internal/server/game"
	"pokedle/internal/server/processor"
	"pokedle/internal/server/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const rateLimitRate = 10 // req/sec

// HTTPHandler handles HTTP requests and routes them to the processor
type HTTPHandler struct {
	proc *processor.Processor
	svc  *service.Service
}

func NewHTTPHandler(proc *processor.Processor, svc *service.Service) *HTTPHandler {
	return &HTTPHandler{proc: proc, svc: svc}
}

func NewFiberApp(proc *processor.Processor, svc *service.Service, devMode bool) *fiber.App {
	// Create handler
	h := NewHTTPHandler(proc, svc)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	// Global middleware (order matters)
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Health check (no rate limit)
	app.Get("/health", h.Health)

	// API v1 routes
	api := app.Group("/api/v1")

	// Standard rate limiting
	maxReq := rateLimitRate
	if devMode {
		maxReq = rateLimitRate * 2
	}
	api.Use(limiter.New(limiter.Config{
		Max:        maxReq,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			if xff := c.Get("X-Forwarded-For"); xff != "" {
				if idx := strings.Index(xff, ","); idx != -1 {
					return strings.TrimSpace(xff[:idx])
				}
				return xff
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(core.ErrorResponse{
				Error:   "rate limit exceeded",
				Code:    core.ErrRateLimitExceeded,
				Details: fmt.Sprintf("%d requests per second allowed", maxReq),
			})
		},
	}))

	// Content-Type validation for POST requests
	api.Use(contentTypeValidator)

	// Middleware validation for request bodies
	api.Use(validationMiddleware)

	api.Get("/daily", h.GetDaily)
	api.Post("/guesses", h.SubmitGuess)
	api.Post("/results", h.SubmitResult)
	api.Get("/leaderboard/daily", h.DailyLeaderboard)
	api.Get("/leaderboard/alltime", h.AllTimeLeaderboard)
	api.Get("/stats/daily", h.DailyStats)

	return app
}

// contentTypeValidator ensures POST requests have application/json
func contentTypeValidator(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		contentType := c.Get("Content-Type")
		if contentType != "application/json" && contentType != "" {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(core.ErrorResponse{
				Error:   "unsupported media type",
				Code:    core.ErrInvalidContent,
				Details: "Content-Type must be application/json",
			})
		}
	}
	return c.Next()
}

// customErrorHandler provides consistent error responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	response := core.ErrorResponse{
		Error: "internal server error",
		Code:  core.ErrInternalError,
	}

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		response.Error = e.Message

		// Map HTTP status to error codes
		switch code {
		case fiber.StatusNotFound:
			response.Code = core.ErrPuzzleNotFound
		case fiber.StatusBadRequest:
			response.Code = core.ErrInvalidRequest
		case fiber.StatusTooManyRequests:
			response.Code = core.ErrRateLimitExceeded
		}
	}

	return c.Status(code).JSON(response)
}

// statusForCode maps processor error codes to HTTP statuses
func statusForCode(code string) int {
	switch code {
	case core.ErrEntityNotFound, core.ErrUnknownPartition, core.ErrEmptyRoster, core.ErrPuzzleNotFound:
		return fiber.StatusNotFound
	case core.ErrStorageDisabled:
		return fiber.StatusServiceUnavailable
	case core.ErrInternalError:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

// parseDate reads a YYYY-MM-DD query value, defaulting to today (UTC)
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(game.DateLayout, value)
}

// Health check endpoint with storage status
func (h *HTTPHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"time":    time.Now().Unix(),
		"storage": h.svc.GetStorageHealth(),
	})
}

// GetDaily describes the day's puzzle, materializing it on first access
func (h *HTTPHandler) GetDaily(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid date format",
			Code:    core.ErrInvalidRequest,
			Details: "date must be YYYY-MM-DD",
		})
	}

	cmd := processor.NewGetDailyCommand(date, c.Query("partition"))
	resp := h.proc.Execute(cmd)

	if !resp.Success {
		return c.Status(statusForCode(resp.Error.Code)).JSON(resp.Error)
	}

	return c.JSON(resp.Data)
}

// SubmitGuess compares a guess against the day's mystery entity
func (h *HTTPHandler) SubmitGuess(c *fiber.Ctx) error {
	// Ensure middleware validation ran
	validated, ok := c.Locals("validated").(bool)
	if !ok || !validated {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation bypass detected",
			Code:  core.ErrInternalError,
		})
	}

	validatedBody := c.Locals("validatedBody")
	if validatedBody == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation data missing",
			Code:  core.ErrInternalError,
		})
	}
	req := *(validatedBody.(*core.GuessRequest))

	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid date format",
			Code:    core.ErrInvalidRequest,
			Details: "date must be YYYY-MM-DD",
		})
	}

	cmd := processor.NewGuessCommand(date, req.Partition, req.GuessID)
	resp := h.proc.Execute(cmd)

	if !resp.Success {
		return c.Status(statusForCode(resp.Error.Code)).JSON(resp.Error)
	}

	return c.JSON(resp.Data)
}

// SubmitResult records a completed game for the day
func (h *HTTPHandler) SubmitResult(c *fiber.Ctx) error {
	validated, ok := c.Locals("validated").(bool)
	if !ok || !validated {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation bypass detected",
			Code:  core.ErrInternalError,
		})
	}

	validatedBody := c.Locals("validatedBody")
	if validatedBody == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation data missing",
			Code:  core.ErrInternalError,
		})
	}
	req := *(validatedBody.(*core.ResultRequest))

	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid date format",
			Code:    core.ErrInvalidRequest,
			Details: "date must be YYYY-MM-DD",
		})
	}

	cmd := processor.NewSubmitResultCommand(service.Result{
		UserID:            req.UserID,
		GameType:          req.GameType,
		Date:              date,
		EntityID:          req.EntityID,
		Attempts:          req.Attempts,
		Success:           req.Success,
		CompletionSeconds: req.CompletionSeconds,
		HintCount:         req.HintCount,
		HintsEnabled:      req.HintsEnabled,
	})
	resp := h.proc.Execute(cmd)

	if !resp.Success {
		return c.Status(statusForCode(resp.Error.Code)).JSON(resp.Error)
	}

	result := resp.Data.(*core.ResultResponse)
	if result.Created {
		return c.Status(fiber.StatusCreated).JSON(result)
	}
	return c.JSON(result)
}

// DailyLeaderboard returns the ranked successful records for a date
func (h *HTTPHandler) DailyLeaderboard(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid date format",
			Code:    core.ErrInvalidRequest,
			Details: "date must be YYYY-MM-DD",
		})
	}

	gameType := c.Query("gameType", "pokedle")

	cmd := processor.NewDailyLeaderboardCommand(gameType, date)
	resp := h.proc.Execute(cmd)

	if !resp.Success {
		return c.Status(statusForCode(resp.Error.Code)).JSON(resp.Error)
	}

	return c.JSON(resp.Data)
}

// AllTimeLeaderboard returns the best result per identified user
func (h *HTTPHandler) AllTimeLeaderboard(c *fiber.Ctx) error {
	gameType := c.Query("gameType", "pokedle")

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 || n > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "invalid limit",
				Code:    core.ErrInvalidRequest,
				Details: "limit must be between 1 and 100",
			})
		}
		limit = n
	}

	cmd := processor.NewAllTimeLeaderboardCommand(gameType, limit)
	resp := h.proc.Execute(cmd)

	if !resp.Success {
		return c.Status(statusForCode(resp.Error.Code)).JSON(resp.Error)
	}

	return c.JSON(resp.Data)
}

// DailyStats counts identified players who solved the day's puzzle
func (h *HTTPHandler) DailyStats(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid date format",
			Code:    core.ErrInvalidRequest,
			Details: "date must be YYYY-MM-DD",
		})
	}

	gameType := c.Query("gameType", "pokedle")

	cmd := processor.NewDailyStatsCommand(gameType, date)
	resp := h.proc.Execute(cmd)

	if !resp.Success {
		return c.Status(statusForCode(resp.Error.Code)).JSON(resp.Error)
	}

	return c.JSON(resp.Data)
}
