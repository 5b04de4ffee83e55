// Package main implements an interactive debugging client for the pokedle
// server API.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"pokedle/internal/client/api"
	"pokedle/internal/client/commands"
	"pokedle/internal/client/display"
	"pokedle/internal/client/session"

	"github.com/chzyer/readline"
)

func main() {
	s := &session.Session{
		APIBaseURL: "http://localhost:8080",
		Client:     api.New("http://localhost:8080"),
		GameType:   "pokedle",
		Verbose:    false,
	}

	// Initialize readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("pokedle"),
		HistoryFile:     ".pokedle_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("%sPokedle Debug Client%s\n", display.Cyan, display.Reset)
	fmt.Printf("%sAPI: %s%s\n", display.Cyan, s.APIBaseURL, display.Reset)
	fmt.Printf("Type 'help' for commands\n\n")

	registry := commands.NewRegistry(s)

	for {
		// Build enhanced prompt
		prompt := buildPrompt(s)
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" || line == "x" {
			break
		}

		// Check for verbose flag
		if strings.HasSuffix(line, " -v") {
			s.Verbose = true
			line = strings.TrimSuffix(line, " -v")
		} else {
			s.Verbose = false
		}

		registry.Execute(line)
	}
}

func buildPrompt(s *session.Session) string {
	parts := []string{}

	// Base
	base := "pokedle"

	// Add user and stream context
	if s.UserID != "" {
		parts = append(parts, fmt.Sprintf("%s%s%s", display.Magenta, s.UserID, display.Reset))
	}
	if s.Partition != "" {
		parts = append(parts, fmt.Sprintf("%s%s%s", display.White, s.Partition, display.Reset))
	}
	if s.Date != "" {
		parts = append(parts, fmt.Sprintf("%s%s%s", display.Cyan, s.Date, display.Reset))
	}

	promptStr := base
	if len(parts) > 0 {
		promptStr += display.Yellow + " [" + display.Reset + strings.Join(parts, " ") + display.Yellow + "]"
	}

	// Add attempt progress
	if s.Attempts > 0 {
		if s.Solved {
			promptStr += fmt.Sprintf(" - %ssolved/%d%s", display.Green, s.Attempts, display.Reset)
		} else {
			promptStr += fmt.Sprintf(" - %s%d tries%s", display.Blue, s.Attempts, display.Reset)
		}
	}

	return display.Prompt(promptStr)
}
