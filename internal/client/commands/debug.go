package commands

import (
	"fmt"
	"strings"
	"time"

	"pokedle/internal/client/api"
	"pokedle/internal/client/display"
)

func (r *Registry) registerDebugCommands() {
	r.Register(&Command{
		Name:        "health",
		ShortName:   ".",
		Description: "Probe API server health",
		Usage:       "health",
		Handler:     healthHandler,
	})

	r.Register(&Command{
		Name:        "url",
		ShortName:   "/",
		Description: "Show or change the API base URL",
		Usage:       "url [apiUrl]",
		Handler:     urlHandler,
	})

	r.Register(&Command{
		Name:        "raw",
		ShortName:   ":",
		Description: "Send a raw API request",
		Usage:       "raw <method> <path> [json-body]",
		Handler:     rawRequestHandler,
	})

	r.Register(&Command{
		Name:        "clear",
		ShortName:   "-",
		Description: "Clear the terminal",
		Usage:       "clear",
		Handler:     clearHandler,
	})
}

func healthHandler(s Session, args []string) error {
	c := s.GetClient().(*api.Client)
	resp, err := c.Health()
	if err != nil {
		return fmt.Errorf("health probe against %s failed: %w", s.GetAPIBaseURL(), err)
	}

	state := resp.Storage
	if state == "" {
		state = "disabled"
	}

	fmt.Println(display.Paint(display.Cyan, "Server Health"))
	fmt.Printf("  Status:  %s\n", resp.Status)
	fmt.Printf("  Time:    %s\n", time.Unix(resp.Time, 0).Format("2006-01-02 15:04:05"))
	fmt.Printf("  Storage: %s\n", display.StorageState(state))
	if state != "ok" {
		fmt.Println(display.Paint(display.Yellow, "  submit, stats and leaderboards are unavailable"))
	}
	return nil
}

func urlHandler(s Session, args []string) error {
	if len(args) == 0 {
		fmt.Printf("API base URL: %s\n", display.Paint(display.Cyan, s.GetAPIBaseURL()))
		return nil
	}

	target := args[0]
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}

	s.SetAPIBaseURL(target)
	s.GetClient().(*api.Client).SetBaseURL(target)

	fmt.Printf("API base URL set to %s\n", display.Paint(display.Cyan, target))
	return nil
}

func rawRequestHandler(s Session, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: raw <method> <path> [json-body], e.g. raw GET /api/v1/daily")
	}

	method := strings.ToUpper(args[0])
	body := strings.Join(args[2:], " ")

	c := s.GetClient().(*api.Client)
	return c.RawRequest(method, args[1], body)
}

func clearHandler(s Session, args []string) error {
	fmt.Print("\033[2J\033[H")
	return nil
}
