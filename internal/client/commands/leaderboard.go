package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"pokedle/internal/client/api"
	"pokedle/internal/client/display"
)

func (r *Registry) registerLeaderboardCommands() {
	r.Register(&Command{
		Name:        "top",
		ShortName:   "t",
		Description: "Show the daily leaderboard",
		Usage:       "top",
		Handler:     dailyBoardHandler,
	})

	r.Register(&Command{
		Name:        "alltime",
		ShortName:   "a",
		Description: "Show the all-time leaderboard",
		Usage:       "alltime [limit]",
		Handler:     allTimeBoardHandler,
	})

	r.Register(&Command{
		Name:        "stats",
		ShortName:   "n",
		Description: "Show how many players solved the day's puzzle",
		Usage:       "stats",
		Handler:     statsHandler,
	})
}

func dailyBoardHandler(s Session, args []string) error {
	c := s.GetClient().(*api.Client)
	resp, err := c.DailyLeaderboard(s.GetGameType(), s.GetDate())
	if err != nil {
		return err
	}

	fmt.Printf("%sDaily Leaderboard (%s, %s):%s\n",
		display.Cyan, resp.GameType, resp.Period, display.Reset)
	renderBoard(resp.Entries)
	return nil
}

func allTimeBoardHandler(s Session, args []string) error {
	limit := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("limit must be a positive number")
		}
		limit = n
	}

	c := s.GetClient().(*api.Client)
	resp, err := c.AllTimeLeaderboard(s.GetGameType(), limit)
	if err != nil {
		return err
	}

	fmt.Printf("%sAll-Time Leaderboard (%s):%s\n", display.Cyan, resp.GameType, display.Reset)
	renderBoard(resp.Entries)
	return nil
}

func renderBoard(entries []api.LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("No entries yet")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Rank\tUser\tDate\tAttempts\tSeconds\tPoints")
	for _, e := range entries {
		user := e.UserID
		if user == "" {
			user = "(anonymous)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\n",
			e.Rank, user, e.Date, e.Attempts, e.CompletionSeconds, e.Points)
	}
	w.Flush()
}

func statsHandler(s Session, args []string) error {
	c := s.GetClient().(*api.Client)
	resp, err := c.DailyStats(s.GetGameType(), s.GetDate())
	if err != nil {
		return err
	}

	fmt.Printf("%sDaily Stats (%s, %s):%s\n",
		display.Cyan, resp.GameType, resp.Date, display.Reset)
	fmt.Printf("  Players solved: %d\n", resp.SuccessfulPlayers)
	return nil
}
