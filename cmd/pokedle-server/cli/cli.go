// Package cli implements the database admin mini-app reachable through the
// server binary's "db" subcommand.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"pokedle/internal/server/game"
	"pokedle/internal/server/storage"
)

// Run is the entry point for the CLI mini-app
func Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand required: init, delete, query")
	}

	switch args[0] {
	case "init":
		return runInit(args[1:])
	case "delete":
		return runDelete(args[1:])
	case "query":
		if len(args) < 2 {
			return fmt.Errorf("query subcommand required: puzzles, scores, top")
		}
		return runQuery(args[1], args[2:])
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("database path required")
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Printf("Database initialized at: %s\n", *path)
	return nil
}

func runDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("database path required")
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	if err := store.DeleteDB(); err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}

	fmt.Printf("Database deleted: %s\n", *path)
	return nil
}

func runQuery(subcommand string, args []string) error {
	switch subcommand {
	case "puzzles":
		return runQueryPuzzles(args)
	case "scores":
		return runQueryScores(args)
	case "top":
		return runQueryTop(args)
	default:
		return fmt.Errorf("unknown query subcommand: %s", subcommand)
	}
}

func runQueryPuzzles(args []string) error {
	fs := flag.NewFlagSet("query puzzles", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")
	partition := fs.String("partition", "", "Partition key to filter (optional, * for all)")
	limit := fs.Int("limit", 0, "Maximum rows to show (0 = all)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("database path required")
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	puzzles, err := store.QueryPuzzles(*partition, *limit)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(puzzles) == 0 {
		fmt.Println("No puzzles found")
		return nil
	}

	// Print results in tabular format
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tPartition\tEntity ID\tCreated")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, p := range puzzles {
		partitionKey := p.PartitionKey
		if partitionKey == "" {
			partitionKey = "(full)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			p.PuzzleDate,
			partitionKey,
			p.EntityID,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()

	fmt.Printf("\nFound %d puzzle(s)\n", len(puzzles))
	return nil
}

func runQueryScores(args []string) error {
	fs := flag.NewFlagSet("query scores", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")
	userID := fs.String("user", "", "User ID to filter (optional, * for all)")
	date := fs.String("date", "", "Puzzle date YYYY-MM-DD to filter (optional, * for all)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("database path required")
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	scores, err := store.QueryScores(*userID, *date)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(scores) == 0 {
		fmt.Println("No score records found")
		return nil
	}

	// Print results in tabular format
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Record ID\tUser\tGame\tDate\tEntity\tAttempts\tSolved\tSeconds\tUpdated")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, rec := range scores {
		user := rec.UserID
		if user == "" {
			user = "(anonymous)"
		}
		solved := "no"
		if rec.Success {
			solved = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%d\t%s\n",
			rec.RecordID[:8]+"...",
			user,
			rec.GameType,
			rec.PuzzleDate,
			rec.EntityID,
			rec.Attempts,
			solved,
			rec.CompletionSeconds,
			rec.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}
	w.Flush()

	fmt.Printf("\nFound %d record(s)\n", len(scores))
	return nil
}

func runQueryTop(args []string) error {
	fs := flag.NewFlagSet("query top", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")
	period := fs.String("period", "total", "Period window: daily, weekly, monthly, yearly, total")
	date := fs.String("date", "", "Reference date YYYY-MM-DD (default: today)")
	limit := fs.Int("limit", 10, "Maximum rows to show")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("database path required")
	}

	periodType, err := parsePeriod(*period)
	if err != nil {
		return err
	}

	ref := time.Now().UTC()
	if *date != "" {
		ref, err = time.Parse(game.DateLayout, *date)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", *date)
		}
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	start := game.Anchor(periodType, ref)
	records, err := store.TopAggregates(periodType, start, *limit)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(records) == 0 {
		fmt.Printf("No aggregates found for %s window starting %s\n",
			periodType, start.Format(game.DateLayout))
		return nil
	}

	// Print results in tabular format
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Rank\tUser\tPoints\tCompleted\tSucceeded\tWindow Start")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for i, rec := range records {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\n",
			i+1,
			rec.UserID,
			rec.Points,
			rec.GamesCompleted,
			rec.GamesSucceeded,
			rec.PeriodStart,
		)
	}
	w.Flush()

	fmt.Printf("\nFound %d aggregate(s) in the %s window\n", len(records), periodType)
	return nil
}

func parsePeriod(value string) (game.PeriodType, error) {
	for _, p := range game.AllPeriods {
		if string(p) == value {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q: expected daily, weekly, monthly, yearly or total", value)
}
