package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"pokedle/internal/client/api"
	"pokedle/internal/client/display"
)

func (r *Registry) registerPlayCommands() {
	r.Register(&Command{
		Name:        "daily",
		ShortName:   "d",
		Description: "Fetch the day's puzzle and start a fresh attempt",
		Usage:       "daily",
		Handler:     dailyHandler,
	})

	r.Register(&Command{
		Name:        "guess",
		ShortName:   "g",
		Description: "Guess an entity by catalog ID",
		Usage:       "guess <entityId>",
		Handler:     guessHandler,
	})

	r.Register(&Command{
		Name:        "submit",
		ShortName:   "s",
		Description: "Submit the finished attempt as a result",
		Usage:       "submit [entityId] [-fail]",
		Handler:     submitHandler,
	})

	r.Register(&Command{
		Name:        "set",
		ShortName:   "e",
		Description: "Set session context (user, game, date, partition)",
		Usage:       "set <user|game|date|partition> [value]",
		Handler:     setHandler,
	})

	r.Register(&Command{
		Name:        "who",
		ShortName:   "i",
		Description: "Show current session context",
		Usage:       "who",
		Handler:     whoHandler,
	})
}

func dailyHandler(s Session, args []string) error {
	c := s.GetClient().(*api.Client)

	resp, err := c.GetDaily(s.GetDate(), s.GetPartition())
	if err != nil {
		return err
	}

	s.ResetAttempt()

	fmt.Printf("%sDaily Puzzle:%s\n", display.Cyan, display.Reset)
	fmt.Printf("  Date:      %s\n", resp.Date)
	if resp.Partition != "" {
		fmt.Printf("  Partition: %s\n", resp.Partition)
	}
	fmt.Printf("  Roster:    %d entities\n", resp.RosterSize)
	if !resp.Persisted {
		fmt.Printf("  %s(not persisted: server is in volatile or storage-less mode)%s\n",
			display.Yellow, display.Reset)
	}
	fmt.Printf("\nAttempt timer started, good luck\n")
	return nil
}

func guessHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: guess <entityId>")
	}
	guessID, err := strconv.Atoi(args[0])
	if err != nil || guessID < 1 {
		return fmt.Errorf("entity ID must be a positive number")
	}

	c := s.GetClient().(*api.Client)
	resp, err := c.SubmitGuess(&api.GuessRequest{
		Date:      s.GetDate(),
		Partition: s.GetPartition(),
		GuessID:   guessID,
	})
	if err != nil {
		return err
	}

	s.SetAttempts(s.GetAttempts() + 1)
	renderHints(resp)

	if resp.IsCorrect {
		s.SetSolved(true, guessID)
		fmt.Printf("\n%sSolved in %d attempt(s)!%s Use 'submit' to record the result\n",
			display.Green, s.GetAttempts(), display.Reset)
	}
	return nil
}

func renderHints(resp *api.GuessResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Type 1\t%s\n", display.TypeHintCell(resp.TypeSlot1))
	fmt.Fprintf(w, "Type 2\t%s\n", display.TypeHintCell(resp.TypeSlot2))
	fmt.Fprintf(w, "Attack\t%s\n", display.OrdinalHintCell(resp.Attack))
	fmt.Fprintf(w, "Defense\t%s\n", display.OrdinalHintCell(resp.Defense))
	fmt.Fprintf(w, "Stamina\t%s\n", display.OrdinalHintCell(resp.Stamina))
	fmt.Fprintf(w, "Evolution\t%s\n", display.OrdinalHintCell(resp.EvolutionStage))
	fmt.Fprintf(w, "Generation\t%s\n", display.OrdinalHintCell(resp.Generation))
	if resp.Height != nil {
		fmt.Fprintf(w, "Height\t%s\n", display.OrdinalHintCell(*resp.Height))
	}
	if resp.Weight != nil {
		fmt.Fprintf(w, "Weight\t%s\n", display.OrdinalHintCell(*resp.Weight))
	}
	w.Flush()
}

func submitHandler(s Session, args []string) error {
	success := s.IsSolved()
	entityID := s.GetSolvedID()

	for _, arg := range args {
		if arg == "-fail" {
			success = false
			continue
		}
		id, err := strconv.Atoi(arg)
		if err != nil || id < 1 {
			return fmt.Errorf("usage: submit [entityId] [-fail]")
		}
		entityID = id
	}

	if entityID == 0 {
		return fmt.Errorf("nothing to submit: solve the puzzle first or pass an entityId")
	}
	if s.GetAttempts() == 0 {
		return fmt.Errorf("no attempt in progress: run 'daily' and make at least one guess")
	}

	seconds := int(time.Since(s.GetStartedAt()).Seconds())

	c := s.GetClient().(*api.Client)
	resp, err := c.SubmitResult(&api.ResultRequest{
		UserID:            s.GetUserID(),
		GameType:          s.GetGameType(),
		Date:              s.GetDate(),
		EntityID:          entityID,
		Attempts:          s.GetAttempts(),
		Success:           success,
		CompletionSeconds: seconds,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%sResult recorded:%s\n", display.Cyan, display.Reset)
	fmt.Printf("  Record:  %s\n", resp.RecordID)
	fmt.Printf("  Points:  %d\n", resp.Points)
	if resp.Created {
		if s.GetUserID() == "" {
			fmt.Printf("  %s(anonymous: points are not banked to a ledger)%s\n",
				display.Yellow, display.Reset)
		}
	} else {
		fmt.Printf("  %s(resubmission: record updated, no points awarded)%s\n",
			display.Yellow, display.Reset)
	}
	return nil
}

func setHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: set <user|game|date|partition> [value]")
	}

	value := ""
	if len(args) > 1 {
		value = args[1]
	}

	switch args[0] {
	case "user":
		s.SetUserID(value)
		if value == "" {
			fmt.Printf("Playing anonymously\n")
		} else {
			fmt.Printf("Playing as: %s%s%s\n", display.Magenta, value, display.Reset)
		}
	case "game":
		if value == "" {
			value = "pokedle"
		}
		s.SetGameType(value)
		fmt.Printf("Game type: %s\n", value)
	case "date":
		if value != "" {
			if _, err := time.Parse("2006-01-02", value); err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD")
			}
		}
		s.SetDate(value)
		s.ResetAttempt()
		if value == "" {
			fmt.Printf("Date: today\n")
		} else {
			fmt.Printf("Date: %s\n", value)
		}
	case "partition":
		s.SetPartition(value)
		s.ResetAttempt()
		if value == "" {
			fmt.Printf("Partition: full roster\n")
		} else {
			fmt.Printf("Partition: %s\n", value)
		}
	default:
		return fmt.Errorf("unknown setting: %s", args[0])
	}
	return nil
}

func whoHandler(s Session, args []string) error {
	user := s.GetUserID()
	if user == "" {
		user = "(anonymous)"
	}
	date := s.GetDate()
	if date == "" {
		date = "today"
	}
	partition := s.GetPartition()
	if partition == "" {
		partition = "(full roster)"
	}

	fmt.Printf("%sSession:%s\n", display.Cyan, display.Reset)
	fmt.Printf("  User:      %s\n", user)
	fmt.Printf("  Game:      %s\n", s.GetGameType())
	fmt.Printf("  Date:      %s\n", date)
	fmt.Printf("  Partition: %s\n", partition)
	fmt.Printf("  Attempts:  %d\n", s.GetAttempts())
	if s.IsSolved() {
		fmt.Printf("  Solved:    entity %d\n", s.GetSolvedID())
	}
	return nil
}
