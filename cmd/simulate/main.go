// Command simulate runs batches of automated Land Rush games and prints
// win statistics. Every player rolls a seeded die and buys whatever they
// can afford, so a batch with a fixed seed is fully reproducible.
//
// Examples:
//
//	simulate -n 1000                  # 1000 games with the default roster
//	simulate -n 500 -p 6 -seed 42     # six generated players, fixed seed
//	simulate -c configs/duel.json -v  # per-game outcomes for a config file
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/landrush/landrush/game/engine"
	"github.com/urfave/cli/v3"
)

// simOptions collects the command-line knobs for one batch.
type simOptions struct {
	Games      int
	Players    int
	Seed       int64
	ConfigPath string
	Verbose    bool
	Trace      bool
}

// simSummary aggregates the outcomes of a batch.
type simSummary struct {
	Games       int
	Wins        map[string]int
	NoWinner    int
	TotalRounds int
	MinRounds   int
	MaxRounds   int
}

func main() {
	cmd := &cli.Command{
		Name:  "simulate",
		Usage: "run batches of automated Land Rush games and report win statistics",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "games",
				Aliases: []string{"n"},
				Value:   100,
				Usage:   "number of games to simulate",
			},
			&cli.IntFlag{
				Name:    "players",
				Aliases: []string{"p"},
				Value:   4,
				Usage:   "roster size when no config file is given",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 0,
				Usage: "base die seed, 0 uses the current time",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "game configuration JSON file, overrides --players",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print the outcome of every game",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print the round-by-round balance history of the first game",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := simOptions{
				Games:      cmd.Int("games"),
				Players:    cmd.Int("players"),
				Seed:       cmd.Int64("seed"),
				ConfigPath: cmd.String("config"),
				Verbose:    cmd.Bool("verbose"),
				Trace:      cmd.Bool("trace"),
			}
			summary, err := runSimulation(opts, os.Stdout)
			if err != nil {
				return err
			}
			printSummary(os.Stdout, summary)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves the batch configuration: an explicit file when given,
// otherwise a generated roster of opts.Players on the classic board.
func loadConfig(opts simOptions) (*engine.GameConfig, error) {
	if opts.ConfigPath != "" {
		return engine.LoadGameConfig(opts.ConfigPath)
	}
	if opts.Players < 2 {
		return nil, fmt.Errorf("at least 2 players are required, got %d", opts.Players)
	}
	return engine.RosterConfig(opts.Players), nil
}

// runSimulation plays opts.Games automated games and tallies the results.
// Game i uses seed opts.Seed+i so a batch is reproducible but each game
// still sees a distinct roll sequence.
func runSimulation(opts simOptions, out io.Writer) (*simSummary, error) {
	if opts.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", opts.Games)
	}

	config, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	summary := &simSummary{
		Games:     opts.Games,
		Wins:      make(map[string]int),
		MinRounds: -1,
	}

	for i := 0; i < opts.Games; i++ {
		eng, err := engine.NewEngine(config)
		if err != nil {
			return nil, fmt.Errorf("game %d setup failed: %w", i+1, err)
		}

		roller := engine.NewRoller(seed + int64(i))

		var recorders []engine.Recorder
		var history *engine.HistoryRecorder
		if opts.Trace && i == 0 {
			history = engine.NewHistoryRecorder()
			recorders = append(recorders, history)
		}

		winner, status, err := eng.Run(roller, engine.AutoDecider{}, recorders...)
		if err != nil {
			return nil, fmt.Errorf("game %d failed: %w", i+1, err)
		}

		if history != nil {
			printTrace(out, history.Samples())
		}

		rounds := eng.Round()
		summary.TotalRounds += rounds
		if summary.MinRounds == -1 || rounds < summary.MinRounds {
			summary.MinRounds = rounds
		}
		if rounds > summary.MaxRounds {
			summary.MaxRounds = rounds
		}

		switch status {
		case engine.WinStatusWon:
			summary.Wins[winner]++
			if opts.Verbose {
				fmt.Fprintf(out, "Game %d: %s won after %d rounds\n", i+1, winner, rounds)
			}
		default:
			summary.NoWinner++
			if opts.Verbose {
				fmt.Fprintf(out, "Game %d: no winner after %d rounds\n", i+1, rounds)
			}
		}
	}

	return summary, nil
}

// printTrace writes one game's balance history, one line per round.
// Round 0 is the pre-game snapshot.
func printTrace(out io.Writer, samples []engine.BalanceSample) {
	fmt.Fprintf(out, "=== Game 1 balance history ===\n")
	round := -1
	for _, sample := range samples {
		if sample.Round != round {
			if round != -1 {
				fmt.Fprintln(out)
			}
			round = sample.Round
			fmt.Fprintf(out, "Round %d:", round)
		}
		fmt.Fprintf(out, " %s=$%d", sample.Player, sample.Cash)
	}
	fmt.Fprintln(out)
}

// printSummary writes the aggregated batch statistics.
func printSummary(out io.Writer, summary *simSummary) {
	fmt.Fprintf(out, "\n=== Simulation Results ===\n")
	fmt.Fprintf(out, "Games played: %d\n", summary.Games)
	fmt.Fprintf(out, "Rounds: avg %.1f, min %d, max %d\n",
		float64(summary.TotalRounds)/float64(summary.Games), summary.MinRounds, summary.MaxRounds)

	names := make([]string, 0, len(summary.Wins))
	for name := range summary.Wins {
		names = append(names, name)
	}
	// Most wins first, ties by name
	sort.Slice(names, func(i, j int) bool {
		if summary.Wins[names[i]] != summary.Wins[names[j]] {
			return summary.Wins[names[i]] > summary.Wins[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		wins := summary.Wins[name]
		fmt.Fprintf(out, "  %-12s %5d wins (%.1f%%)\n", name, wins, 100*float64(wins)/float64(summary.Games))
	}
	if summary.NoWinner > 0 {
		fmt.Fprintf(out, "  %-12s %5d games (%.1f%%)\n", "no winner", summary.NoWinner, 100*float64(summary.NoWinner)/float64(summary.Games))
	}
}
