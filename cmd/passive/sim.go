package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/passive/internal/core"
	"github.com/vovakirdan/passive/internal/games/passive"
)

var (
	flagTicks       int
	flagDT          float32
	flagAspect      float32
	flagKeys        string
	flagStopOnCrash bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the game without a terminal UI and print a summary.

Every tick advances by a fixed --dt. Movement keys from --keys are held for
the whole run. With a fixed --seed the run is fully reproducible. Logs go to
stderr unless --log-file is set.

Examples:
  passive sim
  passive sim --seed 42 --ticks 7200
  passive sim --keys up,left --log-level debug
  passive sim --dt 0.1 --aspect 1.6667 --stop-on-crash=false`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to run")
	simCmd.Flags().Float32Var(&flagDT, "dt", 1.0/60.0, "Seconds per tick")
	simCmd.Flags().Float32Var(&flagAspect, "aspect", 1, "Viewport width/height")
	simCmd.Flags().StringVar(&flagKeys, "keys", "", "Comma-separated movement keys to hold: up, down, left, right")
	simCmd.Flags().BoolVar(&flagStopOnCrash, "stop-on-crash", true, "Stop at the first gate collision")
}

// simOptions describes one headless run.
type simOptions struct {
	Ticks       int
	DT          float32
	Aspect      float32
	Seed        int64
	Keys        []core.Action
	StopOnCrash bool
}

// simResult summarizes a headless run.
type simResult struct {
	Ticks    int // Ticks actually simulated
	Snapshot passive.Snapshot
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	keys, err := parseKeys(flagKeys)
	if err != nil {
		return err
	}
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}
	if !(flagDT >= 0) || !core.IsFinite(flagDT) {
		return fmt.Errorf("--dt must be a finite non-negative number, got %v", flagDT)
	}
	if !(flagAspect > 0) || !core.IsFinite(flagAspect) {
		return fmt.Errorf("--aspect must be positive, got %v", flagAspect)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	//nolint:errcheck // Nothing to do if the log file fails to close on exit
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := simOptions{
		Ticks:       flagTicks,
		DT:          flagDT,
		Aspect:      flagAspect,
		Seed:        seed,
		Keys:        keys,
		StopOnCrash: flagStopOnCrash,
	}
	logger.Info("simulating", "ticks", opts.Ticks, "dt", opts.DT, "seed", seed, "keys", flagKeys)

	game := passive.New(cfg, opts.Aspect, rand.New(rand.NewSource(seed)), passive.WithLogger(logger))
	res := simulate(game, opts)
	printSummary(cmd.OutOrStdout(), opts, res)
	return nil
}

// simulate advances game opts.Ticks times with the given keys held.
// A crash pauses the game; without StopOnCrash the run resumes at once.
func simulate(game *passive.Game, opts simOptions) simResult {
	in := core.NewInputFrame()
	for _, k := range opts.Keys {
		in.Set(k)
	}

	ticks := 0
	for ticks < opts.Ticks {
		res := game.Step(in, opts.DT)
		ticks++

		if res.State.Crashed {
			if opts.StopOnCrash {
				break
			}
			game.TogglePause()
		}
	}
	return simResult{Ticks: ticks, Snapshot: game.Snapshot()}
}

func printSummary(w io.Writer, opts simOptions, res simResult) {
	snap := res.Snapshot
	outcome := "survived"
	if snap.Crashed {
		outcome = "hit a gate"
	}

	fmt.Fprintf(w, "Seed:      %d\n", opts.Seed)
	fmt.Fprintf(w, "Ticks:     %d of %d\n", res.Ticks, opts.Ticks)
	fmt.Fprintf(w, "Time:      %.2fs\n", snap.Timer)
	fmt.Fprintf(w, "Outcome:   %s\n", outcome)
	fmt.Fprintf(w, "Player:    (%.3f, %.3f)\n", snap.Player.X, snap.Player.Y)
	fmt.Fprintf(w, "Waves:     %d (next has %d)\n", snap.Waves, snap.NextWave)
	fmt.Fprintf(w, "Enemies:   %d\n", len(snap.Enemies))
	fmt.Fprintf(w, "Gates:     %d\n", len(snap.Gates))
}

// parseKeys converts a comma-separated key list into movement actions.
func parseKeys(s string) ([]core.Action, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var keys []core.Action
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		found := false
		for _, a := range core.MovementActions {
			if strings.EqualFold(name, a.String()) {
				keys = append(keys, a)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown key %q (want up, down, left or right)", name)
		}
	}
	return keys, nil
}

