package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-wilds/internal/app"
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-wilds/internal/session"
)

var (
	steps int
	quiet bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a seeded journey with no player input",
	Long: `Simulate plays the game with a random autopilot. The same seed and
content always produce the same journey.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&steps, "steps", 200, "maximum number of commands to issue")
	simulateCmd.Flags().BoolVar(&quiet, "quiet", false, "print only the summary")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	sess, err := session.Start(ctx, a.Game, cfg.PlayerName, cfg.Seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if quiet {
		out = io.Discard
	}
	for _, e := range sess.Sim.Journal {
		fmt.Fprintln(out, e.Text)
	}

	pilot := session.NewAutopilot(rng.New(cfg.Seed + 1))
	issued := 0
	for ; issued < steps && !sess.Over(); issued++ {
		next, err := pilot.Next(sess.Sim)
		if err != nil {
			return err
		}
		if next == nil {
			break
		}
		res, err := sess.Execute(ctx, next)
		if err != nil {
			return errors.Wrapf(err, "command %d (%s)", issued+1, next.Raw)
		}
		for _, line := range res.Lines {
			fmt.Fprintln(out, line)
		}
	}

	printSummary(cmd.OutOrStdout(), cfg.Seed, issued, sess.Sim)
	return nil
}

func printSummary(w io.Writer, seed uint64, issued int, sim *wilds.SimulationContext) {
	p := sim.Player
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "seed %d, %d commands, %d steps\n", seed, issued, sim.Steps)
	fmt.Fprintf(w, "%s: %s, %s\n", p.Name, sim.Mode, sim.Time)
	fmt.Fprintf(w, "HP %d/%d, level %d, %d XP\n", p.HP, p.MaxHP, p.Level, p.XP)
	fmt.Fprintf(w, "events %d, biomes %d, refuges %d\n", sim.History.Len(), len(sim.VisitedBiomes), len(sim.VisitedRefuges))
}
