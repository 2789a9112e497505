package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-wilds/internal/app"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/savegame"
)

var (
	listLimit int
	dryRun    bool
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage saved games in the configured backend",
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saves, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSaves(cmd, func(repo savegame.Repository) error {
			out, err := repo.List(cmd.Context(), &savegame.ListInput{Limit: listLimit})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(out.Saves) == 0 {
				fmt.Fprintln(w, "no saves")
				return nil
			}
			for _, s := range out.Saves {
				fmt.Fprintf(w, "%-24s %-12s lvl %d  day %d  %d steps  %s  %s\n",
					s.ID, s.PlayerName, s.Level, s.Day, s.Steps, s.Mode, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		})
	},
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a save",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSaves(cmd, func(repo savegame.Repository) error {
			if _, err := repo.Delete(cmd.Context(), &savegame.DeleteInput{ID: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		})
	},
}

var savesRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find saves that no longer load and remove them",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSaves(cmd, func(repo savegame.Repository) error {
			out, err := repo.Repair(cmd.Context(), &savegame.RepairInput{DryRun: dryRun})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "checked %d saves\n", out.Checked)
			if len(out.Corrupt) > 0 {
				fmt.Fprintf(w, "corrupt: %s\n", strings.Join(out.Corrupt, ", "))
			}
			if len(out.Dangling) > 0 {
				fmt.Fprintf(w, "dangling index entries: %s\n", strings.Join(out.Dangling, ", "))
			}
			switch {
			case len(out.Corrupt)+len(out.Dangling) == 0:
				fmt.Fprintln(w, "nothing to repair")
			case dryRun:
				fmt.Fprintln(w, "dry run, nothing removed")
			default:
				fmt.Fprintf(w, "removed %d entries\n", out.Removed)
			}
			return nil
		})
	},
}

func init() {
	savesListCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum saves to show (0 for all)")
	savesRepairCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report problems without removing anything")

	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesDeleteCmd)
	savesCmd.AddCommand(savesRepairCmd)
}

func withSaves(cmd *cobra.Command, fn func(savegame.Repository) error) error {
	a, err := app.Build(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(a.Saves)
}
