package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-wilds/internal/app"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/parser"
	"github.com/KirkDiggler/rpg-wilds/internal/session"
	"github.com/KirkDiggler/rpg-wilds/internal/tui"
)

var loadID string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive journey",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&loadID, "load", "", "resume the given save instead of starting fresh")
}

func runPlay(cmd *cobra.Command, _ []string) error {
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
	var intro []string
	if loadID != "" {
		res, err := sess.Execute(ctx, &parser.Command{Raw: "load " + loadID, Verb: parser.VerbLoad, Arg: loadID})
		if err != nil {
			return err
		}
		intro = res.Lines
	}

	p := tea.NewProgram(tui.New(ctx, sess, intro...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "failed to run game")
	}
	return nil
}
