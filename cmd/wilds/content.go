package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect content tables",
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check a content directory for broken references",
	Long: `Validate loads world, events, enemies, items and ambient tables and checks
every cross reference. With no directory it checks the embedded tables.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	contentCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := cfg.ContentDir
	if len(args) == 1 {
		dir = args[0]
	}

	fsys := content.DefaultFS()
	name := "embedded content"
	if dir != "" {
		fsys = os.DirFS(dir)
		name = dir
	}

	tables, err := content.Load(fsys)
	if err != nil {
		return err
	}
	if err := content.Validate(tables); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s ok: %d events, %d enemies, %d items, %d ambient messages\n",
		name, len(tables.Events), len(tables.Enemies), len(tables.Items), len(tables.Ambient))
	return nil
}
