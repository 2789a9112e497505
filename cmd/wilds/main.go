// Package main is the entry point for the wilds CLI
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-wilds/internal/config"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

var (
	seed       uint64
	contentDir string
	backend    string
	sqlitePath string
	redisAddr  string
	playerName string
	logLevel   string
	logPath    string

	// logFile is open while the command runs when --log-file is set
	logFile *os.File

	// cfg is resolved in PersistentPreRunE before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wilds",
	Short: "A survival journey through the wilds",
	Long: `Wilds is a text survival game. Cross forests, hills and rivers, survive
random encounters and fights, and reach the far side alive.`,
	SilenceUsage:      true,
	PersistentPreRunE: resolveConfig,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Uint64Var(&seed, "seed", 0, "dice seed (0 picks one from the clock)")
	flags.StringVar(&contentDir, "content-dir", "", "directory of content tables (default: embedded)")
	flags.StringVar(&backend, "backend", "", "save backend: sqlite, redis or memory")
	flags.StringVar(&sqlitePath, "sqlite-path", "", "sqlite save file")
	flags.StringVar(&redisAddr, "redis-addr", "", "redis address for the redis backend")
	flags.StringVar(&playerName, "name", "", "player name")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&logPath, "log-file", "", "append logs to this file (play discards logs otherwise)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(savesCmd)
}

// resolveConfig layers explicitly set flags over WILDS_* environment settings
func resolveConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		loaded.Seed = seed
	}
	if flags.Changed("content-dir") {
		loaded.ContentDir = contentDir
	}
	if flags.Changed("backend") {
		loaded.SaveBackend = backend
	}
	if flags.Changed("sqlite-path") {
		loaded.SQLitePath = sqlitePath
	}
	if flags.Changed("redis-addr") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("name") {
		loaded.PlayerName = playerName
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		loaded.LogFile = logPath
	}
	if loaded.Seed == 0 {
		loaded.Seed = uint64(time.Now().UnixNano())
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	// play draws over the whole terminal, so stderr is off limits there
	w, f, err := logWriter(loaded, cmd == playCmd)
	if err != nil {
		return err
	}
	logFile = f

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: loaded.SlogLevel(),
	})))

	cfg = loaded
	return nil
}

// logWriter returns the log file when one is configured, io.Discard for the
// full-screen UI and stderr otherwise. The file, if any, is returned for closing.
func logWriter(c *config.Config, fullScreen bool) (io.Writer, *os.File, error) {
	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to open log file")
		}
		return f, f, nil
	case fullScreen:
		return io.Discard, nil, nil
	default:
		return os.Stderr, nil, nil
	}
}
