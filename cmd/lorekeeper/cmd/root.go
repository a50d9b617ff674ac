package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/kagimura/lorekeeper/internal/types"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var (
	configFile string
	dbURL      string
	dataDir    string
	logLevel   string
	logFormat  string

	logger *slog.Logger
	runID  types.RunID
)

var rootCmd = &cobra.Command{
	Use:   "lorekeeper",
	Short: "Lorekeeper game data resolution engine",
	Long: `Lorekeeper resolves creature, item, and drop table data from wiki
snapshots into presentation-ready records, including per-version
history with provenance flags.`,
	Version:           Version,
	PersistentPreRunE: setupRun,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "page mirror URL (sqlite://path or postgres://...), selects the db backend")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "snapshot directory, selects the fs backend")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format (json, text)")
}

// setupRun builds the process logger and tags every record with a
// fresh run id so interleaved invocations stay distinguishable.
func setupRun(cmd *cobra.Command, args []string) error {
	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch logFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("unknown log format: %s (expected json or text)", logFormat)
	}

	runID = types.NewRunID()
	logger = slog.New(handler).With("run_id", string(runID))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
}

// printJSON renders command output on stdout; logs stay on stderr.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func Execute() error {
	return rootCmd.Execute()
}
