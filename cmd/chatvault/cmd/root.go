package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmorrow/chatvault/internal/config"
	"github.com/jmorrow/chatvault/internal/engine"
	"github.com/jmorrow/chatvault/internal/loader"
)

var (
	cfgFile    string
	sourceFile string
	verbose    bool
	cfg        *config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chatvault [export.json]",
	Short: "Offline conversation export browser",
	Long: `chatvault is an offline browser for conversation export files.

Point it at an exported conversations.json and browse, filter, search,
and export conversations from your terminal. All commands work on the
export file directly; nothing is uploaded or persisted.

Running chatvault with just a file argument opens the TUI.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		sourceFile = args[0]
		return runTUI()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command with a background context.
// Prefer ExecuteContext for signal-aware execution.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context,
// enabling graceful shutdown when the context is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadIndex reads the export file named by --file and builds the
// in-memory index every subcommand queries against.
func loadIndex() (*engine.Index, error) {
	records, err := loader.Load(sourceFile)
	if err != nil {
		return nil, err
	}

	ix := engine.NewIndex()
	ix.Load(records)
	logger.Debug("loaded export", "path", sourceFile, "conversations", ix.Len())
	return ix, nil
}

// resolveConversation finds a conversation by full UUID or by a unique
// ID prefix, so users can paste the short IDs shown in list output.
func resolveConversation(ix *engine.Index, id string) (int, error) {
	if i, ok := ix.FindByID(id); ok {
		return i, nil
	}

	matched := -1
	records := ix.Records()
	for i := range records {
		if len(records[i].UUID) >= len(id) && records[i].UUID[:len(id)] == id {
			if matched >= 0 {
				return -1, fmt.Errorf("ID prefix %q is ambiguous", id)
			}
			matched = i
		}
	}
	if matched < 0 {
		return -1, fmt.Errorf("no conversation with ID %q", id)
	}
	return matched, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.chatvault/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&sourceFile, "file", "f", "conversations.json", "conversation export file to read")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
