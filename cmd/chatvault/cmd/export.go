package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jmorrow/chatvault/internal/export"
)

var (
	exportOutput string
	exportForce  bool
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export one conversation to a Markdown file",
	Long: `Export a single conversation to a Markdown file.

The ID may be a full UUID or any unique prefix of one. Without -o the
file is named after the conversation's short ID and written to the
configured export directory (or the current directory).

Examples:
  chatvault export 01a2b3c4
  chatvault export 01a2b3c4 -o notes/meeting.md --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := loadIndex()
		if err != nil {
			return err
		}

		i, err := resolveConversation(ix, args[0])
		if err != nil {
			return err
		}
		c := ix.Get(i)

		path := exportOutput
		if path == "" {
			path = filepath.Join(cfg.Export.Dir, export.DefaultFilename(c))
		}

		if _, err := os.Stat(path); err == nil && !exportForce {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			var overwrite bool
			confirm := huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %s?", path)).
				Value(&overwrite)
			if err := confirm.Run(); err != nil {
				return fmt.Errorf("confirm overwrite: %w", err)
			}
			if !overwrite {
				fmt.Println("Export cancelled.")
				return nil
			}
		}

		if err := export.WriteFile(c, path); err != nil {
			return err
		}

		fmt.Printf("Exported %s to %s\n", shortID(c.UUID), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path (default: <short-id>.md in the export dir)")
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "overwrite an existing file without asking")
}
