package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmorrow/chatvault/internal/engine"
	"github.com/jmorrow/chatvault/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [export.json]",
	Short: "Open the interactive terminal browser",
	Long: `Open an interactive terminal browser over an export file.

Navigation:
  ↑/k, ↓/j    Move up/down
  ←/h, →/l    Previous/next page
  g/G         First/last page
  Enter       Open conversation
  Esc         Go back

Query:
  /           Search (Enter commits, Esc cancels)
  d           Date-range filter (2024-01-01..2024-06-30)
  m           Toggle has-messages filter
  E           Toggle has-empty-messages filter
  x           Clear all filters
  s           Cycle sort field
  r           Reverse sort direction

Other:
  S           Statistics view
  e           Export selected conversation to Markdown
  ?           Help
  q           Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			sourceFile = args[0]
		}
		return runTUI()
	},
}

func runTUI() error {
	ix, err := loadIndex()
	if err != nil {
		return err
	}

	field, _ := engine.ParseSortField(cfg.UI.DefaultSort)
	dir := engine.SortAsc
	if cfg.UI.Descending {
		dir = engine.SortDesc
	}

	m := tui.New(ix, tui.Options{
		SourcePath: sourceFile,
		Version:    Version,
		PageSize:   cfg.UI.PageSize,
		SortField:  field,
		SortDir:    dir,
		ExportDir:  cfg.Export.Dir,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
