package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmorrow/chatvault/internal/engine"
	"github.com/jmorrow/chatvault/internal/model"
)

var (
	listFlags    queryFlags
	listPage     int
	listPageSize int
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list [export.json]",
	Short: "List conversations from an export file",
	Long: `List conversations from an export file as a table.

Filters combine with AND: a conversation must match every filter given.
Dates are inclusive on both ends. Results are paginated; use --page to
step through them.

Examples:
  chatvault list -f conversations.json
  chatvault list --after 2024-01-01 --before 2024-06-30
  chatvault list --search "kubernetes" --sort messages
  chatvault list --has-messages --page 2 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			sourceFile = args[0]
		}
		ix, err := loadIndex()
		if err != nil {
			return err
		}

		spec, err := listFlags.filterSpec()
		if err != nil {
			return err
		}
		field, dir, err := listFlags.sortOrder()
		if err != nil {
			return err
		}

		pageSize := listPageSize
		if pageSize <= 0 {
			pageSize = cfg.UI.PageSize
		}

		filtered := engine.SortConversations(engine.ApplyFilter(ix.Records(), spec), field, dir)
		page := engine.Paginate(filtered, pageSize, listPage)

		if listJSON {
			return outputConversationsJSON(page.Items)
		}

		if len(page.Items) == 0 {
			if len(filtered) == 0 {
				fmt.Println("No conversations match.")
			} else {
				fmt.Printf("Page %d is out of range (%d pages).\n", listPage+1, page.PageCount)
			}
			return nil
		}

		outputConversationsTable(page.Items)
		fmt.Printf("\nShowing %d-%d of %d (page %d/%d)\n",
			page.Start+1, page.End, len(filtered), page.Index+1, page.PageCount)
		return nil
	},
}

func outputConversationsTable(items []*model.Conversation) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tMSGS\tSIZE\tNAME")
	fmt.Fprintln(w, "──\t───────\t────\t────\t────")

	for _, c := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			shortID(c.UUID), displayDate(c.CreatedAt), c.MessageCount(),
			formatSize(engine.EstimatedSize(c)), truncate(c.Title(), 60))
	}

	w.Flush()
}

func outputConversationsJSON(items []*model.Conversation) error {
	output := make([]map[string]any, len(items))
	for i, c := range items {
		output[i] = map[string]any{
			"uuid":          c.UUID,
			"name":          c.Name,
			"created_at":    c.CreatedAt,
			"updated_at":    c.UpdatedAt,
			"message_count": c.MessageCount(),
			"size_estimate": engine.EstimatedSize(c),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// shortID returns the first eight characters of a UUID, enough to paste
// back into show/export.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}

// displayDate renders a raw timestamp for table output, or "-" when the
// value is missing or unparsable.
func displayDate(raw string) string {
	t, ok := engine.ParseTimestamp(raw)
	if !ok {
		return "-"
	}
	return t.Format("2006-01-02")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	registerQueryFlags(listCmd, &listFlags)
	listCmd.Flags().IntVar(&listPage, "page", 0, "page index (0-based)")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "rows per page (default from config)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}
