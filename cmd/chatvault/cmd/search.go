package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmorrow/chatvault/internal/engine"
)

var (
	searchFlags queryFlags
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Deep search conversations",
	Long: `Search every string field of every conversation for a term.

The search is case-insensitive and walks the full record shape: names,
message text, content parts, citations, attachment names and extracted
attachment content all match. Combine with the usual filters to narrow
the haystack first.

Examples:
  chatvault search "terraform"
  chatvault search error handling --after 2024-01-01
  chatvault search budget --has-messages --limit 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Join all args so unquoted multi-word terms work.
		term := strings.Join(args, " ")

		ix, err := loadIndex()
		if err != nil {
			return err
		}

		spec, err := searchFlags.filterSpec()
		if err != nil {
			return err
		}
		spec.SearchTerm = term

		field, dir, err := searchFlags.sortOrder()
		if err != nil {
			return err
		}

		results := engine.SortConversations(engine.ApplyFilter(ix.Records(), spec), field, dir)
		if len(results) == 0 {
			fmt.Println("No conversations match.")
			return nil
		}

		total := len(results)
		if searchLimit > 0 && len(results) > searchLimit {
			results = results[:searchLimit]
		}

		if searchJSON {
			return outputConversationsJSON(results)
		}

		outputConversationsTable(results)
		fmt.Printf("\nShowing %d of %d matches\n", len(results), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	registerQueryFlags(searchCmd, &searchFlags)
	_ = searchCmd.Flags().MarkHidden("search") // the positional term is the search
	searchCmd.Flags().IntVar(&searchLimit, "limit", 50, "maximum results to show (0 = all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
}
