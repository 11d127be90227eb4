package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jmorrow/chatvault/internal/engine"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [export.json]",
	Short: "Show export statistics",
	Long: `Show aggregate statistics for an export file.

Reports conversation and message totals, messages per sender, monthly
activity, and a message-length distribution. Conversations whose
creation date cannot be parsed are reported under "invalid-date".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			sourceFile = args[0]
		}
		ix, err := loadIndex()
		if err != nil {
			return err
		}

		stats := engine.Aggregate(ix.Records())

		if statsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		p := message.NewPrinter(language.English)

		p.Printf("File: %s\n", sourceFile)
		p.Printf("  Conversations:  %d\n", stats.Conversations)
		p.Printf("  Messages:       %d\n", stats.Messages)
		p.Printf("  Empty messages: %d\n", stats.EmptyMessages)

		fmt.Println("\nMessages by sender:")
		for _, sender := range sortedKeys(stats.BySender) {
			p.Printf("  %-12s %d\n", sender, stats.BySender[sender])
		}

		fmt.Println("\nMessage lengths:")
		p.Printf("  empty        %d\n", stats.Lengths.Empty)
		p.Printf("  short        %d\n", stats.Lengths.Short)
		p.Printf("  medium       %d\n", stats.Lengths.Medium)
		p.Printf("  long         %d\n", stats.Lengths.Long)

		fmt.Println("\nActivity by month:")
		for _, month := range sortedKeys(stats.ConversationsByMonth) {
			p.Printf("  %-12s %d conv / %d msgs\n",
				month, stats.ConversationsByMonth[month], stats.MessagesByMonth[month])
		}

		return nil
	},
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}
