package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmorrow/chatvault/internal/engine"
)

var fieldsJSON bool

var fieldsCmd = &cobra.Command{
	Use:   "fields [export.json]",
	Short: "Report optional field occupancy",
	Long: `Report how often each optional field is populated in an export.

Useful when a new export's shape drifts: a field that suddenly drops to
zero usually means the exporter renamed or removed it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			sourceFile = args[0]
		}
		ix, err := loadIndex()
		if err != nil {
			return err
		}

		p := engine.FieldPresence(ix.Records())

		if fieldsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		fmt.Printf("Conversations: %d\n", p.Conversations)
		fmt.Printf("Messages:      %d\n", p.Messages)
		fmt.Printf("Content parts: %d\n\n", p.ContentParts)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FIELD\tPRESENT")
		fmt.Fprintln(w, "─────\t───────")
		for _, key := range sortedKeys(p.Counts) {
			fmt.Fprintf(w, "%s\t%d\n", key, p.Counts[key])
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "output as JSON")
}
