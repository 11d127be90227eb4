package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorrow/chatvault/internal/export"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one conversation as Markdown",
	Long: `Print a single conversation to stdout as Markdown.

The ID may be a full UUID or any unique prefix of one, such as the
short IDs shown by 'chatvault list'.`,
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

		fmt.Print(export.Conversation(ix.Get(i)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
