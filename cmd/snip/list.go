package main

import (
	"github.com/matsen/snip/internal/snippet"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [fragment]",
	Short: "List snippets whose key contains a fragment",
	Long: `List snippets whose key contains a fragment (case-sensitive).
Without a fragment, all snippets are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a := mustBuildApp()

	var fragment string
	if len(args) == 1 {
		fragment = args[0]
	}

	found, err := a.store.Lookup(fragment)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		printSnippetsHuman(found)
	} else {
		if found == nil {
			found = []snippet.Snippet{}
		}
		outputJSON(found)
	}
	return nil
}
