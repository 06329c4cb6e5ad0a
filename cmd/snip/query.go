package main

import (
	"fmt"
	"strings"

	"github.com/matsen/snip/internal/plugin"
	"github.com/matsen/snip/internal/query"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(menuCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <text>...",
	Short: "Show the results a launcher would get for a query",
	Long: `Show the results a launcher would get for a query.

Arguments are joined with spaces. A query containing ':' offers to save
key:value; otherwise it is a key fragment to look up.

Examples:
  snip query email
  snip query "sig: Cheers, M" --human`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

var menuCmd = &cobra.Command{
	Use:   "menu <key> <value>",
	Short: "Show the context menu for a displayed snippet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := mustBuildApp()
		printResults(a.engine.ContextMenu(args[0], args[1]))
		return nil
	},
}

func runQuery(cmd *cobra.Command, args []string) error {
	a := mustBuildApp()
	printResults(a.engine.Query(strings.Join(args, " ")))
	return nil
}

// printResults writes results in the launcher's JSON schema, or as text.
func printResults(results []query.Result) {
	if !humanOutput {
		outputJSON(plugin.ToWire(results))
		return
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}
	for i, r := range results {
		fmt.Printf("%d. %s\n", i+1, r.Title)
		fmt.Printf("   %s\n", r.Subtitle)
		if r.Action != nil {
			fmt.Printf("   -> %s %q\n", r.Action.Method(), r.Action.Parameters())
		}
	}
}
