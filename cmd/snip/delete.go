package main

import (
	"fmt"
	"strings"

	"github.com/matsen/snip/internal/query"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete the snippet stored under an exact key",
	Long: `Delete the snippet stored under an exact key.

Deleting a key that doesn't exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	a := mustBuildApp()
	key := strings.TrimSpace(args[0])

	if err := a.dispatcher.Dispatch(query.Delete{Key: key}); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Deleted %s\n", key)
	} else {
		outputJSON(StatusResponse{Status: "deleted", Key: key})
	}
	return nil
}
