package main

import (
	"fmt"

	"github.com/matsen/snip/internal/query"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(copyCmd)
}

var copyCmd = &cobra.Command{
	Use:   "copy <key>",
	Short: "Copy the snippet stored under an exact key",
	Args:  cobra.ExactArgs(1),
	RunE:  runCopy,
}

func runCopy(cmd *cobra.Command, args []string) error {
	a := mustBuildApp()

	sn, ok, err := a.store.Get(args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if !ok {
		exitWithError(ExitNotFound, "snippet %q not found", args[0])
	}

	if err := a.dispatcher.Dispatch(query.Copy{Value: sn.Value}); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Copied %s\n", sn.Key)
	} else {
		outputJSON(StatusResponse{Status: "copied", Key: sn.Key, Value: sn.Value})
	}
	return nil
}
