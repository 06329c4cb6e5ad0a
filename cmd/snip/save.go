package main

import (
	"fmt"
	"strings"

	"github.com/matsen/snip/internal/query"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(saveCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save <key> [value]...",
	Short: "Save a snippet and copy its value",
	Long: `Save a snippet, replacing any value already stored under the key, and
copy the value to the clipboard.

Value arguments are joined with spaces. Without a value, the current
clipboard content is saved.

Examples:
  snip save sig "Cheers, M"
  snip save today-notes          # saves what's on the clipboard`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	a := mustBuildApp()

	key := strings.TrimSpace(args[0])
	var value string
	if len(args) > 1 {
		value = strings.Join(args[1:], " ")
	} else {
		text, err := a.clip.Read()
		if err != nil {
			exitWithError(ExitError, "reading clipboard: %v", err)
		}
		if text == "" {
			exitWithError(ExitError, "no value given and clipboard is empty")
		}
		value = text
	}

	if err := a.dispatcher.Dispatch(query.Save{Key: key, Value: value}); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	value = strings.TrimSpace(value)
	if humanOutput {
		fmt.Printf("Saved %s\n", key)
	} else {
		outputJSON(StatusResponse{Status: "saved", Key: key, Value: value})
	}
	return nil
}
