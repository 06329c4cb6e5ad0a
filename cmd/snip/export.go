package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.jsonl>",
	Short: "Write all snippets to a JSONL file",
	Long: `Write all snippets to a JSONL file, one {"key","value"} object per line,
ordered by key. The file is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file.jsonl>",
	Short: "Save every snippet from a JSONL file",
	Long: `Save every snippet from a JSONL file in a single transaction.
Existing keys are overwritten; when a key repeats in the file the last value wins.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runExport(cmd *cobra.Command, args []string) error {
	a := mustBuildApp()

	n, err := a.store.Export(args[0])
	if err != nil {
		exitWithError(ExitError, "exporting: %v", err)
	}

	if humanOutput {
		fmt.Printf("Exported %d snippets to %s\n", n, args[0])
	} else {
		outputJSON(CountResponse{Status: "exported", Count: n, Path: args[0]})
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	a := mustBuildApp()

	n, err := a.store.Import(args[0])
	if err != nil {
		exitWithError(ExitDataError, "importing: %v", err)
	}

	if humanOutput {
		fmt.Printf("Imported %d snippets from %s\n", n, args[0])
	} else {
		outputJSON(CountResponse{Status: "imported", Count: n, Path: args[0]})
	}
	return nil
}
