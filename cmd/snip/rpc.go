package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matsen/snip/internal/plugin"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rpcCmd)
}

var rpcCmd = &cobra.Command{
	Use:   "rpc [request-json]",
	Short: "Serve one launcher JSON-RPC request",
	Long: `Serve one launcher JSON-RPC request and write the reply to stdout.

The request is taken from the first argument, or from stdin when the argument
is missing or "-". Logs and errors go to stderr only.

Methods:
  query         ["text"]            results for a query string
  context_menu  [["key","value"]]   delete / re-save actions for a snippet
  save          ["key","value"]     store a snippet and copy its value
  copy          ["value"]           copy a value to the clipboard
  delete        ["key"]             remove a snippet

Examples:
  snip rpc '{"method":"query","parameters":["email"]}'
  echo '{"method":"save","parameters":["sig","Cheers, M"]}' | snip rpc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRPC,
}

func runRPC(cmd *cobra.Command, args []string) error {
	var raw []byte
	if len(args) == 1 && args[0] != "-" {
		raw = []byte(args[0])
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading request: %w", err)
		}
		raw = data
	}

	a := mustBuildApp()
	h := plugin.NewHandler(a.engine, a.dispatcher, a.log)

	if err := h.Serve(os.Stdout, raw); err != nil {
		a.log.Error().Err(err).Msg("rpc request failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, plugin.ErrBadRequest) {
			os.Exit(ExitDataError)
		}
		os.Exit(ExitError)
	}
	return nil
}
