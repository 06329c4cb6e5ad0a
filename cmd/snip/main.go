// Package main provides the snip CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/snip/internal/action"
	"github.com/matsen/snip/internal/clipboard"
	"github.com/matsen/snip/internal/config"
	"github.com/matsen/snip/internal/logging"
	"github.com/matsen/snip/internal/query"
	"github.com/matsen/snip/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Persistent flags shared by all commands.
var (
	humanOutput bool
	dbFlag      string
	iconFlag    string
	verbose     bool
	noClipboard bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snip",
	Short: "Key/value snippet manager for launchers",
	Long: `snip stores short text snippets under keys and puts them on the clipboard.

Type a key fragment to find snippets, or key:value to save one. Launchers
talk to snip through 'snip rpc'; the other commands are for humans and
scripts.

Snippets live in a single SQLite table. All commands output JSON by default;
use --human for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for SNIP_DB and friends)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the snippets database (overrides SNIP_DB and config)")
	rootCmd.PersistentFlags().StringVar(&iconFlag, "icon", "", "Icon path reported to the launcher")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&noClipboard, "no-clipboard", false, "Use an in-process clipboard instead of the system one")
	rootCmd.Version = Version
}

// app holds the wired components for one invocation.
type app struct {
	settings   config.Settings
	log        zerolog.Logger
	store      *storage.SnippetStore
	clip       clipboard.Clipboard
	engine     *query.Engine
	dispatcher *action.Dispatcher
}

// mustBuildApp resolves settings and wires the components, exits on error.
func mustBuildApp() *app {
	flags := config.Settings{DBPath: dbFlag, IconPath: iconFlag}
	if verbose {
		flags.LogLevel = "debug"
	}
	settings, err := config.Resolve(flags)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	log := logging.NewStderr(settings.LogLevel)
	store := storage.NewSnippetStore(settings.DBPath)

	var clip clipboard.Clipboard = clipboard.NewSystem()
	if noClipboard {
		clip = &clipboard.Memory{}
	}

	log.Debug().Str("db", settings.DBPath).Msg("snip starting")

	return &app{
		settings:   settings,
		log:        log,
		store:      store,
		clip:       clip,
		engine:     query.NewEngine(store, clip, query.WithIcon(settings.IconPath), query.WithLogger(log)),
		dispatcher: action.NewDispatcher(store, clip, log),
	}
}
