// arena loads platform-arena levels and judges the sessions built from them.
//
// Usage:
//
//	arena check [dir]     - Load a level and print its summary
//	arena hud [dir]       - Run the session clock in a terminal HUD
//	arena results [dir]   - Show stored results for a level
//	arena libs            - List available entity libraries
//
// Global flags:
//
//	--config <path>   - Arena config YAML
//	--db <path>       - Results database (default: ~/.arena/results.db)
//	--library <name>  - Entity library (default from config)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arena/internal/config"
	"github.com/vovakirdan/bubble-arena/internal/entity"
	"github.com/vovakirdan/bubble-arena/internal/registry"
	"github.com/vovakirdan/bubble-arena/internal/session"

	// Import libraries to register them
	_ "github.com/vovakirdan/bubble-arena/internal/entity/builtin"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLibrary string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Load platform-arena levels and judge their sessions",
	Long: `Arena reads a level directory (platform.txt, dragon.txt, enemy.txt,
bonus.txt), builds a two-hero session through an entity library and reports
time left, enemy lives and whether the game is won or over.

Examples:
  arena check ./levels/one
  arena check ./levels/one --watch
  arena hud ./levels/one
  arena results ./levels/one`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "Entity library name (see 'arena libs')")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(hudCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(libsCmd)
}

// newLogger returns the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// env bundles what every level command needs.
type env struct {
	cfg    config.ArenaConfig
	lib    entity.Library
	logger *log.Logger
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	name := cfg.Library.Name
	if flagLibrary != "" {
		name = flagLibrary
	}
	lib, err := registry.Create(name, cfg.Tuning())
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, lib: lib, logger: newLogger(cmd.ErrOrStderr())}, nil
}

func (e *env) loadSession(dir string) (*session.Session, error) {
	return session.Load(dir, e.lib, e.cfg.Runtime(),
		session.WithLogger(e.logger),
		session.WithFiles(e.cfg.Files),
	)
}

// levelDir returns the level directory argument, defaulting to the
// working directory, as a clean absolute path so results group per level.
func levelDir(args []string) string {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}
