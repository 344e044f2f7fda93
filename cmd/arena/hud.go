package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-arena/internal/platform/tui"
	"github.com/vovakirdan/bubble-arena/internal/storage"
)

var hudCmd = &cobra.Command{
	Use:   "hud [dir]",
	Short: "Run the session clock in a terminal HUD",
	Long: `Load a level and show its live session state while the arena clock
runs at the configured tick rate. The final result is saved to the results
database when the session ends or the HUD is closed.

Controls:
  P/Esc      - Pause
  Q/Ctrl+C   - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHUD,
}

func runHUD(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	s, err := e.loadSession(levelDir(args))
	if err != nil {
		return err
	}

	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	// Continue without storage - the HUD still works
	var saver tui.ResultSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		e.logger.Warn("could not open results database", "error", err)
	} else {
		defer store.Close()
		saver = store
	}

	return tui.Run(s, saver, e.logger, width)
}
