package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arena/internal/core"
	"github.com/vovakirdan/bubble-arena/internal/level"
	"github.com/vovakirdan/bubble-arena/internal/platform/tui"
	"github.com/vovakirdan/bubble-arena/internal/watch"
)

var flagWatch bool

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Load a level and print its summary",
	Long: `Load the level files in dir (default: current directory), build a
session and print what was loaded. Exits non-zero when any file is missing
or malformed.

With --watch the level is checked again after every edit of a level file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Re-check when level files change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	dir := levelDir(args)
	theme := tui.DefaultTheme()

	check := func() error {
		s, err := e.loadSession(dir)
		if err != nil {
			return err
		}
		w, h := s.Arena().Size()
		for _, st := range s.Layout().Strays(core.NewRect(0, 0, w, h), e.cfg.Files) {
			e.logger.Warn("record outside the field", "file", st.File, "line", st.Line)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSummary(s, theme))
		return nil
	}

	if !flagWatch {
		return check()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchLevel(ctx, e.logger, dir, e.cfg.Files, check)
}

// watchLevel runs check once and again after every level file change until
// ctx is done. Check failures are logged, not returned.
func watchLevel(ctx context.Context, logger *log.Logger, dir string, files level.Files, check func() error) error {
	w, err := watch.New(dir, files)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	defer w.Close()

	if err := check(); err != nil {
		logger.Error("check failed", "error", err)
	}

	logger.Info("watching level files", "dir", dir)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			logger.Info("level file changed", "file", name)
			if err := check(); err != nil {
				logger.Error("check failed", "error", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-ctx.Done():
			return nil
		}
	}
}
