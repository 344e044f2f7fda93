package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arena/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [dir]",
	Short: "Show stored results for a level",
	Long: `Display the best stored results for the level in dir (default:
current directory).

Examples:
  arena results ./levels/one
  arena results ./levels/one --limit 20
  arena results ./levels/one --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of results to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored results for the level")
}

func runResults(cmd *cobra.Command, args []string) error {
	dir := levelDir(args)
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(dir); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared results for %s\n", dir)
		return nil
	}

	results, err := store.TopResults(dir, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Results - %s\n\n", dir)
	if len(results) == 0 {
		fmt.Fprintln(out, "No results recorded yet.")
		fmt.Fprintf(out, "Run 'arena hud %s' to play the level.\n", dir)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-9s  %-9s  %s\n", "Rank", "Outcome", "Points", "Time left", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %-9s  %-9s  %s\n", "----", "-------", "------", "---------", "----")
	for i, r := range results {
		fmt.Fprintf(out, "  %-4d  %-7s  %-9s  %-9s  %s\n",
			i+1, r.Outcome,
			fmt.Sprintf("%d/%d", r.Points, r.TotalPoints),
			fmt.Sprintf("%ds", r.RemainingTime),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Sessions: %d  Wins: %d  Best: %d\n", stats.Sessions, stats.Wins, stats.BestPoints)
	return nil
}
