package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arena/internal/registry"
)

var libsCmd = &cobra.Command{
	Use:   "libs",
	Short: "List available entity libraries",
	Long:  `Shows every entity library registered in the arena.`,
	Run:   runLibs,
}

func runLibs(cmd *cobra.Command, args []string) {
	libs := registry.List()
	out := cmd.OutOrStdout()

	if len(libs) == 0 {
		fmt.Fprintln(out, "No libraries available.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, l := range libs {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----")
	for _, l := range libs {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, l.Name, l.Title)
	}
}
