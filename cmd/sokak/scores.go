package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/emirpasha/sokak-snake/internal/platform/tui"
	"github.com/emirpasha/sokak-snake/internal/registry"
	"github.com/emirpasha/sokak-snake/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the run history",
	Long: `Display the top 10 runs for the specified variant (default: street).

With --interactive, opens a browsable scoreboard instead.

Examples:
  sokak scores
  sokak scores classic
  sokak scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the scoreboard interactively")
}

func runScores(cmd *cobra.Command, args []string) {
	variantID := "street"
	if len(args) > 0 {
		variantID = args[0]
	}

	variant, err := registry.Get(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'sokak list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(variantID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run History - %s\n", variant.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokak play %s' to set the first score!\n", variantID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "Rank", "Score", "Length", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "----", "-----", "------", "----", "----")
	for i, entry := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-6s  %s\n",
			i+1,
			entry.Score,
			entry.Length,
			fmt.Sprintf("%ds", int(entry.Duration.Seconds())),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if best, bestErr := store.BestScore(variantID); bestErr == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
