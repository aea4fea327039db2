// sokak is a terminal snake game set on an Istanbul street.
//
// Usage:
//
//	sokak list               - List available rule variants
//	sokak play [variant]     - Play a round (default: street)
//	sokak scores [variant]   - Show the run history
//	sokak serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set polling rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.sokak/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokak",
	Short: "Sokak Yılanı - snake on an Istanbul street, in your terminal",
	Long: `Sokak Yılanı is a terminal snake game. Steer the snake around a
street grid, eat Turkish street food, mind the traffic light and grab
the nazar charm when it appears.

Available commands:
  list     - Show all rule variants
  play     - Play a round
  scores   - View the run history
  serve    - Start SSH server for remote play

Examples:
  sokak list
  sokak play
  sokak play classic
  sokak serve --ssh :2222
  sokak scores street`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Polling rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokak/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
