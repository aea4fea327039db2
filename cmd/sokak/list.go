package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emirpasha/sokak-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rule variants",
	Long:  `Shows a list of all registered rule variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sokak play <id>' to play a variant.")
}
