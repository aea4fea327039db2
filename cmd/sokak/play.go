package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/emirpasha/sokak-snake/internal/config"
	"github.com/emirpasha/sokak-snake/internal/core"
	"github.com/emirpasha/sokak-snake/internal/platform/audio"
	"github.com/emirpasha/sokak-snake/internal/platform/tui"
	"github.com/emirpasha/sokak-snake/internal/registry"
	"github.com/emirpasha/sokak-snake/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a round",
	Long: `Start a round of the given rule variant (default: street).

Controls:
  Arrows/WASD - Steer
  Space       - Start / restart
  M           - Toggle sound
  Q/Ctrl+C    - Quit

Examples:
  sokak play
  sokak play classic
  sokak play --mute
  sokak play street --config ./my-sokak.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(cmd *cobra.Command, args []string) {
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

	// Overlay the YAML config onto the variant's tunables.
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	gameCfg.Apply(&variant.Tunables)

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := audio.NewPlayer()
	sound.SetMuted(flagMute)

	runErr := tui.Run(variant, store, sound, cfg)

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
