package config

import (
	_ "embed"
)

//go:embed defaults/sokak.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// YAML; since every field mirrors a variant default, applying it is a
// no-op for unmodified variants.
func Default() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Width:       20,
			Height:      12,
			StartLength: 4,
		},
		Speed: SpeedConfig{
			BaseMs:      138,
			BoostGainMs: 28,
			SlowLossMs:  36,
			GreenGainMs: 18,
			MinMs:       72,
			MaxMs:       235,
		},
		Traffic: TrafficConfig{
			MinGapMs:  9000,
			MaxGapMs:  14000,
			RedChance: 0.55,
			RedMs:     2400,
			GreenMs:   4200,
		},
		Charm: CharmConfig{
			MinGapMs: 12000,
			MaxGapMs: 18000,
			Score:    4,
			BoostMs:  3600,
		},
		Tea: TeaConfig{
			StreakLimit: 5,
			FreezeMs:    3000,
		},
	}
}
