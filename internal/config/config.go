// Package config provides YAML-based tuning for the simulation. Values
// are layered on top of a variant's built-in tunables, so a config file
// only needs the numbers it wants to change.
package config

import "github.com/emirpasha/sokak-snake/internal/game"

// GameConfig mirrors the engine's tunables in YAML form. Zero values mean
// "keep the variant default".
type GameConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Traffic TrafficConfig `yaml:"traffic"`
	Charm   CharmConfig   `yaml:"charm"`
	Tea     TeaConfig     `yaml:"tea"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	StartLength int `yaml:"start_length"`
}

// SpeedConfig defines the step-interval model in milliseconds.
type SpeedConfig struct {
	BaseMs      int64 `yaml:"base_ms"`
	BoostGainMs int64 `yaml:"boost_gain_ms"`
	SlowLossMs  int64 `yaml:"slow_loss_ms"`
	GreenGainMs int64 `yaml:"green_gain_ms"`
	MinMs       int64 `yaml:"min_ms"`
	MaxMs       int64 `yaml:"max_ms"`
}

// TrafficConfig defines the traffic-light event.
type TrafficConfig struct {
	MinGapMs  int64   `yaml:"min_gap_ms"`
	MaxGapMs  int64   `yaml:"max_gap_ms"`
	RedChance float64 `yaml:"red_chance"`
	RedMs     int64   `yaml:"red_ms"`
	GreenMs   int64   `yaml:"green_ms"`
}

// CharmConfig defines the nazar pickup.
type CharmConfig struct {
	MinGapMs int64 `yaml:"min_gap_ms"`
	MaxGapMs int64 `yaml:"max_gap_ms"`
	Score    int   `yaml:"score"`
	BoostMs  int64 `yaml:"boost_ms"`
}

// TeaConfig defines the consecutive-tea penalty.
type TeaConfig struct {
	StreakLimit int   `yaml:"streak_limit"`
	FreezeMs    int64 `yaml:"freeze_ms"`
}

// Apply overlays the configured values onto a variant's tunables.
// Only non-zero fields take effect.
func (c GameConfig) Apply(t *game.Tunables) {
	setInt(&t.GridW, c.Grid.Width)
	setInt(&t.GridH, c.Grid.Height)
	setInt(&t.StartLength, c.Grid.StartLength)

	setInt64(&t.BaseStepMs, c.Speed.BaseMs)
	setInt64(&t.BoostGainMs, c.Speed.BoostGainMs)
	setInt64(&t.SlowLossMs, c.Speed.SlowLossMs)
	setInt64(&t.GreenGainMs, c.Speed.GreenGainMs)
	setInt64(&t.MinStepMs, c.Speed.MinMs)
	setInt64(&t.MaxStepMs, c.Speed.MaxMs)

	setInt64(&t.TrafficMinGapMs, c.Traffic.MinGapMs)
	setInt64(&t.TrafficMaxGapMs, c.Traffic.MaxGapMs)
	setInt64(&t.RedMs, c.Traffic.RedMs)
	setInt64(&t.GreenMs, c.Traffic.GreenMs)
	if c.Traffic.RedChance > 0 {
		t.RedChance = c.Traffic.RedChance
	}

	setInt64(&t.CharmMinGapMs, c.Charm.MinGapMs)
	setInt64(&t.CharmMaxGapMs, c.Charm.MaxGapMs)
	setInt(&t.CharmScore, c.Charm.Score)
	setInt64(&t.CharmBoostMs, c.Charm.BoostMs)

	setInt(&t.TeaStreakLimit, c.Tea.StreakLimit)
	setInt64(&t.TeaFreezeMs, c.Tea.FreezeMs)
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func setInt64(dst *int64, v int64) {
	if v > 0 {
		*dst = v
	}
}
