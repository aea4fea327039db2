package game

import "github.com/emirpasha/sokak-snake/internal/core"

// Snapshot captures the full observable game state at the last tick.
// The presentation layer renders from it and determinism tests compare it.
type Snapshot struct {
	Variant Variant
	Phase   Phase

	GridW int
	GridH int

	Snake []core.Point // head first; copied, safe to keep
	Dir   core.Direction

	Food     core.Point
	FoodType FoodType

	CharmActive bool
	Charm       core.Point

	Traffic TrafficLight

	Score     int
	BestScore int
	TeaStreak int

	// Modifier activity relative to the last tick's timestamp.
	SpeedBoost bool
	Slowed     bool
	Frozen     bool
	Drunk      bool
	Reversed   bool

	OverlayActive bool
	OverlayFood   FoodType

	StepMs int64
}

// Snapshot returns the current state for rendering and verification.
func (e *Engine) Snapshot() Snapshot {
	snake := make([]core.Point, len(e.snake))
	copy(snake, e.snake)

	return Snapshot{
		Variant:       e.tun.Variant,
		Phase:         e.phase,
		GridW:         e.tun.GridW,
		GridH:         e.tun.GridH,
		Snake:         snake,
		Dir:           e.dir,
		Food:          e.food.Cell,
		FoodType:      e.food.Type,
		CharmActive:   e.charmActive,
		Charm:         e.charm,
		Traffic:       e.traffic,
		Score:         e.score,
		BestScore:     e.bestScore,
		TeaStreak:     e.teaStreak,
		SpeedBoost:    e.now < e.speedBoostUntil,
		Slowed:        e.now < e.slowUntil,
		Frozen:        e.now < e.freezeUntil,
		Drunk:         e.now < e.drunkUntil,
		Reversed:      e.now < e.reverseUntil,
		OverlayActive: e.now < e.overlayUntil,
		OverlayFood:   e.overlayFood,
		StepMs:        e.StepMs(e.now),
	}
}
