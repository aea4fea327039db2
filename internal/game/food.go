package game

import "github.com/emirpasha/sokak-snake/internal/core"

// FoodType identifies what is currently on the plate. The names carry no
// mechanics themselves; each maps to a score/growth/effect profile below.
type FoodType int

const (
	FoodSimit FoodType = iota
	FoodDoner
	FoodBaklava
	FoodCay
	FoodAyran
	FoodKahve
	FoodRaki

	foodTypeCount
)

// String returns the dish name.
func (f FoodType) String() string {
	switch f {
	case FoodSimit:
		return "simit"
	case FoodDoner:
		return "doner"
	case FoodBaklava:
		return "baklava"
	case FoodCay:
		return "cay"
	case FoodAyran:
		return "ayran"
	case FoodKahve:
		return "kahve"
	case FoodRaki:
		return "raki"
	default:
		return "unknown"
	}
}

// Food is the single active pickup on the grid.
type Food struct {
	Cell core.Point
	Type FoodType
}

// foodProfile holds the consumption constants for one food type.
// Modifier durations are applied in Engine.applyFood; growth is the total
// number of steps whose tail pop is suppressed (the eat step included).
type foodProfile struct {
	score  int
	growth int
}

var foodProfiles = [foodTypeCount]foodProfile{
	FoodSimit:   {score: 8, growth: 1},
	FoodDoner:   {score: 12, growth: 2},
	FoodBaklava: {score: 16, growth: 1},
	FoodCay:     {score: 7, growth: 1},
	FoodAyran:   {score: 9, growth: 1},
	FoodKahve:   {score: 10, growth: 1},
	FoodRaki:    {score: 11, growth: 1},
}

// Per-food modifier durations, ms.
const (
	simitBoostMs  = 4200
	baklavaSlowMs = 5200
	cayBoostMs    = 3000
	ayranSlowMs   = 5000
	rakiDrunkMs   = 5000
)

// spawnPool returns the food types a variant can serve. The classic
// variant predates rakı and never spawns it.
func spawnPool(v Variant) []FoodType {
	if v == VariantClassic {
		return []FoodType{FoodSimit, FoodDoner, FoodBaklava, FoodCay, FoodAyran, FoodKahve}
	}
	return []FoodType{FoodSimit, FoodDoner, FoodBaklava, FoodCay, FoodAyran, FoodKahve, FoodRaki}
}
