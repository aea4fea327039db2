package game

// Variant selects which rule set the engine runs. The two variants share
// one state machine; the differences are wraparound vs. walls, the charm
// pickup, and what ayran and rakı do on consumption.
type Variant string

const (
	// VariantStreet is the canonical rule set: toroidal grid, nazar charm,
	// rakı wobble, transient drink overlays.
	VariantStreet Variant = "street"
	// VariantClassic is the older rule set: bounded grid (walls kill), no
	// charm, no rakı, ayran reverses the controls instead of slowing.
	VariantClassic Variant = "classic"
)

// Tunables holds every numeric constant the simulation depends on.
// All durations are milliseconds on the same clock passed to Tick.
type Tunables struct {
	Variant Variant

	// Grid
	GridW       int
	GridH       int
	StartLength int

	// Speed model: base step interval adjusted additively per active
	// modifier, clamped once at the end.
	BaseStepMs  int64
	BoostGainMs int64 // subtracted while a speed boost is active
	SlowLossMs  int64 // added while a slow is active
	GreenGainMs int64 // subtracted while the light is green
	MinStepMs   int64
	MaxStepMs   int64

	// Traffic light
	TrafficMinGapMs int64
	TrafficMaxGapMs int64
	RedChance       float64
	RedMs           int64
	GreenMs         int64

	// Nazar charm
	CharmMinGapMs int64
	CharmMaxGapMs int64
	CharmScore    int
	CharmBoostMs  int64

	// Tea streak
	TeaStreakLimit int
	TeaFreezeMs    int64

	// Classic-variant ayran effect
	ReverseMs int64

	// Transient drink overlay shown by the presentation layer
	OverlayMs int64
}

// StreetTunables returns the canonical street-variant constants.
func StreetTunables() Tunables {
	return Tunables{
		Variant:         VariantStreet,
		GridW:           20,
		GridH:           12,
		StartLength:     4,
		BaseStepMs:      138,
		BoostGainMs:     28,
		SlowLossMs:      36,
		GreenGainMs:     18,
		MinStepMs:       72,
		MaxStepMs:       235,
		TrafficMinGapMs: 9000,
		TrafficMaxGapMs: 14000,
		RedChance:       0.55,
		RedMs:           2400,
		GreenMs:         4200,
		CharmMinGapMs:   12000,
		CharmMaxGapMs:   18000,
		CharmScore:      4,
		CharmBoostMs:    3600,
		TeaStreakLimit:  5,
		TeaFreezeMs:     3000,
		OverlayMs:       1600,
	}
}

// ClassicTunables returns the bounded-grid variant constants.
func ClassicTunables() Tunables {
	t := StreetTunables()
	t.Variant = VariantClassic
	t.CharmMinGapMs = 0
	t.CharmMaxGapMs = 0
	t.ReverseMs = 4200
	t.OverlayMs = 0
	return t
}

// wraps reports whether movement off an edge reappears on the opposite one.
func (t Tunables) wraps() bool {
	return t.Variant != VariantClassic
}

// charmEnabled reports whether the nazar pickup can spawn.
func (t Tunables) charmEnabled() bool {
	return t.Variant != VariantClassic
}
