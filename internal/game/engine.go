// Package game implements the snake simulation: grid movement with
// wraparound, food effects, timed modifiers, the traffic light and the
// nazar charm. The engine holds no clock of its own; the driver passes a
// monotonic millisecond timestamp into every Tick, and all randomness
// flows through one injected seeded source, so identical seeds and
// timestamps replay identical runs.
package game

import (
	"math/rand"

	"github.com/emirpasha/sokak-snake/internal/core"
)

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TrafficLight is the state of the street crossing.
type TrafficLight int

const (
	TrafficNone TrafficLight = iota
	TrafficRed
	TrafficGreen
)

// Engine owns all simulation state and advances it on Tick. It is not
// safe for concurrent use: exactly one driver calls Tick, with QueueTurn
// calls interleaved between ticks (last write wins).
type Engine struct {
	tun Tunables
	rng *rand.Rand

	phase Phase
	now   int64

	snake         []core.Point // head at index 0
	dir           core.Direction
	pendingDir    core.Direction
	pendingGrowth int // steps whose tail pop is still suppressed

	food        Food
	charm       core.Point
	charmActive bool

	score     int
	bestScore int
	teaStreak int

	// Absolute expiry deadlines, 0 = inactive.
	speedBoostUntil int64
	slowUntil       int64
	freezeUntil     int64
	drunkUntil      int64
	reverseUntil    int64
	overlayUntil    int64
	overlayFood     FoodType

	traffic       TrafficLight
	trafficUntil  int64
	nextTrafficAt int64
	nextCharmAt   int64

	lastStepAt int64

	events []Event
}

// New creates an engine in the Ready phase: snake centered at its start
// length heading right, one food on a free cell, all modifiers clear and
// both random-event timers scheduled into the near future.
func New(tun Tunables, rng *rand.Rand) *Engine {
	e := &Engine{tun: tun, rng: rng}
	e.resetRun(0)
	e.phase = PhaseReady
	return e
}

// SetBestScore seeds the persisted best score at startup. The engine only
// ever raises it afterwards.
func (e *Engine) SetBestScore(v int) {
	e.bestScore = core.Max(e.bestScore, v)
}

// BestScore returns the monotonic best score across runs.
func (e *Engine) BestScore() int {
	return e.bestScore
}

// Score returns the current run's score.
func (e *Engine) Score() int {
	return e.score
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// StartNewRun discards everything except the best score, reseeds all
// timers relative to now and begins a run. It returns the start flavor
// event; like Tick's return, events not consumed here are gone.
func (e *Engine) StartNewRun(now int64) []Event {
	e.resetRun(now)
	e.phase = PhaseRunning
	e.events = nil
	e.emit(SoundStart, startLines)
	events := e.events
	e.events = nil
	return events
}

// resetRun rebuilds the transient run state around the given timestamp.
func (e *Engine) resetRun(now int64) {
	e.now = now

	cx := e.tun.GridW / 2
	cy := e.tun.GridH / 2
	e.snake = make([]core.Point, e.tun.StartLength)
	for i := range e.snake {
		e.snake[i] = core.Point{X: cx - i, Y: cy}
	}
	e.dir = core.DirRight
	e.pendingDir = core.DirRight
	e.pendingGrowth = 0

	e.score = 0
	e.teaStreak = 0

	e.speedBoostUntil = 0
	e.slowUntil = 0
	e.freezeUntil = 0
	e.drunkUntil = 0
	e.reverseUntil = 0
	e.overlayUntil = 0

	e.traffic = TrafficNone
	e.trafficUntil = 0
	e.nextTrafficAt = now + e.randRange(e.tun.TrafficMinGapMs, e.tun.TrafficMaxGapMs)
	e.charmActive = false
	if e.tun.charmEnabled() {
		e.nextCharmAt = now + e.randRange(e.tun.CharmMinGapMs, e.tun.CharmMaxGapMs)
	}

	e.lastStepAt = now
	e.food = Food{Cell: core.Point{X: -1, Y: -1}}
	e.spawnFood()
}

// QueueTurn requests the direction for the next movement step. The exact
// opposite of the current travel direction is rejected so the snake can
// never bite itself by reversing in place. While classic-variant ayran is
// active the request is inverted before that check.
func (e *Engine) QueueTurn(d core.Direction) {
	if d.IsZero() {
		return
	}
	if e.now < e.reverseUntil {
		d = d.Opposite()
	}
	if d == e.dir.Opposite() {
		return
	}
	e.pendingDir = d
}

// Tick advances the simulation to the given millisecond timestamp and
// returns the flavor events raised this tick. Outside the Running phase
// it only updates clock bookkeeping.
func (e *Engine) Tick(now int64) []Event {
	e.now = now
	e.events = nil

	if e.phase != PhaseRunning {
		return nil
	}

	e.tickTraffic(now)
	e.tickCharmSpawn(now)

	// Hard pauses: a red light or a tea-streak freeze stops movement but
	// the event timers above keep running.
	if (e.traffic == TrafficRed && now < e.trafficUntil) || now < e.freezeUntil {
		return e.events
	}

	if now-e.lastStepAt < e.StepMs(now) {
		return e.events
	}

	e.step(now)
	return e.events
}

// tickTraffic runs the traffic-light lifecycle: expire the active light,
// then roll a fresh one when its deadline arrives.
func (e *Engine) tickTraffic(now int64) {
	if e.traffic != TrafficNone && now >= e.trafficUntil {
		e.traffic = TrafficNone
		e.nextTrafficAt = now + e.randRange(e.tun.TrafficMinGapMs, e.tun.TrafficMaxGapMs)
	}
	if e.traffic == TrafficNone && now >= e.nextTrafficAt {
		if e.rng.Float64() < e.tun.RedChance {
			e.traffic = TrafficRed
			e.trafficUntil = now + e.tun.RedMs
			e.emit(SoundDanger, redLightLines)
		} else {
			e.traffic = TrafficGreen
			e.trafficUntil = now + e.tun.GreenMs
			e.emit(SoundBoost, greenLightLines)
		}
		e.nextTrafficAt = now + e.randRange(e.tun.TrafficMinGapMs, e.tun.TrafficMaxGapMs)
	}
}

// tickCharmSpawn places the nazar on a free cell when its timer fires.
func (e *Engine) tickCharmSpawn(now int64) {
	if !e.tun.charmEnabled() || e.charmActive || now < e.nextCharmAt {
		return
	}
	if cell, ok := e.randomFreeCell(true); ok {
		e.charm = cell
		e.charmActive = true
	}
	e.nextCharmAt = now + e.randRange(e.tun.CharmMinGapMs, e.tun.CharmMaxGapMs)
}

// step performs one movement: resolve the head cell, check collisions,
// then consume whatever the head landed on.
func (e *Engine) step(now int64) {
	e.dir = e.pendingDir

	newHead := e.snake[0].Add(e.dir)
	if now < e.drunkUntil {
		// Rakı wobble: a lateral unit drift orthogonal to the direction of
		// travel, random sign each step.
		drift := e.dir.Perp()
		if e.rng.Intn(2) == 0 {
			drift = drift.Opposite()
		}
		newHead = newHead.Add(drift)
	}

	if e.tun.wraps() {
		newHead = newHead.Wrap(e.tun.GridW, e.tun.GridH)
	} else if !newHead.In(e.tun.GridW, e.tun.GridH) {
		e.gameOver(wallDeathLines)
		return
	}

	for _, seg := range e.snake {
		if seg == newHead {
			e.gameOver(deathLines)
			return
		}
	}

	e.snake = append([]core.Point{newHead}, e.snake...)

	ate := false
	if e.charmActive && newHead == e.charm {
		e.score += e.tun.CharmScore
		e.charmActive = false
		e.speedBoostUntil = core.Max64(e.speedBoostUntil, now+e.tun.CharmBoostMs)
		e.emit(SoundBoost, charmLines)
	}
	grownBy := 0
	if newHead == e.food.Cell {
		grownBy = foodProfiles[e.food.Type].growth
		e.applyFood(now, e.food.Type)
		ate = true
		e.spawnFood()
	}

	switch {
	case ate:
		e.pendingGrowth += grownBy - 1
	case e.pendingGrowth > 0:
		e.pendingGrowth--
	default:
		e.snake = e.snake[:len(e.snake)-1]
	}

	e.bestScore = core.Max(e.bestScore, e.score)
	e.lastStepAt = now
}

// gameOver ends the run, folding the score into the best.
func (e *Engine) gameOver(pool []string) {
	e.phase = PhaseGameOver
	e.bestScore = core.Max(e.bestScore, e.score)
	e.emit(SoundDead, pool)
}

// applyFood credits the score and applies the consumed type's modifier.
func (e *Engine) applyFood(now int64, t FoodType) {
	e.score += foodProfiles[t].score

	switch t {
	case FoodSimit:
		e.speedBoostUntil = now + simitBoostMs
		e.teaStreak = 0
		e.emit(SoundEat, eatLines[t])
	case FoodDoner:
		e.teaStreak = 0
		e.emit(SoundEat, eatLines[t])
	case FoodBaklava:
		e.slowUntil = now + baklavaSlowMs
		e.teaStreak = 0
		e.emit(SoundEat, eatLines[t])
	case FoodCay:
		e.speedBoostUntil = now + cayBoostMs
		e.teaStreak++
		if e.teaStreak >= e.tun.TeaStreakLimit {
			e.teaStreak = 0
			e.freezeUntil = now + e.tun.TeaFreezeMs
			e.emit(SoundDanger, teaOverdoseLines)
		} else {
			e.emit(SoundBoost, eatLines[t])
		}
	case FoodAyran:
		if e.tun.Variant == VariantClassic {
			e.reverseUntil = now + e.tun.ReverseMs
		} else {
			e.slowUntil = now + ayranSlowMs
			e.setOverlay(now, t)
		}
		e.teaStreak = 0
		e.emit(SoundEat, eatLines[t])
	case FoodKahve:
		e.teaStreak = 0
		e.emit(SoundFortune, fortuneLines)
	case FoodRaki:
		e.drunkUntil = now + rakiDrunkMs
		e.setOverlay(now, t)
		e.teaStreak = 0
		e.emit(SoundEat, eatLines[t])
	}
}

func (e *Engine) setOverlay(now int64, t FoodType) {
	if e.tun.OverlayMs > 0 {
		e.overlayUntil = now + e.tun.OverlayMs
		e.overlayFood = t
	}
}

// StepMs computes the effective interval between movement steps at the
// given instant. Modifiers are additive on the base and clamped once.
func (e *Engine) StepMs(now int64) int64 {
	ms := e.tun.BaseStepMs
	if now < e.speedBoostUntil {
		ms -= e.tun.BoostGainMs
	}
	if now < e.slowUntil {
		ms += e.tun.SlowLossMs
	}
	if e.traffic == TrafficGreen && now < e.trafficUntil {
		ms -= e.tun.GreenGainMs
	}
	return core.Clamp64(ms, e.tun.MinStepMs, e.tun.MaxStepMs)
}

// spawnFood relocates the food to a random free cell with a fresh random
// type, excluding the snake body and a live charm.
func (e *Engine) spawnFood() {
	pool := spawnPool(e.tun.Variant)
	t := pool[e.rng.Intn(len(pool))]
	if cell, ok := e.randomFreeCell(false); ok {
		e.food = Food{Cell: cell, Type: t}
		return
	}
	// Grid completely occupied; park the food off-grid.
	e.food = Food{Cell: core.Point{X: -1, Y: -1}, Type: t}
}

// randomFreeCell picks a uniformly random cell not covered by the snake.
// The current food cell is always excluded; the charm cell is excluded
// unless the caller is placing the charm itself.
func (e *Engine) randomFreeCell(forCharm bool) (core.Point, bool) {
	occupied := make(map[core.Point]bool, len(e.snake)+2)
	for _, seg := range e.snake {
		occupied[seg] = true
	}
	if forCharm || e.food.Cell.In(e.tun.GridW, e.tun.GridH) {
		occupied[e.food.Cell] = true
	}
	if e.charmActive {
		occupied[e.charm] = true
	}

	free := make([]core.Point, 0, e.tun.GridW*e.tun.GridH-len(occupied))
	for y := 0; y < e.tun.GridH; y++ {
		for x := 0; x < e.tun.GridW; x++ {
			p := core.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[e.rng.Intn(len(free))], true
}

// randRange returns a uniform value in [min, max). A degenerate range
// collapses to min.
func (e *Engine) randRange(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + e.rng.Int63n(max-min)
}
