package game

import "testing"

func TestTrafficRollActivatesALight(t *testing.T) {
	reds, greens := 0, 0

	for seed := int64(0); seed < 40; seed++ {
		e := newTestEngine(StreetTunables(), seed)
		e.nextTrafficAt = 0 // due immediately

		now := int64(0)
		events := tickStep(e, &now)

		switch e.traffic {
		case TrafficRed:
			reds++
			if e.trafficUntil != now+e.tun.RedMs {
				t.Errorf("red until = %d, expected %d", e.trafficUntil, now+e.tun.RedMs)
			}
			if !hasSound(events, SoundDanger) {
				t.Error("red light should emit a danger (stop) event")
			}
		case TrafficGreen:
			greens++
			if e.trafficUntil != now+e.tun.GreenMs {
				t.Errorf("green until = %d, expected %d", e.trafficUntil, now+e.tun.GreenMs)
			}
			if !hasSound(events, SoundBoost) {
				t.Error("green light should emit a boost event")
			}
		default:
			t.Error("a due traffic roll must activate a light")
		}

		// The next roll is pushed out by the configured gap.
		if gap := e.nextTrafficAt - now; gap < e.tun.TrafficMinGapMs || gap >= e.tun.TrafficMaxGapMs {
			t.Errorf("next roll gap = %d, expected in [%d, %d)", gap, e.tun.TrafficMinGapMs, e.tun.TrafficMaxGapMs)
		}
	}

	// With a 0.55 red chance over 40 seeds both outcomes should appear.
	if reds == 0 || greens == 0 {
		t.Errorf("expected both outcomes across seeds, got %d red / %d green", reds, greens)
	}
}

func TestRedLightFreezesMovement(t *testing.T) {
	e := newTestEngine(StreetTunables(), 47)
	head := e.snake[0]

	now := int64(0)
	e.traffic = TrafficRed
	e.trafficUntil = e.tun.RedMs

	for now < e.tun.RedMs-240 {
		tickStep(e, &now)
		if e.snake[0] != head {
			t.Fatalf("snake moved at t=%d during a red light", now)
		}
	}

	// Past the light's window the tick reverts it and movement resumes.
	now = e.tun.RedMs
	tickStep(e, &now)
	if e.traffic != TrafficNone {
		t.Errorf("traffic = %v, expected none after expiry", e.traffic)
	}
	if e.snake[0] == head {
		t.Error("snake should move after the red light expires")
	}
}

func TestGreenLightSpeedsUp(t *testing.T) {
	e := newTestEngine(StreetTunables(), 53)

	e.traffic = TrafficGreen
	e.trafficUntil = 100000

	base := e.tun.BaseStepMs
	if got := e.StepMs(0); got != base-e.tun.GreenGainMs {
		t.Errorf("StepMs = %d, expected %d under a green light", got, base-e.tun.GreenGainMs)
	}

	// Effects are additive on the same base.
	e.speedBoostUntil = 100000
	e.slowUntil = 100000
	want := base - e.tun.GreenGainMs - e.tun.BoostGainMs + e.tun.SlowLossMs
	if got := e.StepMs(0); got != want {
		t.Errorf("StepMs = %d, expected %d with all modifiers stacked", got, want)
	}

	// Past the window the green bonus no longer applies.
	if got := e.StepMs(200000); got != base {
		t.Errorf("StepMs = %d, expected base %d after expiry", got, base)
	}
}

func TestStepMsClamped(t *testing.T) {
	tun := StreetTunables()
	tun.BoostGainMs = 200 // force the sum past the floor
	e := newTestEngine(tun, 59)

	e.speedBoostUntil = 100000
	if got := e.StepMs(0); got != tun.MinStepMs {
		t.Errorf("StepMs = %d, expected clamp to %d", got, tun.MinStepMs)
	}

	tun = StreetTunables()
	tun.SlowLossMs = 500 // force the sum past the ceiling
	e = newTestEngine(tun, 61)
	e.slowUntil = 100000
	if got := e.StepMs(0); got != tun.MaxStepMs {
		t.Errorf("StepMs = %d, expected clamp to %d", got, tun.MaxStepMs)
	}
}

func TestTrafficKeepsTickingDuringFreeze(t *testing.T) {
	// A red light and a tea freeze stop movement, never the event timers.
	e := newTestEngine(StreetTunables(), 67)
	e.freezeUntil = 100000
	e.nextTrafficAt = 0

	e.Tick(240)
	if e.traffic == TrafficNone {
		t.Error("the traffic roll should fire while movement is frozen")
	}

	e.charmActive = false
	e.nextCharmAt = 0
	e.Tick(480)
	if !e.charmActive {
		t.Error("the charm spawn should fire while movement is frozen")
	}
}

func TestRedLightDoesNotMoveFoodOrSnakeState(t *testing.T) {
	e := newTestEngine(StreetTunables(), 101)
	e.traffic = TrafficRed
	e.trafficUntil = 100000

	before := e.Snapshot()
	for now := int64(240); now < 2400; now += 240 {
		e.Tick(now)
	}
	after := e.Snapshot()

	if after.Food != before.Food || after.Score != before.Score || len(after.Snake) != len(before.Snake) {
		t.Error("a red light must leave snake, food and score untouched")
	}
}
