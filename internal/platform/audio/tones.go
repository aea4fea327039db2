// Package audio plays short synthesized tones for the game's flavor
// events. Sounds are pre-generated sample buffers pushed to the speaker
// through beep; a machine without an audio device degrades to silent
// mode and the game plays on unaffected.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/emirpasha/sokak-snake/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player maps flavor-event sound tags to tone buffers.
type Player struct {
	enabled bool
	muted   bool
	tones   [game.SoundTagCount][]float64
}

// NewPlayer initializes the speaker and pre-generates every tone.
// Initialization failure is not an error: the player stays silent.
func NewPlayer() *Player {
	p := &Player{}
	for tag := game.SoundTag(0); tag < game.SoundTagCount; tag++ {
		p.tones[tag] = generateTone(tag)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(40*time.Millisecond)); err != nil {
		return p
	}
	p.enabled = true
	return p
}

// SetMuted toggles playback without touching the speaker state.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

// Muted reports whether playback is muted.
func (p *Player) Muted() bool {
	return p.muted
}

// Play fires the tone for a sound tag. Best effort and non-blocking;
// overlapping tones are mixed by the speaker.
func (p *Player) Play(tag game.SoundTag) {
	if !p.enabled || p.muted || tag < 0 || tag >= game.SoundTagCount {
		return
	}
	speaker.Play(&toneStreamer{samples: p.tones[tag]})
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// toneStreamer streams a mono sample buffer to both channels.
// Each Play gets its own streamer so concurrent tones don't share state.
type toneStreamer struct {
	samples []float64
	pos     int
}

func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= len(t.samples) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= len(t.samples) {
			break
		}
		v := t.samples[t.pos]
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error {
	return nil
}

// --- Tone synthesis ---

// Waveform types.
const (
	waveSine = iota
	waveSquare
	waveSaw
)

// oscillator generates raw waveform samples at unity gain.
func oscillator(waveType int, freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf []float64, attack, release time.Duration) {
	total := len(buf)
	attackSamples := sampleRate.N(attack)
	releaseSamples := sampleRate.N(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// note synthesizes one enveloped note scaled to a comfortable volume.
func note(waveType int, freq float64, dur time.Duration) []float64 {
	buf := oscillator(waveType, freq, sampleRate.N(dur))
	applyEnvelope(buf, 4*time.Millisecond, 30*time.Millisecond)
	for i := range buf {
		buf[i] *= 0.35
	}
	return buf
}

// concat appends the given buffers into one.
func concat(bufs ...[]float64) []float64 {
	total := 0
	for _, b := range bufs {
		total += len(b)
	}
	out := make([]float64, 0, total)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

// mix adds b into a copy of a, extending as needed.
func mix(a, b []float64, bScale float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]float64, n)
	copy(out, a)
	for i := range b {
		out[i] += b[i] * bScale
	}
	return out
}

// generateTone builds the buffer for one sound tag.
func generateTone(tag game.SoundTag) []float64 {
	switch tag {
	case game.SoundStart:
		// Rising two-note call: A5 then E6.
		return concat(
			note(waveSquare, 880.0, 70*time.Millisecond),
			note(waveSquare, 1318.51, 110*time.Millisecond),
		)
	case game.SoundEat:
		// Short bite: C5.
		return note(waveSine, 523.25, 60*time.Millisecond)
	case game.SoundBoost:
		// Coin-style pair: B5 then E6.
		return concat(
			note(waveSquare, 987.77, 50*time.Millisecond),
			note(waveSquare, 1318.51, 90*time.Millisecond),
		)
	case game.SoundDanger:
		// Low buzz: saw at 110Hz.
		return note(waveSaw, 110.0, 220*time.Millisecond)
	case game.SoundDead:
		// Falling three-note tail: A3, E3, A2.
		return concat(
			note(waveSquare, 220.0, 120*time.Millisecond),
			note(waveSquare, 164.81, 120*time.Millisecond),
			note(waveSquare, 110.0, 200*time.Millisecond),
		)
	case game.SoundFortune:
		// Bell: A5 fundamental with an A6 overtone.
		return mix(
			note(waveSine, 880.0, 260*time.Millisecond),
			note(waveSine, 1760.0, 260*time.Millisecond),
			0.3,
		)
	default:
		return nil
	}
}
