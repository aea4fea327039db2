package audio

import (
	"testing"
	"time"

	"github.com/emirpasha/sokak-snake/internal/game"
)

func TestEveryTagHasATone(t *testing.T) {
	for tag := game.SoundTag(0); tag < game.SoundTagCount; tag++ {
		buf := generateTone(tag)
		if len(buf) == 0 {
			t.Errorf("tag %v has an empty tone buffer", tag)
		}
		for i, v := range buf {
			if v < -1.0 || v > 1.0 {
				t.Errorf("tag %v sample %d = %v out of [-1, 1]", tag, i, v)
				break
			}
		}
	}
}

func TestEnvelopeSilencesEdges(t *testing.T) {
	buf := oscillator(waveSquare, 440.0, sampleRate.N(100*time.Millisecond))
	applyEnvelope(buf, 10*time.Millisecond, 10*time.Millisecond)

	if buf[0] != 0 {
		t.Errorf("first sample = %v, expected 0 after attack envelope", buf[0])
	}
	if last := buf[len(buf)-1]; last > 0.01 || last < -0.01 {
		t.Errorf("last sample = %v, expected near 0 after release envelope", last)
	}
}

func TestToneStreamerDrains(t *testing.T) {
	ts := &toneStreamer{samples: []float64{0.1, 0.2, 0.3}}

	out := make([][2]float64, 2)
	n, ok := ts.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("Stream = (%d, %v), expected (2, true)", n, ok)
	}
	if out[0][0] != 0.1 || out[0][1] != 0.1 {
		t.Errorf("sample 0 = %v, expected mono 0.1 on both channels", out[0])
	}

	n, ok = ts.Stream(out)
	if n != 1 || !ok {
		t.Fatalf("Stream = (%d, %v), expected (1, true)", n, ok)
	}

	n, ok = ts.Stream(out)
	if n != 0 || ok {
		t.Errorf("Stream after drain = (%d, %v), expected (0, false)", n, ok)
	}
	if ts.Err() != nil {
		t.Errorf("Err() = %v, expected nil", ts.Err())
	}
}
