package sound

import (
	"encoding/binary"
	"math"
	"testing"
)

func decode(p []byte) []float32 {
	out := make([]float32, len(p)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
	}
	return out
}

func rms(samples []float32) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func TestReadFillsWholeFrames(t *testing.T) {
	e := NewEngineLoop(DefaultConfig())

	p := make([]byte, 4096+3)
	n, err := e.Read(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n != 4096 {
		t.Fatalf("read %d bytes, want 4096", n)
	}

	samples := decode(p[:n])
	for i := 0; i < len(samples); i += 2 {
		if samples[i] != samples[i+1] {
			t.Fatalf("channels differ at frame %d", i/2)
		}
		if math.Abs(float64(samples[i])) > 1 {
			t.Fatalf("sample %v out of range", samples[i])
		}
	}
	if rms(samples) == 0 {
		t.Errorf("engine should be audible at full volume")
	}

	if n, _ := e.Read(make([]byte, 7)); n != 0 {
		t.Errorf("short buffer should read nothing, got %d", n)
	}
}

func TestSilentAtZeroVolume(t *testing.T) {
	e := NewEngineLoop(DefaultConfig())
	e.Set(1.5, 0)

	p := make([]byte, 2048)
	e.Read(p)
	for _, s := range decode(p) {
		if s != 0 {
			t.Fatalf("expected silence, got %v", s)
		}
	}
}

func TestVolumeScales(t *testing.T) {
	loud := NewEngineLoop(DefaultConfig())
	quiet := NewEngineLoop(DefaultConfig())
	loud.Set(1, 1)
	quiet.Set(1, 0.5)

	a := make([]byte, 8192)
	b := make([]byte, 8192)
	loud.Read(a)
	quiet.Read(b)

	ratio := rms(decode(b)) / rms(decode(a))
	if math.Abs(ratio-0.5) > 1e-3 {
		t.Errorf("volume 0.5 should halve the level, ratio %v", ratio)
	}
}

func TestSetClampsRate(t *testing.T) {
	e := NewEngineLoop(DefaultConfig())
	e.Set(0, 0.4)
	if e.Rate() != minRate {
		t.Errorf("rate %v, want %v", e.Rate(), minRate)
	}
	if e.Volume() != 0.4 {
		t.Errorf("volume %v, want 0.4", e.Volume())
	}

	e.Set(2.2, 0.8)
	p := make([]byte, 1024)
	if n, err := e.Read(p); n != 1024 || err != nil {
		t.Errorf("read after pitch change: %d %v", n, err)
	}
}
