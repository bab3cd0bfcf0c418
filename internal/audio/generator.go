package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// attack is the fade-in applied to every tone to avoid clicks.
const attack = 0.005

// ToneGenerator generates a soft square-ish tone at a fixed frequency.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.25*math.Sin(2*math.Pi*g.freq*t) + 0.08*math.Sin(2*math.Pi*g.freq*3*t)
		sample *= math.Min(t/attack, 1)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly from one frequency to another over a
// duration and fades out towards its end.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a frequency sweep generator
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress

		// Integrate the phase so the glide has no discontinuities
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/attack, 1) * (1 - progress)

		sample := 0.3 * envelope * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Frequency returns the instantaneous frequency at the current position.
func (g *SweepGenerator) Frequency() float64 {
	progress := math.Min(float64(g.pos)/float64(g.samples), 1)
	return g.from + (g.to-g.from)*progress
}

func (g *SweepGenerator) Err() error {
	return nil
}
