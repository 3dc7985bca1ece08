package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator produces a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a tone of freq Hz lasting duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := waveAt(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveAt(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release inside duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one tone of a phrase; freq 0 is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

func tone(n note, wave WaveType, rate beep.SampleRate) beep.Streamer {
	if n.freq == 0 {
		return beep.Silence(rate.N(n.dur))
	}
	osc := NewOscillator(n.freq, n.dur, wave, rate)
	return NewEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, rate)
}

func phrase(notes []note, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n, wave, rate))
	}
	return beep.Seq(parts...)
}

// ClearChime is a rising two-note chime. More rows climb higher.
func ClearChime(rows int, rate beep.SampleRate) beep.Streamer {
	base := 523.25 * math.Pow(2, float64(max(rows-1, 0))/12*4) // C5, up a major third per extra row
	return phrase([]note{
		{base, 70 * time.Millisecond},
		{base * 1.5, 140 * time.Millisecond},
	}, WaveSine, rate)
}

// TetrisFanfare is a short arpeggio for a four-row clear.
func TetrisFanfare(rate beep.SampleRate) beep.Streamer {
	return phrase([]note{
		{523.25, 80 * time.Millisecond},
		{659.25, 80 * time.Millisecond},
		{783.99, 80 * time.Millisecond},
		{1046.50, 260 * time.Millisecond},
	}, WaveTriangle, rate)
}

// GameOverBuzz is a falling square-wave figure.
func GameOverBuzz(rate beep.SampleRate) beep.Streamer {
	return newVolume(phrase([]note{
		{392.00, 180 * time.Millisecond},
		{311.13, 180 * time.Millisecond},
		{261.63, 420 * time.Millisecond},
	}, WaveSquare, rate), 0.35)
}

// korobeiniki is the first phrase of the traditional tune, in eighths.
var korobeiniki = []struct {
	freq   float64
	eighth int
}{
	{659.25, 2}, {493.88, 1}, {523.25, 1}, {587.33, 2}, {523.25, 1}, {493.88, 1},
	{440.00, 2}, {440.00, 1}, {523.25, 1}, {659.25, 2}, {587.33, 1}, {523.25, 1},
	{493.88, 3}, {523.25, 1}, {587.33, 2}, {659.25, 2},
	{523.25, 2}, {440.00, 2}, {440.00, 2}, {0, 2},
}

// MusicGenerator loops the background melody forever.
type MusicGenerator struct {
	rate   beep.SampleRate
	starts []int // first sample of each note
	freqs  []float64
	cycle  int
	pos    int
	phase  float64
}

// NewMusicGenerator builds the melody at the given eighth-note length.
func NewMusicGenerator(rate beep.SampleRate, eighth time.Duration) *MusicGenerator {
	g := &MusicGenerator{rate: rate}
	step := rate.N(eighth)
	for _, n := range korobeiniki {
		g.starts = append(g.starts, g.cycle)
		g.freqs = append(g.freqs, n.freq)
		g.cycle += n.eighth * step
	}
	return g
}

func (g *MusicGenerator) noteAt(p int) (freq float64, offset, length int) {
	idx := len(g.starts) - 1
	for i := 1; i < len(g.starts); i++ {
		if p < g.starts[i] {
			idx = i - 1
			break
		}
	}
	end := g.cycle
	if idx+1 < len(g.starts) {
		end = g.starts[idx+1]
	}
	return g.freqs[idx], p - g.starts[idx], end - g.starts[idx]
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq, offset, length := g.noteAt(g.pos % g.cycle)
		val := 0.0
		if freq > 0 {
			decay := 1 - float64(offset)/float64(length)
			val = 0.25 * decay * waveAt(WaveTriangle, g.phase)
			g.phase += freq / float64(g.rate)
			g.phase -= math.Floor(g.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error { return nil }
