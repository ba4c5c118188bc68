package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// sweep is an oscillator whose frequency glides linearly from one pitch to another
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates a tone gliding from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

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
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// eatSound is a short rising chirp
func eatSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	tone := NewSweep(660, 1320, d, WaveSquare, rate)
	return quiet(NewEnvelope(tone, d, 5*time.Millisecond, 40*time.Millisecond, rate), -2)
}

// highScoreSound is two chirps a fifth apart
func highScoreSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	first := NewEnvelope(NewSweep(880, 880, d, WaveSine, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate)
	second := NewEnvelope(NewSweep(1320, 1320, d, WaveSine, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate)
	return quiet(beep.Seq(first, second), -1.5)
}

// gameOverSound is a falling saw buzz
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	d := 450 * time.Millisecond
	tone := NewSweep(440, 110, d, WaveSaw, rate)
	return quiet(NewEnvelope(tone, d, 10*time.Millisecond, 200*time.Millisecond, rate), -2)
}

func quiet(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}
