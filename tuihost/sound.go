package tuihost

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/glide"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short cues for gesture events through the system speaker.
// A Sound that failed to initialize stays silent.
type Sound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSound creates a silent Sound. Call Initialize to open the speaker.
func NewSound() *Sound {
	return &Sound{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (s *Sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup stops every queued cue.
func (s *Sound) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// PlayBump plays the soft thud used when content hits an edge.
func (s *Sound) PlayBump() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(bumpStreamer())
	speaker.Unlock()
}

func bumpStreamer() beep.Streamer {
	return beep.Take(sampleRate.N(time.Millisecond*90), newBumpGenerator(sampleRate, 90))
}

// bumpGenerator is a decaying low sine.
type bumpGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBumpGenerator(sr beep.SampleRate, freq float64) *bumpGenerator {
	return &bumpGenerator{sr: sr, freq: freq}
}

func (g *bumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t) * math.Exp(-t*40)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *bumpGenerator) Err() error {
	return nil
}

// soundSink plays a bump on rubber band events and forwards every event to
// next, if set.
type soundSink struct {
	sound *Sound
	next  glide.EventSink
	bumps int
}

func (s *soundSink) EmitEvent(ev glide.GestureEvent) {
	if ev.Type == glide.EventRubberBand {
		s.bumps++
		s.sound.PlayBump()
	}
	if s.next != nil {
		s.next.EmitEvent(ev)
	}
}
