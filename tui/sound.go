package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short tones for scene events. A zero Sound is silent.
type Sound struct {
	enabled bool
}

// NewSound opens the speaker. On failure it returns a silent Sound along
// with the error; the sandbox runs fine without audio.
func NewSound(mute bool) (*Sound, error) {
	if mute {
		return &Sound{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}, err
	}
	return &Sound{enabled: true}, nil
}

// Enabled reports whether tones are audible.
func (s *Sound) Enabled() bool {
	return s != nil && s.enabled
}

// Snap plays the tone for n links cut in one frame. More links give a
// higher pitch.
func (s *Sound) Snap(n int) {
	if !s.Enabled() || n <= 0 {
		return
	}

	freq := 660 + 80*min(n, 6)
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

// Close releases the speaker.
func (s *Sound) Close() {
	if !s.Enabled() {
		return
	}
	speaker.Close()
	s.enabled = false
}
