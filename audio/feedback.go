package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Feedback plays short event tones for detection outcomes. A failed
// speaker init disables it without failing the application.
type Feedback struct {
	enabled bool
	muted   bool
}

// NewFeedback initializes the speaker. The returned error is
// informational; the Feedback is usable (silent) either way.
func NewFeedback() (*Feedback, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Feedback{enabled: err == nil}, err
}

// ToggleMute flips audible state and reports the new muted value.
func (f *Feedback) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

// Tunneled plays the high detection chirp.
func (f *Feedback) Tunneled() {
	f.tone(880, 40*time.Millisecond)
}

// Reflected plays the low bounce tone.
func (f *Feedback) Reflected() {
	f.tone(220, 30*time.Millisecond)
}

func (f *Feedback) tone(freq float64, d time.Duration) {
	if !f.enabled || f.muted {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close shuts the speaker down.
func (f *Feedback) Close() {
	if f.enabled {
		speaker.Close()
	}
}
