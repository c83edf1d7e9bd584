package game

import (
	"fmt"
	"time"

	"slimelab/slime"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const audioSampleRate = beep.SampleRate(44100)

// Two-note chimes: falling when the slime freezes, rising when it thaws.
var (
	freezeChime = []float64{880, 440}
	thawChime   = []float64{440, 880}
)

// AudioCue plays a short chime on every mode transition
type AudioCue struct {
	ready bool
	note  time.Duration
}

// NewAudioCue initializes the speaker. Failure is returned so the caller can run muted.
func NewAudioCue() (*AudioCue, error) {
	a := &AudioCue{note: 60 * time.Millisecond}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err != nil {
		return a, fmt.Errorf("speaker init: %w", err)
	}
	a.ready = true
	return a, nil
}

// ChimeFor returns the note frequencies played when the slime enters mode
func ChimeFor(mode slime.Mode) []float64 {
	if mode == slime.ModeRigid {
		return freezeChime
	}
	return thawChime
}

// Play queues the chime for a transition into mode
func (a *AudioCue) Play(mode slime.Mode) {
	if a == nil || !a.ready {
		return
	}

	notes := ChimeFor(mode)
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		sine, err := generators.SineTone(audioSampleRate, freq)
		if err != nil {
			continue
		}
		streamers = append(streamers, beep.Take(audioSampleRate.N(a.note), sine))
	}
	speaker.Play(beep.Seq(streamers...))
}
