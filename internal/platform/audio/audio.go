// Package audio plays the optional background music and short tones for
// game events through the system speaker.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init succeeded.
var ErrNotInitialized = errors.New("audio: speaker not initialized")

// Effect names a short event tone.
type Effect int

const (
	EffectKill Effect = iota
	EffectPoint
	EffectLevel
	EffectGameOver
)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[Effect]tone{
	EffectKill:     {880, 50 * time.Millisecond},
	EffectPoint:    {440, 120 * time.Millisecond},
	EffectLevel:    {660, 200 * time.Millisecond},
	EffectGameOver: {220, 400 * time.Millisecond},
}

// Player mixes a looping music track with event tones.
// A zero Player is unusable; create one with New. A nil *Player is a
// silent player.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// New creates a silent player. Call Init before playing anything.
func New() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Failing to open it is not fatal for callers;
// the player simply stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayMusic decodes an MP3 track and loops it forever.
// Any previous track is replaced.
func (p *Player) PlayMusic(data []byte) error {
	stream, err := decodeLoop(data)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}

	ctrl := &beep.Ctrl{Streamer: stream}
	speaker.Lock()
	if p.music != nil {
		p.music.Streamer = nil
	}
	p.music = ctrl
	p.mixer.Add(ctrl)
	speaker.Unlock()
	return nil
}

// SetMusicPaused pauses or resumes the music track.
func (p *Player) SetMusicPaused(paused bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = paused
	speaker.Unlock()
}

// Play starts a short tone for e. Silent when not initialized.
func (p *Player) Play(e Effect) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := toneStreamer(e)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops everything and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.initialized = false
}

// decodeLoop turns an MP3 buffer into an endless stream at the speaker rate.
func decodeLoop(data []byte) (beep.Streamer, error) {
	if len(data) == 0 {
		return nil, errors.New("audio: empty music buffer")
	}

	stream, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode music: %w", err)
	}

	loop := beep.Loop(-1, stream)
	if format.SampleRate == sampleRate {
		return loop, nil
	}
	return beep.Resample(4, format.SampleRate, sampleRate, loop), nil
}

// toneStreamer builds a finite, attenuated sine tone for e.
func toneStreamer(e Effect) (beep.Streamer, error) {
	t, ok := tones[e]
	if !ok {
		return nil, fmt.Errorf("audio: unknown effect %d", e)
	}

	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot build tone: %w", err)
	}

	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.duration), sine),
		Base:     2,
		Volume:   -3,
	}, nil
}
