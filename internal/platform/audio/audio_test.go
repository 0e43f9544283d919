package audio

import (
	"errors"
	"testing"
)

func TestDecodeLoopRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not mp3", []byte("definitely not an mp3 stream")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeLoop(tt.data); err == nil {
				t.Error("decodeLoop() expected error")
			}
		})
	}
}

func TestToneStreamerLength(t *testing.T) {
	for e, tn := range tones {
		s, err := toneStreamer(e)
		if err != nil {
			t.Fatalf("toneStreamer(%d) error = %v", e, err)
		}

		total := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := s.Stream(buf)
			total += n
			if !ok {
				break
			}
		}

		if expected := sampleRate.N(tn.duration); total != expected {
			t.Errorf("effect %d streamed %d samples, expected %d", e, total, expected)
		}
	}

	if _, err := toneStreamer(Effect(99)); err == nil {
		t.Error("toneStreamer(unknown) expected error")
	}
}

func TestPlayerSilentWithoutInit(t *testing.T) {
	p := New()

	p.Play(EffectKill)
	p.SetMusicPaused(true)
	p.Close()

	// Bad data is rejected before the speaker is needed.
	if err := p.PlayMusic(nil); err == nil || errors.Is(err, ErrNotInitialized) {
		t.Errorf("PlayMusic(nil) error = %v, expected a decode error", err)
	}
}
