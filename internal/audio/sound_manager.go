// Package audio plays the snake sound cues through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const sampleRate = beep.SampleRate(44100)

var cueFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// voice is one pre-rendered cue. Replaying a cue rewinds its voice instead
// of mixing in a second copy. active is guarded by the speaker lock.
type voice struct {
	seeker beep.StreamSeeker
	active bool
}

// SoundManager synthesizes cue tones and mixes them onto the speaker.
// Until Initialize succeeds every Play is silently dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	voices      map[snake.Cue]*voice
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager at the given volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		voices: make(map[snake.Cue]*voice),
		volume: math.Min(math.Max(volume, 0), 1),
	}
	for _, cue := range []snake.Cue{snake.CueEat, snake.CuePause, snake.CueGameOver} {
		buf := beep.NewBuffer(cueFormat)
		buf.Append(CueStreamer(cue))
		sm.voices[cue] = &voice{seeker: buf.Streamer(0, buf.Len())}
	}
	return sm
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every pending sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	for _, v := range sm.voices {
		v.active = false
	}
	speaker.Unlock()
	sm.initialized = false
}

// Play implements snake.Audio. A cue that is still sounding restarts from
// the beginning.
func (sm *SoundManager) Play(cue snake.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume == 0 {
		return
	}

	speaker.Lock()
	sm.trigger(cue)
	speaker.Unlock()
}

// trigger rewinds the cue's voice and adds it to the mixer unless it is
// already there. The caller holds the speaker lock.
func (sm *SoundManager) trigger(cue snake.Cue) {
	v, ok := sm.voices[cue]
	if !ok {
		return
	}
	if err := v.seeker.Seek(0); err != nil {
		return
	}
	if v.active {
		return
	}
	v.active = true
	sm.mixer.Add(beep.Seq(
		withVolume(v.seeker, sm.volume),
		beep.Callback(func() { v.active = false }),
	))
}

// CueStreamer returns the finite streamer for a sound cue.
func CueStreamer(cue snake.Cue) beep.Streamer {
	switch cue {
	case snake.CueEat:
		// Short rising blip
		return beep.Take(sampleRate.N(time.Millisecond*90), NewSweepGenerator(sampleRate, 520, 980, time.Millisecond*90))
	case snake.CuePause:
		return beep.Seq(
			beep.Take(sampleRate.N(time.Millisecond*70), NewToneGenerator(sampleRate, 660)),
			beep.Take(sampleRate.N(time.Millisecond*70), NewToneGenerator(sampleRate, 440)),
		)
	case snake.CueGameOver:
		return beep.Take(sampleRate.N(time.Millisecond*600), NewSweepGenerator(sampleRate, 440, 110, time.Millisecond*600))
	default:
		return beep.Silence(0)
	}
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Nop discards every cue. It is used when audio is disabled or unavailable.
type Nop struct{}

// Play implements snake.Audio.
func (Nop) Play(snake.Cue) {}

var (
	_ snake.Audio = (*SoundManager)(nil)
	_ snake.Audio = Nop{}
)
