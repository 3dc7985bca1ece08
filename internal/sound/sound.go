// Package sound plays short synthesized cues for board events and an
// optional background loop. Audio is best effort: every method is safe to
// call when the speaker could not be opened.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

const (
	sampleRate  = beep.SampleRate(44100)
	musicEighth = 150 * time.Millisecond
	musicVolume = 0.1 // relative to the master volume
)

// SoundManager owns the speaker mixer.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.SoundConfig
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a manager. Nothing plays until Initialize.
func NewSoundManager(cfg config.SoundConfig) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. It is a no-op when sound is disabled.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences everything and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// Active reports whether cues are being played.
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// play queues s at the master volume. Callers hold sm.mu.
func (sm *SoundManager) play(s beep.Streamer) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.cfg.Volume))
	speaker.Unlock()
}

// PlayClear plays the row-clear chime.
func (sm *SoundManager) PlayClear(rows int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.play(ClearChime(rows, sampleRate))
}

// PlayTetris plays the four-row fanfare.
func (sm *SoundManager) PlayTetris() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.play(TetrisFanfare(sampleRate))
}

// PlayGameOver stops the music and plays the game over figure.
func (sm *SoundManager) PlayGameOver() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMusicPaused(true)
	sm.play(GameOverBuzz(sampleRate))
}

// StartMusic starts or resumes the background loop if music is enabled.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.cfg.Music {
		return
	}
	if sm.music != nil {
		sm.setMusicPaused(false)
		return
	}
	sm.music = &beep.Ctrl{Streamer: newVolume(NewMusicGenerator(sampleRate, musicEighth), musicVolume)}
	sm.play(sm.music)
}

// StopMusic pauses the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMusicPaused(true)
}

func (sm *SoundManager) setMusicPaused(paused bool) {
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = paused
	speaker.Unlock()
}

// MusicPlaying reports whether the background loop is audible.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}

// Handle maps board events to cues. Subscribe it with Game.Subscribe.
func (sm *SoundManager) Handle(e tetris.Event) {
	switch e := e.(type) {
	case tetris.RowsCleared:
		if e.Count < 4 {
			sm.PlayClear(e.Count)
		}
	case tetris.TetrisCountChanged:
		sm.PlayTetris()
	case tetris.GameOver:
		sm.PlayGameOver()
	case tetris.PhaseChanged:
		switch e.To {
		case tetris.PhaseRunning:
			sm.StartMusic()
		case tetris.PhasePaused:
			sm.StopMusic()
		}
	}
}

// queued returns the number of streamers in the mixer.
func (sm *SoundManager) queued() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
