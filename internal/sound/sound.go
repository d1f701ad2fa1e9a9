// Package sound plays short audio cues for game events.
// Cues are WAV files handed to an external player so playback never blocks
// the simulation tick. Missing files degrade to silent cues.
package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ErrNoCue is returned when an event has no playable file.
var ErrNoCue = errors.New("no cue for event")

// players are the external commands tried in order to play a WAV file.
var players = []string{"aplay", "paplay", "afplay"}

// launchFunc starts playback of a file and waits for it to finish.
type launchFunc func(path string) error

// Player maps game events to cues and tracks the mute flag.
type Player struct {
	mu      sync.Mutex
	cues    map[core.Event]string
	playing map[core.Event]bool
	muted   bool
	closed  bool

	launch launchFunc
	bell   io.Writer
	logger *log.Logger
	wg     sync.WaitGroup
}

// Load builds a player from <dir>/<event>.wav files.
// Every missing or unreadable file is logged and replaced with a silent cue.
func Load(dir string, logger *log.Logger) *Player {
	p := &Player{
		cues:    make(map[core.Event]string, len(core.Events)),
		playing: make(map[core.Event]bool, len(core.Events)),
		bell:    os.Stderr,
		logger:  logger,
	}

	for _, e := range core.Events {
		path := filepath.Join(dir, e.String()+".wav")
		if err := checkCue(path); err != nil {
			logger.Warn("sound cue unavailable, using silence", "cue", e, "error", err)
			continue
		}
		p.cues[e] = path
	}

	if bin := findPlayer(); bin != "" {
		logger.Debug("using external audio player", "command", bin)
		p.launch = func(path string) error {
			return exec.Command(bin, path).Run() //#nosec G204 -- binary comes from a fixed list
		}
	} else if len(p.cues) > 0 {
		logger.Warn("no audio player found, falling back to terminal bell", "tried", players)
	}
	return p
}

// checkCue verifies the file exists and is a regular, non-empty file.
func checkCue(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("sound: %s is not a regular file", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("sound: %s is empty", path)
	}
	return nil
}

func findPlayer() string {
	for _, name := range players {
		if bin, err := exec.LookPath(name); err == nil {
			return bin
		}
	}
	return ""
}

// HasCue reports whether the event has a playable file.
func (p *Player) HasCue(e core.Event) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.cues[e]
	return ok
}

// Play starts the cue for an event in the background.
// It returns ErrNoCue for silent cues and does nothing while muted or while
// the same cue is still playing.
func (p *Player) Play(e core.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.closed {
		return nil
	}
	path, ok := p.cues[e]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoCue, e)
	}

	if p.launch == nil {
		_, err := io.WriteString(p.bell, "\a")
		return err
	}

	if p.playing[e] {
		return nil
	}
	p.playing[e] = true

	launch := p.launch
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		err := launch(path)

		p.mu.Lock()
		p.playing[e] = false
		p.mu.Unlock()

		if err != nil {
			p.logger.Debug("sound playback failed", "cue", e, "error", err)
		}
	}()
	return nil
}

// PlayAll plays the cue of every event, skipping silent ones.
func (p *Player) PlayAll(events []core.Event) {
	for _, e := range events {
		if err := p.Play(e); err != nil && !errors.Is(err, ErrNoCue) {
			p.logger.Debug("sound cue failed", "cue", e, "error", err)
		}
	}
}

// Muted reports whether playback is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetMuted sets the mute flag.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Toggle flips the mute flag and returns the new value.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Close stops accepting cues and waits for running playback to finish.
func (p *Player) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
}
