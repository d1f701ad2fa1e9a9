package sound

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

func writeCue(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name+".wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o600))
	return path
}

// recorder captures launched paths instead of running a real player.
type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) launch(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func (r *recorder) played() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestLoadMissingCuesAreSilent(t *testing.T) {
	dir := t.TempDir()
	writeCue(t, dir, "bounce")
	logger, buf := newTestLogger()

	p := Load(dir, logger)
	defer p.Close()

	assert.True(t, p.HasCue(core.EventBounce))
	assert.False(t, p.HasCue(core.EventBrickBreak))
	assert.False(t, p.HasCue(core.EventLaserFire))
	assert.False(t, p.HasCue(core.EventGameOver))
	assert.Contains(t, buf.String(), "brick_break")
	assert.Contains(t, buf.String(), "using silence")
}

func TestLoadRejectsEmptyAndDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bounce.wav"), nil, 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "laser.wav"), 0o700))
	logger, _ := newTestLogger()

	p := Load(dir, logger)
	defer p.Close()

	assert.False(t, p.HasCue(core.EventBounce))
	assert.False(t, p.HasCue(core.EventLaserFire))
}

func TestPlayLaunchesCue(t *testing.T) {
	dir := t.TempDir()
	path := writeCue(t, dir, "brick_break")
	logger, _ := newTestLogger()
	rec := &recorder{}

	p := Load(dir, logger)
	p.launch = rec.launch

	require.NoError(t, p.Play(core.EventBrickBreak))
	p.Close()

	assert.Equal(t, []string{path}, rec.played())
}

func TestPlaySilentCue(t *testing.T) {
	logger, _ := newTestLogger()
	rec := &recorder{}

	p := Load(t.TempDir(), logger)
	p.launch = rec.launch

	err := p.Play(core.EventGameOver)
	require.ErrorIs(t, err, ErrNoCue)
	p.Close()
	assert.Empty(t, rec.played())
}

func TestMuteSuppressesPlayback(t *testing.T) {
	dir := t.TempDir()
	writeCue(t, dir, "bounce")
	logger, _ := newTestLogger()
	rec := &recorder{}

	p := Load(dir, logger)
	p.launch = rec.launch

	assert.True(t, p.Toggle())
	assert.True(t, p.Muted())
	require.NoError(t, p.Play(core.EventBounce))

	p.SetMuted(false)
	assert.False(t, p.Muted())
	require.NoError(t, p.Play(core.EventBounce))
	p.Close()

	assert.Len(t, rec.played(), 1)
}

func TestBellFallback(t *testing.T) {
	dir := t.TempDir()
	writeCue(t, dir, "laser")
	logger, _ := newTestLogger()

	p := Load(dir, logger)
	defer p.Close()
	var bell bytes.Buffer
	p.launch = nil
	p.bell = &bell

	require.NoError(t, p.Play(core.EventLaserFire))
	assert.Equal(t, "\a", bell.String())
}

func TestPlayAllSkipsSilentCues(t *testing.T) {
	dir := t.TempDir()
	writeCue(t, dir, "bounce")
	writeCue(t, dir, "game_over")
	logger, _ := newTestLogger()
	rec := &recorder{}

	p := Load(dir, logger)
	p.launch = rec.launch

	p.PlayAll([]core.Event{core.EventBounce, core.EventBrickBreak, core.EventGameOver})
	p.Close()

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "bounce.wav"),
		filepath.Join(dir, "game_over.wav"),
	}, rec.played())
}

func TestPlayAfterClose(t *testing.T) {
	dir := t.TempDir()
	writeCue(t, dir, "bounce")
	logger, _ := newTestLogger()
	rec := &recorder{}

	p := Load(dir, logger)
	p.launch = rec.launch
	p.Close()

	require.NoError(t, p.Play(core.EventBounce))
	assert.Empty(t, rec.played())
}

func TestPlayDropsCueAlreadyPlaying(t *testing.T) {
	dir := t.TempDir()
	writeCue(t, dir, "bounce")
	writeCue(t, dir, "laser")
	logger, _ := newTestLogger()

	release := make(chan struct{})
	started := make(chan string, 8)
	p := Load(dir, logger)
	p.launch = func(path string) error {
		started <- path
		<-release
		return nil
	}

	for range 3 {
		require.NoError(t, p.Play(core.EventBounce))
	}
	require.NoError(t, p.Play(core.EventLaserFire))
	close(release)
	p.Close()

	close(started)
	var got []string
	for path := range started {
		got = append(got, path)
	}
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "bounce.wav"),
		filepath.Join(dir, "laser.wav"),
	}, got)
}

func TestCueReplaysAfterFinishing(t *testing.T) {
	dir := t.TempDir()
	writeCue(t, dir, "bounce")
	logger, _ := newTestLogger()
	rec := &recorder{}

	p := Load(dir, logger)
	p.launch = rec.launch

	require.NoError(t, p.Play(core.EventBounce))
	p.wg.Wait()
	require.NoError(t, p.Play(core.EventBounce))
	p.Close()

	assert.Len(t, rec.played(), 2)
}
