// ABOUTME: Local audio playback for synthesized speech files
// ABOUTME: Shells out to whatever command-line player the host provides
package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Player plays an audio file synchronously.
type Player interface {
	Play(ctx context.Context, path string) error
}

// playerCandidates are tried in order when locating a system player.
var playerCandidates = []string{"afplay", "mpg123", "ffplay", "aplay"}

// ExecPlayer plays audio through an external command-line player binary.
type ExecPlayer struct {
	bin string
}

// NewExecPlayer locates a usable player binary on PATH.
func NewExecPlayer() (*ExecPlayer, error) {
	for _, name := range playerCandidates {
		if bin, err := exec.LookPath(name); err == nil {
			return &ExecPlayer{bin: bin}, nil
		}
	}
	return nil, fmt.Errorf("no audio player found on PATH (tried %v)", playerCandidates)
}

// Play runs the player and blocks until playback finishes or ctx is done.
func (p *ExecPlayer) Play(ctx context.Context, path string) error {
	args := []string{path}
	if strings.HasSuffix(p.bin, "ffplay") {
		// ffplay opens a window and loops without these flags.
		args = []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	}

	cmd := exec.CommandContext(ctx, p.bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("audio playback failed: %v: %s", err, stderr.String())
	}
	return nil
}

// NopPlayer skips playback, for headless deployments where the browser or
// MCP client consumes the audio artifact instead.
type NopPlayer struct{}

func (NopPlayer) Play(ctx context.Context, path string) error {
	return nil
}
