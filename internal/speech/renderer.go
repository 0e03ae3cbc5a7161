// ABOUTME: Renderer persists synthesized audio per session and plays it back
// ABOUTME: Synthesis failure aborts before any file write or playback
package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Synthesizer converts text to audio bytes. Satisfied by *Client.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Renderer is the side-effecting sink of a turn: synthesize, write the
// session's audio artifact, play it. Each session gets its own file so
// concurrent sessions never race on a shared path.
type Renderer struct {
	synth  Synthesizer
	player Player
	dir    string
}

// NewRenderer creates a renderer writing audio artifacts under dir.
func NewRenderer(synth Synthesizer, player Player, dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating audio dir: %w", err)
	}
	if player == nil {
		player = NopPlayer{}
	}
	return &Renderer{synth: synth, player: player, dir: dir}, nil
}

// AudioPath returns the artifact path for a session. The file is overwritten
// on every completed turn of that session.
func (r *Renderer) AudioPath(sessionID string) string {
	return filepath.Join(r.dir, sessionID+".mp3")
}

// Render synthesizes text, overwrites the session's audio artifact, and plays
// it synchronously. On synthesis failure nothing is written and nothing is
// played; the caller degrades to text-only.
func (r *Renderer) Render(ctx context.Context, sessionID, text string) (string, error) {
	audio, err := r.synth.Synthesize(ctx, text)
	if err != nil {
		return "", err
	}

	path := r.AudioPath(sessionID)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("writing audio artifact: %w", err)
	}

	if err := r.player.Play(ctx, path); err != nil {
		// The artifact exists and the text turn already succeeded.
		return path, err
	}
	return path, nil
}
