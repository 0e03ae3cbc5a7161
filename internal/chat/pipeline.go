// ABOUTME: Pipeline drives one conversation turn end to end
// ABOUTME: History render, prompt build, completion, memory append, optional speech
package chat

import (
	"context"
	"log"

	"github.com/harper/companion/internal/memory"
	"github.com/harper/companion/internal/models"
	"github.com/harper/companion/internal/prompt"
)

// Completer generates text for an assembled prompt. Satisfied by *llm.Client.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float32) (string, error)
}

// SpeechRenderer turns reply text into a played audio artifact. Satisfied by
// *speech.Renderer. Nil in the pipeline means text-only operation.
type SpeechRenderer interface {
	Render(ctx context.Context, sessionID, text string) (string, error)
}

// Reply is the outcome of one completed turn.
type Reply struct {
	Text      string
	AudioPath string // empty when speech is disabled or synthesis failed
}

// Pipeline assembles prompts from per-session history, calls the completion
// service, records the exchange, and optionally renders speech. One turn at a
// time per session; the session registry enforces that.
type Pipeline struct {
	assembler   *prompt.Assembler
	completer   Completer
	sessions    *memory.Sessions
	speech      SpeechRenderer
	temperature float32
}

// NewPipeline wires the turn pipeline. speech may be nil for text-only mode.
func NewPipeline(assembler *prompt.Assembler, completer Completer, sessions *memory.Sessions, speech SpeechRenderer, temperature float32) *Pipeline {
	return &Pipeline{
		assembler:   assembler,
		completer:   completer,
		sessions:    sessions,
		speech:      speech,
		temperature: temperature,
	}
}

// Sessions exposes the session registry for handlers that reset or inspect
// conversations.
func (p *Pipeline) Sessions() *memory.Sessions {
	return p.sessions
}

// Respond runs one turn. A completion failure aborts the turn before any
// memory append and before any synthesis attempt. A synthesis failure only
// drops the audio: the generated text is still returned and recorded.
// The whole turn, speech included, runs under the session lock: the session's
// audio artifact is a shared path, so synthesis must serialize with the rest
// of the turn.
func (p *Pipeline) Respond(ctx context.Context, sessionID, humanInput string) (Reply, error) {
	var reply Reply

	err := p.sessions.Do(sessionID, func(w *memory.Window) error {
		promptText, err := p.assembler.Build(w.History(), humanInput)
		if err != nil {
			return err
		}

		text, err := p.completer.Complete(ctx, promptText, p.temperature)
		if err != nil {
			return err
		}

		w.Append(models.NewExchange(humanInput, text))
		reply.Text = text

		if p.speech != nil {
			path, err := p.speech.Render(ctx, sessionID, text)
			if err != nil {
				log.Printf("Warning: speech degraded to text-only for session %s: %v", sessionID, err)
			} else {
				reply.AudioPath = path
			}
		}
		return nil
	})
	if err != nil {
		return Reply{}, err
	}

	return reply, nil
}
