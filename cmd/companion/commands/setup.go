// ABOUTME: Shared pipeline construction for serve, chat, and mcp commands
// ABOUTME: Builds assembler, completion client, sessions, and optional speech
package commands

import (
	"fmt"
	"log"

	"github.com/harper/companion/internal/chat"
	"github.com/harper/companion/internal/config"
	"github.com/harper/companion/internal/llm"
	"github.com/harper/companion/internal/memory"
	"github.com/harper/companion/internal/prompt"
	"github.com/harper/companion/internal/speech"
)

// buildPipeline assembles the full turn pipeline from configuration. Speech
// is attached only when enabled and an ElevenLabs key is present; playback
// additionally needs a system player, otherwise audio is written but silent.
func buildPipeline(cfg *config.Config) (*chat.Pipeline, error) {
	templateText, err := cfg.Template()
	if err != nil {
		return nil, err
	}
	if templateText == "" {
		templateText = prompt.DefaultTemplate
	}
	assembler, err := prompt.New(templateText)
	if err != nil {
		return nil, err
	}

	completer, err := llm.NewClient(llm.ClientConfig{
		APIKey:    cfg.OpenAIKey,
		ChatModel: cfg.ChatModel,
		Timeout:   cfg.LLMTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("completion client: %w", err)
	}

	sessions := memory.NewSessions(cfg.HistoryWindow)

	var renderer chat.SpeechRenderer
	if cfg.SpeechEnabled {
		if cfg.ElevenLabsKey == "" {
			if !quiet {
				log.Println("Warning: ELEVEN_LABS_API_KEY not set - running text-only")
			}
		} else {
			synth, err := speech.NewClient(speech.ClientConfig{
				APIKey:  cfg.ElevenLabsKey,
				VoiceID: cfg.VoiceID,
				ModelID: cfg.TTSModel,
				Settings: speech.VoiceSettings{
					Stability:       cfg.Stability,
					SimilarityBoost: cfg.SimilarityBoost,
				},
				Timeout: cfg.TTSTimeout,
			})
			if err != nil {
				return nil, fmt.Errorf("synthesis client: %w", err)
			}

			var player speech.Player = speech.NopPlayer{}
			if cfg.PlaybackEnabled {
				execPlayer, err := speech.NewExecPlayer()
				if err != nil {
					log.Printf("Warning: %v - audio will be written but not played", err)
				} else {
					player = execPlayer
				}
			}

			sr, err := speech.NewRenderer(synth, player, cfg.AudioDir)
			if err != nil {
				return nil, err
			}
			renderer = sr
		}
	}

	return chat.NewPipeline(assembler, completer, sessions, renderer, float32(cfg.Temperature)), nil
}
