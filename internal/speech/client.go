// ABOUTME: HTTP client for the ElevenLabs text-to-speech API
// ABOUTME: Posts text with fixed voice settings and returns raw MPEG audio bytes
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Defaults mirror the hosted service the app was written against.
const (
	DefaultBaseURL = "https://api.elevenlabs.io"
	DefaultVoiceID = "21m00Tcm4TlvDq8ikWAM"
	DefaultModelID = "eleven_monolingual_v1"
	DefaultTimeout = 60 * time.Second
)

// SynthesisError wraps any failed synthesis call: non-200 status, empty body,
// or a transport error. No audio was produced and nothing may be played.
type SynthesisError struct {
	StatusCode int // zero when the request never completed
	Err        error
}

func (e *SynthesisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("speech synthesis failed: %v", e.Err)
	}
	return fmt.Sprintf("speech synthesis failed: status %d", e.StatusCode)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// VoiceSettings are the fixed voice-model parameters sent with every request,
// tunable per deployment.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

// ClientConfig holds configuration for the synthesis client
type ClientConfig struct {
	APIKey   string
	BaseURL  string
	VoiceID  string
	ModelID  string
	Settings VoiceSettings
	Timeout  time.Duration
}

// Client calls the remote speech-synthesis service. One blocking request per
// call, no retry and no queuing.
type Client struct {
	apiKey   string
	baseURL  string
	voiceID  string
	modelID  string
	settings VoiceSettings
	http     *http.Client
}

// NewClient creates a synthesis client from the given configuration.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ElevenLabs API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	voiceID := cfg.VoiceID
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}
	modelID := cfg.ModelID
	if modelID == "" {
		modelID = DefaultModelID
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  baseURL,
		voiceID:  voiceID,
		modelID:  modelID,
		settings: cfg.Settings,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// Synthesize converts text to speech and returns the audio bytes. Success is
// strictly HTTP 200 with a non-empty body; every other outcome is a
// *SynthesisError.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(synthesisRequest{
		Text:          text,
		ModelID:       c.modelID,
		VoiceSettings: c.settings,
	})
	if err != nil {
		return nil, &SynthesisError{Err: fmt.Errorf("encoding request: %w", err)}
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &SynthesisError{Err: err}
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &SynthesisError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SynthesisError{StatusCode: resp.StatusCode}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SynthesisError{Err: fmt.Errorf("reading audio body: %w", err)}
	}
	if len(audio) == 0 {
		return nil, &SynthesisError{StatusCode: resp.StatusCode, Err: fmt.Errorf("empty audio body")}
	}

	return audio, nil
}
