// ABOUTME: Centralized configuration for the companion service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the companion pipeline and its surfaces.
// Components receive the pieces they need at construction; nothing reads the
// environment after Load.
type Config struct {
	// Completion settings
	OpenAIKey   string
	ChatModel   string
	Temperature float64
	LLMTimeout  time.Duration

	// Conversation settings
	HistoryWindow int
	TemplateFile  string

	// Speech settings
	SpeechEnabled   bool
	PlaybackEnabled bool
	ElevenLabsKey   string
	VoiceID         string
	TTSModel        string
	Stability       float64
	SimilarityBoost float64
	TTSTimeout      time.Duration
	AudioDir        string

	// Server settings
	ListenAddr string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ChatModel:       getEnv("COMPANION_MODEL", "gpt-4o-mini"),
		Temperature:     getEnvFloat("COMPANION_TEMPERATURE", 0.9),
		LLMTimeout:      getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		HistoryWindow:   getEnvInt("COMPANION_HISTORY_WINDOW", 2),
		TemplateFile:    os.Getenv("COMPANION_TEMPLATE_FILE"),
		SpeechEnabled:   getEnvBool("COMPANION_SPEECH", true),
		PlaybackEnabled: getEnvBool("COMPANION_PLAYBACK", false),
		ElevenLabsKey:   os.Getenv("ELEVEN_LABS_API_KEY"),
		VoiceID:         getEnv("COMPANION_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		TTSModel:        getEnv("COMPANION_TTS_MODEL", "eleven_monolingual_v1"),
		Stability:       getEnvFloat("COMPANION_TTS_STABILITY", 0),
		SimilarityBoost: getEnvFloat("COMPANION_TTS_SIMILARITY", 0),
		TTSTimeout:      getEnvDuration("ELEVEN_LABS_TIMEOUT", 60*time.Second),
		AudioDir:        getEnv("COMPANION_AUDIO_DIR", filepath.Join(os.TempDir(), "companion-audio")),
		ListenAddr:      getEnv("COMPANION_LISTEN_ADDR", "127.0.0.1:5000"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("COMPANION_TEMPERATURE must be 0-2, got %f", c.Temperature)
	}
	if c.HistoryWindow < 1 {
		return fmt.Errorf("COMPANION_HISTORY_WINDOW must be >= 1, got %d", c.HistoryWindow)
	}
	if c.Stability < 0 || c.Stability > 1 {
		return fmt.Errorf("COMPANION_TTS_STABILITY must be 0-1, got %f", c.Stability)
	}
	if c.SimilarityBoost < 0 || c.SimilarityBoost > 1 {
		return fmt.Errorf("COMPANION_TTS_SIMILARITY must be 0-1, got %f", c.SimilarityBoost)
	}
	return nil
}

// Template returns the persona template text from the configured file, or ""
// when no file is set, meaning the built-in persona applies.
func (c *Config) Template() (string, error) {
	if c.TemplateFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.TemplateFile)
	if err != nil {
		return "", fmt.Errorf("reading persona template: %w", err)
	}
	return string(data), nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
