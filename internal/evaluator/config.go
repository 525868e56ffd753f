package evaluator

import (
	"fmt"
	"os"
	"time"
)

// Config holds all evaluation-provider configuration.
type Config struct {
	// Provider selects which evaluation backend to use.
	// Values: "gemini", "openai", "anthropic", "mock"
	Provider string

	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Retry     RetryConfig

	// Timeout is the maximum duration for a single evaluation call,
	// including retries. Default: 60s.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration. Gemini is the only
// provider that hears the audio natively.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration. The Whisper model also
// serves as the transcriber for text-only examiners.
type OpenAIConfig struct {
	APIKey       string
	Model        string // Default: "gpt-4o-mini"
	WhisperModel string // Default: "whisper-1"
	BaseURL      string // Optional override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration. Requires a
// transcriber (OpenAI key) since Claude does not take raw audio.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model:        "gpt-4o-mini",
			WhisperModel: "whisper-1",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("TALKMATE_EVALUATOR"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("TALKMATE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("TALKMATE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("TALKMATE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("TALKMATE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("TALKMATE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("TALKMATE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("TALKMATE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic) and returns a Config for the first
// provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()
	if cfg.keyFor(cfg.Provider) != "" {
		return cfg, true
	}

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		// Claude needs Whisper for the audio leg.
		if w := os.Getenv("OPENAI_API_KEY"); w != "" {
			cfg.OpenAI.APIKey = w
		}
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required keys set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("TALKMATE_GEMINI_API_KEY is required for the gemini evaluator")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("TALKMATE_OPENAI_API_KEY is required for the openai evaluator")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("TALKMATE_ANTHROPIC_API_KEY is required for the anthropic evaluator")
		}
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("TALKMATE_OPENAI_API_KEY is required for transcription when using the anthropic evaluator")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown evaluator provider: %q", c.Provider)
	}
	return nil
}

func (c Config) keyFor(provider string) string {
	switch provider {
	case "gemini":
		return c.Gemini.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "anthropic":
		return c.Anthropic.APIKey
	default:
		return ""
	}
}
