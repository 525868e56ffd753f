package evaluator

import (
	"context"
	"fmt"
)

// New creates an Evaluator from configuration.
// It returns the provider wrapped with retry and, when a sink is given,
// event logging.
func New(ctx context.Context, cfg Config, sink EventSink) (Evaluator, error) {
	var base Evaluator
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiEvaluator(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIEvaluator(cfg.OpenAI)
	case "anthropic":
		// Claude takes no raw audio, so transcription runs through Whisper.
		var whisper *OpenAIEvaluator
		whisper, err = NewOpenAIEvaluator(cfg.OpenAI)
		if err != nil {
			break
		}
		base, err = NewAnthropicEvaluator(cfg.Anthropic, whisper)
	case "mock":
		return NewMockEvaluator(), nil
	default:
		return nil, fmt.Errorf("unknown evaluator provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s evaluator: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	if sink != nil {
		base = WithLogging(base, sink)
	}
	return WithRetry(base, cfg.Retry), nil
}
