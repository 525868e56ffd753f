package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// anthropicMaxTokens bounds the examiner response size.
const anthropicMaxTokens = 2048

// AnthropicEvaluator assesses answers over a transcript produced by a
// Transcriber, since Claude takes no raw audio. Pronunciation feedback is
// therefore inferred from wording rather than heard.
type AnthropicEvaluator struct {
	client      *anthropic.Client
	model       string
	transcriber Transcriber
}

// NewAnthropicEvaluator creates a new Anthropic evaluator.
func NewAnthropicEvaluator(cfg AnthropicConfig, transcriber Transcriber) (*AnthropicEvaluator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if transcriber == nil {
		return nil, fmt.Errorf("anthropic evaluator requires a transcriber")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	return &AnthropicEvaluator{
		client:      &client,
		model:       resolveModel(cfg.Model, anthropicModels),
		transcriber: transcriber,
	}, nil
}

func (e *AnthropicEvaluator) Evaluate(ctx context.Context, req Request) (*Result, error) {
	transcript, err := e.transcriber.Transcribe(ctx, req.Audio)
	if err != nil {
		return nil, err
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemInstruction},
		},
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(transcriptPrompt(req, transcript)),
			},
		}},
		OutputConfig: anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{
				Schema: responseSchema(),
			},
		},
	}

	msg, err := e.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	content, err := extractAnthropicContent(msg)
	if err != nil {
		return nil, err
	}

	result, err := parseResult(content)
	if err != nil {
		return nil, err
	}
	if result.UserTranscript == "" {
		result.UserTranscript = transcript
	}
	return result, nil
}

func (e *AnthropicEvaluator) ModelID() string {
	return e.model
}

func extractAnthropicContent(msg *anthropic.Message) (json.RawMessage, error) {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return json.RawMessage(block.Text), nil
		}
	}
	return nil, &ErrInvalidResponse{
		Err: fmt.Errorf("no text content in Anthropic response"),
	}
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.StatusCode >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
