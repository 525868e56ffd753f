package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIEvaluator assesses answers in two stages: Whisper transcribes the
// audio, then a chat completion with a strict JSON schema produces the
// examiner response. Its Transcribe method doubles as the Transcriber for
// text-only examiners.
type OpenAIEvaluator struct {
	client       *openai.Client
	model        string
	whisperModel string
}

var _ Transcriber = (*OpenAIEvaluator)(nil)

// NewOpenAIEvaluator creates a new OpenAI evaluator.
func NewOpenAIEvaluator(cfg OpenAIConfig) (*OpenAIEvaluator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	whisper := cfg.WhisperModel
	if whisper == "" {
		whisper = openai.Whisper1
	}

	return &OpenAIEvaluator{
		client:       openai.NewClientWithConfig(config),
		model:        resolveModel(cfg.Model, openaiModels),
		whisperModel: whisper,
	}, nil
}

// Transcribe runs the audio payload through Whisper.
func (e *OpenAIEvaluator) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := e.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    e.whisperModel,
		FilePath: "answer.wav",
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", &ErrTranscription{Err: err}
	}
	return resp.Text, nil
}

func (e *OpenAIEvaluator) Evaluate(ctx context.Context, req Request) (*Result, error) {
	transcript, err := e.Transcribe(ctx, req.Audio)
	if err != nil {
		return nil, err
	}

	schemaBytes, err := json.Marshal(responseSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	chatReq := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: transcriptPrompt(req, transcript)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   responseSchemaName,
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no choices in OpenAI response")}
	}

	result, err := parseResult(json.RawMessage(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, err
	}
	if result.UserTranscript == "" {
		result.UserTranscript = transcript
	}
	return result, nil
}

func (e *OpenAIEvaluator) ModelID() string {
	return e.model
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
