package evaluator

import (
	"context"
	"fmt"
	"os"
	"time"
)

// EvaluationEvent is one record of a round trip to the evaluation service.
type EvaluationEvent struct {
	Model      string
	Phase      string
	Mode       string
	AudioBytes int
	LatencyMs  int64
	Success    bool
	Error      string
	Band       float64
}

// EventSink persists evaluation events. The store package implements it.
type EventSink interface {
	AppendEvaluation(ctx context.Context, ev EvaluationEvent) error
}

// LoggingEvaluator is a decorator that records every evaluation as an event.
type LoggingEvaluator struct {
	inner Evaluator
	sink  EventSink
}

// WithLogging wraps an Evaluator with event logging.
func WithLogging(e Evaluator, sink EventSink) Evaluator {
	return &LoggingEvaluator{inner: e, sink: sink}
}

func (l *LoggingEvaluator) Evaluate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	result, err := l.inner.Evaluate(ctx, req)

	ev := EvaluationEvent{
		Model:      l.inner.ModelID(),
		Phase:      req.Phase.String(),
		Mode:       req.Mode.String(),
		AudioBytes: len(req.Audio),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if result != nil {
		ev.Band = result.Feedback.EstimatedBand
	}
	if err != nil {
		ev.Error = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.sink.AppendEvaluation(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log evaluation event: %v\n", logErr)
	}

	return result, err
}

func (l *LoggingEvaluator) ModelID() string {
	return l.inner.ModelID()
}
