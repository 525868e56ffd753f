package evaluator

import (
	"context"
	"errors"
	"testing"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
)

type captureSink struct {
	events []EvaluationEvent
	err    error
}

func (c *captureSink) AppendEvaluation(_ context.Context, ev EvaluationEvent) error {
	c.events = append(c.events, ev)
	return c.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockEvaluator(MockResult{Result: &Result{
		ExaminerSpeech: "And why is that?",
		Feedback:       conversation.Feedback{EstimatedBand: 7.5},
	}})
	sink := &captureSink{}
	e := WithLogging(mock, sink)

	_, err := e.Evaluate(context.Background(), Request{
		Audio: make([]byte, 1024),
		Phase: exam.PhasePart3,
		Mode:  exam.ModeFullTest,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if !ev.Success || ev.Band != 7.5 || ev.Model != "mock" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Phase != "PART_3" || ev.Mode != "FULL_TEST" {
		t.Fatalf("phase/mode = %s/%s", ev.Phase, ev.Mode)
	}
	if ev.AudioBytes != 1024 {
		t.Fatalf("AudioBytes = %d, want 1024", ev.AudioBytes)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockEvaluator(MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	sink := &captureSink{}
	e := WithLogging(mock, sink)

	_, err := e.Evaluate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	ev := sink.events[0]
	if ev.Success || ev.Error == "" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestLogging_SinkErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockEvaluator(MockResult{Result: okResult()})
	sink := &captureSink{err: errors.New("disk full")}
	e := WithLogging(mock, sink)

	if _, err := e.Evaluate(context.Background(), Request{}); err != nil {
		t.Fatalf("sink failure leaked into request: %v", err)
	}
}
