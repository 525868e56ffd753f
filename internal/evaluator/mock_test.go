package evaluator

import (
	"context"
	"errors"
	"testing"
)

func TestMockEvaluator_FIFO(t *testing.T) {
	m := NewMockEvaluator(
		MockResult{Result: &Result{ExaminerSpeech: "first"}},
		MockResult{Result: &Result{ExaminerSpeech: "second"}},
	)

	res, err := m.Evaluate(context.Background(), Request{Context: "a"})
	if err != nil || res.ExaminerSpeech != "first" {
		t.Fatalf("got %v/%v, want first", res, err)
	}
	res, err = m.Evaluate(context.Background(), Request{Context: "b"})
	if err != nil || res.ExaminerSpeech != "second" {
		t.Fatalf("got %v/%v, want second", res, err)
	}

	// Empty queue reports the provider as unavailable.
	_, err = m.Evaluate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}

	if m.CallCount() != 3 {
		t.Fatalf("CallCount = %d, want 3", m.CallCount())
	}
	if m.Calls[0].Context != "a" || m.Calls[1].Context != "b" {
		t.Fatal("requests not recorded in order")
	}
}

func TestMockEvaluator_AddResult(t *testing.T) {
	m := NewMockEvaluator()
	m.AddResult(MockResult{Result: &Result{ExaminerSpeech: "queued"}})

	res, err := m.Evaluate(context.Background(), Request{})
	if err != nil || res.ExaminerSpeech != "queued" {
		t.Fatalf("got %v/%v, want queued", res, err)
	}
}
