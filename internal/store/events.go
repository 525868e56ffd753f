package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rane05/IELTS-TalkMate/internal/evaluator"
)

// EvaluationRow is one persisted evaluation event.
type EvaluationRow struct {
	ID        int64
	At        time.Time
	Model     string
	Phase     string
	Mode      string
	LatencyMs int64
	Success   bool
	Error     string
	Band      float64
}

// AppendEvaluation records one round trip to the evaluation service.
// It implements evaluator.EventSink.
func (s *Store) AppendEvaluation(ctx context.Context, ev evaluator.EvaluationEvent) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO evaluations (at, model, phase, mode, audio_bytes, latency_ms, success, error, band)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, formatTime(time.Now()), ev.Model, ev.Phase, ev.Mode, ev.AudioBytes, ev.LatencyMs, ev.Success, ev.Error, ev.Band)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// ListEvaluations returns recent evaluation events, newest first.
func (s *Store) ListEvaluations(ctx context.Context, limit int) ([]EvaluationRow, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, at, model, phase, mode, latency_ms, success, error, band
FROM evaluations
ORDER BY id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var out []EvaluationRow
	for rows.Next() {
		var r EvaluationRow
		var at string
		if err := rows.Scan(&r.ID, &at, &r.Model, &r.Phase, &r.Mode, &r.LatencyMs, &r.Success, &r.Error, &r.Band); err != nil {
			return nil, err
		}
		if r.At, err = parseTime(at); err != nil {
			return nil, fmt.Errorf("parse at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
