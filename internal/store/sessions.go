package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SaveSession archives one completed session record.
func (s *Store) SaveSession(ctx context.Context, r stats.SessionRecord) error {
	convo, err := json.Marshal(r.Conversation)
	if err != nil {
		return fmt.Errorf("marshal conversation: %w", err)
	}

	var topicID, topicName string
	if r.Topic != nil {
		topicID = r.Topic.ID
		topicName = r.Topic.Name
	}

	phase := ""
	if len(r.CompletedPhases) > 0 {
		phase = r.CompletedPhases[0].String()
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO sessions (id, started_at, mode, topic_id, topic_name, duration_seconds,
	average_band, grammar_score, fluency_score, pronunciation_score, vocabulary_score,
	completed_phase, scratchpad_notes, conversation)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, r.ID, formatTime(r.StartedAt), r.Mode.String(), topicID, topicName, r.DurationSeconds,
		r.AverageBand, r.GrammarScore, r.FluencyScore, r.PronunciationScore, r.VocabularyScore,
		phase, r.ScratchpadNotes, string(convo))
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// ListSessions returns archived sessions newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]stats.SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, started_at, mode, topic_id, topic_name, duration_seconds,
	average_band, grammar_score, fluency_score, pronunciation_score, vocabulary_score,
	completed_phase, scratchpad_notes, conversation
FROM sessions
ORDER BY started_at DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []stats.SessionRecord
	for rows.Next() {
		r, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetSession returns the archived session with the given id.
func (s *Store) GetSession(ctx context.Context, id string) (stats.SessionRecord, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, started_at, mode, topic_id, topic_name, duration_seconds,
	average_band, grammar_score, fluency_score, pronunciation_score, vocabulary_score,
	completed_phase, scratchpad_notes, conversation
FROM sessions
WHERE id = ?
`, id)

	r, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return stats.SessionRecord{}, ErrNotFound
	}
	return r, err
}

// LoadRolling rebuilds the cross-session aggregates by folding every
// archived session, oldest first, into the baseline.
func (s *Store) LoadRolling(ctx context.Context) (stats.Rolling, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, started_at, mode, topic_id, topic_name, duration_seconds,
	average_band, grammar_score, fluency_score, pronunciation_score, vocabulary_score,
	completed_phase, scratchpad_notes, conversation
FROM sessions
ORDER BY started_at ASC
`)
	if err != nil {
		return stats.Rolling{}, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	rolling := stats.Baseline()
	for rows.Next() {
		r, err := scanSession(rows)
		if err != nil {
			return stats.Rolling{}, err
		}
		rolling = stats.Apply(rolling, r)
	}
	if err := rows.Err(); err != nil {
		return stats.Rolling{}, err
	}

	words, err := s.ListWords(ctx)
	if err != nil {
		return stats.Rolling{}, err
	}
	if len(words) > 0 {
		rolling.VocabularyBank = words
	}

	return rolling, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (stats.SessionRecord, error) {
	var (
		r                stats.SessionRecord
		startedAt        string
		mode, phase      string
		topicID, topicNm sql.NullString
		convo            string
	)
	err := row.Scan(&r.ID, &startedAt, &mode, &topicID, &topicNm, &r.DurationSeconds,
		&r.AverageBand, &r.GrammarScore, &r.FluencyScore, &r.PronunciationScore, &r.VocabularyScore,
		&phase, &r.ScratchpadNotes, &convo)
	if err != nil {
		return stats.SessionRecord{}, err
	}

	r.StartedAt, err = parseTime(startedAt)
	if err != nil {
		return stats.SessionRecord{}, fmt.Errorf("parse started_at: %w", err)
	}
	r.Mode = exam.ParseMode(mode)
	r.CompletedPhases = []exam.Phase{exam.ParsePhase(phase)}
	if topicID.Valid && topicID.String != "" {
		if t := exam.TopicByID(topicID.String); t != nil {
			r.Topic = t
		} else {
			r.Topic = &exam.Topic{ID: topicID.String, Name: topicNm.String}
		}
	}

	var turns []conversation.Turn
	if err := json.Unmarshal([]byte(convo), &turns); err != nil {
		return stats.SessionRecord{}, fmt.Errorf("unmarshal conversation: %w", err)
	}
	r.Conversation = turns

	return r, nil
}
