package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rane05/IELTS-TalkMate/internal/stats"
)

// SaveWord adds a word to the vocabulary bank. Words are deduplicated
// case-insensitively; re-saving an existing word bumps its review count.
func (s *Store) SaveWord(ctx context.Context, item stats.VocabularyItem) error {
	word := strings.ToLower(strings.TrimSpace(item.Word))
	if word == "" {
		return fmt.Errorf("empty word")
	}
	if item.LearnedAt.IsZero() {
		item.LearnedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO vocabulary (word, definition, example, learned_at, review_count)
VALUES (?, ?, ?, ?, 0)
ON CONFLICT(word) DO UPDATE SET review_count = review_count + 1
`, word, item.Definition, item.Example, formatTime(item.LearnedAt))
	if err != nil {
		return fmt.Errorf("save word: %w", err)
	}
	return nil
}

// ListWords returns the vocabulary bank, most recently learned first.
func (s *Store) ListWords(ctx context.Context) ([]stats.VocabularyItem, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT word, definition, example, learned_at, review_count
FROM vocabulary
ORDER BY learned_at DESC
`)
	if err != nil {
		return nil, fmt.Errorf("query vocabulary: %w", err)
	}
	defer rows.Close()

	var items []stats.VocabularyItem
	for rows.Next() {
		var item stats.VocabularyItem
		var learnedAt string
		if err := rows.Scan(&item.Word, &item.Definition, &item.Example, &learnedAt, &item.ReviewCount); err != nil {
			return nil, err
		}
		if item.LearnedAt, err = parseTime(learnedAt); err != nil {
			return nil, fmt.Errorf("parse learned_at: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
