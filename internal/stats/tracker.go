package stats

import (
	"sync"
	"time"
)

// Tracker is the shared, mutable holder of the rolling aggregates. The
// header reads it every frame while the practice screen updates it from
// command goroutines, hence the lock.
type Tracker struct {
	mu sync.Mutex
	r  Rolling
}

// NewTracker creates a Tracker seeded with the given aggregates.
func NewTracker(r Rolling) *Tracker {
	return &Tracker{r: r}
}

// Snapshot returns a copy of the current aggregates.
func (t *Tracker) Snapshot() Rolling {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.r
}

// ApplyRecord folds one completed session into the aggregates.
func (t *Tracker) ApplyRecord(rec SessionRecord) Rolling {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.r = Apply(t.r, rec)
	return t.r
}

// AddWord saves a word into the vocabulary bank.
func (t *Tracker) AddWord(word string, now time.Time) Rolling {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.r = AddWord(t.r, word, now)
	return t.r
}
