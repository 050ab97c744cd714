// Package ledger holds the bounded, newest-first logs of past answers and
// past exam results. Eviction is by insertion order: new entries are
// prepended and the tail beyond the cap is dropped, regardless of the
// timestamps the entries carry.
package ledger

import (
	"time"

	"github.com/mbuckley/feprep/internal/topic"
)

const (
	// HistoryCap is the maximum retained answer-history entries.
	HistoryCap = 10

	// LeaderboardCap is the maximum retained exam records.
	LeaderboardCap = 50
)

// HistoryEntry is one graded answer. Entries are never mutated after append.
type HistoryEntry struct {
	QuestionID string
	Topic      topic.Topic
	Correct    bool
	Timestamp  time.Time
}

// ExamRecord is the terminal fact of one finished exam.
type ExamRecord struct {
	ID        string
	Topic     topic.Topic
	Score     int
	Total     int
	Passed    bool
	Timestamp time.Time
}

// Log is a bounded newest-first log. The zero value is unusable; construct
// with NewLog.
type Log[T any] struct {
	cap     int
	entries []T
}

// NewLog creates a log retaining at most cap entries.
func NewLog[T any](cap int) *Log[T] {
	return &Log[T]{cap: cap}
}

// Restore replaces the log contents with persisted entries, newest first,
// truncating anything beyond the cap.
func (l *Log[T]) Restore(entries []T) {
	l.entries = append(l.entries[:0], entries...)
	if len(l.entries) > l.cap {
		l.entries = l.entries[:l.cap]
	}
}

// Append prepends an entry and drops the oldest beyond the cap.
func (l *Log[T]) Append(e T) {
	l.entries = append([]T{e}, l.entries...)
	if len(l.entries) > l.cap {
		l.entries = l.entries[:l.cap]
	}
}

// Entries returns a snapshot of the log, newest first.
func (l *Log[T]) Entries() []T {
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *Log[T]) Len() int {
	return len(l.entries)
}
