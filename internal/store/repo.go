package store

import (
	"context"

	"github.com/mbuckley/feprep/internal/ledger"
	"github.com/mbuckley/feprep/internal/topic"
)

// Setting keys understood by the settings repository.
const (
	KeyScore = "score" // cumulative practice correct-count
	KeyTheme = "theme" // display preference, pass-through
	KeyMode  = "mode"  // last active top-level mode
	KeyTopic = "topic" // last active topic, for resuming on restart
)

// SequenceRepo persists per-topic permutations and cursors.
type SequenceRepo interface {
	// Permutation returns the stored ordering for a topic, or nil if
	// none has been generated yet.
	Permutation(ctx context.Context, t topic.Topic) ([]int, error)

	// SavePermutation stores a freshly generated ordering. A topic's
	// permutation is written once and then only read.
	SavePermutation(ctx context.Context, t topic.Topic, order []int) error

	// Cursor returns a topic's practice position (0 if never saved).
	Cursor(ctx context.Context, t topic.Topic) (int, error)

	// SaveCursor stores a topic's practice position.
	SaveCursor(ctx context.Context, t topic.Topic, position int) error
}

// LedgerRepo persists the bounded history and leaderboard logs.
// Append prunes by insertion order so the stored logs never exceed
// their caps.
type LedgerRepo interface {
	AppendHistory(ctx context.Context, e ledger.HistoryEntry) error
	History(ctx context.Context) ([]ledger.HistoryEntry, error)

	AppendExamRecord(ctx context.Context, r ledger.ExamRecord) error
	ExamRecords(ctx context.Context) ([]ledger.ExamRecord, error)
}

// SettingsRepo persists small key/value preferences.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	// GetInt parses the value as an integer, returning 0 for missing
	// or malformed values rather than an error.
	GetInt(ctx context.Context, key string) (int, error)
	SetInt(ctx context.Context, key string, value int) error
}

// AdvisoryEventData captures one advisory provider request.
type AdvisoryEventData struct {
	Provider     string
	Purpose      string
	QuestionID   string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AdvisoryRepo appends and queries advisory request events.
type AdvisoryRepo interface {
	Append(ctx context.Context, data AdvisoryEventData) error

	// Recent returns the most recent events, newest first.
	Recent(ctx context.Context, limit int) ([]AdvisoryEventData, error)
}
