package home

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/mbuckley/feprep/internal/ledger"
	"github.com/mbuckley/feprep/internal/progress"
	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/topic"
	"github.com/mbuckley/feprep/internal/trainer"
)

// memSeqRepo is an in-memory store.SequenceRepo.
type memSeqRepo struct {
	perms   map[topic.Topic][]int
	cursors map[topic.Topic]int
}

func newMemSeqRepo() *memSeqRepo {
	return &memSeqRepo{
		perms:   make(map[topic.Topic][]int),
		cursors: make(map[topic.Topic]int),
	}
}

func (m *memSeqRepo) Permutation(_ context.Context, t topic.Topic) ([]int, error) {
	return m.perms[t], nil
}

func (m *memSeqRepo) SavePermutation(_ context.Context, t topic.Topic, order []int) error {
	m.perms[t] = order
	return nil
}

func (m *memSeqRepo) Cursor(_ context.Context, t topic.Topic) (int, error) {
	return m.cursors[t], nil
}

func (m *memSeqRepo) SaveCursor(_ context.Context, t topic.Topic, position int) error {
	m.cursors[t] = position
	return nil
}

// memLedgerRepo is an empty in-memory store.LedgerRepo.
type memLedgerRepo struct{}

func (memLedgerRepo) AppendHistory(context.Context, ledger.HistoryEntry) error { return nil }
func (memLedgerRepo) History(context.Context) ([]ledger.HistoryEntry, error)  { return nil, nil }
func (memLedgerRepo) AppendExamRecord(context.Context, ledger.ExamRecord) error {
	return nil
}
func (memLedgerRepo) ExamRecords(context.Context) ([]ledger.ExamRecord, error) { return nil, nil }

// memSettings is an in-memory store.SettingsRepo.
type memSettings struct {
	values map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]string)}
}

func (m *memSettings) Get(_ context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memSettings) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memSettings) GetInt(_ context.Context, key string) (int, error) {
	n, err := strconv.Atoi(m.values[key])
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func (m *memSettings) SetInt(ctx context.Context, key string, value int) error {
	return m.Set(ctx, key, strconv.Itoa(value))
}

func newTestController(t *testing.T) *trainer.Controller {
	t.Helper()
	ctx := context.Background()

	tracker, err := progress.NewTracker(ctx, newMemSeqRepo())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	c, err := trainer.NewController(ctx, question.NewEngine(), tracker, newMemSettings(), memLedgerRepo{})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestViewRefreshesTopicCounts(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	s := New(c, nil)

	fresh := fmt.Sprintf("0/%d", question.PoolSize)
	if view := s.View(120, 40); !strings.Contains(view, fresh) {
		t.Fatalf("fresh view missing %q:\n%s", fresh, view)
	}

	// Practicing moves the cursor after the screen is built; the menu
	// must show the new position on the next render.
	first := topic.All()[0]
	for i := 0; i < 3; i++ {
		if err := c.Tracker().Advance(ctx, first); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	want := fmt.Sprintf("3/%d", question.PoolSize)
	if view := s.View(120, 40); !strings.Contains(view, want) {
		t.Errorf("view missing refreshed count %q:\n%s", want, view)
	}
}
