package scoreboard

import (
	"context"
	"errors"
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

// memSettings is an in-memory store.SettingsRepo. Set setErr to make
// writes fail.
type memSettings struct {
	values map[string]string
	setErr error
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]string)}
}

func (m *memSettings) Get(_ context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memSettings) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
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

func newTestController(t *testing.T, settings *memSettings) *trainer.Controller {
	t.Helper()
	ctx := context.Background()

	tracker, err := progress.NewTracker(ctx, newMemSeqRepo())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	c, err := trainer.NewController(ctx, question.NewEngine(), tracker, settings, memLedgerRepo{})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestInitOpensScoreboard(t *testing.T) {
	c := newTestController(t, newMemSettings())
	s := New(c)

	msg := s.Init()()
	opened, ok := msg.(openedMsg)
	if !ok {
		t.Fatalf("Init msg = %T, want openedMsg", msg)
	}
	if opened.Err != nil {
		t.Fatalf("open scoreboard: %v", opened.Err)
	}
	if _, ok := c.State().(trainer.Scoreboard); !ok {
		t.Errorf("state = %T, want trainer.Scoreboard", c.State())
	}
}

func TestInitFailureIsShown(t *testing.T) {
	settings := newMemSettings()
	c := newTestController(t, settings)
	settings.setErr = errors.New("disk full")

	s := New(c)
	msg := s.Init()()
	opened, ok := msg.(openedMsg)
	if !ok {
		t.Fatalf("Init msg = %T, want openedMsg", msg)
	}
	if opened.Err == nil {
		t.Fatal("expected an error from OpenScoreboard")
	}

	updated, _ := s.Update(msg)
	view := updated.View(80, 24)
	if !strings.Contains(view, "disk full") {
		t.Errorf("view does not surface the open error:\n%s", view)
	}
}
