package trainer

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/mbuckley/feprep/internal/ledger"
	"github.com/mbuckley/feprep/internal/progress"
	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/store"
	"github.com/mbuckley/feprep/internal/topic"
)

// fakeSeqRepo is an in-memory store.SequenceRepo.
type fakeSeqRepo struct {
	perms   map[topic.Topic][]int
	cursors map[topic.Topic]int
}

func newFakeSeqRepo() *fakeSeqRepo {
	return &fakeSeqRepo{
		perms:   make(map[topic.Topic][]int),
		cursors: make(map[topic.Topic]int),
	}
}

func (f *fakeSeqRepo) Permutation(_ context.Context, t topic.Topic) ([]int, error) {
	return f.perms[t], nil
}

func (f *fakeSeqRepo) SavePermutation(_ context.Context, t topic.Topic, order []int) error {
	f.perms[t] = order
	return nil
}

func (f *fakeSeqRepo) Cursor(_ context.Context, t topic.Topic) (int, error) {
	return f.cursors[t], nil
}

func (f *fakeSeqRepo) SaveCursor(_ context.Context, t topic.Topic, position int) error {
	f.cursors[t] = position
	return nil
}

// fakeLedgerRepo is an in-memory store.LedgerRepo. Set recordErr to make
// AppendExamRecord fail.
type fakeLedgerRepo struct {
	history   []ledger.HistoryEntry
	records   []ledger.ExamRecord
	recordErr error
}

func (f *fakeLedgerRepo) AppendHistory(_ context.Context, e ledger.HistoryEntry) error {
	f.history = append([]ledger.HistoryEntry{e}, f.history...)
	if len(f.history) > ledger.HistoryCap {
		f.history = f.history[:ledger.HistoryCap]
	}
	return nil
}

func (f *fakeLedgerRepo) History(_ context.Context) ([]ledger.HistoryEntry, error) {
	return f.history, nil
}

func (f *fakeLedgerRepo) AppendExamRecord(_ context.Context, r ledger.ExamRecord) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.records = append([]ledger.ExamRecord{r}, f.records...)
	if len(f.records) > ledger.LeaderboardCap {
		f.records = f.records[:ledger.LeaderboardCap]
	}
	return nil
}

func (f *fakeLedgerRepo) ExamRecords(_ context.Context) ([]ledger.ExamRecord, error) {
	return f.records, nil
}

// fakeSettings is an in-memory store.SettingsRepo.
type fakeSettings struct {
	values map[string]string
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: make(map[string]string)}
}

func (f *fakeSettings) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeSettings) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeSettings) GetInt(_ context.Context, key string) (int, error) {
	n, err := strconv.Atoi(f.values[key])
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func (f *fakeSettings) SetInt(ctx context.Context, key string, value int) error {
	return f.Set(ctx, key, strconv.Itoa(value))
}

func newTestController(t *testing.T) (*Controller, *fakeLedgerRepo, *fakeSettings) {
	t.Helper()
	ctx := context.Background()

	tracker, err := progress.NewTracker(ctx, newFakeSeqRepo())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	ledgers := &fakeLedgerRepo{}
	settings := newFakeSettings()

	c, err := NewController(ctx, question.NewEngine(), tracker, settings, ledgers)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, ledgers, settings
}

// wrongKey returns an option key other than the question's correct key.
func wrongKey(q question.Question) string {
	for _, k := range question.OptionKeys {
		if k != q.CorrectKey {
			return k
		}
	}
	return ""
}

func practiceState(t *testing.T, c *Controller) PracticeActive {
	t.Helper()
	s, ok := c.State().(PracticeActive)
	if !ok {
		t.Fatalf("state = %T, want PracticeActive", c.State())
	}
	return s
}

func examState(t *testing.T, c *Controller) ExamActive {
	t.Helper()
	s, ok := c.State().(ExamActive)
	if !ok {
		t.Fatalf("state = %T, want ExamActive", c.State())
	}
	return s
}

func TestPracticeGrading(t *testing.T) {
	ctx := context.Background()
	c, ledgers, _ := newTestController(t)

	if err := c.EnterPractice(ctx); err != nil {
		t.Fatalf("EnterPractice: %v", err)
	}
	s := practiceState(t, c)

	if err := c.SelectOption(ctx, s.Question.CorrectKey); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	s = practiceState(t, c)
	if s.Feedback == nil || !s.Feedback.Correct {
		t.Fatal("correct selection should set correct feedback")
	}
	if c.Score() != 1 {
		t.Errorf("Score = %d, want 1", c.Score())
	}
	if len(ledgers.history) != 1 || !ledgers.history[0].Correct {
		t.Errorf("history = %+v, want one correct entry", ledgers.history)
	}

	// Re-selecting after feedback is a no-op.
	if err := c.SelectOption(ctx, wrongKey(s.Question)); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	s = practiceState(t, c)
	if !s.Feedback.Correct {
		t.Error("re-selection after feedback must not change the grade")
	}
	if c.Score() != 1 {
		t.Errorf("Score = %d after re-selection, want 1", c.Score())
	}
	if len(ledgers.history) != 1 {
		t.Errorf("history length = %d after re-selection, want 1", len(ledgers.history))
	}
}

func TestPracticeWrongAnswer(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if err := c.EnterPractice(ctx); err != nil {
		t.Fatalf("EnterPractice: %v", err)
	}
	s := practiceState(t, c)

	if err := c.SelectOption(ctx, wrongKey(s.Question)); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	s = practiceState(t, c)
	if s.Feedback == nil || s.Feedback.Correct {
		t.Fatal("wrong selection should set incorrect feedback")
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, want 0", c.Score())
	}
}

func TestPracticeNextAdvancesCursor(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if err := c.EnterPractice(ctx); err != nil {
		t.Fatalf("EnterPractice: %v", err)
	}
	first := practiceState(t, c).Question

	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	second := practiceState(t, c)
	if second.Question.ID == first.ID {
		t.Error("Next should load a different pool index")
	}
	if second.Feedback != nil || second.Selected != "" {
		t.Error("Next should clear selection and feedback")
	}

	pos, total := c.Progress()
	if pos != 1 || total != question.PoolSize {
		t.Errorf("Progress = %d/%d, want 1/%d", pos, total, question.PoolSize)
	}
}

func TestSelectionAloneDoesNotAdvanceCursor(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if err := c.EnterPractice(ctx); err != nil {
		t.Fatalf("EnterPractice: %v", err)
	}
	s := practiceState(t, c)
	if err := c.SelectOption(ctx, s.Question.CorrectKey); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	if pos, _ := c.Progress(); pos != 0 {
		t.Errorf("cursor = %d after selection, want 0", pos)
	}
}

func TestSwitchTopicPreservesCursors(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if err := c.SwitchTopic(ctx, topic.Statics); err != nil {
		t.Fatalf("SwitchTopic: %v", err)
	}
	for range 3 {
		if err := c.Next(ctx); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	if err := c.SwitchTopic(ctx, topic.Circuits); err != nil {
		t.Fatalf("SwitchTopic: %v", err)
	}
	if pos, _ := c.Progress(); pos != 0 {
		t.Errorf("circuits cursor = %d, want independent 0", pos)
	}

	if err := c.SwitchTopic(ctx, topic.Statics); err != nil {
		t.Fatalf("SwitchTopic: %v", err)
	}
	if pos, _ := c.Progress(); pos != 3 {
		t.Errorf("statics cursor = %d after switching back, want 3", pos)
	}
}

func TestExamLifecycle(t *testing.T) {
	ctx := context.Background()
	c, ledgers, _ := newTestController(t)

	if err := c.StartExam(ctx); err != nil {
		t.Fatalf("StartExam: %v", err)
	}

	// Answer the first 70 correctly, the remaining 30 wrong.
	wantCorrect := 70
	for i := range ExamLength {
		s := examState(t, c)
		key := s.Question.CorrectKey
		if i >= wantCorrect {
			key = wrongKey(s.Question)
		}
		if err := c.SelectOption(ctx, key); err != nil {
			t.Fatalf("SelectOption: %v", err)
		}
		if err := c.Next(ctx); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	fin, ok := c.State().(ExamFinished)
	if !ok {
		t.Fatalf("state = %T after %d questions, want ExamFinished", c.State(), ExamLength)
	}
	if fin.Record.Score != wantCorrect {
		t.Errorf("Score = %d, want %d", fin.Record.Score, wantCorrect)
	}
	if fin.Record.Total != ExamLength {
		t.Errorf("Total = %d, want %d", fin.Record.Total, ExamLength)
	}
	if !fin.Record.Passed {
		t.Errorf("Passed = false with score %d, want true (pass mark %d)", fin.Record.Score, PassMark)
	}
	if fin.Record.ID == "" {
		t.Error("exam record must carry a unique id")
	}

	if len(ledgers.records) != 1 {
		t.Fatalf("leaderboard length = %d, want exactly 1", len(ledgers.records))
	}
	if got := c.Leaderboard(); len(got) != 1 || got[0].ID != fin.Record.ID {
		t.Errorf("Leaderboard = %+v, want the finished record first", got)
	}

	// Further Next calls in the terminal state are no-ops.
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, ok := c.State().(ExamFinished); !ok {
		t.Errorf("state = %T after terminal Next, want ExamFinished", c.State())
	}
	if len(ledgers.records) != 1 {
		t.Errorf("leaderboard length = %d after terminal Next, want 1", len(ledgers.records))
	}
}

func TestExamFailingGrade(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if err := c.StartExam(ctx); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	for range ExamLength {
		s := examState(t, c)
		if err := c.SelectOption(ctx, wrongKey(s.Question)); err != nil {
			t.Fatalf("SelectOption: %v", err)
		}
		if err := c.Next(ctx); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	fin, ok := c.State().(ExamFinished)
	if !ok {
		t.Fatalf("state = %T, want ExamFinished", c.State())
	}
	if fin.Record.Score != 0 || fin.Record.Passed {
		t.Errorf("record = %+v, want score 0 and failed", fin.Record)
	}
}

func TestExamFinishPersistFailureKeepsSessionIntact(t *testing.T) {
	ctx := context.Background()
	c, ledgers, _ := newTestController(t)

	if err := c.StartExam(ctx); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	for i := range ExamLength {
		s := examState(t, c)
		if err := c.SelectOption(ctx, s.Question.CorrectKey); err != nil {
			t.Fatalf("SelectOption: %v", err)
		}
		if i == ExamLength-1 {
			break // the final Next is exercised below
		}
		if err := c.Next(ctx); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	ledgers.recordErr = context.DeadlineExceeded
	if err := c.Next(ctx); err == nil {
		t.Fatal("Next should surface the record write failure")
	}

	// The session must still be valid and on its final question.
	s := examState(t, c)
	if s.Session.Position != ExamLength-1 || s.Session.Terminal {
		t.Errorf("session = %+v after failed finish, want untouched final question", s.Session)
	}
	if len(c.Leaderboard()) != 0 {
		t.Errorf("leaderboard = %+v after failed finish, want empty", c.Leaderboard())
	}

	// Retrying after the failure (two attempts deep) must not panic and
	// must finish cleanly once the write succeeds.
	if err := c.Next(ctx); err == nil {
		t.Fatal("Next should keep failing while the write fails")
	}
	ledgers.recordErr = nil
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next after write recovers: %v", err)
	}
	fin, ok := c.State().(ExamFinished)
	if !ok {
		t.Fatalf("state = %T after retry, want ExamFinished", c.State())
	}
	if fin.Record.Score != ExamLength || len(ledgers.records) != 1 {
		t.Errorf("record = %+v (stored %d), want full score stored once", fin.Record, len(ledgers.records))
	}
}

func TestExamDoesNotTouchPracticeState(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if err := c.EnterPractice(ctx); err != nil {
		t.Fatalf("EnterPractice: %v", err)
	}
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	scoreBefore := c.Score()

	if err := c.StartExam(ctx); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	s := examState(t, c)
	if err := c.SelectOption(ctx, s.Question.CorrectKey); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}

	if c.Score() != scoreBefore {
		t.Errorf("practice score = %d during exam, want unchanged %d", c.Score(), scoreBefore)
	}
	if got := c.tracker.Position(c.Topic()); got != 1 {
		t.Errorf("practice cursor = %d during exam, want unchanged 1", got)
	}
}

func TestAbandonedExamRecordsNothing(t *testing.T) {
	ctx := context.Background()
	c, ledgers, _ := newTestController(t)

	if err := c.StartExam(ctx); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	for range 5 {
		s := examState(t, c)
		if err := c.SelectOption(ctx, s.Question.CorrectKey); err != nil {
			t.Fatalf("SelectOption: %v", err)
		}
		if err := c.Next(ctx); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	if err := c.EnterPractice(ctx); err != nil {
		t.Fatalf("EnterPractice: %v", err)
	}
	if len(ledgers.records) != 0 {
		t.Errorf("leaderboard length = %d after abandoning, want 0", len(ledgers.records))
	}
	practiceState(t, c)
}

func TestStartExamDiscardsActiveSession(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if err := c.StartExam(ctx); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	s := examState(t, c)
	if err := c.SelectOption(ctx, s.Question.CorrectKey); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}

	if err := c.StartExam(ctx); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	s = examState(t, c)
	if s.Session.Position != 0 || s.Session.CorrectCount != 0 {
		t.Errorf("session = %+v after restart, want fresh", s.Session)
	}
}

func TestResetTopic(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if err := c.EnterPractice(ctx); err != nil {
		t.Fatalf("EnterPractice: %v", err)
	}
	first := practiceState(t, c).Question
	for range 4 {
		if err := c.Next(ctx); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	if err := c.ResetTopic(ctx); err != nil {
		t.Fatalf("ResetTopic: %v", err)
	}
	if pos, _ := c.Progress(); pos != 0 {
		t.Errorf("cursor = %d after reset, want 0", pos)
	}
	// The permutation is kept, so the first question comes back.
	if got := practiceState(t, c).Question; got.ID != first.ID {
		t.Errorf("question after reset = %s, want %s", got.ID, first.ID)
	}
}

func TestScoreboardNavigation(t *testing.T) {
	ctx := context.Background()
	c, _, settings := newTestController(t)

	if err := c.OpenScoreboard(ctx); err != nil {
		t.Fatalf("OpenScoreboard: %v", err)
	}
	if _, ok := c.State().(Scoreboard); !ok {
		t.Fatalf("state = %T, want Scoreboard", c.State())
	}
	if settings.values[store.KeyMode] != ModeScoreboard {
		t.Errorf("persisted mode = %q, want %q", settings.values[store.KeyMode], ModeScoreboard)
	}

	if err := c.CloseScoreboard(ctx); err != nil {
		t.Fatalf("CloseScoreboard: %v", err)
	}
	practiceState(t, c)
}

func TestSelectBeforeQuestionIsNoOp(t *testing.T) {
	ctx := context.Background()
	c, ledgers, _ := newTestController(t)

	// Idle state: no question is active.
	if err := c.SelectOption(ctx, "A"); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if _, ok := c.State().(Idle); !ok {
		t.Errorf("state = %T, want Idle", c.State())
	}
	if len(ledgers.history) != 0 {
		t.Errorf("history length = %d, want 0", len(ledgers.history))
	}
}

func TestControllerRestoresPersistedState(t *testing.T) {
	ctx := context.Background()

	seqRepo := newFakeSeqRepo()
	ledgers := &fakeLedgerRepo{}
	settings := newFakeSettings()
	settings.SetInt(ctx, store.KeyScore, 42)
	settings.Set(ctx, store.KeyTopic, string(topic.Thermodynamics))
	now := time.Now()
	ledgers.AppendHistory(ctx, ledger.HistoryEntry{QuestionID: "statics#7", Topic: topic.Statics, Correct: true, Timestamp: now})
	ledgers.AppendExamRecord(ctx, ledger.ExamRecord{ID: "r1", Topic: topic.Fluids, Score: 80, Total: 100, Passed: true, Timestamp: now})

	tracker, err := progress.NewTracker(ctx, seqRepo)
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	c, err := NewController(ctx, question.NewEngine(), tracker, settings, ledgers)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	if c.Score() != 42 {
		t.Errorf("Score = %d, want 42", c.Score())
	}
	if c.Topic() != topic.Thermodynamics {
		t.Errorf("Topic = %s, want %s", c.Topic(), topic.Thermodynamics)
	}
	if got := c.History(); len(got) != 1 || got[0].QuestionID != "statics#7" {
		t.Errorf("History = %+v, want the persisted entry", got)
	}
	if got := c.Leaderboard(); len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("Leaderboard = %+v, want the persisted record", got)
	}
}

func TestSavedModeDefaultsToPractice(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if got := c.SavedMode(ctx); got != ModePractice {
		t.Errorf("SavedMode = %q, want %q", got, ModePractice)
	}

	if err := c.StartExam(ctx); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	if got := c.SavedMode(ctx); got != ModeExam {
		t.Errorf("SavedMode = %q, want %q", got, ModeExam)
	}
}
