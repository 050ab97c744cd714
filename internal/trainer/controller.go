// Package trainer orchestrates practice and exam flow: it owns the
// current question, grades answers, moves the per-topic cursor, and
// records history and leaderboard entries. All persisted state is
// written explicitly after each mutating transition.
package trainer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mbuckley/feprep/internal/ledger"
	"github.com/mbuckley/feprep/internal/progress"
	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/store"
	"github.com/mbuckley/feprep/internal/topic"
)

// Canned feedback lines shown with the explanation after grading.
const (
	msgCorrect   = "Correct. Nice work."
	msgIncorrect = "Incorrect."
)

// Controller is the session state machine. It is single-actor: one
// learner, one active topic, one active exam at a time, so no locking.
type Controller struct {
	resolver question.Resolver
	tracker  *progress.Tracker
	settings store.SettingsRepo
	ledgers  store.LedgerRepo

	topic       topic.Topic
	score       int
	history     *ledger.Log[ledger.HistoryEntry]
	leaderboard *ledger.Log[ledger.ExamRecord]
	state       State

	now   func() time.Time
	newID func() string
}

// NewController restores the cumulative score and both ledgers from the
// store and starts in the Idle state on the first topic.
func NewController(ctx context.Context, resolver question.Resolver, tracker *progress.Tracker, settings store.SettingsRepo, ledgers store.LedgerRepo) (*Controller, error) {
	c := &Controller{
		resolver:    resolver,
		tracker:     tracker,
		settings:    settings,
		ledgers:     ledgers,
		topic:       topic.All()[0],
		history:     ledger.NewLog[ledger.HistoryEntry](ledger.HistoryCap),
		leaderboard: ledger.NewLog[ledger.ExamRecord](ledger.LeaderboardCap),
		state:       Idle{},
		now:         time.Now,
		newID:       uuid.NewString,
	}

	score, err := settings.GetInt(ctx, store.KeyScore)
	if err != nil {
		return nil, fmt.Errorf("load score: %w", err)
	}
	c.score = score

	// Resume the last active topic; a missing or unknown value falls
	// back to the first topic.
	if saved, err := settings.Get(ctx, store.KeyTopic); err == nil && saved != "" {
		if t, err := topic.Parse(saved); err == nil {
			c.topic = t
		}
	}

	entries, err := ledgers.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	c.history.Restore(entries)

	records, err := ledgers.ExamRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	c.leaderboard.Restore(records)

	return c, nil
}

// Topic returns the active topic.
func (c *Controller) Topic() topic.Topic { return c.topic }

// Score returns the cumulative practice correct-count.
func (c *Controller) Score() int { return c.score }

// State returns the current tagged state.
func (c *Controller) State() State { return c.state }

// Tracker returns the practice progress tracker.
func (c *Controller) Tracker() *progress.Tracker { return c.tracker }

// History returns a snapshot of the history ledger, newest first.
func (c *Controller) History() []ledger.HistoryEntry { return c.history.Entries() }

// Leaderboard returns a snapshot of the exam records, newest first.
func (c *Controller) Leaderboard() []ledger.ExamRecord { return c.leaderboard.Entries() }

// SavedMode returns the last persisted top-level mode, or ModePractice
// if none was saved.
func (c *Controller) SavedMode(ctx context.Context) string {
	mode, err := c.settings.Get(ctx, store.KeyMode)
	if err != nil || mode == "" {
		return ModePractice
	}
	return mode
}

// Progress returns the position and total for the active mode, for
// rendering a progress fraction. Idle and scoreboard report 0/0.
func (c *Controller) Progress() (position, total int) {
	switch s := c.state.(type) {
	case PracticeActive:
		return c.tracker.Position(c.topic), question.PoolSize
	case ExamActive:
		return s.Session.Position, len(s.Session.Indices)
	default:
		return 0, 0
	}
}

// EnterPractice switches to practice on the active topic, loading the
// question at the topic's cursor. An unfinished exam is abandoned
// without recording a partial result.
func (c *Controller) EnterPractice(ctx context.Context) error {
	idx, err := c.tracker.CurrentIndex(ctx, c.topic)
	if err != nil {
		return err
	}
	c.state = PracticeActive{Question: c.resolver.Resolve(c.topic, idx)}
	return c.saveMode(ctx, ModePractice)
}

// SwitchTopic changes the active topic and re-enters practice at that
// topic's own cursor. The previous topic's cursor is left untouched.
func (c *Controller) SwitchTopic(ctx context.Context, t topic.Topic) error {
	c.topic = t
	if err := c.settings.Set(ctx, store.KeyTopic, string(t)); err != nil {
		return fmt.Errorf("persist topic: %w", err)
	}
	return c.EnterPractice(ctx)
}

// StartExam begins a fresh exam on the active topic. Any exam already
// in progress is discarded, not merged.
func (c *Controller) StartExam(ctx context.Context) error {
	sess, err := NewSession()
	if err != nil {
		return err
	}
	c.state = ExamActive{
		Session:  sess,
		Question: c.resolver.Resolve(c.topic, sess.CurrentIndex()),
	}
	return c.saveMode(ctx, ModeExam)
}

// SelectOption grades the chosen option key against the current
// question. Re-selecting after feedback exists, or selecting outside an
// active question, is a guarded no-op.
func (c *Controller) SelectOption(ctx context.Context, key string) error {
	switch s := c.state.(type) {
	case PracticeActive:
		if s.Feedback != nil {
			return nil
		}
		correct := key == s.Question.CorrectKey
		if err := c.recordAnswer(ctx, s.Question, correct); err != nil {
			return err
		}
		if correct {
			c.score++
			if err := c.settings.SetInt(ctx, store.KeyScore, c.score); err != nil {
				return fmt.Errorf("persist score: %w", err)
			}
		}
		s.Selected = key
		s.Feedback = newFeedback(correct, s.Question)
		c.state = s
		return nil

	case ExamActive:
		if s.Feedback != nil {
			return nil
		}
		correct := key == s.Question.CorrectKey
		if err := c.recordAnswer(ctx, s.Question, correct); err != nil {
			return err
		}
		if correct {
			s.Session.CorrectCount++
		}
		s.Selected = key
		s.Feedback = newFeedback(correct, s.Question)
		c.state = s
		return nil

	default:
		return nil
	}
}

// Next moves to the following question. In practice mode this is the
// only operation that advances the topic's cursor; in exam mode the
// final Next finishes the exam and records the result.
func (c *Controller) Next(ctx context.Context) error {
	switch s := c.state.(type) {
	case PracticeActive:
		if err := c.tracker.Advance(ctx, c.topic); err != nil {
			return err
		}
		return c.EnterPractice(ctx)

	case ExamActive:
		if s.Session.LastQuestion() {
			return c.finishExam(ctx, s.Session)
		}
		s.Session.Position++
		s.Question = c.resolver.Resolve(c.topic, s.Session.CurrentIndex())
		s.Selected = ""
		s.Feedback = nil
		c.state = s
		return nil

	default:
		return nil
	}
}

// ResetTopic returns the active topic's cursor to the start of its
// permutation. If practice is active the first question loads
// immediately.
func (c *Controller) ResetTopic(ctx context.Context) error {
	if err := c.tracker.Reset(ctx, c.topic); err != nil {
		return err
	}
	if _, ok := c.state.(PracticeActive); ok {
		return c.EnterPractice(ctx)
	}
	return nil
}

// OpenScoreboard switches to the results overlay.
func (c *Controller) OpenScoreboard(ctx context.Context) error {
	c.state = Scoreboard{}
	return c.saveMode(ctx, ModeScoreboard)
}

// CloseScoreboard returns from the overlay to practice.
func (c *Controller) CloseScoreboard(ctx context.Context) error {
	return c.EnterPractice(ctx)
}

// finishExam persists the exam record, then marks the session terminal
// and moves to the finished state. On a failed write nothing is mutated:
// the session stays on its final question so the learner can retry, and
// the position never leaves [0, len(Indices)).
func (c *Controller) finishExam(ctx context.Context, sess *Session) error {
	record := ledger.ExamRecord{
		ID:        c.newID(),
		Topic:     c.topic,
		Score:     sess.CorrectCount,
		Total:     len(sess.Indices),
		Passed:    sess.Passed(),
		Timestamp: c.now(),
	}
	if err := c.ledgers.AppendExamRecord(ctx, record); err != nil {
		return fmt.Errorf("persist exam record: %w", err)
	}

	sess.Position = len(sess.Indices)
	sess.Terminal = true
	c.leaderboard.Append(record)
	c.state = ExamFinished{Record: record}
	return nil
}

// recordAnswer appends a history entry to the in-memory ledger and the
// store.
func (c *Controller) recordAnswer(ctx context.Context, q question.Question, correct bool) error {
	entry := ledger.HistoryEntry{
		QuestionID: q.ID,
		Topic:      q.Topic,
		Correct:    correct,
		Timestamp:  c.now(),
	}
	c.history.Append(entry)
	if err := c.ledgers.AppendHistory(ctx, entry); err != nil {
		return fmt.Errorf("persist history entry: %w", err)
	}
	return nil
}

func (c *Controller) saveMode(ctx context.Context, mode string) error {
	if err := c.settings.Set(ctx, store.KeyMode, mode); err != nil {
		return fmt.Errorf("persist mode: %w", err)
	}
	return nil
}

func newFeedback(correct bool, q question.Question) *Feedback {
	msg := msgIncorrect
	if correct {
		msg = msgCorrect
	}
	return &Feedback{
		Correct:     correct,
		Message:     msg,
		Explanation: q.Explanation,
	}
}
