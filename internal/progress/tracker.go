// Package progress tracks each topic's resumable position within its
// question sequence.
package progress

import (
	"context"
	"fmt"

	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/sequence"
	"github.com/mbuckley/feprep/internal/store"
	"github.com/mbuckley/feprep/internal/topic"
)

// Tracker owns the per-topic cursors and the per-topic permutations that
// practice mode walks through. Cursors always satisfy 0 <= cursor < PoolSize.
type Tracker struct {
	repo    store.SequenceRepo
	perms   map[topic.Topic][]int
	cursors map[topic.Topic]int
}

// NewTracker loads persisted state for every topic. Malformed state (a
// permutation that is not a bijection of 1..PoolSize, or a cursor out of
// range) is discarded and replaced with zero-initialized defaults rather
// than surfaced as an error.
func NewTracker(ctx context.Context, repo store.SequenceRepo) (*Tracker, error) {
	t := &Tracker{
		repo:    repo,
		perms:   make(map[topic.Topic][]int, len(topic.All())),
		cursors: make(map[topic.Topic]int, len(topic.All())),
	}

	for _, tp := range topic.All() {
		perm, err := repo.Permutation(ctx, tp)
		if err != nil {
			return nil, fmt.Errorf("load permutation for %s: %w", tp, err)
		}
		if perm != nil && sequence.IsPermutation(perm, question.PoolSize) {
			t.perms[tp] = perm
		}

		pos, err := repo.Cursor(ctx, tp)
		if err != nil {
			return nil, fmt.Errorf("load cursor for %s: %w", tp, err)
		}
		if pos < 0 || pos >= question.PoolSize {
			pos = 0
		}
		t.cursors[tp] = pos
	}

	return t, nil
}

// CurrentIndex returns the pool index at the topic's cursor, generating
// and persisting the topic's permutation on first use.
func (t *Tracker) CurrentIndex(ctx context.Context, tp topic.Topic) (int, error) {
	perm, err := t.permutation(ctx, tp)
	if err != nil {
		return 0, err
	}
	return perm[t.cursors[tp]], nil
}

// Advance moves the topic's cursor forward one position, wrapping at the
// pool size. The wrap is silent: the pool is an endless cycle.
func (t *Tracker) Advance(ctx context.Context, tp topic.Topic) error {
	t.cursors[tp] = (t.cursors[tp] + 1) % question.PoolSize
	if err := t.repo.SaveCursor(ctx, tp, t.cursors[tp]); err != nil {
		return fmt.Errorf("persist cursor for %s: %w", tp, err)
	}
	return nil
}

// Reset returns the topic's cursor to the start of its permutation.
// The permutation itself is kept, so the previously seen order resumes
// from the beginning.
func (t *Tracker) Reset(ctx context.Context, tp topic.Topic) error {
	t.cursors[tp] = 0
	if err := t.repo.SaveCursor(ctx, tp, 0); err != nil {
		return fmt.Errorf("persist cursor for %s: %w", tp, err)
	}
	return nil
}

// Position returns the topic's cursor position in [0, PoolSize).
func (t *Tracker) Position(tp topic.Topic) int {
	return t.cursors[tp]
}

// permutation returns the topic's ordering, generating one if needed.
func (t *Tracker) permutation(ctx context.Context, tp topic.Topic) ([]int, error) {
	if perm, ok := t.perms[tp]; ok {
		return perm, nil
	}

	perm, err := sequence.Generate(question.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("generate sequence for %s: %w", tp, err)
	}
	if err := t.repo.SavePermutation(ctx, tp, perm); err != nil {
		return nil, fmt.Errorf("persist sequence for %s: %w", tp, err)
	}

	t.perms[tp] = perm
	return perm, nil
}
