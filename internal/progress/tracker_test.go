package progress

import (
	"context"
	"testing"

	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/topic"
)

// fakeSeqRepo is an in-memory store.SequenceRepo for tracker tests.
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

func TestCurrentIndex_Idempotent(t *testing.T) {
	ctx := context.Background()
	tr, err := NewTracker(ctx, newFakeSeqRepo())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	first, err := tr.CurrentIndex(ctx, topic.Statics)
	if err != nil {
		t.Fatalf("CurrentIndex: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := tr.CurrentIndex(ctx, topic.Statics)
		if err != nil {
			t.Fatalf("CurrentIndex: %v", err)
		}
		if again != first {
			t.Fatalf("CurrentIndex changed without Advance: %d then %d", first, again)
		}
	}
}

func TestAdvance_FullCycleReturnsToStart(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSeqRepo()
	tr, err := NewTracker(ctx, repo)
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	start, err := tr.CurrentIndex(ctx, topic.Circuits)
	if err != nil {
		t.Fatalf("CurrentIndex: %v", err)
	}

	seen := make(map[int]bool)
	for i := 0; i < question.PoolSize; i++ {
		idx, err := tr.CurrentIndex(ctx, topic.Circuits)
		if err != nil {
			t.Fatalf("CurrentIndex: %v", err)
		}
		if seen[idx] {
			t.Fatalf("pool index %d visited twice within one cycle", idx)
		}
		seen[idx] = true
		if err := tr.Advance(ctx, topic.Circuits); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if tr.Position(topic.Circuits) != 0 {
		t.Errorf("position after full cycle = %d, want 0", tr.Position(topic.Circuits))
	}
	back, err := tr.CurrentIndex(ctx, topic.Circuits)
	if err != nil {
		t.Fatalf("CurrentIndex: %v", err)
	}
	if back != start {
		t.Errorf("index after full cycle = %d, want %d", back, start)
	}
	if len(seen) != question.PoolSize {
		t.Errorf("visited %d distinct indices, want %d", len(seen), question.PoolSize)
	}
}

func TestAdvance_TopicsAreIndependent(t *testing.T) {
	ctx := context.Background()
	tr, err := NewTracker(ctx, newFakeSeqRepo())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	before, err := tr.CurrentIndex(ctx, topic.Ethics)
	if err != nil {
		t.Fatalf("CurrentIndex: %v", err)
	}

	for i := 0; i < 7; i++ {
		if err := tr.Advance(ctx, topic.Materials); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	after, err := tr.CurrentIndex(ctx, topic.Ethics)
	if err != nil {
		t.Fatalf("CurrentIndex: %v", err)
	}
	if after != before {
		t.Errorf("ethics index moved when materials advanced: %d -> %d", before, after)
	}
	if tr.Position(topic.Materials) != 7 {
		t.Errorf("materials position = %d, want 7", tr.Position(topic.Materials))
	}
}

func TestReset_KeepsPermutation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSeqRepo()
	tr, err := NewTracker(ctx, repo)
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	first, err := tr.CurrentIndex(ctx, topic.Fluids)
	if err != nil {
		t.Fatalf("CurrentIndex: %v", err)
	}
	for i := 0; i < 12; i++ {
		if err := tr.Advance(ctx, topic.Fluids); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if err := tr.Reset(ctx, topic.Fluids); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if tr.Position(topic.Fluids) != 0 {
		t.Fatalf("position after reset = %d, want 0", tr.Position(topic.Fluids))
	}

	again, err := tr.CurrentIndex(ctx, topic.Fluids)
	if err != nil {
		t.Fatalf("CurrentIndex: %v", err)
	}
	if again != first {
		t.Errorf("reset regenerated the permutation: first index %d -> %d", first, again)
	}
}

func TestNewTracker_RecoversMalformedState(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSeqRepo()

	// Corrupted: wrong length permutation and out-of-range cursor.
	repo.perms[topic.Statics] = []int{1, 2, 3}
	repo.cursors[topic.Statics] = question.PoolSize + 40
	repo.cursors[topic.Circuits] = -2

	tr, err := NewTracker(ctx, repo)
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	if tr.Position(topic.Statics) != 0 {
		t.Errorf("statics cursor = %d, want 0", tr.Position(topic.Statics))
	}
	if tr.Position(topic.Circuits) != 0 {
		t.Errorf("circuits cursor = %d, want 0", tr.Position(topic.Circuits))
	}

	// The corrupted permutation is regenerated as a full bijection.
	if _, err := tr.CurrentIndex(ctx, topic.Statics); err != nil {
		t.Fatalf("CurrentIndex: %v", err)
	}
	if len(repo.perms[topic.Statics]) != question.PoolSize {
		t.Errorf("regenerated permutation has length %d, want %d",
			len(repo.perms[topic.Statics]), question.PoolSize)
	}
}
