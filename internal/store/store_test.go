package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mbuckley/feprep/internal/ledger"
	"github.com/mbuckley/feprep/internal/topic"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SequenceRepo()
	ctx := context.Background()

	// No permutation yet.
	perm, err := repo.Permutation(ctx, topic.Statics)
	if err != nil {
		t.Fatalf("Permutation: %v", err)
	}
	if perm != nil {
		t.Fatalf("expected nil permutation, got %v", perm)
	}

	order := []int{3, 1, 2}
	if err := repo.SavePermutation(ctx, topic.Statics, order); err != nil {
		t.Fatalf("SavePermutation: %v", err)
	}

	perm, err = repo.Permutation(ctx, topic.Statics)
	if err != nil {
		t.Fatalf("Permutation after save: %v", err)
	}
	if len(perm) != 3 || perm[0] != 3 || perm[1] != 1 || perm[2] != 2 {
		t.Errorf("Permutation = %v, want %v", perm, order)
	}

	// Other topics are unaffected.
	other, err := repo.Permutation(ctx, topic.Ethics)
	if err != nil {
		t.Fatalf("Permutation(ethics): %v", err)
	}
	if other != nil {
		t.Errorf("expected no permutation for ethics, got %v", other)
	}
}

func TestCorruptSequenceReadsAsAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SequenceRepo()
	ctx := context.Background()

	if err := repo.SavePermutation(ctx, topic.Materials, []int{2, 3, 1}); err != nil {
		t.Fatalf("SavePermutation: %v", err)
	}

	// Clobber the stored row with something that is not a JSON array.
	_, err := s.DB().Exec(`UPDATE sequences SET "order" = 'not-json' WHERE topic = ?`, string(topic.Materials))
	if err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	perm, err := repo.Permutation(ctx, topic.Materials)
	if err != nil {
		t.Fatalf("Permutation on corrupt row: %v", err)
	}
	if perm != nil {
		t.Fatalf("corrupt permutation = %v, want nil", perm)
	}

	// A regenerated permutation overwrites the bad row.
	if err := repo.SavePermutation(ctx, topic.Materials, []int{1, 2, 3}); err != nil {
		t.Fatalf("SavePermutation after corruption: %v", err)
	}
	perm, err = repo.Permutation(ctx, topic.Materials)
	if err != nil {
		t.Fatalf("Permutation after resave: %v", err)
	}
	if len(perm) != 3 || perm[0] != 1 || perm[1] != 2 || perm[2] != 3 {
		t.Errorf("Permutation = %v, want [1 2 3]", perm)
	}
}

func TestCursorRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SequenceRepo()
	ctx := context.Background()

	pos, err := repo.Cursor(ctx, topic.Fluids)
	if err != nil {
		t.Fatalf("Cursor: %v", err)
	}
	if pos != 0 {
		t.Fatalf("fresh cursor = %d, want 0", pos)
	}

	if err := repo.SaveCursor(ctx, topic.Fluids, 17); err != nil {
		t.Fatalf("SaveCursor: %v", err)
	}
	if err := repo.SaveCursor(ctx, topic.Fluids, 18); err != nil {
		t.Fatalf("SaveCursor update: %v", err)
	}

	pos, err = repo.Cursor(ctx, topic.Fluids)
	if err != nil {
		t.Fatalf("Cursor after save: %v", err)
	}
	if pos != 18 {
		t.Errorf("cursor = %d, want 18", pos)
	}
}

func TestHistoryPrunedToCap(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	for i := 0; i < ledger.HistoryCap+5; i++ {
		e := ledger.HistoryEntry{
			QuestionID: fmt.Sprintf("circuits-%03d", i+1),
			Topic:      topic.Circuits,
			Correct:    i%2 == 0,
			Timestamp:  time.Now(),
		}
		if err := repo.AppendHistory(ctx, e); err != nil {
			t.Fatalf("AppendHistory: %v", err)
		}
	}

	entries, err := repo.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != ledger.HistoryCap {
		t.Fatalf("len(history) = %d, want %d", len(entries), ledger.HistoryCap)
	}

	// Newest first, and the retained entries are the most recent.
	for i, e := range entries {
		want := fmt.Sprintf("circuits-%03d", ledger.HistoryCap+5-i)
		if e.QuestionID != want {
			t.Errorf("history[%d] = %q, want %q", i, e.QuestionID, want)
		}
	}
}

func TestExamRecordsPrunedToCap(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	for i := 0; i < ledger.LeaderboardCap+3; i++ {
		r := ledger.ExamRecord{
			ID:        fmt.Sprintf("rec-%03d", i+1),
			Topic:     topic.Thermodynamics,
			Score:     i,
			Total:     100,
			Passed:    i >= 65,
			Timestamp: time.Now(),
		}
		if err := repo.AppendExamRecord(ctx, r); err != nil {
			t.Fatalf("AppendExamRecord: %v", err)
		}
	}

	records, err := repo.ExamRecords(ctx)
	if err != nil {
		t.Fatalf("ExamRecords: %v", err)
	}
	if len(records) != ledger.LeaderboardCap {
		t.Fatalf("len(records) = %d, want %d", len(records), ledger.LeaderboardCap)
	}
	if records[0].ID != fmt.Sprintf("rec-%03d", ledger.LeaderboardCap+3) {
		t.Errorf("records[0].ID = %q, want newest", records[0].ID)
	}
}

func TestSettings(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	v, err := repo.Get(ctx, KeyTheme)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "" {
		t.Fatalf("fresh setting = %q, want empty", v)
	}

	if err := repo.Set(ctx, KeyTheme, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, KeyTheme, "light"); err != nil {
		t.Fatalf("Set update: %v", err)
	}

	v, err = repo.Get(ctx, KeyTheme)
	if err != nil {
		t.Fatalf("Get after set: %v", err)
	}
	if v != "light" {
		t.Errorf("theme = %q, want light", v)
	}

	if err := repo.SetInt(ctx, KeyScore, 42); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	n, err := repo.GetInt(ctx, KeyScore)
	if err != nil {
		t.Fatalf("GetInt: %v", err)
	}
	if n != 42 {
		t.Errorf("score = %d, want 42", n)
	}

	// Malformed value recovers to zero.
	if err := repo.Set(ctx, KeyScore, "not-a-number"); err != nil {
		t.Fatalf("Set malformed: %v", err)
	}
	n, err = repo.GetInt(ctx, KeyScore)
	if err != nil {
		t.Fatalf("GetInt malformed: %v", err)
	}
	if n != 0 {
		t.Errorf("malformed score = %d, want 0", n)
	}
}

func TestAdvisoryEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.AdvisoryRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, AdvisoryEventData{
			Provider:  "mock",
			Purpose:   "tip",
			LatencyMs: int64(i),
			Success:   true,
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].LatencyMs != 2 {
		t.Errorf("events[0].LatencyMs = %d, want 2 (newest first)", events[0].LatencyMs)
	}
}
