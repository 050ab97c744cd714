package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/mbuckley/feprep/internal/topic"
)

func TestLog_AppendBounded(t *testing.T) {
	l := NewLog[HistoryEntry](HistoryCap)

	for i := 0; i < HistoryCap+5; i++ {
		l.Append(HistoryEntry{
			QuestionID: fmt.Sprintf("statics-%03d", i+1),
			Topic:      topic.Statics,
			Correct:    i%2 == 0,
			Timestamp:  time.Now(),
		})
	}

	if l.Len() != HistoryCap {
		t.Fatalf("Len = %d, want %d", l.Len(), HistoryCap)
	}

	// Retained entries are the most recent, newest first.
	entries := l.Entries()
	for i, e := range entries {
		want := fmt.Sprintf("statics-%03d", HistoryCap+5-i)
		if e.QuestionID != want {
			t.Errorf("entries[%d].QuestionID = %q, want %q", i, e.QuestionID, want)
		}
	}
}

func TestLog_EvictionByInsertionOrder(t *testing.T) {
	// Eviction follows insertion order even when timestamps run backwards.
	l := NewLog[HistoryEntry](2)
	base := time.Now()

	l.Append(HistoryEntry{QuestionID: "a", Timestamp: base.Add(3 * time.Hour)})
	l.Append(HistoryEntry{QuestionID: "b", Timestamp: base.Add(2 * time.Hour)})
	l.Append(HistoryEntry{QuestionID: "c", Timestamp: base.Add(1 * time.Hour)})

	entries := l.Entries()
	if entries[0].QuestionID != "c" || entries[1].QuestionID != "b" {
		t.Errorf("retained %q, %q; want c, b", entries[0].QuestionID, entries[1].QuestionID)
	}
}

func TestLog_Restore(t *testing.T) {
	l := NewLog[ExamRecord](3)

	persisted := []ExamRecord{
		{ID: "newest"}, {ID: "mid"}, {ID: "old"}, {ID: "evicted"},
	}
	l.Restore(persisted)

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	if got := l.Entries()[0].ID; got != "newest" {
		t.Errorf("entries[0].ID = %q, want newest", got)
	}
}

func TestLog_EntriesIsSnapshot(t *testing.T) {
	l := NewLog[ExamRecord](3)
	l.Append(ExamRecord{ID: "one"})

	snap := l.Entries()
	l.Append(ExamRecord{ID: "two"})

	if len(snap) != 1 || snap[0].ID != "one" {
		t.Errorf("snapshot mutated by later append: %+v", snap)
	}
}
