package question

import (
	"reflect"
	"testing"

	"github.com/mbuckley/feprep/internal/topic"
)

func TestResolve_Deterministic(t *testing.T) {
	e := NewEngine()

	for _, tp := range topic.All() {
		for _, idx := range []int{1, 42, 150, PoolSize} {
			a := e.Resolve(tp, idx)
			b := e.Resolve(tp, idx)
			if !reflect.DeepEqual(a, b) {
				t.Errorf("Resolve(%s, %d) not deterministic:\n%+v\n%+v", tp, idx, a, b)
			}
		}
	}
}

func TestResolve_WellFormed(t *testing.T) {
	e := NewEngine()

	for _, tp := range topic.All() {
		for idx := 1; idx <= PoolSize; idx++ {
			q := e.Resolve(tp, idx)

			if q.ID == "" || q.Topic != tp {
				t.Fatalf("Resolve(%s, %d): bad identity %+v", tp, idx, q)
			}
			if len(q.Options) != len(OptionKeys) {
				t.Fatalf("Resolve(%s, %d): %d options, want %d", tp, idx, len(q.Options), len(OptionKeys))
			}

			correctText, ok := q.Options[q.CorrectKey]
			if !ok {
				t.Fatalf("Resolve(%s, %d): correct key %q not among options", tp, idx, q.CorrectKey)
			}

			// Option texts must be distinct or grading is ambiguous.
			seen := make(map[string]bool)
			for _, key := range OptionKeys {
				text := q.Options[key]
				if text == "" {
					t.Fatalf("Resolve(%s, %d): empty option %s", tp, idx, key)
				}
				if seen[text] {
					t.Fatalf("Resolve(%s, %d): duplicate option text %q", tp, idx, text)
				}
				seen[text] = true
			}
			_ = correctText

			if q.RequiresCitation != (q.Citation != "") {
				t.Fatalf("Resolve(%s, %d): citation flag mismatch: %+v", tp, idx, q)
			}
			if q.Explanation == "" {
				t.Fatalf("Resolve(%s, %d): missing explanation", tp, idx)
			}
		}
	}
}

func TestResolve_TopicsMixQuestionKinds(t *testing.T) {
	e := NewEngine()

	numeric := []topic.Topic{
		topic.Statics,
		topic.Circuits,
		topic.Thermodynamics,
		topic.Fluids,
		topic.Materials,
	}
	for _, tp := range numeric {
		kinds := make(map[Kind]bool)
		for idx := 1; idx <= PoolSize; idx++ {
			q := e.Resolve(tp, idx)
			if q.Kind == KindConceptual && q.RequiresCitation {
				t.Fatalf("Resolve(%s, %d): conceptual question carries a citation", tp, idx)
			}
			kinds[q.Kind] = true
		}
		for _, want := range []Kind{KindQuantitative, KindConceptual} {
			if !kinds[want] {
				t.Errorf("%s pool never yields a %s question", tp, want)
			}
		}
	}
}

func TestResolve_EthicsCarriesCitations(t *testing.T) {
	e := NewEngine()

	for idx := 1; idx <= PoolSize; idx++ {
		q := e.Resolve(topic.Ethics, idx)
		if q.Kind != KindCodeLookup {
			t.Fatalf("ethics question %d has kind %q", idx, q.Kind)
		}
		if !q.RequiresCitation || q.Citation == "" {
			t.Fatalf("ethics question %d is missing its citation", idx)
		}
	}
}

func TestResolve_OutOfRangePanics(t *testing.T) {
	e := NewEngine()

	for _, idx := range []int{0, -1, PoolSize + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Resolve(statics, %d): expected panic", idx)
				}
			}()
			e.Resolve(topic.Statics, idx)
		}()
	}
}
