package trainer

import (
	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/sequence"
)

const (
	// ExamLength is the number of questions in a scored exam.
	ExamLength = 100

	// PassMark is the minimum correct count for a passing exam grade.
	PassMark = 65
)

// Session is the ephemeral state of one in-progress exam: a fixed list
// of pool indices, a position within it, and a running correct count.
// It is created on exam start and discarded on exit; it is never merged
// with a previous session.
type Session struct {
	Indices      []int
	Position     int
	CorrectCount int
	Terminal     bool
}

// NewSession draws a fresh independent permutation of the full pool and
// truncates it to the exam length. The exam ordering is disjoint from
// the topic's practice permutation and never touches the practice cursor.
func NewSession() (*Session, error) {
	perm, err := sequence.Generate(question.PoolSize)
	if err != nil {
		return nil, err
	}
	return &Session{Indices: perm[:ExamLength]}, nil
}

// CurrentIndex returns the pool index at the session's position.
func (s *Session) CurrentIndex() int {
	return s.Indices[s.Position]
}

// LastQuestion reports whether the session is on its final question.
func (s *Session) LastQuestion() bool {
	return s.Position+1 == len(s.Indices)
}

// Passed reports whether the running correct count meets the pass mark.
func (s *Session) Passed() bool {
	return s.CorrectCount >= PassMark
}
