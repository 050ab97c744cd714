package trainer

import (
	"github.com/mbuckley/feprep/internal/ledger"
	"github.com/mbuckley/feprep/internal/question"
)

// Mode values persisted as the last active top-level mode.
const (
	ModePractice   = "practice"
	ModeExam       = "exam"
	ModeScoreboard = "scoreboard"
)

// Feedback records the outcome of a graded answer. It is set once per
// question and never mutated; its presence guards against re-grading.
type Feedback struct {
	Correct     bool
	Message     string
	Explanation string
}

// State is the controller's current mode, modeled as a tagged variant so
// invalid combinations (an exam session existing during practice, say)
// cannot be constructed.
type State interface {
	trainerState()
}

// Idle is the state before any mode has been entered.
type Idle struct{}

// PracticeActive is open-ended practice on the controller's topic. The
// question is the one at the topic's cursor; Selected and Feedback are
// nil until an option is graded.
type PracticeActive struct {
	Question question.Question
	Selected string
	Feedback *Feedback
}

// ExamActive is a bounded scored exam in progress.
type ExamActive struct {
	Session  *Session
	Question question.Question
	Selected string
	Feedback *Feedback
}

// ExamFinished holds the terminal record of a completed exam.
type ExamFinished struct {
	Record ledger.ExamRecord
}

// Scoreboard is the navigational overlay showing past results.
type Scoreboard struct{}

func (Idle) trainerState()           {}
func (PracticeActive) trainerState() {}
func (ExamActive) trainerState()     {}
func (ExamFinished) trainerState()   {}
func (Scoreboard) trainerState()     {}
