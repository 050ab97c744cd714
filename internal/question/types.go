package question

import "github.com/mbuckley/feprep/internal/topic"

// PoolSize is the number of question slots per topic. Pool indices are 1-based.
const PoolSize = 300

// Kind classifies how a question is answered and graded contextually.
type Kind string

const (
	// KindConceptual is a qualitative question with no computation.
	KindConceptual Kind = "conceptual"

	// KindQuantitative requires computing a numeric result.
	KindQuantitative Kind = "quantitative"

	// KindCodeLookup asks about a provision of the professional code;
	// these carry a reference citation shown with the explanation.
	KindCodeLookup Kind = "code-lookup"
)

// Question is a fully resolved question record. Immutable once resolved;
// resolving the same (topic, pool index) twice yields an equal Question.
type Question struct {
	// ID is stable across resolutions, derived from topic and pool index.
	ID string

	// Topic is the subject area this question belongs to.
	Topic topic.Topic

	// Prompt is the question text shown to the learner.
	Prompt string

	// Options maps option key ("A".."D") to option text. Keys are unique;
	// display order is by key.
	Options map[string]string

	// CorrectKey is the key of the correct option.
	CorrectKey string

	// Explanation is a brief worked solution shown after answering.
	Explanation string

	// Kind classifies the question.
	Kind Kind

	// RequiresCitation is true when the answer must be supported by a
	// reference citation (code-lookup questions).
	RequiresCitation bool

	// Citation is the expected reference, empty unless RequiresCitation.
	Citation string
}

// OptionKeys is the fixed set of option keys in display order.
var OptionKeys = []string{"A", "B", "C", "D"}

// Resolver maps (topic, pool index) to a fully formed question.
// Implementations must be pure: identical arguments yield equal Questions.
type Resolver interface {
	Resolve(t topic.Topic, poolIndex int) Question
}
