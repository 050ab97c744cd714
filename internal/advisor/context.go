package advisor

import "context"

type contextKey string

const (
	purposeKey  contextKey = "advisor_purpose"
	questionKey contextKey = "advisor_question_id"
)

// WithPurpose attaches a purpose label ("tip", "analysis") to the context
// for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithQuestionID attaches the id of the question a request was issued for.
func WithQuestionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, questionKey, id)
}

// QuestionIDFrom extracts the question id from the context, if any.
func QuestionIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(questionKey).(string); ok {
		return v
	}
	return ""
}
