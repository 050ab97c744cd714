package advisor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mbuckley/feprep/internal/store"
)

// LoggingProvider is a decorator that records every advisory request as
// an event in the store.
type LoggingProvider struct {
	inner Provider
	repo  store.AdvisoryRepo
}

// WithLogging wraps a Provider with event logging. A nil repo skips
// logging entirely.
func WithLogging(p Provider, repo store.AdvisoryRepo) Provider {
	if repo == nil {
		return p
	}
	return &LoggingProvider{inner: p, repo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.AdvisoryEventData{
		Provider:   l.inner.ModelID(),
		Purpose:    PurposeFrom(ctx),
		QuestionID: QuestionIDFrom(ctx),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Provider = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.repo.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log advisory event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
