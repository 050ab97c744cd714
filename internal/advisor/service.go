// Package advisor provides the asynchronous study-advice text shown next
// to questions. All failures degrade to fixed fallback strings; the
// advisor never blocks or fails question progression.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/topic"
)

// Fallback strings returned when no provider is configured or a request
// fails. Fixed so the UI never blocks on advisory availability.
const (
	FallbackTip = "Work methodically: list the knowns, pick the governing equation, and check your units before committing to an answer."

	FallbackCorrect = "Correct. Review the worked solution to confirm your reasoning matched it."

	FallbackIncorrect = "Not quite. Walk through the worked solution step by step and note where your approach diverged."
)

const systemPrompt = "You are a study coach for the Fundamentals of Engineering exam. Be concise, concrete, and encouraging. Two or three sentences, plain text."

// analysisSchema is the structured output contract for answer analysis.
var analysisSchema = &Schema{
	Name:        "answer-analysis",
	Description: "Feedback on a single exam answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"assessment": map[string]any{
				"type":        "string",
				"description": "One or two sentences on why the chosen answer was right or wrong",
			},
			"study_hint": map[string]any{
				"type":        "string",
				"description": "One sentence pointing at what to review next",
			},
		},
		"required":             []any{"assessment", "study_hint"},
		"additionalProperties": false,
	},
}

// Service produces advisory text. A nil provider is valid and yields
// fallbacks immediately.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService creates an advisory service. provider may be nil.
func NewService(provider Provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	return &Service{provider: provider, timeout: timeout}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Tip returns a short study tip for a topic. Never returns an error:
// any failure degrades to FallbackTip.
func (s *Service) Tip(ctx context.Context, t topic.Topic) string {
	if s.provider == nil {
		return FallbackTip
	}

	ctx, cancel := context.WithTimeout(WithPurpose(ctx, "tip"), s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, Request{
		System:    systemPrompt,
		Prompt:    fmt.Sprintf("Give one study tip for the %s section of the FE exam.", topic.DisplayName(t)),
		MaxTokens: 200,
	})
	if err != nil {
		return FallbackTip
	}

	text := strings.TrimSpace(rawText(resp.Content))
	if text == "" {
		return FallbackTip
	}
	return text
}

// Analysis returns feedback on a graded answer. Never returns an error:
// any failure degrades to the fixed correct/incorrect fallback.
func (s *Service) Analysis(ctx context.Context, q question.Question, chosenKey string, correct bool) string {
	fallback := FallbackIncorrect
	if correct {
		fallback = FallbackCorrect
	}
	if s.provider == nil {
		return fallback
	}

	ctx = WithPurpose(ctx, "analysis")
	ctx = WithQuestionID(ctx, q.ID)
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	verdict := "correctly"
	if !correct {
		verdict = "incorrectly"
	}
	prompt := fmt.Sprintf(
		"FE exam question (%s): %s\nThe learner %s chose %q (option %s). The correct answer is option %s: %q.\nOfficial explanation: %s",
		topic.DisplayName(q.Topic), q.Prompt,
		verdict, q.Options[chosenKey], chosenKey,
		q.CorrectKey, q.Options[q.CorrectKey],
		q.Explanation,
	)

	resp, err := s.provider.Generate(ctx, Request{
		System:    systemPrompt,
		Prompt:    prompt,
		Schema:    analysisSchema,
		MaxTokens: 400,
	})
	if err != nil {
		return fallback
	}

	var parsed struct {
		Assessment string `json:"assessment"`
		StudyHint  string `json:"study_hint"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return fallback
	}

	text := strings.TrimSpace(parsed.Assessment)
	if hint := strings.TrimSpace(parsed.StudyHint); hint != "" {
		if text != "" {
			text += " "
		}
		text += hint
	}
	if text == "" {
		return fallback
	}
	return text
}

// rawText strips the JSON string quoting a raw-text response may carry.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
