package advisor

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/topic"
)

func testQuestion() question.Question {
	return question.Question{
		ID:          "circuits#4",
		Topic:       topic.Circuits,
		Prompt:      "A 10 ohm resistor carries 2 A. What is the voltage across it?",
		Options:     map[string]string{"A": "5 V", "B": "20 V", "C": "40 V", "D": "10 V"},
		CorrectKey:  "B",
		Explanation: "V = IR = 2 * 10 = 20 V.",
		Kind:        question.KindQuantitative,
	}
}

func TestServiceTip(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`"Memorize the hydrostatic pressure equation."`),
	})
	svc := NewService(mock, time.Second)

	got := svc.Tip(context.Background(), topic.Fluids)
	if got != "Memorize the hydrostatic pressure equation." {
		t.Errorf("Tip = %q, want provider text", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
	if len(mock.Calls) == 1 && mock.Calls[0].Schema != nil {
		t.Error("Tip request should not carry a schema")
	}
}

func TestServiceTipFallback(t *testing.T) {
	tests := []struct {
		name string
		svc  *Service
	}{
		{"nil provider", NewService(nil, time.Second)},
		{"provider error", NewService(NewMockProvider(MockResponse{
			Err: &ErrProviderUnavailable{},
		}), time.Second)},
		{"empty response", NewService(NewMockProvider(MockResponse{
			Content: json.RawMessage(`""`),
		}), time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.svc.Tip(context.Background(), topic.Statics); got != FallbackTip {
				t.Errorf("Tip = %q, want FallbackTip", got)
			}
		})
	}
}

func TestServiceAnalysis(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"assessment":"You applied Ohm's law correctly.","study_hint":"Review power calculations next."}`),
	})
	svc := NewService(mock, time.Second)

	got := svc.Analysis(context.Background(), testQuestion(), "B", true)
	want := "You applied Ohm's law correctly. Review power calculations next."
	if got != want {
		t.Errorf("Analysis = %q, want %q", got, want)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("Calls = %d, want 1", len(mock.Calls))
	}
	if mock.Calls[0].Schema == nil {
		t.Error("Analysis request should carry the structured schema")
	}
}

func TestServiceAnalysisFallback(t *testing.T) {
	tests := []struct {
		name    string
		svc     *Service
		correct bool
		want    string
	}{
		{"nil provider correct", NewService(nil, time.Second), true, FallbackCorrect},
		{"nil provider incorrect", NewService(nil, time.Second), false, FallbackIncorrect},
		{"provider error", NewService(NewMockProvider(MockResponse{
			Err: &ErrRateLimit{},
		}), time.Second), false, FallbackIncorrect},
		{"malformed JSON", NewService(NewMockProvider(MockResponse{
			Content: json.RawMessage(`not json`),
		}), time.Second), true, FallbackCorrect},
		{"empty fields", NewService(NewMockProvider(MockResponse{
			Content: json.RawMessage(`{"assessment":"","study_hint":""}`),
		}), time.Second), false, FallbackIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.svc.Analysis(context.Background(), testQuestion(), "A", tt.correct)
			if got != tt.want {
				t.Errorf("Analysis = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServiceContextMetadata(t *testing.T) {
	// The logging decorator reads purpose and question id from the
	// context; verify the service sets them.
	var seenPurpose, seenQID string
	probe := providerFunc(func(ctx context.Context, req Request) (*Response, error) {
		seenPurpose = PurposeFrom(ctx)
		seenQID = QuestionIDFrom(ctx)
		return &Response{Content: json.RawMessage(`{"assessment":"ok","study_hint":"ok"}`)}, nil
	})
	svc := NewService(probe, time.Second)

	svc.Analysis(context.Background(), testQuestion(), "B", true)
	if seenPurpose != "analysis" {
		t.Errorf("purpose = %q, want %q", seenPurpose, "analysis")
	}
	if seenQID != "circuits#4" {
		t.Errorf("question id = %q, want %q", seenQID, "circuits#4")
	}
}

// providerFunc adapts a function to the Provider interface.
type providerFunc func(ctx context.Context, req Request) (*Response, error)

func (f providerFunc) Generate(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "probe" }
