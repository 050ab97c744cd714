package advisor

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"assessment":"good work","study_hint":"review units"}`, false},
		{"missing required", `{"assessment":"good work"}`, true},
		{"wrong type", `{"assessment":42,"study_hint":"review units"}`, true},
		{"extra property", `{"assessment":"a","study_hint":"b","extra":true}`, true},
		{"not json", `nonsense`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(analysisSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Errorf("error type = %T, want *ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}
