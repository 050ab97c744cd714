package store

import (
	"context"
	"fmt"

	"github.com/mbuckley/feprep/ent"
	"github.com/mbuckley/feprep/ent/advisoryevent"
)

// advisoryRepo implements AdvisoryRepo using the ent client.
type advisoryRepo struct {
	client *ent.Client
}

func (r *advisoryRepo) Append(ctx context.Context, data AdvisoryEventData) error {
	builder := r.client.AdvisoryEvent.Create().
		SetProvider(data.Provider).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)

	if data.QuestionID != "" {
		builder = builder.SetQuestionID(data.QuestionID)
	}
	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save advisory event: %w", err)
	}
	return nil
}

func (r *advisoryRepo) Recent(ctx context.Context, limit int) ([]AdvisoryEventData, error) {
	q := r.client.AdvisoryEvent.Query().
		Order(ent.Desc(advisoryevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query advisory events: %w", err)
	}

	out := make([]AdvisoryEventData, 0, len(rows))
	for _, row := range rows {
		out = append(out, AdvisoryEventData{
			Provider:     row.Provider,
			Purpose:      row.Purpose,
			QuestionID:   row.QuestionID,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
		})
	}
	return out, nil
}
