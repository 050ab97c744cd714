package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mbuckley/feprep/ent"
	"github.com/mbuckley/feprep/ent/cursor"
	entseq "github.com/mbuckley/feprep/ent/sequence"
	"github.com/mbuckley/feprep/internal/topic"
)

// sequenceRepo implements SequenceRepo using the ent client.
type sequenceRepo struct {
	client *ent.Client
}

func (r *sequenceRepo) Permutation(ctx context.Context, t topic.Topic) ([]int, error) {
	row, err := r.client.Sequence.Query().
		Where(entseq.Topic(string(t))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query sequence for %s: %w", t, err)
	}
	var order []int
	if err := json.Unmarshal([]byte(row.Order), &order); err != nil {
		// A corrupt row reads as absent. The caller regenerates the
		// permutation and SavePermutation overwrites the bad value.
		return nil, nil
	}
	return order, nil
}

func (r *sequenceRepo) SavePermutation(ctx context.Context, t topic.Topic, order []int) error {
	encoded, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode sequence for %s: %w", t, err)
	}

	n, err := r.client.Sequence.Update().
		Where(entseq.Topic(string(t))).
		SetOrder(string(encoded)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update sequence for %s: %w", t, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Sequence.Create().
		SetTopic(string(t)).
		SetOrder(string(encoded)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save sequence for %s: %w", t, err)
	}
	return nil
}

func (r *sequenceRepo) Cursor(ctx context.Context, t topic.Topic) (int, error) {
	row, err := r.client.Cursor.Query().
		Where(cursor.Topic(string(t))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query cursor for %s: %w", t, err)
	}
	return row.Position, nil
}

func (r *sequenceRepo) SaveCursor(ctx context.Context, t topic.Topic, position int) error {
	n, err := r.client.Cursor.Update().
		Where(cursor.Topic(string(t))).
		SetPosition(position).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update cursor for %s: %w", t, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Cursor.Create().
		SetTopic(string(t)).
		SetPosition(position).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save cursor for %s: %w", t, err)
	}
	return nil
}
