package store

import (
	"context"
	"fmt"

	"github.com/mbuckley/feprep/ent"
	"github.com/mbuckley/feprep/ent/examrecord"
	"github.com/mbuckley/feprep/ent/historyentry"
	"github.com/mbuckley/feprep/internal/ledger"
	"github.com/mbuckley/feprep/internal/topic"
)

// ledgerRepo implements LedgerRepo using the ent client.
type ledgerRepo struct {
	client *ent.Client
}

func (r *ledgerRepo) AppendHistory(ctx context.Context, e ledger.HistoryEntry) error {
	_, err := r.client.HistoryEntry.Create().
		SetQuestionID(e.QuestionID).
		SetTopic(string(e.Topic)).
		SetCorrect(e.Correct).
		SetTimestamp(e.Timestamp).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save history entry: %w", err)
	}
	return r.pruneHistory(ctx, ledger.HistoryCap)
}

func (r *ledgerRepo) History(ctx context.Context) ([]ledger.HistoryEntry, error) {
	rows, err := r.client.HistoryEntry.Query().
		Order(ent.Desc(historyentry.FieldID)).
		Limit(ledger.HistoryCap).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	out := make([]ledger.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ledger.HistoryEntry{
			QuestionID: row.QuestionID,
			Topic:      topic.Topic(row.Topic),
			Correct:    row.Correct,
			Timestamp:  row.Timestamp,
		})
	}
	return out, nil
}

// pruneHistory drops all rows older (by insertion) than the keep-th newest.
func (r *ledgerRepo) pruneHistory(ctx context.Context, keep int) error {
	rows, err := r.client.HistoryEntry.Query().
		Order(ent.Desc(historyentry.FieldID)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query history for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	_, err = r.client.HistoryEntry.Delete().
		Where(historyentry.IDLTE(rows[0].ID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

func (r *ledgerRepo) AppendExamRecord(ctx context.Context, rec ledger.ExamRecord) error {
	_, err := r.client.ExamRecord.Create().
		SetRecordID(rec.ID).
		SetTopic(string(rec.Topic)).
		SetScore(rec.Score).
		SetTotal(rec.Total).
		SetPassed(rec.Passed).
		SetTimestamp(rec.Timestamp).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam record: %w", err)
	}
	return r.pruneExamRecords(ctx, ledger.LeaderboardCap)
}

func (r *ledgerRepo) ExamRecords(ctx context.Context) ([]ledger.ExamRecord, error) {
	rows, err := r.client.ExamRecord.Query().
		Order(ent.Desc(examrecord.FieldID)).
		Limit(ledger.LeaderboardCap).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam records: %w", err)
	}

	out := make([]ledger.ExamRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ledger.ExamRecord{
			ID:        row.RecordID,
			Topic:     topic.Topic(row.Topic),
			Score:     row.Score,
			Total:     row.Total,
			Passed:    row.Passed,
			Timestamp: row.Timestamp,
		})
	}
	return out, nil
}

func (r *ledgerRepo) pruneExamRecords(ctx context.Context, keep int) error {
	rows, err := r.client.ExamRecord.Query().
		Order(ent.Desc(examrecord.FieldID)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query exam records for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	_, err = r.client.ExamRecord.Delete().
		Where(examrecord.IDLTE(rows[0].ID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune exam records: %w", err)
	}
	return nil
}
