// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdvisoryEventsColumns holds the columns for the "advisory_events" table.
	AdvisoryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// AdvisoryEventsTable holds the schema information for the "advisory_events" table.
	AdvisoryEventsTable = &schema.Table{
		Name:       "advisory_events",
		Columns:    AdvisoryEventsColumns,
		PrimaryKey: []*schema.Column{AdvisoryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "advisoryevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{AdvisoryEventsColumns[2]},
			},
			{
				Name:    "advisoryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdvisoryEventsColumns[9]},
			},
		},
	}
	// CursorsColumns holds the columns for the "cursors" table.
	CursorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString, Unique: true},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// CursorsTable holds the schema information for the "cursors" table.
	CursorsTable = &schema.Table{
		Name:       "cursors",
		Columns:    CursorsColumns,
		PrimaryKey: []*schema.Column{CursorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cursor_topic",
				Unique:  false,
				Columns: []*schema.Column{CursorsColumns[1]},
			},
		},
	}
	// ExamRecordsColumns holds the columns for the "exam_records" table.
	ExamRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// ExamRecordsTable holds the schema information for the "exam_records" table.
	ExamRecordsTable = &schema.Table{
		Name:       "exam_records",
		Columns:    ExamRecordsColumns,
		PrimaryKey: []*schema.Column{ExamRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examrecord_topic",
				Unique:  false,
				Columns: []*schema.Column{ExamRecordsColumns[2]},
			},
			{
				Name:    "examrecord_passed",
				Unique:  false,
				Columns: []*schema.Column{ExamRecordsColumns[5]},
			},
		},
	}
	// HistoryEntriesColumns holds the columns for the "history_entries" table.
	HistoryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// HistoryEntriesTable holds the schema information for the "history_entries" table.
	HistoryEntriesTable = &schema.Table{
		Name:       "history_entries",
		Columns:    HistoryEntriesColumns,
		PrimaryKey: []*schema.Column{HistoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "historyentry_topic",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[2]},
			},
			{
				Name:    "historyentry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[4]},
			},
		},
	}
	// SequencesColumns holds the columns for the "sequences" table.
	SequencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString, Unique: true},
		{Name: "order", Type: field.TypeString, Size: 2147483647},
	}
	// SequencesTable holds the schema information for the "sequences" table.
	SequencesTable = &schema.Table{
		Name:       "sequences",
		Columns:    SequencesColumns,
		PrimaryKey: []*schema.Column{SequencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sequence_topic",
				Unique:  false,
				Columns: []*schema.Column{SequencesColumns[1]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdvisoryEventsTable,
		CursorsTable,
		ExamRecordsTable,
		HistoryEntriesTable,
		SequencesTable,
		SettingsTable,
	}
)

func init() {
}
