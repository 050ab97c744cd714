// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdvisoryEvent is the predicate function for advisoryevent builders.
type AdvisoryEvent func(*sql.Selector)

// Cursor is the predicate function for cursor builders.
type Cursor func(*sql.Selector)

// ExamRecord is the predicate function for examrecord builders.
type ExamRecord func(*sql.Selector)

// HistoryEntry is the predicate function for historyentry builders.
type HistoryEntry func(*sql.Selector)

// Sequence is the predicate function for sequence builders.
type Sequence func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
