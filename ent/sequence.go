// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mbuckley/feprep/ent/sequence"
)

// Sequence is the model entity for the Sequence schema.
type Sequence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Topic identifier this permutation belongs to
	Topic string `json:"topic,omitempty"`
	// Permutation of 1..N as a JSON array; decoded by the repository so a corrupt value reads as absent
	Order        string `json:"order,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sequence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sequence.FieldID:
			values[i] = new(sql.NullInt64)
		case sequence.FieldTopic, sequence.FieldOrder:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sequence fields.
func (_m *Sequence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sequence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sequence.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case sequence.FieldOrder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sequence.
// This includes values selected through modifiers, order, etc.
func (_m *Sequence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Sequence.
// Note that you need to call Sequence.Unwrap() before calling this method if this Sequence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sequence) Update() *SequenceUpdateOne {
	return NewSequenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sequence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sequence) Unwrap() *Sequence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sequence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sequence) String() string {
	var builder strings.Builder
	builder.WriteString("Sequence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(_m.Order)
	builder.WriteByte(')')
	return builder.String()
}

// Sequences is a parsable slice of Sequence.
type Sequences []*Sequence
