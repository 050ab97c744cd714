// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mbuckley/feprep/ent/examrecord"
	"github.com/mbuckley/feprep/ent/predicate"
)

// ExamRecordUpdate is the builder for updating ExamRecord entities.
type ExamRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExamRecordMutation
}

// Where appends a list predicates to the ExamRecordUpdate builder.
func (_u *ExamRecordUpdate) Where(ps ...predicate.ExamRecord) *ExamRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *ExamRecordUpdate) SetRecordID(v string) *ExamRecordUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ExamRecordUpdate) SetNillableRecordID(v *string) *ExamRecordUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ExamRecordUpdate) SetTopic(v string) *ExamRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ExamRecordUpdate) SetNillableTopic(v *string) *ExamRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamRecordUpdate) SetScore(v int) *ExamRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamRecordUpdate) SetNillableScore(v *int) *ExamRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamRecordUpdate) AddScore(v int) *ExamRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamRecordUpdate) SetTotal(v int) *ExamRecordUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamRecordUpdate) SetNillableTotal(v *int) *ExamRecordUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamRecordUpdate) AddTotal(v int) *ExamRecordUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamRecordUpdate) SetPassed(v bool) *ExamRecordUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamRecordUpdate) SetNillablePassed(v *bool) *ExamRecordUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the ExamRecordMutation object of the builder.
func (_u *ExamRecordUpdate) Mutation() *ExamRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamRecordUpdate) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := examrecord.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := examrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := examrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := examrecord.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.total": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examrecord.Table, examrecord.Columns, sqlgraph.NewFieldSpec(examrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(examrecord.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(examrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examrecord.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examrecord.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examrecord.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamRecordUpdateOne is the builder for updating a single ExamRecord entity.
type ExamRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamRecordMutation
}

// SetRecordID sets the "record_id" field.
func (_u *ExamRecordUpdateOne) SetRecordID(v string) *ExamRecordUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ExamRecordUpdateOne) SetNillableRecordID(v *string) *ExamRecordUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ExamRecordUpdateOne) SetTopic(v string) *ExamRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ExamRecordUpdateOne) SetNillableTopic(v *string) *ExamRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamRecordUpdateOne) SetScore(v int) *ExamRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamRecordUpdateOne) SetNillableScore(v *int) *ExamRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamRecordUpdateOne) AddScore(v int) *ExamRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamRecordUpdateOne) SetTotal(v int) *ExamRecordUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamRecordUpdateOne) SetNillableTotal(v *int) *ExamRecordUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamRecordUpdateOne) AddTotal(v int) *ExamRecordUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamRecordUpdateOne) SetPassed(v bool) *ExamRecordUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamRecordUpdateOne) SetNillablePassed(v *bool) *ExamRecordUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the ExamRecordMutation object of the builder.
func (_u *ExamRecordUpdateOne) Mutation() *ExamRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamRecordUpdate builder.
func (_u *ExamRecordUpdateOne) Where(ps ...predicate.ExamRecord) *ExamRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamRecordUpdateOne) Select(field string, fields ...string) *ExamRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamRecord entity.
func (_u *ExamRecordUpdateOne) Save(ctx context.Context) (*ExamRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamRecordUpdateOne) SaveX(ctx context.Context) *ExamRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamRecordUpdateOne) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := examrecord.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := examrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := examrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := examrecord.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.total": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExamRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examrecord.Table, examrecord.Columns, sqlgraph.NewFieldSpec(examrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examrecord.FieldID)
		for _, f := range fields {
			if !examrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(examrecord.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(examrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examrecord.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examrecord.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examrecord.FieldPassed, field.TypeBool, value)
	}
	_node = &ExamRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
