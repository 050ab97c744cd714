// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mbuckley/feprep/ent/predicate"
	"github.com/mbuckley/feprep/ent/sequence"
)

// SequenceUpdate is the builder for updating Sequence entities.
type SequenceUpdate struct {
	config
	hooks    []Hook
	mutation *SequenceMutation
}

// Where appends a list predicates to the SequenceUpdate builder.
func (_u *SequenceUpdate) Where(ps ...predicate.Sequence) *SequenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SequenceUpdate) SetTopic(v string) *SequenceUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SequenceUpdate) SetNillableTopic(v *string) *SequenceUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *SequenceUpdate) SetOrder(v string) *SequenceUpdate {
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *SequenceUpdate) SetNillableOrder(v *string) *SequenceUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// Mutation returns the SequenceMutation object of the builder.
func (_u *SequenceUpdate) Mutation() *SequenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SequenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SequenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SequenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SequenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SequenceUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := sequence.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Sequence.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SequenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sequence.Table, sequence.Columns, sqlgraph.NewFieldSpec(sequence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sequence.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(sequence.FieldOrder, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SequenceUpdateOne is the builder for updating a single Sequence entity.
type SequenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SequenceMutation
}

// SetTopic sets the "topic" field.
func (_u *SequenceUpdateOne) SetTopic(v string) *SequenceUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SequenceUpdateOne) SetNillableTopic(v *string) *SequenceUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *SequenceUpdateOne) SetOrder(v string) *SequenceUpdateOne {
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *SequenceUpdateOne) SetNillableOrder(v *string) *SequenceUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// Mutation returns the SequenceMutation object of the builder.
func (_u *SequenceUpdateOne) Mutation() *SequenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the SequenceUpdate builder.
func (_u *SequenceUpdateOne) Where(ps ...predicate.Sequence) *SequenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SequenceUpdateOne) Select(field string, fields ...string) *SequenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sequence entity.
func (_u *SequenceUpdateOne) Save(ctx context.Context) (*Sequence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SequenceUpdateOne) SaveX(ctx context.Context) *Sequence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SequenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SequenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SequenceUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := sequence.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Sequence.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SequenceUpdateOne) sqlSave(ctx context.Context) (_node *Sequence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sequence.Table, sequence.Columns, sqlgraph.NewFieldSpec(sequence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sequence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sequence.FieldID)
		for _, f := range fields {
			if !sequence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sequence.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sequence.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(sequence.FieldOrder, field.TypeString, value)
	}
	_node = &Sequence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
