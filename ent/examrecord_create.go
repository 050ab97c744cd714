// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mbuckley/feprep/ent/examrecord"
)

// ExamRecordCreate is the builder for creating a ExamRecord entity.
type ExamRecordCreate struct {
	config
	mutation *ExamRecordMutation
	hooks    []Hook
}

// SetRecordID sets the "record_id" field.
func (_c *ExamRecordCreate) SetRecordID(v string) *ExamRecordCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ExamRecordCreate) SetTopic(v string) *ExamRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ExamRecordCreate) SetScore(v int) *ExamRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *ExamRecordCreate) SetTotal(v int) *ExamRecordCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ExamRecordCreate) SetPassed(v bool) *ExamRecordCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExamRecordCreate) SetTimestamp(v time.Time) *ExamRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExamRecordCreate) SetNillableTimestamp(v *time.Time) *ExamRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the ExamRecordMutation object of the builder.
func (_c *ExamRecordCreate) Mutation() *ExamRecordMutation {
	return _c.mutation
}

// Save creates the ExamRecord in the database.
func (_c *ExamRecordCreate) Save(ctx context.Context) (*ExamRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamRecordCreate) SaveX(ctx context.Context) *ExamRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := examrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamRecordCreate) check() error {
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "ExamRecord.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := examrecord.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ExamRecord.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := examrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ExamRecord.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := examrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ExamRecord.total"`)}
	}
	if v, ok := _c.mutation.Total(); ok {
		if err := examrecord.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "ExamRecord.total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ExamRecord.passed"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExamRecord.timestamp"`)}
	}
	return nil
}

func (_c *ExamRecordCreate) sqlSave(ctx context.Context) (*ExamRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExamRecordCreate) createSpec() (*ExamRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examrecord.Table, sqlgraph.NewFieldSpec(examrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(examrecord.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(examrecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(examrecord.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(examrecord.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(examrecord.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(examrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// ExamRecordCreateBulk is the builder for creating many ExamRecord entities in bulk.
type ExamRecordCreateBulk struct {
	config
	err      error
	builders []*ExamRecordCreate
}

// Save creates the ExamRecord entities in the database.
func (_c *ExamRecordCreateBulk) Save(ctx context.Context) ([]*ExamRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExamRecordCreateBulk) SaveX(ctx context.Context) []*ExamRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
