// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mbuckley/feprep/ent/advisoryevent"
	"github.com/mbuckley/feprep/ent/predicate"
)

// AdvisoryEventDelete is the builder for deleting a AdvisoryEvent entity.
type AdvisoryEventDelete struct {
	config
	hooks    []Hook
	mutation *AdvisoryEventMutation
}

// Where appends a list predicates to the AdvisoryEventDelete builder.
func (_d *AdvisoryEventDelete) Where(ps ...predicate.AdvisoryEvent) *AdvisoryEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdvisoryEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdvisoryEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdvisoryEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(advisoryevent.Table, sqlgraph.NewFieldSpec(advisoryevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdvisoryEventDeleteOne is the builder for deleting a single AdvisoryEvent entity.
type AdvisoryEventDeleteOne struct {
	_d *AdvisoryEventDelete
}

// Where appends a list predicates to the AdvisoryEventDelete builder.
func (_d *AdvisoryEventDeleteOne) Where(ps ...predicate.AdvisoryEvent) *AdvisoryEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdvisoryEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{advisoryevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdvisoryEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
