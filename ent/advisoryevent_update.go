// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mbuckley/feprep/ent/advisoryevent"
	"github.com/mbuckley/feprep/ent/predicate"
)

// AdvisoryEventUpdate is the builder for updating AdvisoryEvent entities.
type AdvisoryEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdvisoryEventMutation
}

// Where appends a list predicates to the AdvisoryEventUpdate builder.
func (_u *AdvisoryEventUpdate) Where(ps ...predicate.AdvisoryEvent) *AdvisoryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AdvisoryEventUpdate) SetProvider(v string) *AdvisoryEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AdvisoryEventUpdate) SetNillableProvider(v *string) *AdvisoryEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *AdvisoryEventUpdate) SetPurpose(v string) *AdvisoryEventUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *AdvisoryEventUpdate) SetNillablePurpose(v *string) *AdvisoryEventUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AdvisoryEventUpdate) SetQuestionID(v string) *AdvisoryEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AdvisoryEventUpdate) SetNillableQuestionID(v *string) *AdvisoryEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *AdvisoryEventUpdate) ClearQuestionID() *AdvisoryEventUpdate {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AdvisoryEventUpdate) SetInputTokens(v int) *AdvisoryEventUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AdvisoryEventUpdate) SetNillableInputTokens(v *int) *AdvisoryEventUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AdvisoryEventUpdate) AddInputTokens(v int) *AdvisoryEventUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AdvisoryEventUpdate) SetOutputTokens(v int) *AdvisoryEventUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AdvisoryEventUpdate) SetNillableOutputTokens(v *int) *AdvisoryEventUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AdvisoryEventUpdate) AddOutputTokens(v int) *AdvisoryEventUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AdvisoryEventUpdate) SetLatencyMs(v int64) *AdvisoryEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AdvisoryEventUpdate) SetNillableLatencyMs(v *int64) *AdvisoryEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AdvisoryEventUpdate) AddLatencyMs(v int64) *AdvisoryEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AdvisoryEventUpdate) SetSuccess(v bool) *AdvisoryEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AdvisoryEventUpdate) SetNillableSuccess(v *bool) *AdvisoryEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AdvisoryEventUpdate) SetErrorMessage(v string) *AdvisoryEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AdvisoryEventUpdate) SetNillableErrorMessage(v *string) *AdvisoryEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AdvisoryEventUpdate) ClearErrorMessage() *AdvisoryEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AdvisoryEventMutation object of the builder.
func (_u *AdvisoryEventUpdate) Mutation() *AdvisoryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdvisoryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdvisoryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdvisoryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdvisoryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdvisoryEventUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := advisoryevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "AdvisoryEvent.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Purpose(); ok {
		if err := advisoryevent.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "AdvisoryEvent.purpose": %w`, err)}
		}
	}
	return nil
}

func (_u *AdvisoryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(advisoryevent.Table, advisoryevent.Columns, sqlgraph.NewFieldSpec(advisoryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(advisoryevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(advisoryevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(advisoryevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(advisoryevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(advisoryevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(advisoryevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(advisoryevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(advisoryevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(advisoryevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(advisoryevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(advisoryevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(advisoryevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(advisoryevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advisoryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdvisoryEventUpdateOne is the builder for updating a single AdvisoryEvent entity.
type AdvisoryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdvisoryEventMutation
}

// SetProvider sets the "provider" field.
func (_u *AdvisoryEventUpdateOne) SetProvider(v string) *AdvisoryEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AdvisoryEventUpdateOne) SetNillableProvider(v *string) *AdvisoryEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *AdvisoryEventUpdateOne) SetPurpose(v string) *AdvisoryEventUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *AdvisoryEventUpdateOne) SetNillablePurpose(v *string) *AdvisoryEventUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AdvisoryEventUpdateOne) SetQuestionID(v string) *AdvisoryEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AdvisoryEventUpdateOne) SetNillableQuestionID(v *string) *AdvisoryEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *AdvisoryEventUpdateOne) ClearQuestionID() *AdvisoryEventUpdateOne {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AdvisoryEventUpdateOne) SetInputTokens(v int) *AdvisoryEventUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AdvisoryEventUpdateOne) SetNillableInputTokens(v *int) *AdvisoryEventUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AdvisoryEventUpdateOne) AddInputTokens(v int) *AdvisoryEventUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AdvisoryEventUpdateOne) SetOutputTokens(v int) *AdvisoryEventUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AdvisoryEventUpdateOne) SetNillableOutputTokens(v *int) *AdvisoryEventUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AdvisoryEventUpdateOne) AddOutputTokens(v int) *AdvisoryEventUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AdvisoryEventUpdateOne) SetLatencyMs(v int64) *AdvisoryEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AdvisoryEventUpdateOne) SetNillableLatencyMs(v *int64) *AdvisoryEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AdvisoryEventUpdateOne) AddLatencyMs(v int64) *AdvisoryEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AdvisoryEventUpdateOne) SetSuccess(v bool) *AdvisoryEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AdvisoryEventUpdateOne) SetNillableSuccess(v *bool) *AdvisoryEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AdvisoryEventUpdateOne) SetErrorMessage(v string) *AdvisoryEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AdvisoryEventUpdateOne) SetNillableErrorMessage(v *string) *AdvisoryEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AdvisoryEventUpdateOne) ClearErrorMessage() *AdvisoryEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AdvisoryEventMutation object of the builder.
func (_u *AdvisoryEventUpdateOne) Mutation() *AdvisoryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdvisoryEventUpdate builder.
func (_u *AdvisoryEventUpdateOne) Where(ps ...predicate.AdvisoryEvent) *AdvisoryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdvisoryEventUpdateOne) Select(field string, fields ...string) *AdvisoryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdvisoryEvent entity.
func (_u *AdvisoryEventUpdateOne) Save(ctx context.Context) (*AdvisoryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdvisoryEventUpdateOne) SaveX(ctx context.Context) *AdvisoryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdvisoryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdvisoryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdvisoryEventUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := advisoryevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "AdvisoryEvent.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Purpose(); ok {
		if err := advisoryevent.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "AdvisoryEvent.purpose": %w`, err)}
		}
	}
	return nil
}

func (_u *AdvisoryEventUpdateOne) sqlSave(ctx context.Context) (_node *AdvisoryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(advisoryevent.Table, advisoryevent.Columns, sqlgraph.NewFieldSpec(advisoryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdvisoryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, advisoryevent.FieldID)
		for _, f := range fields {
			if !advisoryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != advisoryevent.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(advisoryevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(advisoryevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(advisoryevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(advisoryevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(advisoryevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(advisoryevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(advisoryevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(advisoryevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(advisoryevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(advisoryevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(advisoryevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(advisoryevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(advisoryevent.FieldErrorMessage, field.TypeString)
	}
	_node = &AdvisoryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advisoryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
