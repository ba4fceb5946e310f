// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/luminauth/idp-console/internal/ent/predicate"
	"github.com/luminauth/idp-console/internal/ent/scopedescription"
)

// ScopeDescriptionUpdate is the builder for updating ScopeDescription entities.
type ScopeDescriptionUpdate struct {
	config
	hooks    []Hook
	mutation *ScopeDescriptionMutation
}

// Where appends a list predicates to the ScopeDescriptionUpdate builder.
func (_u *ScopeDescriptionUpdate) Where(ps ...predicate.ScopeDescription) *ScopeDescriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ScopeDescriptionUpdate) SetName(v string) *ScopeDescriptionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScopeDescriptionUpdate) SetNillableName(v *string) *ScopeDescriptionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLocale sets the "locale" field.
func (_u *ScopeDescriptionUpdate) SetLocale(v string) *ScopeDescriptionUpdate {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *ScopeDescriptionUpdate) SetNillableLocale(v *string) *ScopeDescriptionUpdate {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ScopeDescriptionUpdate) SetDisplayName(v string) *ScopeDescriptionUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ScopeDescriptionUpdate) SetNillableDisplayName(v *string) *ScopeDescriptionUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScopeDescriptionUpdate) SetDescription(v string) *ScopeDescriptionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScopeDescriptionUpdate) SetNillableDescription(v *string) *ScopeDescriptionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScopeDescriptionUpdate) ClearDescription() *ScopeDescriptionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the ScopeDescriptionMutation object of the builder.
func (_u *ScopeDescriptionUpdate) Mutation() *ScopeDescriptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScopeDescriptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScopeDescriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScopeDescriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScopeDescriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScopeDescriptionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scopedescription.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScopeDescription.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Locale(); ok {
		if err := scopedescription.LocaleValidator(v); err != nil {
			return &ValidationError{Name: "locale", err: fmt.Errorf(`ent: validator failed for field "ScopeDescription.locale": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := scopedescription.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "ScopeDescription.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ScopeDescriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scopedescription.Table, scopedescription.Columns, sqlgraph.NewFieldSpec(scopedescription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scopedescription.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(scopedescription.FieldLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(scopedescription.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scopedescription.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scopedescription.FieldDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scopedescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScopeDescriptionUpdateOne is the builder for updating a single ScopeDescription entity.
type ScopeDescriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScopeDescriptionMutation
}

// SetName sets the "name" field.
func (_u *ScopeDescriptionUpdateOne) SetName(v string) *ScopeDescriptionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScopeDescriptionUpdateOne) SetNillableName(v *string) *ScopeDescriptionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLocale sets the "locale" field.
func (_u *ScopeDescriptionUpdateOne) SetLocale(v string) *ScopeDescriptionUpdateOne {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *ScopeDescriptionUpdateOne) SetNillableLocale(v *string) *ScopeDescriptionUpdateOne {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ScopeDescriptionUpdateOne) SetDisplayName(v string) *ScopeDescriptionUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ScopeDescriptionUpdateOne) SetNillableDisplayName(v *string) *ScopeDescriptionUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScopeDescriptionUpdateOne) SetDescription(v string) *ScopeDescriptionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScopeDescriptionUpdateOne) SetNillableDescription(v *string) *ScopeDescriptionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScopeDescriptionUpdateOne) ClearDescription() *ScopeDescriptionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the ScopeDescriptionMutation object of the builder.
func (_u *ScopeDescriptionUpdateOne) Mutation() *ScopeDescriptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScopeDescriptionUpdate builder.
func (_u *ScopeDescriptionUpdateOne) Where(ps ...predicate.ScopeDescription) *ScopeDescriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScopeDescriptionUpdateOne) Select(field string, fields ...string) *ScopeDescriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScopeDescription entity.
func (_u *ScopeDescriptionUpdateOne) Save(ctx context.Context) (*ScopeDescription, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScopeDescriptionUpdateOne) SaveX(ctx context.Context) *ScopeDescription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScopeDescriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScopeDescriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScopeDescriptionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scopedescription.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScopeDescription.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Locale(); ok {
		if err := scopedescription.LocaleValidator(v); err != nil {
			return &ValidationError{Name: "locale", err: fmt.Errorf(`ent: validator failed for field "ScopeDescription.locale": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := scopedescription.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "ScopeDescription.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ScopeDescriptionUpdateOne) sqlSave(ctx context.Context) (_node *ScopeDescription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scopedescription.Table, scopedescription.Columns, sqlgraph.NewFieldSpec(scopedescription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScopeDescription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scopedescription.FieldID)
		for _, f := range fields {
			if !scopedescription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scopedescription.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scopedescription.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(scopedescription.FieldLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(scopedescription.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scopedescription.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scopedescription.FieldDescription, field.TypeString)
	}
	_node = &ScopeDescription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scopedescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
