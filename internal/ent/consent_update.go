// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/luminauth/idp-console/internal/ent/consent"
	"github.com/luminauth/idp-console/internal/ent/predicate"
)

// ConsentUpdate is the builder for updating Consent entities.
type ConsentUpdate struct {
	config
	hooks    []Hook
	mutation *ConsentMutation
}

// Where appends a list predicates to the ConsentUpdate builder.
func (_u *ConsentUpdate) Where(ps ...predicate.Consent) *ConsentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ConsentUpdate) SetClientID(v string) *ConsentUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ConsentUpdate) SetNillableClientID(v *string) *ConsentUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConsentUpdate) SetUserID(v uuid.UUID) *ConsentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConsentUpdate) SetNillableUserID(v *uuid.UUID) *ConsentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *ConsentUpdate) SetReferenceID(v string) *ConsentUpdate {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *ConsentUpdate) SetNillableReferenceID(v *string) *ConsentUpdate {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *ConsentUpdate) SetScopes(v []string) *ConsentUpdate {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *ConsentUpdate) AppendScopes(v []string) *ConsentUpdate {
	_u.mutation.AppendScopes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsentUpdate) SetUpdatedAt(v time.Time) *ConsentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConsentMutation object of the builder.
func (_u *ConsentUpdate) Mutation() *ConsentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConsentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConsentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsentUpdate) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := consent.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Consent.client_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ConsentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consent.Table, consent.Columns, sqlgraph.NewFieldSpec(consent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(consent.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(consent.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReferenceID(); ok {
		_spec.SetField(consent.FieldReferenceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(consent.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, consent.FieldScopes, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConsentUpdateOne is the builder for updating a single Consent entity.
type ConsentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConsentMutation
}

// SetClientID sets the "client_id" field.
func (_u *ConsentUpdateOne) SetClientID(v string) *ConsentUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ConsentUpdateOne) SetNillableClientID(v *string) *ConsentUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConsentUpdateOne) SetUserID(v uuid.UUID) *ConsentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConsentUpdateOne) SetNillableUserID(v *uuid.UUID) *ConsentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *ConsentUpdateOne) SetReferenceID(v string) *ConsentUpdateOne {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *ConsentUpdateOne) SetNillableReferenceID(v *string) *ConsentUpdateOne {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *ConsentUpdateOne) SetScopes(v []string) *ConsentUpdateOne {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *ConsentUpdateOne) AppendScopes(v []string) *ConsentUpdateOne {
	_u.mutation.AppendScopes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsentUpdateOne) SetUpdatedAt(v time.Time) *ConsentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConsentMutation object of the builder.
func (_u *ConsentUpdateOne) Mutation() *ConsentMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConsentUpdate builder.
func (_u *ConsentUpdateOne) Where(ps ...predicate.Consent) *ConsentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConsentUpdateOne) Select(field string, fields ...string) *ConsentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Consent entity.
func (_u *ConsentUpdateOne) Save(ctx context.Context) (*Consent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsentUpdateOne) SaveX(ctx context.Context) *Consent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConsentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsentUpdateOne) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := consent.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Consent.client_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ConsentUpdateOne) sqlSave(ctx context.Context) (_node *Consent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consent.Table, consent.Columns, sqlgraph.NewFieldSpec(consent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Consent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consent.FieldID)
		for _, f := range fields {
			if !consent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != consent.FieldID {
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
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(consent.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(consent.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReferenceID(); ok {
		_spec.SetField(consent.FieldReferenceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(consent.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, consent.FieldScopes, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Consent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
