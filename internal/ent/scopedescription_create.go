// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/luminauth/idp-console/internal/ent/scopedescription"
)

// ScopeDescriptionCreate is the builder for creating a ScopeDescription entity.
type ScopeDescriptionCreate struct {
	config
	mutation *ScopeDescriptionMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ScopeDescriptionCreate) SetName(v string) *ScopeDescriptionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLocale sets the "locale" field.
func (_c *ScopeDescriptionCreate) SetLocale(v string) *ScopeDescriptionCreate {
	_c.mutation.SetLocale(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ScopeDescriptionCreate) SetDisplayName(v string) *ScopeDescriptionCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ScopeDescriptionCreate) SetDescription(v string) *ScopeDescriptionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ScopeDescriptionCreate) SetNillableDescription(v *string) *ScopeDescriptionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScopeDescriptionCreate) SetCreatedAt(v time.Time) *ScopeDescriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScopeDescriptionCreate) SetNillableCreatedAt(v *time.Time) *ScopeDescriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScopeDescriptionCreate) SetID(v uuid.UUID) *ScopeDescriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScopeDescriptionCreate) SetNillableID(v *uuid.UUID) *ScopeDescriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ScopeDescriptionMutation object of the builder.
func (_c *ScopeDescriptionCreate) Mutation() *ScopeDescriptionMutation {
	return _c.mutation
}

// Save creates the ScopeDescription in the database.
func (_c *ScopeDescriptionCreate) Save(ctx context.Context) (*ScopeDescription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScopeDescriptionCreate) SaveX(ctx context.Context) *ScopeDescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScopeDescriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScopeDescriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScopeDescriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scopedescription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scopedescription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScopeDescriptionCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ScopeDescription.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := scopedescription.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScopeDescription.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Locale(); !ok {
		return &ValidationError{Name: "locale", err: errors.New(`ent: missing required field "ScopeDescription.locale"`)}
	}
	if v, ok := _c.mutation.Locale(); ok {
		if err := scopedescription.LocaleValidator(v); err != nil {
			return &ValidationError{Name: "locale", err: fmt.Errorf(`ent: validator failed for field "ScopeDescription.locale": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "ScopeDescription.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := scopedescription.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "ScopeDescription.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScopeDescription.created_at"`)}
	}
	return nil
}

func (_c *ScopeDescriptionCreate) sqlSave(ctx context.Context) (*ScopeDescription, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScopeDescriptionCreate) createSpec() (*ScopeDescription, *sqlgraph.CreateSpec) {
	var (
		_node = &ScopeDescription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scopedescription.Table, sqlgraph.NewFieldSpec(scopedescription.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scopedescription.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Locale(); ok {
		_spec.SetField(scopedescription.FieldLocale, field.TypeString, value)
		_node.Locale = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(scopedescription.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(scopedescription.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scopedescription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ScopeDescriptionCreateBulk is the builder for creating many ScopeDescription entities in bulk.
type ScopeDescriptionCreateBulk struct {
	config
	err      error
	builders []*ScopeDescriptionCreate
}

// Save creates the ScopeDescription entities in the database.
func (_c *ScopeDescriptionCreateBulk) Save(ctx context.Context) ([]*ScopeDescription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScopeDescription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScopeDescriptionMutation)
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
func (_c *ScopeDescriptionCreateBulk) SaveX(ctx context.Context) []*ScopeDescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScopeDescriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScopeDescriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
