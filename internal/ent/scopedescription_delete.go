// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/luminauth/idp-console/internal/ent/predicate"
	"github.com/luminauth/idp-console/internal/ent/scopedescription"
)

// ScopeDescriptionDelete is the builder for deleting a ScopeDescription entity.
type ScopeDescriptionDelete struct {
	config
	hooks    []Hook
	mutation *ScopeDescriptionMutation
}

// Where appends a list predicates to the ScopeDescriptionDelete builder.
func (_d *ScopeDescriptionDelete) Where(ps ...predicate.ScopeDescription) *ScopeDescriptionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScopeDescriptionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScopeDescriptionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScopeDescriptionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scopedescription.Table, sqlgraph.NewFieldSpec(scopedescription.FieldID, field.TypeUUID))
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

// ScopeDescriptionDeleteOne is the builder for deleting a single ScopeDescription entity.
type ScopeDescriptionDeleteOne struct {
	_d *ScopeDescriptionDelete
}

// Where appends a list predicates to the ScopeDescriptionDelete builder.
func (_d *ScopeDescriptionDeleteOne) Where(ps ...predicate.ScopeDescription) *ScopeDescriptionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScopeDescriptionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scopedescription.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScopeDescriptionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
