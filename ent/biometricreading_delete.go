// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"face-gateway/ent/biometricreading"
	"face-gateway/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BiometricReadingDelete is the builder for deleting a BiometricReading entity.
type BiometricReadingDelete struct {
	config
	hooks    []Hook
	mutation *BiometricReadingMutation
}

// Where appends a list predicates to the BiometricReadingDelete builder.
func (_d *BiometricReadingDelete) Where(ps ...predicate.BiometricReading) *BiometricReadingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BiometricReadingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BiometricReadingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BiometricReadingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(biometricreading.Table, sqlgraph.NewFieldSpec(biometricreading.FieldID, field.TypeInt))
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

// BiometricReadingDeleteOne is the builder for deleting a single BiometricReading entity.
type BiometricReadingDeleteOne struct {
	_d *BiometricReadingDelete
}

// Where appends a list predicates to the BiometricReadingDelete builder.
func (_d *BiometricReadingDeleteOne) Where(ps ...predicate.BiometricReading) *BiometricReadingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BiometricReadingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{biometricreading.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BiometricReadingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
