// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"face-gateway/ent/devicecommandlog"
	"face-gateway/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// DeviceCommandLogDelete is the builder for deleting a DeviceCommandLog entity.
type DeviceCommandLogDelete struct {
	config
	hooks    []Hook
	mutation *DeviceCommandLogMutation
}

// Where appends a list predicates to the DeviceCommandLogDelete builder.
func (_d *DeviceCommandLogDelete) Where(ps ...predicate.DeviceCommandLog) *DeviceCommandLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeviceCommandLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeviceCommandLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeviceCommandLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(devicecommandlog.Table, sqlgraph.NewFieldSpec(devicecommandlog.FieldID, field.TypeUUID))
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

// DeviceCommandLogDeleteOne is the builder for deleting a single DeviceCommandLog entity.
type DeviceCommandLogDeleteOne struct {
	_d *DeviceCommandLogDelete
}

// Where appends a list predicates to the DeviceCommandLogDelete builder.
func (_d *DeviceCommandLogDeleteOne) Where(ps ...predicate.DeviceCommandLog) *DeviceCommandLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeviceCommandLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{devicecommandlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeviceCommandLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
