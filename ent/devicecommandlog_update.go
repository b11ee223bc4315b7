// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"face-gateway/ent/devicecommandlog"
	"face-gateway/ent/predicate"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// DeviceCommandLogUpdate is the builder for updating DeviceCommandLog entities.
type DeviceCommandLogUpdate struct {
	config
	hooks    []Hook
	mutation *DeviceCommandLogMutation
}

// Where appends a list predicates to the DeviceCommandLogUpdate builder.
func (_u *DeviceCommandLogUpdate) Where(ps ...predicate.DeviceCommandLog) *DeviceCommandLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommand sets the "command" field.
func (_u *DeviceCommandLogUpdate) SetCommand(v string) *DeviceCommandLogUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *DeviceCommandLogUpdate) SetNillableCommand(v *string) *DeviceCommandLogUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeviceCommandLogUpdate) SetStatus(v string) *DeviceCommandLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeviceCommandLogUpdate) SetNillableStatus(v *string) *DeviceCommandLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *DeviceCommandLogUpdate) SetDetail(v string) *DeviceCommandLogUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *DeviceCommandLogUpdate) SetNillableDetail(v *string) *DeviceCommandLogUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *DeviceCommandLogUpdate) ClearDetail() *DeviceCommandLogUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetOperator sets the "operator" field.
func (_u *DeviceCommandLogUpdate) SetOperator(v string) *DeviceCommandLogUpdate {
	_u.mutation.SetOperator(v)
	return _u
}

// SetNillableOperator sets the "operator" field if the given value is not nil.
func (_u *DeviceCommandLogUpdate) SetNillableOperator(v *string) *DeviceCommandLogUpdate {
	if v != nil {
		_u.SetOperator(*v)
	}
	return _u
}

// ClearOperator clears the value of the "operator" field.
func (_u *DeviceCommandLogUpdate) ClearOperator() *DeviceCommandLogUpdate {
	_u.mutation.ClearOperator()
	return _u
}

// Mutation returns the DeviceCommandLogMutation object of the builder.
func (_u *DeviceCommandLogUpdate) Mutation() *DeviceCommandLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeviceCommandLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceCommandLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeviceCommandLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceCommandLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceCommandLogUpdate) check() error {
	if v, ok := _u.mutation.Command(); ok {
		if err := devicecommandlog.CommandValidator(v); err != nil {
			return &ValidationError{Name: "command", err: fmt.Errorf(`ent: validator failed for field "DeviceCommandLog.command": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := devicecommandlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeviceCommandLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceCommandLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicecommandlog.Table, devicecommandlog.Columns, sqlgraph.NewFieldSpec(devicecommandlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(devicecommandlog.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(devicecommandlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(devicecommandlog.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(devicecommandlog.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Operator(); ok {
		_spec.SetField(devicecommandlog.FieldOperator, field.TypeString, value)
	}
	if _u.mutation.OperatorCleared() {
		_spec.ClearField(devicecommandlog.FieldOperator, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicecommandlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeviceCommandLogUpdateOne is the builder for updating a single DeviceCommandLog entity.
type DeviceCommandLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeviceCommandLogMutation
}

// SetCommand sets the "command" field.
func (_u *DeviceCommandLogUpdateOne) SetCommand(v string) *DeviceCommandLogUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *DeviceCommandLogUpdateOne) SetNillableCommand(v *string) *DeviceCommandLogUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeviceCommandLogUpdateOne) SetStatus(v string) *DeviceCommandLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeviceCommandLogUpdateOne) SetNillableStatus(v *string) *DeviceCommandLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *DeviceCommandLogUpdateOne) SetDetail(v string) *DeviceCommandLogUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *DeviceCommandLogUpdateOne) SetNillableDetail(v *string) *DeviceCommandLogUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *DeviceCommandLogUpdateOne) ClearDetail() *DeviceCommandLogUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetOperator sets the "operator" field.
func (_u *DeviceCommandLogUpdateOne) SetOperator(v string) *DeviceCommandLogUpdateOne {
	_u.mutation.SetOperator(v)
	return _u
}

// SetNillableOperator sets the "operator" field if the given value is not nil.
func (_u *DeviceCommandLogUpdateOne) SetNillableOperator(v *string) *DeviceCommandLogUpdateOne {
	if v != nil {
		_u.SetOperator(*v)
	}
	return _u
}

// ClearOperator clears the value of the "operator" field.
func (_u *DeviceCommandLogUpdateOne) ClearOperator() *DeviceCommandLogUpdateOne {
	_u.mutation.ClearOperator()
	return _u
}

// Mutation returns the DeviceCommandLogMutation object of the builder.
func (_u *DeviceCommandLogUpdateOne) Mutation() *DeviceCommandLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeviceCommandLogUpdate builder.
func (_u *DeviceCommandLogUpdateOne) Where(ps ...predicate.DeviceCommandLog) *DeviceCommandLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeviceCommandLogUpdateOne) Select(field string, fields ...string) *DeviceCommandLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeviceCommandLog entity.
func (_u *DeviceCommandLogUpdateOne) Save(ctx context.Context) (*DeviceCommandLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceCommandLogUpdateOne) SaveX(ctx context.Context) *DeviceCommandLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeviceCommandLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceCommandLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceCommandLogUpdateOne) check() error {
	if v, ok := _u.mutation.Command(); ok {
		if err := devicecommandlog.CommandValidator(v); err != nil {
			return &ValidationError{Name: "command", err: fmt.Errorf(`ent: validator failed for field "DeviceCommandLog.command": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := devicecommandlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeviceCommandLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceCommandLogUpdateOne) sqlSave(ctx context.Context) (_node *DeviceCommandLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicecommandlog.Table, devicecommandlog.Columns, sqlgraph.NewFieldSpec(devicecommandlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeviceCommandLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, devicecommandlog.FieldID)
		for _, f := range fields {
			if !devicecommandlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != devicecommandlog.FieldID {
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
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(devicecommandlog.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(devicecommandlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(devicecommandlog.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(devicecommandlog.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Operator(); ok {
		_spec.SetField(devicecommandlog.FieldOperator, field.TypeString, value)
	}
	if _u.mutation.OperatorCleared() {
		_spec.ClearField(devicecommandlog.FieldOperator, field.TypeString)
	}
	_node = &DeviceCommandLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicecommandlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
