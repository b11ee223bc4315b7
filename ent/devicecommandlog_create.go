// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"face-gateway/ent/devicecommandlog"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// DeviceCommandLogCreate is the builder for creating a DeviceCommandLog entity.
type DeviceCommandLogCreate struct {
	config
	mutation *DeviceCommandLogMutation
	hooks    []Hook
}

// SetCommand sets the "command" field.
func (_c *DeviceCommandLogCreate) SetCommand(v string) *DeviceCommandLogCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeviceCommandLogCreate) SetStatus(v string) *DeviceCommandLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *DeviceCommandLogCreate) SetDetail(v string) *DeviceCommandLogCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *DeviceCommandLogCreate) SetNillableDetail(v *string) *DeviceCommandLogCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetOperator sets the "operator" field.
func (_c *DeviceCommandLogCreate) SetOperator(v string) *DeviceCommandLogCreate {
	_c.mutation.SetOperator(v)
	return _c
}

// SetNillableOperator sets the "operator" field if the given value is not nil.
func (_c *DeviceCommandLogCreate) SetNillableOperator(v *string) *DeviceCommandLogCreate {
	if v != nil {
		_c.SetOperator(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeviceCommandLogCreate) SetCreatedAt(v time.Time) *DeviceCommandLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeviceCommandLogCreate) SetNillableCreatedAt(v *time.Time) *DeviceCommandLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeviceCommandLogCreate) SetID(v uuid.UUID) *DeviceCommandLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DeviceCommandLogCreate) SetNillableID(v *uuid.UUID) *DeviceCommandLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DeviceCommandLogMutation object of the builder.
func (_c *DeviceCommandLogCreate) Mutation() *DeviceCommandLogMutation {
	return _c.mutation
}

// Save creates the DeviceCommandLog in the database.
func (_c *DeviceCommandLogCreate) Save(ctx context.Context) (*DeviceCommandLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeviceCommandLogCreate) SaveX(ctx context.Context) *DeviceCommandLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceCommandLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceCommandLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeviceCommandLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := devicecommandlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := devicecommandlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeviceCommandLogCreate) check() error {
	if _, ok := _c.mutation.Command(); !ok {
		return &ValidationError{Name: "command", err: errors.New(`ent: missing required field "DeviceCommandLog.command"`)}
	}
	if v, ok := _c.mutation.Command(); ok {
		if err := devicecommandlog.CommandValidator(v); err != nil {
			return &ValidationError{Name: "command", err: fmt.Errorf(`ent: validator failed for field "DeviceCommandLog.command": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DeviceCommandLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := devicecommandlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeviceCommandLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeviceCommandLog.created_at"`)}
	}
	return nil
}

func (_c *DeviceCommandLogCreate) sqlSave(ctx context.Context) (*DeviceCommandLog, error) {
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

func (_c *DeviceCommandLogCreate) createSpec() (*DeviceCommandLog, *sqlgraph.CreateSpec) {
	var (
		_node = &DeviceCommandLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(devicecommandlog.Table, sqlgraph.NewFieldSpec(devicecommandlog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(devicecommandlog.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(devicecommandlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(devicecommandlog.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Operator(); ok {
		_spec.SetField(devicecommandlog.FieldOperator, field.TypeString, value)
		_node.Operator = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(devicecommandlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DeviceCommandLogCreateBulk is the builder for creating many DeviceCommandLog entities in bulk.
type DeviceCommandLogCreateBulk struct {
	config
	err      error
	builders []*DeviceCommandLogCreate
}

// Save creates the DeviceCommandLog entities in the database.
func (_c *DeviceCommandLogCreateBulk) Save(ctx context.Context) ([]*DeviceCommandLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeviceCommandLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeviceCommandLogMutation)
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
func (_c *DeviceCommandLogCreateBulk) SaveX(ctx context.Context) []*DeviceCommandLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceCommandLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceCommandLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
