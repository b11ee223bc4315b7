// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"face-gateway/ent/biometricreading"
	"face-gateway/ent/person"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PersonCreate is the builder for creating a Person entity.
type PersonCreate struct {
	config
	mutation *PersonMutation
	hooks    []Hook
}

// SetFacialID sets the "facial_id" field.
func (_c *PersonCreate) SetFacialID(v string) *PersonCreate {
	_c.mutation.SetFacialID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *PersonCreate) SetFullName(v string) *PersonCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetCourt sets the "court" field.
func (_c *PersonCreate) SetCourt(v string) *PersonCreate {
	_c.mutation.SetCourt(v)
	return _c
}

// SetNillableCourt sets the "court" field if the given value is not nil.
func (_c *PersonCreate) SetNillableCourt(v *string) *PersonCreate {
	if v != nil {
		_c.SetCourt(*v)
	}
	return _c
}

// SetRegime sets the "regime" field.
func (_c *PersonCreate) SetRegime(v string) *PersonCreate {
	_c.mutation.SetRegime(v)
	return _c
}

// SetNillableRegime sets the "regime" field if the given value is not nil.
func (_c *PersonCreate) SetNillableRegime(v *string) *PersonCreate {
	if v != nil {
		_c.SetRegime(*v)
	}
	return _c
}

// SetCaseNumber sets the "case_number" field.
func (_c *PersonCreate) SetCaseNumber(v string) *PersonCreate {
	_c.mutation.SetCaseNumber(v)
	return _c
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_c *PersonCreate) SetNillableCaseNumber(v *string) *PersonCreate {
	if v != nil {
		_c.SetCaseNumber(*v)
	}
	return _c
}

// SetFacilityID sets the "facility_id" field.
func (_c *PersonCreate) SetFacilityID(v string) *PersonCreate {
	_c.mutation.SetFacilityID(v)
	return _c
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_c *PersonCreate) SetNillableFacilityID(v *string) *PersonCreate {
	if v != nil {
		_c.SetFacilityID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonCreate) SetCreatedAt(v time.Time) *PersonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonCreate) SetNillableCreatedAt(v *time.Time) *PersonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonCreate) SetID(v uuid.UUID) *PersonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PersonCreate) SetNillableID(v *uuid.UUID) *PersonCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddReadingIDs adds the "readings" edge to the BiometricReading entity by IDs.
func (_c *PersonCreate) AddReadingIDs(ids ...int) *PersonCreate {
	_c.mutation.AddReadingIDs(ids...)
	return _c
}

// AddReadings adds the "readings" edges to the BiometricReading entity.
func (_c *PersonCreate) AddReadings(v ...*BiometricReading) *PersonCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReadingIDs(ids...)
}

// Mutation returns the PersonMutation object of the builder.
func (_c *PersonCreate) Mutation() *PersonMutation {
	return _c.mutation
}

// Save creates the Person in the database.
func (_c *PersonCreate) Save(ctx context.Context) (*Person, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonCreate) SaveX(ctx context.Context) *Person {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonCreate) defaults() {
	if _, ok := _c.mutation.FacilityID(); !ok {
		v := person.DefaultFacilityID
		_c.mutation.SetFacilityID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := person.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := person.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonCreate) check() error {
	if _, ok := _c.mutation.FacialID(); !ok {
		return &ValidationError{Name: "facial_id", err: errors.New(`ent: missing required field "Person.facial_id"`)}
	}
	if v, ok := _c.mutation.FacialID(); ok {
		if err := person.FacialIDValidator(v); err != nil {
			return &ValidationError{Name: "facial_id", err: fmt.Errorf(`ent: validator failed for field "Person.facial_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Person.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := person.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Person.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FacilityID(); !ok {
		return &ValidationError{Name: "facility_id", err: errors.New(`ent: missing required field "Person.facility_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Person.created_at"`)}
	}
	return nil
}

func (_c *PersonCreate) sqlSave(ctx context.Context) (*Person, error) {
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

func (_c *PersonCreate) createSpec() (*Person, *sqlgraph.CreateSpec) {
	var (
		_node = &Person{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(person.Table, sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FacialID(); ok {
		_spec.SetField(person.FieldFacialID, field.TypeString, value)
		_node.FacialID = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(person.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Court(); ok {
		_spec.SetField(person.FieldCourt, field.TypeString, value)
		_node.Court = value
	}
	if value, ok := _c.mutation.Regime(); ok {
		_spec.SetField(person.FieldRegime, field.TypeString, value)
		_node.Regime = value
	}
	if value, ok := _c.mutation.CaseNumber(); ok {
		_spec.SetField(person.FieldCaseNumber, field.TypeString, value)
		_node.CaseNumber = value
	}
	if value, ok := _c.mutation.FacilityID(); ok {
		_spec.SetField(person.FieldFacilityID, field.TypeString, value)
		_node.FacilityID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(person.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReadingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.ReadingsTable,
			Columns: []string{person.ReadingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biometricreading.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PersonCreateBulk is the builder for creating many Person entities in bulk.
type PersonCreateBulk struct {
	config
	err      error
	builders []*PersonCreate
}

// Save creates the Person entities in the database.
func (_c *PersonCreateBulk) Save(ctx context.Context) ([]*Person, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Person, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonMutation)
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
func (_c *PersonCreateBulk) SaveX(ctx context.Context) []*Person {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
