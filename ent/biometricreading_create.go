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

// BiometricReadingCreate is the builder for creating a BiometricReading entity.
type BiometricReadingCreate struct {
	config
	mutation *BiometricReadingMutation
	hooks    []Hook
}

// SetReadDate sets the "read_date" field.
func (_c *BiometricReadingCreate) SetReadDate(v string) *BiometricReadingCreate {
	_c.mutation.SetReadDate(v)
	return _c
}

// SetReadTime sets the "read_time" field.
func (_c *BiometricReadingCreate) SetReadTime(v string) *BiometricReadingCreate {
	_c.mutation.SetReadTime(v)
	return _c
}

// SetFacialID sets the "facial_id" field.
func (_c *BiometricReadingCreate) SetFacialID(v string) *BiometricReadingCreate {
	_c.mutation.SetFacialID(v)
	return _c
}

// SetSubjectName sets the "subject_name" field.
func (_c *BiometricReadingCreate) SetSubjectName(v string) *BiometricReadingCreate {
	_c.mutation.SetSubjectName(v)
	return _c
}

// SetCourt sets the "court" field.
func (_c *BiometricReadingCreate) SetCourt(v string) *BiometricReadingCreate {
	_c.mutation.SetCourt(v)
	return _c
}

// SetNillableCourt sets the "court" field if the given value is not nil.
func (_c *BiometricReadingCreate) SetNillableCourt(v *string) *BiometricReadingCreate {
	if v != nil {
		_c.SetCourt(*v)
	}
	return _c
}

// SetRegime sets the "regime" field.
func (_c *BiometricReadingCreate) SetRegime(v string) *BiometricReadingCreate {
	_c.mutation.SetRegime(v)
	return _c
}

// SetNillableRegime sets the "regime" field if the given value is not nil.
func (_c *BiometricReadingCreate) SetNillableRegime(v *string) *BiometricReadingCreate {
	if v != nil {
		_c.SetRegime(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *BiometricReadingCreate) SetKind(v string) *BiometricReadingCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *BiometricReadingCreate) SetNillableKind(v *string) *BiometricReadingCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetPrintReceipt sets the "print_receipt" field.
func (_c *BiometricReadingCreate) SetPrintReceipt(v string) *BiometricReadingCreate {
	_c.mutation.SetPrintReceipt(v)
	return _c
}

// SetNillablePrintReceipt sets the "print_receipt" field if the given value is not nil.
func (_c *BiometricReadingCreate) SetNillablePrintReceipt(v *string) *BiometricReadingCreate {
	if v != nil {
		_c.SetPrintReceipt(*v)
	}
	return _c
}

// SetCaseNumber sets the "case_number" field.
func (_c *BiometricReadingCreate) SetCaseNumber(v string) *BiometricReadingCreate {
	_c.mutation.SetCaseNumber(v)
	return _c
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_c *BiometricReadingCreate) SetNillableCaseNumber(v *string) *BiometricReadingCreate {
	if v != nil {
		_c.SetCaseNumber(*v)
	}
	return _c
}

// SetFacilityID sets the "facility_id" field.
func (_c *BiometricReadingCreate) SetFacilityID(v string) *BiometricReadingCreate {
	_c.mutation.SetFacilityID(v)
	return _c
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_c *BiometricReadingCreate) SetNillableFacilityID(v *string) *BiometricReadingCreate {
	if v != nil {
		_c.SetFacilityID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BiometricReadingCreate) SetCreatedAt(v time.Time) *BiometricReadingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BiometricReadingCreate) SetNillableCreatedAt(v *time.Time) *BiometricReadingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubjectID sets the "subject" edge to the Person entity by ID.
func (_c *BiometricReadingCreate) SetSubjectID(id uuid.UUID) *BiometricReadingCreate {
	_c.mutation.SetSubjectID(id)
	return _c
}

// SetNillableSubjectID sets the "subject" edge to the Person entity by ID if the given value is not nil.
func (_c *BiometricReadingCreate) SetNillableSubjectID(id *uuid.UUID) *BiometricReadingCreate {
	if id != nil {
		_c = _c.SetSubjectID(*id)
	}
	return _c
}

// SetSubject sets the "subject" edge to the Person entity.
func (_c *BiometricReadingCreate) SetSubject(v *Person) *BiometricReadingCreate {
	return _c.SetSubjectID(v.ID)
}

// Mutation returns the BiometricReadingMutation object of the builder.
func (_c *BiometricReadingCreate) Mutation() *BiometricReadingMutation {
	return _c.mutation
}

// Save creates the BiometricReading in the database.
func (_c *BiometricReadingCreate) Save(ctx context.Context) (*BiometricReading, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BiometricReadingCreate) SaveX(ctx context.Context) *BiometricReading {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BiometricReadingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BiometricReadingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BiometricReadingCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := biometricreading.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.PrintReceipt(); !ok {
		v := biometricreading.DefaultPrintReceipt
		_c.mutation.SetPrintReceipt(v)
	}
	if _, ok := _c.mutation.FacilityID(); !ok {
		v := biometricreading.DefaultFacilityID
		_c.mutation.SetFacilityID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := biometricreading.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BiometricReadingCreate) check() error {
	if _, ok := _c.mutation.ReadDate(); !ok {
		return &ValidationError{Name: "read_date", err: errors.New(`ent: missing required field "BiometricReading.read_date"`)}
	}
	if v, ok := _c.mutation.ReadDate(); ok {
		if err := biometricreading.ReadDateValidator(v); err != nil {
			return &ValidationError{Name: "read_date", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.read_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReadTime(); !ok {
		return &ValidationError{Name: "read_time", err: errors.New(`ent: missing required field "BiometricReading.read_time"`)}
	}
	if v, ok := _c.mutation.ReadTime(); ok {
		if err := biometricreading.ReadTimeValidator(v); err != nil {
			return &ValidationError{Name: "read_time", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.read_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FacialID(); !ok {
		return &ValidationError{Name: "facial_id", err: errors.New(`ent: missing required field "BiometricReading.facial_id"`)}
	}
	if v, ok := _c.mutation.FacialID(); ok {
		if err := biometricreading.FacialIDValidator(v); err != nil {
			return &ValidationError{Name: "facial_id", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.facial_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectName(); !ok {
		return &ValidationError{Name: "subject_name", err: errors.New(`ent: missing required field "BiometricReading.subject_name"`)}
	}
	if v, ok := _c.mutation.SubjectName(); ok {
		if err := biometricreading.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.subject_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "BiometricReading.kind"`)}
	}
	if _, ok := _c.mutation.PrintReceipt(); !ok {
		return &ValidationError{Name: "print_receipt", err: errors.New(`ent: missing required field "BiometricReading.print_receipt"`)}
	}
	if _, ok := _c.mutation.FacilityID(); !ok {
		return &ValidationError{Name: "facility_id", err: errors.New(`ent: missing required field "BiometricReading.facility_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BiometricReading.created_at"`)}
	}
	return nil
}

func (_c *BiometricReadingCreate) sqlSave(ctx context.Context) (*BiometricReading, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BiometricReadingCreate) createSpec() (*BiometricReading, *sqlgraph.CreateSpec) {
	var (
		_node = &BiometricReading{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(biometricreading.Table, sqlgraph.NewFieldSpec(biometricreading.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ReadDate(); ok {
		_spec.SetField(biometricreading.FieldReadDate, field.TypeString, value)
		_node.ReadDate = value
	}
	if value, ok := _c.mutation.ReadTime(); ok {
		_spec.SetField(biometricreading.FieldReadTime, field.TypeString, value)
		_node.ReadTime = value
	}
	if value, ok := _c.mutation.FacialID(); ok {
		_spec.SetField(biometricreading.FieldFacialID, field.TypeString, value)
		_node.FacialID = value
	}
	if value, ok := _c.mutation.SubjectName(); ok {
		_spec.SetField(biometricreading.FieldSubjectName, field.TypeString, value)
		_node.SubjectName = value
	}
	if value, ok := _c.mutation.Court(); ok {
		_spec.SetField(biometricreading.FieldCourt, field.TypeString, value)
		_node.Court = value
	}
	if value, ok := _c.mutation.Regime(); ok {
		_spec.SetField(biometricreading.FieldRegime, field.TypeString, value)
		_node.Regime = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(biometricreading.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.PrintReceipt(); ok {
		_spec.SetField(biometricreading.FieldPrintReceipt, field.TypeString, value)
		_node.PrintReceipt = value
	}
	if value, ok := _c.mutation.CaseNumber(); ok {
		_spec.SetField(biometricreading.FieldCaseNumber, field.TypeString, value)
		_node.CaseNumber = value
	}
	if value, ok := _c.mutation.FacilityID(); ok {
		_spec.SetField(biometricreading.FieldFacilityID, field.TypeString, value)
		_node.FacilityID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(biometricreading.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biometricreading.SubjectTable,
			Columns: []string{biometricreading.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.person_readings = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BiometricReadingCreateBulk is the builder for creating many BiometricReading entities in bulk.
type BiometricReadingCreateBulk struct {
	config
	err      error
	builders []*BiometricReadingCreate
}

// Save creates the BiometricReading entities in the database.
func (_c *BiometricReadingCreateBulk) Save(ctx context.Context) ([]*BiometricReading, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BiometricReading, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BiometricReadingMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *BiometricReadingCreateBulk) SaveX(ctx context.Context) []*BiometricReading {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BiometricReadingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BiometricReadingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
