// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"face-gateway/ent/biometricreading"
	"face-gateway/ent/person"
	"face-gateway/ent/predicate"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PersonUpdate is the builder for updating Person entities.
type PersonUpdate struct {
	config
	hooks    []Hook
	mutation *PersonMutation
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdate) Where(ps ...predicate.Person) *PersonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFacialID sets the "facial_id" field.
func (_u *PersonUpdate) SetFacialID(v string) *PersonUpdate {
	_u.mutation.SetFacialID(v)
	return _u
}

// SetNillableFacialID sets the "facial_id" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFacialID(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFacialID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *PersonUpdate) SetFullName(v string) *PersonUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFullName(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetCourt sets the "court" field.
func (_u *PersonUpdate) SetCourt(v string) *PersonUpdate {
	_u.mutation.SetCourt(v)
	return _u
}

// SetNillableCourt sets the "court" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableCourt(v *string) *PersonUpdate {
	if v != nil {
		_u.SetCourt(*v)
	}
	return _u
}

// ClearCourt clears the value of the "court" field.
func (_u *PersonUpdate) ClearCourt() *PersonUpdate {
	_u.mutation.ClearCourt()
	return _u
}

// SetRegime sets the "regime" field.
func (_u *PersonUpdate) SetRegime(v string) *PersonUpdate {
	_u.mutation.SetRegime(v)
	return _u
}

// SetNillableRegime sets the "regime" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableRegime(v *string) *PersonUpdate {
	if v != nil {
		_u.SetRegime(*v)
	}
	return _u
}

// ClearRegime clears the value of the "regime" field.
func (_u *PersonUpdate) ClearRegime() *PersonUpdate {
	_u.mutation.ClearRegime()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *PersonUpdate) SetCaseNumber(v string) *PersonUpdate {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableCaseNumber(v *string) *PersonUpdate {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *PersonUpdate) ClearCaseNumber() *PersonUpdate {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *PersonUpdate) SetFacilityID(v string) *PersonUpdate {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFacilityID(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// AddReadingIDs adds the "readings" edge to the BiometricReading entity by IDs.
func (_u *PersonUpdate) AddReadingIDs(ids ...int) *PersonUpdate {
	_u.mutation.AddReadingIDs(ids...)
	return _u
}

// AddReadings adds the "readings" edges to the BiometricReading entity.
func (_u *PersonUpdate) AddReadings(v ...*BiometricReading) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReadingIDs(ids...)
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdate) Mutation() *PersonMutation {
	return _u.mutation
}

// ClearReadings clears all "readings" edges to the BiometricReading entity.
func (_u *PersonUpdate) ClearReadings() *PersonUpdate {
	_u.mutation.ClearReadings()
	return _u
}

// RemoveReadingIDs removes the "readings" edge to BiometricReading entities by IDs.
func (_u *PersonUpdate) RemoveReadingIDs(ids ...int) *PersonUpdate {
	_u.mutation.RemoveReadingIDs(ids...)
	return _u
}

// RemoveReadings removes "readings" edges to BiometricReading entities.
func (_u *PersonUpdate) RemoveReadings(v ...*BiometricReading) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReadingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdate) check() error {
	if v, ok := _u.mutation.FacialID(); ok {
		if err := person.FacialIDValidator(v); err != nil {
			return &ValidationError{Name: "facial_id", err: fmt.Errorf(`ent: validator failed for field "Person.facial_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := person.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Person.full_name": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FacialID(); ok {
		_spec.SetField(person.FieldFacialID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(person.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Court(); ok {
		_spec.SetField(person.FieldCourt, field.TypeString, value)
	}
	if _u.mutation.CourtCleared() {
		_spec.ClearField(person.FieldCourt, field.TypeString)
	}
	if value, ok := _u.mutation.Regime(); ok {
		_spec.SetField(person.FieldRegime, field.TypeString, value)
	}
	if _u.mutation.RegimeCleared() {
		_spec.ClearField(person.FieldRegime, field.TypeString)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(person.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(person.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.FacilityID(); ok {
		_spec.SetField(person.FieldFacilityID, field.TypeString, value)
	}
	if _u.mutation.ReadingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReadingsIDs(); len(nodes) > 0 && !_u.mutation.ReadingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReadingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonUpdateOne is the builder for updating a single Person entity.
type PersonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonMutation
}

// SetFacialID sets the "facial_id" field.
func (_u *PersonUpdateOne) SetFacialID(v string) *PersonUpdateOne {
	_u.mutation.SetFacialID(v)
	return _u
}

// SetNillableFacialID sets the "facial_id" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFacialID(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFacialID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *PersonUpdateOne) SetFullName(v string) *PersonUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFullName(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetCourt sets the "court" field.
func (_u *PersonUpdateOne) SetCourt(v string) *PersonUpdateOne {
	_u.mutation.SetCourt(v)
	return _u
}

// SetNillableCourt sets the "court" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableCourt(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetCourt(*v)
	}
	return _u
}

// ClearCourt clears the value of the "court" field.
func (_u *PersonUpdateOne) ClearCourt() *PersonUpdateOne {
	_u.mutation.ClearCourt()
	return _u
}

// SetRegime sets the "regime" field.
func (_u *PersonUpdateOne) SetRegime(v string) *PersonUpdateOne {
	_u.mutation.SetRegime(v)
	return _u
}

// SetNillableRegime sets the "regime" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableRegime(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetRegime(*v)
	}
	return _u
}

// ClearRegime clears the value of the "regime" field.
func (_u *PersonUpdateOne) ClearRegime() *PersonUpdateOne {
	_u.mutation.ClearRegime()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *PersonUpdateOne) SetCaseNumber(v string) *PersonUpdateOne {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableCaseNumber(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *PersonUpdateOne) ClearCaseNumber() *PersonUpdateOne {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *PersonUpdateOne) SetFacilityID(v string) *PersonUpdateOne {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFacilityID(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// AddReadingIDs adds the "readings" edge to the BiometricReading entity by IDs.
func (_u *PersonUpdateOne) AddReadingIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.AddReadingIDs(ids...)
	return _u
}

// AddReadings adds the "readings" edges to the BiometricReading entity.
func (_u *PersonUpdateOne) AddReadings(v ...*BiometricReading) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReadingIDs(ids...)
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdateOne) Mutation() *PersonMutation {
	return _u.mutation
}

// ClearReadings clears all "readings" edges to the BiometricReading entity.
func (_u *PersonUpdateOne) ClearReadings() *PersonUpdateOne {
	_u.mutation.ClearReadings()
	return _u
}

// RemoveReadingIDs removes the "readings" edge to BiometricReading entities by IDs.
func (_u *PersonUpdateOne) RemoveReadingIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.RemoveReadingIDs(ids...)
	return _u
}

// RemoveReadings removes "readings" edges to BiometricReading entities.
func (_u *PersonUpdateOne) RemoveReadings(v ...*BiometricReading) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReadingIDs(ids...)
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdateOne) Where(ps ...predicate.Person) *PersonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonUpdateOne) Select(field string, fields ...string) *PersonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Person entity.
func (_u *PersonUpdateOne) Save(ctx context.Context) (*Person, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdateOne) SaveX(ctx context.Context) *Person {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdateOne) check() error {
	if v, ok := _u.mutation.FacialID(); ok {
		if err := person.FacialIDValidator(v); err != nil {
			return &ValidationError{Name: "facial_id", err: fmt.Errorf(`ent: validator failed for field "Person.facial_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := person.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Person.full_name": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdateOne) sqlSave(ctx context.Context) (_node *Person, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Person.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, person.FieldID)
		for _, f := range fields {
			if !person.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != person.FieldID {
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
	if value, ok := _u.mutation.FacialID(); ok {
		_spec.SetField(person.FieldFacialID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(person.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Court(); ok {
		_spec.SetField(person.FieldCourt, field.TypeString, value)
	}
	if _u.mutation.CourtCleared() {
		_spec.ClearField(person.FieldCourt, field.TypeString)
	}
	if value, ok := _u.mutation.Regime(); ok {
		_spec.SetField(person.FieldRegime, field.TypeString, value)
	}
	if _u.mutation.RegimeCleared() {
		_spec.ClearField(person.FieldRegime, field.TypeString)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(person.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(person.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.FacilityID(); ok {
		_spec.SetField(person.FieldFacilityID, field.TypeString, value)
	}
	if _u.mutation.ReadingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReadingsIDs(); len(nodes) > 0 && !_u.mutation.ReadingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReadingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Person{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
