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
	"github.com/google/uuid"
)

// BiometricReadingUpdate is the builder for updating BiometricReading entities.
type BiometricReadingUpdate struct {
	config
	hooks    []Hook
	mutation *BiometricReadingMutation
}

// Where appends a list predicates to the BiometricReadingUpdate builder.
func (_u *BiometricReadingUpdate) Where(ps ...predicate.BiometricReading) *BiometricReadingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReadDate sets the "read_date" field.
func (_u *BiometricReadingUpdate) SetReadDate(v string) *BiometricReadingUpdate {
	_u.mutation.SetReadDate(v)
	return _u
}

// SetNillableReadDate sets the "read_date" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableReadDate(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetReadDate(*v)
	}
	return _u
}

// SetReadTime sets the "read_time" field.
func (_u *BiometricReadingUpdate) SetReadTime(v string) *BiometricReadingUpdate {
	_u.mutation.SetReadTime(v)
	return _u
}

// SetNillableReadTime sets the "read_time" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableReadTime(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetReadTime(*v)
	}
	return _u
}

// SetFacialID sets the "facial_id" field.
func (_u *BiometricReadingUpdate) SetFacialID(v string) *BiometricReadingUpdate {
	_u.mutation.SetFacialID(v)
	return _u
}

// SetNillableFacialID sets the "facial_id" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableFacialID(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetFacialID(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *BiometricReadingUpdate) SetSubjectName(v string) *BiometricReadingUpdate {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableSubjectName(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetCourt sets the "court" field.
func (_u *BiometricReadingUpdate) SetCourt(v string) *BiometricReadingUpdate {
	_u.mutation.SetCourt(v)
	return _u
}

// SetNillableCourt sets the "court" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableCourt(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetCourt(*v)
	}
	return _u
}

// ClearCourt clears the value of the "court" field.
func (_u *BiometricReadingUpdate) ClearCourt() *BiometricReadingUpdate {
	_u.mutation.ClearCourt()
	return _u
}

// SetRegime sets the "regime" field.
func (_u *BiometricReadingUpdate) SetRegime(v string) *BiometricReadingUpdate {
	_u.mutation.SetRegime(v)
	return _u
}

// SetNillableRegime sets the "regime" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableRegime(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetRegime(*v)
	}
	return _u
}

// ClearRegime clears the value of the "regime" field.
func (_u *BiometricReadingUpdate) ClearRegime() *BiometricReadingUpdate {
	_u.mutation.ClearRegime()
	return _u
}

// SetKind sets the "kind" field.
func (_u *BiometricReadingUpdate) SetKind(v string) *BiometricReadingUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableKind(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPrintReceipt sets the "print_receipt" field.
func (_u *BiometricReadingUpdate) SetPrintReceipt(v string) *BiometricReadingUpdate {
	_u.mutation.SetPrintReceipt(v)
	return _u
}

// SetNillablePrintReceipt sets the "print_receipt" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillablePrintReceipt(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetPrintReceipt(*v)
	}
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *BiometricReadingUpdate) SetCaseNumber(v string) *BiometricReadingUpdate {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableCaseNumber(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *BiometricReadingUpdate) ClearCaseNumber() *BiometricReadingUpdate {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *BiometricReadingUpdate) SetFacilityID(v string) *BiometricReadingUpdate {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableFacilityID(v *string) *BiometricReadingUpdate {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject" edge to the Person entity by ID.
func (_u *BiometricReadingUpdate) SetSubjectID(id uuid.UUID) *BiometricReadingUpdate {
	_u.mutation.SetSubjectID(id)
	return _u
}

// SetNillableSubjectID sets the "subject" edge to the Person entity by ID if the given value is not nil.
func (_u *BiometricReadingUpdate) SetNillableSubjectID(id *uuid.UUID) *BiometricReadingUpdate {
	if id != nil {
		_u = _u.SetSubjectID(*id)
	}
	return _u
}

// SetSubject sets the "subject" edge to the Person entity.
func (_u *BiometricReadingUpdate) SetSubject(v *Person) *BiometricReadingUpdate {
	return _u.SetSubjectID(v.ID)
}

// Mutation returns the BiometricReadingMutation object of the builder.
func (_u *BiometricReadingUpdate) Mutation() *BiometricReadingMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Person entity.
func (_u *BiometricReadingUpdate) ClearSubject() *BiometricReadingUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BiometricReadingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiometricReadingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BiometricReadingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiometricReadingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiometricReadingUpdate) check() error {
	if v, ok := _u.mutation.ReadDate(); ok {
		if err := biometricreading.ReadDateValidator(v); err != nil {
			return &ValidationError{Name: "read_date", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.read_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReadTime(); ok {
		if err := biometricreading.ReadTimeValidator(v); err != nil {
			return &ValidationError{Name: "read_time", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.read_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacialID(); ok {
		if err := biometricreading.FacialIDValidator(v); err != nil {
			return &ValidationError{Name: "facial_id", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.facial_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectName(); ok {
		if err := biometricreading.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.subject_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BiometricReadingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biometricreading.Table, biometricreading.Columns, sqlgraph.NewFieldSpec(biometricreading.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReadDate(); ok {
		_spec.SetField(biometricreading.FieldReadDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadTime(); ok {
		_spec.SetField(biometricreading.FieldReadTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacialID(); ok {
		_spec.SetField(biometricreading.FieldFacialID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(biometricreading.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Court(); ok {
		_spec.SetField(biometricreading.FieldCourt, field.TypeString, value)
	}
	if _u.mutation.CourtCleared() {
		_spec.ClearField(biometricreading.FieldCourt, field.TypeString)
	}
	if value, ok := _u.mutation.Regime(); ok {
		_spec.SetField(biometricreading.FieldRegime, field.TypeString, value)
	}
	if _u.mutation.RegimeCleared() {
		_spec.ClearField(biometricreading.FieldRegime, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(biometricreading.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrintReceipt(); ok {
		_spec.SetField(biometricreading.FieldPrintReceipt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(biometricreading.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(biometricreading.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.FacilityID(); ok {
		_spec.SetField(biometricreading.FieldFacilityID, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biometricreading.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BiometricReadingUpdateOne is the builder for updating a single BiometricReading entity.
type BiometricReadingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BiometricReadingMutation
}

// SetReadDate sets the "read_date" field.
func (_u *BiometricReadingUpdateOne) SetReadDate(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetReadDate(v)
	return _u
}

// SetNillableReadDate sets the "read_date" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableReadDate(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetReadDate(*v)
	}
	return _u
}

// SetReadTime sets the "read_time" field.
func (_u *BiometricReadingUpdateOne) SetReadTime(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetReadTime(v)
	return _u
}

// SetNillableReadTime sets the "read_time" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableReadTime(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetReadTime(*v)
	}
	return _u
}

// SetFacialID sets the "facial_id" field.
func (_u *BiometricReadingUpdateOne) SetFacialID(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetFacialID(v)
	return _u
}

// SetNillableFacialID sets the "facial_id" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableFacialID(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetFacialID(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *BiometricReadingUpdateOne) SetSubjectName(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableSubjectName(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetCourt sets the "court" field.
func (_u *BiometricReadingUpdateOne) SetCourt(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetCourt(v)
	return _u
}

// SetNillableCourt sets the "court" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableCourt(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetCourt(*v)
	}
	return _u
}

// ClearCourt clears the value of the "court" field.
func (_u *BiometricReadingUpdateOne) ClearCourt() *BiometricReadingUpdateOne {
	_u.mutation.ClearCourt()
	return _u
}

// SetRegime sets the "regime" field.
func (_u *BiometricReadingUpdateOne) SetRegime(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetRegime(v)
	return _u
}

// SetNillableRegime sets the "regime" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableRegime(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetRegime(*v)
	}
	return _u
}

// ClearRegime clears the value of the "regime" field.
func (_u *BiometricReadingUpdateOne) ClearRegime() *BiometricReadingUpdateOne {
	_u.mutation.ClearRegime()
	return _u
}

// SetKind sets the "kind" field.
func (_u *BiometricReadingUpdateOne) SetKind(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableKind(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPrintReceipt sets the "print_receipt" field.
func (_u *BiometricReadingUpdateOne) SetPrintReceipt(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetPrintReceipt(v)
	return _u
}

// SetNillablePrintReceipt sets the "print_receipt" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillablePrintReceipt(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetPrintReceipt(*v)
	}
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *BiometricReadingUpdateOne) SetCaseNumber(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableCaseNumber(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *BiometricReadingUpdateOne) ClearCaseNumber() *BiometricReadingUpdateOne {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *BiometricReadingUpdateOne) SetFacilityID(v string) *BiometricReadingUpdateOne {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableFacilityID(v *string) *BiometricReadingUpdateOne {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject" edge to the Person entity by ID.
func (_u *BiometricReadingUpdateOne) SetSubjectID(id uuid.UUID) *BiometricReadingUpdateOne {
	_u.mutation.SetSubjectID(id)
	return _u
}

// SetNillableSubjectID sets the "subject" edge to the Person entity by ID if the given value is not nil.
func (_u *BiometricReadingUpdateOne) SetNillableSubjectID(id *uuid.UUID) *BiometricReadingUpdateOne {
	if id != nil {
		_u = _u.SetSubjectID(*id)
	}
	return _u
}

// SetSubject sets the "subject" edge to the Person entity.
func (_u *BiometricReadingUpdateOne) SetSubject(v *Person) *BiometricReadingUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// Mutation returns the BiometricReadingMutation object of the builder.
func (_u *BiometricReadingUpdateOne) Mutation() *BiometricReadingMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Person entity.
func (_u *BiometricReadingUpdateOne) ClearSubject() *BiometricReadingUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// Where appends a list predicates to the BiometricReadingUpdate builder.
func (_u *BiometricReadingUpdateOne) Where(ps ...predicate.BiometricReading) *BiometricReadingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BiometricReadingUpdateOne) Select(field string, fields ...string) *BiometricReadingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BiometricReading entity.
func (_u *BiometricReadingUpdateOne) Save(ctx context.Context) (*BiometricReading, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiometricReadingUpdateOne) SaveX(ctx context.Context) *BiometricReading {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BiometricReadingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiometricReadingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiometricReadingUpdateOne) check() error {
	if v, ok := _u.mutation.ReadDate(); ok {
		if err := biometricreading.ReadDateValidator(v); err != nil {
			return &ValidationError{Name: "read_date", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.read_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReadTime(); ok {
		if err := biometricreading.ReadTimeValidator(v); err != nil {
			return &ValidationError{Name: "read_time", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.read_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacialID(); ok {
		if err := biometricreading.FacialIDValidator(v); err != nil {
			return &ValidationError{Name: "facial_id", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.facial_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectName(); ok {
		if err := biometricreading.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "BiometricReading.subject_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BiometricReadingUpdateOne) sqlSave(ctx context.Context) (_node *BiometricReading, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biometricreading.Table, biometricreading.Columns, sqlgraph.NewFieldSpec(biometricreading.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BiometricReading.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, biometricreading.FieldID)
		for _, f := range fields {
			if !biometricreading.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != biometricreading.FieldID {
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
	if value, ok := _u.mutation.ReadDate(); ok {
		_spec.SetField(biometricreading.FieldReadDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadTime(); ok {
		_spec.SetField(biometricreading.FieldReadTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacialID(); ok {
		_spec.SetField(biometricreading.FieldFacialID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(biometricreading.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Court(); ok {
		_spec.SetField(biometricreading.FieldCourt, field.TypeString, value)
	}
	if _u.mutation.CourtCleared() {
		_spec.ClearField(biometricreading.FieldCourt, field.TypeString)
	}
	if value, ok := _u.mutation.Regime(); ok {
		_spec.SetField(biometricreading.FieldRegime, field.TypeString, value)
	}
	if _u.mutation.RegimeCleared() {
		_spec.ClearField(biometricreading.FieldRegime, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(biometricreading.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrintReceipt(); ok {
		_spec.SetField(biometricreading.FieldPrintReceipt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(biometricreading.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(biometricreading.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.FacilityID(); ok {
		_spec.SetField(biometricreading.FieldFacilityID, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BiometricReading{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biometricreading.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
