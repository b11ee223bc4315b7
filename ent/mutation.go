// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"face-gateway/ent/biometricreading"
	"face-gateway/ent/devicecommandlog"
	"face-gateway/ent/person"
	"face-gateway/ent/predicate"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBiometricReading = "BiometricReading"
	TypeDeviceCommandLog = "DeviceCommandLog"
	TypePerson           = "Person"
)

// BiometricReadingMutation represents an operation that mutates the BiometricReading nodes in the graph.
type BiometricReadingMutation struct {
	config
	op             Op
	typ            string
	id             *int
	read_date      *string
	read_time      *string
	facial_id      *string
	subject_name   *string
	court          *string
	regime         *string
	kind           *string
	print_receipt  *string
	case_number    *string
	facility_id    *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	subject        *uuid.UUID
	clearedsubject bool
	done           bool
	oldValue       func(context.Context) (*BiometricReading, error)
	predicates     []predicate.BiometricReading
}

var _ ent.Mutation = (*BiometricReadingMutation)(nil)

// biometricreadingOption allows management of the mutation configuration using functional options.
type biometricreadingOption func(*BiometricReadingMutation)

// newBiometricReadingMutation creates new mutation for the BiometricReading entity.
func newBiometricReadingMutation(c config, op Op, opts ...biometricreadingOption) *BiometricReadingMutation {
	m := &BiometricReadingMutation{
		config:        c,
		op:            op,
		typ:           TypeBiometricReading,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBiometricReadingID sets the ID field of the mutation.
func withBiometricReadingID(id int) biometricreadingOption {
	return func(m *BiometricReadingMutation) {
		var (
			err   error
			once  sync.Once
			value *BiometricReading
		)
		m.oldValue = func(ctx context.Context) (*BiometricReading, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BiometricReading.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBiometricReading sets the old BiometricReading of the mutation.
func withBiometricReading(node *BiometricReading) biometricreadingOption {
	return func(m *BiometricReadingMutation) {
		m.oldValue = func(context.Context) (*BiometricReading, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BiometricReadingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BiometricReadingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BiometricReadingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BiometricReadingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BiometricReading.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReadDate sets the "read_date" field.
func (m *BiometricReadingMutation) SetReadDate(s string) {
	m.read_date = &s
}

// ReadDate returns the value of the "read_date" field in the mutation.
func (m *BiometricReadingMutation) ReadDate() (r string, exists bool) {
	v := m.read_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReadDate returns the old "read_date" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldReadDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadDate: %w", err)
	}
	return oldValue.ReadDate, nil
}

// ResetReadDate resets all changes to the "read_date" field.
func (m *BiometricReadingMutation) ResetReadDate() {
	m.read_date = nil
}

// SetReadTime sets the "read_time" field.
func (m *BiometricReadingMutation) SetReadTime(s string) {
	m.read_time = &s
}

// ReadTime returns the value of the "read_time" field in the mutation.
func (m *BiometricReadingMutation) ReadTime() (r string, exists bool) {
	v := m.read_time
	if v == nil {
		return
	}
	return *v, true
}

// OldReadTime returns the old "read_time" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldReadTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadTime: %w", err)
	}
	return oldValue.ReadTime, nil
}

// ResetReadTime resets all changes to the "read_time" field.
func (m *BiometricReadingMutation) ResetReadTime() {
	m.read_time = nil
}

// SetFacialID sets the "facial_id" field.
func (m *BiometricReadingMutation) SetFacialID(s string) {
	m.facial_id = &s
}

// FacialID returns the value of the "facial_id" field in the mutation.
func (m *BiometricReadingMutation) FacialID() (r string, exists bool) {
	v := m.facial_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFacialID returns the old "facial_id" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldFacialID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacialID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacialID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacialID: %w", err)
	}
	return oldValue.FacialID, nil
}

// ResetFacialID resets all changes to the "facial_id" field.
func (m *BiometricReadingMutation) ResetFacialID() {
	m.facial_id = nil
}

// SetSubjectName sets the "subject_name" field.
func (m *BiometricReadingMutation) SetSubjectName(s string) {
	m.subject_name = &s
}

// SubjectName returns the value of the "subject_name" field in the mutation.
func (m *BiometricReadingMutation) SubjectName() (r string, exists bool) {
	v := m.subject_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectName returns the old "subject_name" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldSubjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectName: %w", err)
	}
	return oldValue.SubjectName, nil
}

// ResetSubjectName resets all changes to the "subject_name" field.
func (m *BiometricReadingMutation) ResetSubjectName() {
	m.subject_name = nil
}

// SetCourt sets the "court" field.
func (m *BiometricReadingMutation) SetCourt(s string) {
	m.court = &s
}

// Court returns the value of the "court" field in the mutation.
func (m *BiometricReadingMutation) Court() (r string, exists bool) {
	v := m.court
	if v == nil {
		return
	}
	return *v, true
}

// OldCourt returns the old "court" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldCourt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourt: %w", err)
	}
	return oldValue.Court, nil
}

// ClearCourt clears the value of the "court" field.
func (m *BiometricReadingMutation) ClearCourt() {
	m.court = nil
	m.clearedFields[biometricreading.FieldCourt] = struct{}{}
}

// CourtCleared returns if the "court" field was cleared in this mutation.
func (m *BiometricReadingMutation) CourtCleared() bool {
	_, ok := m.clearedFields[biometricreading.FieldCourt]
	return ok
}

// ResetCourt resets all changes to the "court" field.
func (m *BiometricReadingMutation) ResetCourt() {
	m.court = nil
	delete(m.clearedFields, biometricreading.FieldCourt)
}

// SetRegime sets the "regime" field.
func (m *BiometricReadingMutation) SetRegime(s string) {
	m.regime = &s
}

// Regime returns the value of the "regime" field in the mutation.
func (m *BiometricReadingMutation) Regime() (r string, exists bool) {
	v := m.regime
	if v == nil {
		return
	}
	return *v, true
}

// OldRegime returns the old "regime" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldRegime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegime: %w", err)
	}
	return oldValue.Regime, nil
}

// ClearRegime clears the value of the "regime" field.
func (m *BiometricReadingMutation) ClearRegime() {
	m.regime = nil
	m.clearedFields[biometricreading.FieldRegime] = struct{}{}
}

// RegimeCleared returns if the "regime" field was cleared in this mutation.
func (m *BiometricReadingMutation) RegimeCleared() bool {
	_, ok := m.clearedFields[biometricreading.FieldRegime]
	return ok
}

// ResetRegime resets all changes to the "regime" field.
func (m *BiometricReadingMutation) ResetRegime() {
	m.regime = nil
	delete(m.clearedFields, biometricreading.FieldRegime)
}

// SetKind sets the "kind" field.
func (m *BiometricReadingMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *BiometricReadingMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *BiometricReadingMutation) ResetKind() {
	m.kind = nil
}

// SetPrintReceipt sets the "print_receipt" field.
func (m *BiometricReadingMutation) SetPrintReceipt(s string) {
	m.print_receipt = &s
}

// PrintReceipt returns the value of the "print_receipt" field in the mutation.
func (m *BiometricReadingMutation) PrintReceipt() (r string, exists bool) {
	v := m.print_receipt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrintReceipt returns the old "print_receipt" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldPrintReceipt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrintReceipt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrintReceipt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrintReceipt: %w", err)
	}
	return oldValue.PrintReceipt, nil
}

// ResetPrintReceipt resets all changes to the "print_receipt" field.
func (m *BiometricReadingMutation) ResetPrintReceipt() {
	m.print_receipt = nil
}

// SetCaseNumber sets the "case_number" field.
func (m *BiometricReadingMutation) SetCaseNumber(s string) {
	m.case_number = &s
}

// CaseNumber returns the value of the "case_number" field in the mutation.
func (m *BiometricReadingMutation) CaseNumber() (r string, exists bool) {
	v := m.case_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseNumber returns the old "case_number" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldCaseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseNumber: %w", err)
	}
	return oldValue.CaseNumber, nil
}

// ClearCaseNumber clears the value of the "case_number" field.
func (m *BiometricReadingMutation) ClearCaseNumber() {
	m.case_number = nil
	m.clearedFields[biometricreading.FieldCaseNumber] = struct{}{}
}

// CaseNumberCleared returns if the "case_number" field was cleared in this mutation.
func (m *BiometricReadingMutation) CaseNumberCleared() bool {
	_, ok := m.clearedFields[biometricreading.FieldCaseNumber]
	return ok
}

// ResetCaseNumber resets all changes to the "case_number" field.
func (m *BiometricReadingMutation) ResetCaseNumber() {
	m.case_number = nil
	delete(m.clearedFields, biometricreading.FieldCaseNumber)
}

// SetFacilityID sets the "facility_id" field.
func (m *BiometricReadingMutation) SetFacilityID(s string) {
	m.facility_id = &s
}

// FacilityID returns the value of the "facility_id" field in the mutation.
func (m *BiometricReadingMutation) FacilityID() (r string, exists bool) {
	v := m.facility_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityID returns the old "facility_id" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldFacilityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityID: %w", err)
	}
	return oldValue.FacilityID, nil
}

// ResetFacilityID resets all changes to the "facility_id" field.
func (m *BiometricReadingMutation) ResetFacilityID() {
	m.facility_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BiometricReadingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BiometricReadingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BiometricReading entity.
// If the BiometricReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiometricReadingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BiometricReadingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSubjectID sets the "subject" edge to the Person entity by id.
func (m *BiometricReadingMutation) SetSubjectID(id uuid.UUID) {
	m.subject = &id
}

// ClearSubject clears the "subject" edge to the Person entity.
func (m *BiometricReadingMutation) ClearSubject() {
	m.clearedsubject = true
}

// SubjectCleared reports if the "subject" edge to the Person entity was cleared.
func (m *BiometricReadingMutation) SubjectCleared() bool {
	return m.clearedsubject
}

// SubjectID returns the "subject" edge ID in the mutation.
func (m *BiometricReadingMutation) SubjectID() (id uuid.UUID, exists bool) {
	if m.subject != nil {
		return *m.subject, true
	}
	return
}

// SubjectIDs returns the "subject" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubjectID instead. It exists only for internal usage by the builders.
func (m *BiometricReadingMutation) SubjectIDs() (ids []uuid.UUID) {
	if id := m.subject; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubject resets all changes to the "subject" edge.
func (m *BiometricReadingMutation) ResetSubject() {
	m.subject = nil
	m.clearedsubject = false
}

// Where appends a list predicates to the BiometricReadingMutation builder.
func (m *BiometricReadingMutation) Where(ps ...predicate.BiometricReading) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BiometricReadingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BiometricReadingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BiometricReading, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BiometricReadingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BiometricReadingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BiometricReading).
func (m *BiometricReadingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BiometricReadingMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.read_date != nil {
		fields = append(fields, biometricreading.FieldReadDate)
	}
	if m.read_time != nil {
		fields = append(fields, biometricreading.FieldReadTime)
	}
	if m.facial_id != nil {
		fields = append(fields, biometricreading.FieldFacialID)
	}
	if m.subject_name != nil {
		fields = append(fields, biometricreading.FieldSubjectName)
	}
	if m.court != nil {
		fields = append(fields, biometricreading.FieldCourt)
	}
	if m.regime != nil {
		fields = append(fields, biometricreading.FieldRegime)
	}
	if m.kind != nil {
		fields = append(fields, biometricreading.FieldKind)
	}
	if m.print_receipt != nil {
		fields = append(fields, biometricreading.FieldPrintReceipt)
	}
	if m.case_number != nil {
		fields = append(fields, biometricreading.FieldCaseNumber)
	}
	if m.facility_id != nil {
		fields = append(fields, biometricreading.FieldFacilityID)
	}
	if m.created_at != nil {
		fields = append(fields, biometricreading.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BiometricReadingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case biometricreading.FieldReadDate:
		return m.ReadDate()
	case biometricreading.FieldReadTime:
		return m.ReadTime()
	case biometricreading.FieldFacialID:
		return m.FacialID()
	case biometricreading.FieldSubjectName:
		return m.SubjectName()
	case biometricreading.FieldCourt:
		return m.Court()
	case biometricreading.FieldRegime:
		return m.Regime()
	case biometricreading.FieldKind:
		return m.Kind()
	case biometricreading.FieldPrintReceipt:
		return m.PrintReceipt()
	case biometricreading.FieldCaseNumber:
		return m.CaseNumber()
	case biometricreading.FieldFacilityID:
		return m.FacilityID()
	case biometricreading.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BiometricReadingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case biometricreading.FieldReadDate:
		return m.OldReadDate(ctx)
	case biometricreading.FieldReadTime:
		return m.OldReadTime(ctx)
	case biometricreading.FieldFacialID:
		return m.OldFacialID(ctx)
	case biometricreading.FieldSubjectName:
		return m.OldSubjectName(ctx)
	case biometricreading.FieldCourt:
		return m.OldCourt(ctx)
	case biometricreading.FieldRegime:
		return m.OldRegime(ctx)
	case biometricreading.FieldKind:
		return m.OldKind(ctx)
	case biometricreading.FieldPrintReceipt:
		return m.OldPrintReceipt(ctx)
	case biometricreading.FieldCaseNumber:
		return m.OldCaseNumber(ctx)
	case biometricreading.FieldFacilityID:
		return m.OldFacilityID(ctx)
	case biometricreading.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BiometricReading field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BiometricReadingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case biometricreading.FieldReadDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadDate(v)
		return nil
	case biometricreading.FieldReadTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadTime(v)
		return nil
	case biometricreading.FieldFacialID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacialID(v)
		return nil
	case biometricreading.FieldSubjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectName(v)
		return nil
	case biometricreading.FieldCourt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourt(v)
		return nil
	case biometricreading.FieldRegime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegime(v)
		return nil
	case biometricreading.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case biometricreading.FieldPrintReceipt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrintReceipt(v)
		return nil
	case biometricreading.FieldCaseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseNumber(v)
		return nil
	case biometricreading.FieldFacilityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityID(v)
		return nil
	case biometricreading.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BiometricReading field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BiometricReadingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BiometricReadingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BiometricReadingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BiometricReading numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BiometricReadingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(biometricreading.FieldCourt) {
		fields = append(fields, biometricreading.FieldCourt)
	}
	if m.FieldCleared(biometricreading.FieldRegime) {
		fields = append(fields, biometricreading.FieldRegime)
	}
	if m.FieldCleared(biometricreading.FieldCaseNumber) {
		fields = append(fields, biometricreading.FieldCaseNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BiometricReadingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BiometricReadingMutation) ClearField(name string) error {
	switch name {
	case biometricreading.FieldCourt:
		m.ClearCourt()
		return nil
	case biometricreading.FieldRegime:
		m.ClearRegime()
		return nil
	case biometricreading.FieldCaseNumber:
		m.ClearCaseNumber()
		return nil
	}
	return fmt.Errorf("unknown BiometricReading nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BiometricReadingMutation) ResetField(name string) error {
	switch name {
	case biometricreading.FieldReadDate:
		m.ResetReadDate()
		return nil
	case biometricreading.FieldReadTime:
		m.ResetReadTime()
		return nil
	case biometricreading.FieldFacialID:
		m.ResetFacialID()
		return nil
	case biometricreading.FieldSubjectName:
		m.ResetSubjectName()
		return nil
	case biometricreading.FieldCourt:
		m.ResetCourt()
		return nil
	case biometricreading.FieldRegime:
		m.ResetRegime()
		return nil
	case biometricreading.FieldKind:
		m.ResetKind()
		return nil
	case biometricreading.FieldPrintReceipt:
		m.ResetPrintReceipt()
		return nil
	case biometricreading.FieldCaseNumber:
		m.ResetCaseNumber()
		return nil
	case biometricreading.FieldFacilityID:
		m.ResetFacilityID()
		return nil
	case biometricreading.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BiometricReading field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BiometricReadingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.subject != nil {
		edges = append(edges, biometricreading.EdgeSubject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BiometricReadingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case biometricreading.EdgeSubject:
		if id := m.subject; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BiometricReadingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BiometricReadingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BiometricReadingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubject {
		edges = append(edges, biometricreading.EdgeSubject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BiometricReadingMutation) EdgeCleared(name string) bool {
	switch name {
	case biometricreading.EdgeSubject:
		return m.clearedsubject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BiometricReadingMutation) ClearEdge(name string) error {
	switch name {
	case biometricreading.EdgeSubject:
		m.ClearSubject()
		return nil
	}
	return fmt.Errorf("unknown BiometricReading unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BiometricReadingMutation) ResetEdge(name string) error {
	switch name {
	case biometricreading.EdgeSubject:
		m.ResetSubject()
		return nil
	}
	return fmt.Errorf("unknown BiometricReading edge %s", name)
}

// DeviceCommandLogMutation represents an operation that mutates the DeviceCommandLog nodes in the graph.
type DeviceCommandLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	command       *string
	status        *string
	detail        *string
	operator      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DeviceCommandLog, error)
	predicates    []predicate.DeviceCommandLog
}

var _ ent.Mutation = (*DeviceCommandLogMutation)(nil)

// devicecommandlogOption allows management of the mutation configuration using functional options.
type devicecommandlogOption func(*DeviceCommandLogMutation)

// newDeviceCommandLogMutation creates new mutation for the DeviceCommandLog entity.
func newDeviceCommandLogMutation(c config, op Op, opts ...devicecommandlogOption) *DeviceCommandLogMutation {
	m := &DeviceCommandLogMutation{
		config:        c,
		op:            op,
		typ:           TypeDeviceCommandLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeviceCommandLogID sets the ID field of the mutation.
func withDeviceCommandLogID(id uuid.UUID) devicecommandlogOption {
	return func(m *DeviceCommandLogMutation) {
		var (
			err   error
			once  sync.Once
			value *DeviceCommandLog
		)
		m.oldValue = func(ctx context.Context) (*DeviceCommandLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeviceCommandLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeviceCommandLog sets the old DeviceCommandLog of the mutation.
func withDeviceCommandLog(node *DeviceCommandLog) devicecommandlogOption {
	return func(m *DeviceCommandLogMutation) {
		m.oldValue = func(context.Context) (*DeviceCommandLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeviceCommandLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeviceCommandLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeviceCommandLog entities.
func (m *DeviceCommandLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeviceCommandLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeviceCommandLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeviceCommandLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommand sets the "command" field.
func (m *DeviceCommandLogMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *DeviceCommandLogMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the DeviceCommandLog entity.
// If the DeviceCommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceCommandLogMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ResetCommand resets all changes to the "command" field.
func (m *DeviceCommandLogMutation) ResetCommand() {
	m.command = nil
}

// SetStatus sets the "status" field.
func (m *DeviceCommandLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DeviceCommandLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DeviceCommandLog entity.
// If the DeviceCommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceCommandLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeviceCommandLogMutation) ResetStatus() {
	m.status = nil
}

// SetDetail sets the "detail" field.
func (m *DeviceCommandLogMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *DeviceCommandLogMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the DeviceCommandLog entity.
// If the DeviceCommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceCommandLogMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *DeviceCommandLogMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[devicecommandlog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *DeviceCommandLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[devicecommandlog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *DeviceCommandLogMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, devicecommandlog.FieldDetail)
}

// SetOperator sets the "operator" field.
func (m *DeviceCommandLogMutation) SetOperator(s string) {
	m.operator = &s
}

// Operator returns the value of the "operator" field in the mutation.
func (m *DeviceCommandLogMutation) Operator() (r string, exists bool) {
	v := m.operator
	if v == nil {
		return
	}
	return *v, true
}

// OldOperator returns the old "operator" field's value of the DeviceCommandLog entity.
// If the DeviceCommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceCommandLogMutation) OldOperator(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperator: %w", err)
	}
	return oldValue.Operator, nil
}

// ClearOperator clears the value of the "operator" field.
func (m *DeviceCommandLogMutation) ClearOperator() {
	m.operator = nil
	m.clearedFields[devicecommandlog.FieldOperator] = struct{}{}
}

// OperatorCleared returns if the "operator" field was cleared in this mutation.
func (m *DeviceCommandLogMutation) OperatorCleared() bool {
	_, ok := m.clearedFields[devicecommandlog.FieldOperator]
	return ok
}

// ResetOperator resets all changes to the "operator" field.
func (m *DeviceCommandLogMutation) ResetOperator() {
	m.operator = nil
	delete(m.clearedFields, devicecommandlog.FieldOperator)
}

// SetCreatedAt sets the "created_at" field.
func (m *DeviceCommandLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeviceCommandLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeviceCommandLog entity.
// If the DeviceCommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceCommandLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeviceCommandLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DeviceCommandLogMutation builder.
func (m *DeviceCommandLogMutation) Where(ps ...predicate.DeviceCommandLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeviceCommandLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeviceCommandLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeviceCommandLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeviceCommandLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeviceCommandLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeviceCommandLog).
func (m *DeviceCommandLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeviceCommandLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.command != nil {
		fields = append(fields, devicecommandlog.FieldCommand)
	}
	if m.status != nil {
		fields = append(fields, devicecommandlog.FieldStatus)
	}
	if m.detail != nil {
		fields = append(fields, devicecommandlog.FieldDetail)
	}
	if m.operator != nil {
		fields = append(fields, devicecommandlog.FieldOperator)
	}
	if m.created_at != nil {
		fields = append(fields, devicecommandlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeviceCommandLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case devicecommandlog.FieldCommand:
		return m.Command()
	case devicecommandlog.FieldStatus:
		return m.Status()
	case devicecommandlog.FieldDetail:
		return m.Detail()
	case devicecommandlog.FieldOperator:
		return m.Operator()
	case devicecommandlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeviceCommandLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case devicecommandlog.FieldCommand:
		return m.OldCommand(ctx)
	case devicecommandlog.FieldStatus:
		return m.OldStatus(ctx)
	case devicecommandlog.FieldDetail:
		return m.OldDetail(ctx)
	case devicecommandlog.FieldOperator:
		return m.OldOperator(ctx)
	case devicecommandlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeviceCommandLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeviceCommandLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case devicecommandlog.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case devicecommandlog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case devicecommandlog.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case devicecommandlog.FieldOperator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperator(v)
		return nil
	case devicecommandlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeviceCommandLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeviceCommandLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeviceCommandLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeviceCommandLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DeviceCommandLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeviceCommandLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(devicecommandlog.FieldDetail) {
		fields = append(fields, devicecommandlog.FieldDetail)
	}
	if m.FieldCleared(devicecommandlog.FieldOperator) {
		fields = append(fields, devicecommandlog.FieldOperator)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeviceCommandLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeviceCommandLogMutation) ClearField(name string) error {
	switch name {
	case devicecommandlog.FieldDetail:
		m.ClearDetail()
		return nil
	case devicecommandlog.FieldOperator:
		m.ClearOperator()
		return nil
	}
	return fmt.Errorf("unknown DeviceCommandLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeviceCommandLogMutation) ResetField(name string) error {
	switch name {
	case devicecommandlog.FieldCommand:
		m.ResetCommand()
		return nil
	case devicecommandlog.FieldStatus:
		m.ResetStatus()
		return nil
	case devicecommandlog.FieldDetail:
		m.ResetDetail()
		return nil
	case devicecommandlog.FieldOperator:
		m.ResetOperator()
		return nil
	case devicecommandlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DeviceCommandLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeviceCommandLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeviceCommandLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeviceCommandLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeviceCommandLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeviceCommandLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeviceCommandLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeviceCommandLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeviceCommandLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeviceCommandLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeviceCommandLog edge %s", name)
}

// PersonMutation represents an operation that mutates the Person nodes in the graph.
type PersonMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	facial_id       *string
	full_name       *string
	court           *string
	regime          *string
	case_number     *string
	facility_id     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	readings        map[int]struct{}
	removedreadings map[int]struct{}
	clearedreadings bool
	done            bool
	oldValue        func(context.Context) (*Person, error)
	predicates      []predicate.Person
}

var _ ent.Mutation = (*PersonMutation)(nil)

// personOption allows management of the mutation configuration using functional options.
type personOption func(*PersonMutation)

// newPersonMutation creates new mutation for the Person entity.
func newPersonMutation(c config, op Op, opts ...personOption) *PersonMutation {
	m := &PersonMutation{
		config:        c,
		op:            op,
		typ:           TypePerson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonID sets the ID field of the mutation.
func withPersonID(id uuid.UUID) personOption {
	return func(m *PersonMutation) {
		var (
			err   error
			once  sync.Once
			value *Person
		)
		m.oldValue = func(ctx context.Context) (*Person, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Person.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerson sets the old Person of the mutation.
func withPerson(node *Person) personOption {
	return func(m *PersonMutation) {
		m.oldValue = func(context.Context) (*Person, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Person entities.
func (m *PersonMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Person.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFacialID sets the "facial_id" field.
func (m *PersonMutation) SetFacialID(s string) {
	m.facial_id = &s
}

// FacialID returns the value of the "facial_id" field in the mutation.
func (m *PersonMutation) FacialID() (r string, exists bool) {
	v := m.facial_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFacialID returns the old "facial_id" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFacialID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacialID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacialID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacialID: %w", err)
	}
	return oldValue.FacialID, nil
}

// ResetFacialID resets all changes to the "facial_id" field.
func (m *PersonMutation) ResetFacialID() {
	m.facial_id = nil
}

// SetFullName sets the "full_name" field.
func (m *PersonMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *PersonMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *PersonMutation) ResetFullName() {
	m.full_name = nil
}

// SetCourt sets the "court" field.
func (m *PersonMutation) SetCourt(s string) {
	m.court = &s
}

// Court returns the value of the "court" field in the mutation.
func (m *PersonMutation) Court() (r string, exists bool) {
	v := m.court
	if v == nil {
		return
	}
	return *v, true
}

// OldCourt returns the old "court" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldCourt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourt: %w", err)
	}
	return oldValue.Court, nil
}

// ClearCourt clears the value of the "court" field.
func (m *PersonMutation) ClearCourt() {
	m.court = nil
	m.clearedFields[person.FieldCourt] = struct{}{}
}

// CourtCleared returns if the "court" field was cleared in this mutation.
func (m *PersonMutation) CourtCleared() bool {
	_, ok := m.clearedFields[person.FieldCourt]
	return ok
}

// ResetCourt resets all changes to the "court" field.
func (m *PersonMutation) ResetCourt() {
	m.court = nil
	delete(m.clearedFields, person.FieldCourt)
}

// SetRegime sets the "regime" field.
func (m *PersonMutation) SetRegime(s string) {
	m.regime = &s
}

// Regime returns the value of the "regime" field in the mutation.
func (m *PersonMutation) Regime() (r string, exists bool) {
	v := m.regime
	if v == nil {
		return
	}
	return *v, true
}

// OldRegime returns the old "regime" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldRegime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegime: %w", err)
	}
	return oldValue.Regime, nil
}

// ClearRegime clears the value of the "regime" field.
func (m *PersonMutation) ClearRegime() {
	m.regime = nil
	m.clearedFields[person.FieldRegime] = struct{}{}
}

// RegimeCleared returns if the "regime" field was cleared in this mutation.
func (m *PersonMutation) RegimeCleared() bool {
	_, ok := m.clearedFields[person.FieldRegime]
	return ok
}

// ResetRegime resets all changes to the "regime" field.
func (m *PersonMutation) ResetRegime() {
	m.regime = nil
	delete(m.clearedFields, person.FieldRegime)
}

// SetCaseNumber sets the "case_number" field.
func (m *PersonMutation) SetCaseNumber(s string) {
	m.case_number = &s
}

// CaseNumber returns the value of the "case_number" field in the mutation.
func (m *PersonMutation) CaseNumber() (r string, exists bool) {
	v := m.case_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseNumber returns the old "case_number" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldCaseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseNumber: %w", err)
	}
	return oldValue.CaseNumber, nil
}

// ClearCaseNumber clears the value of the "case_number" field.
func (m *PersonMutation) ClearCaseNumber() {
	m.case_number = nil
	m.clearedFields[person.FieldCaseNumber] = struct{}{}
}

// CaseNumberCleared returns if the "case_number" field was cleared in this mutation.
func (m *PersonMutation) CaseNumberCleared() bool {
	_, ok := m.clearedFields[person.FieldCaseNumber]
	return ok
}

// ResetCaseNumber resets all changes to the "case_number" field.
func (m *PersonMutation) ResetCaseNumber() {
	m.case_number = nil
	delete(m.clearedFields, person.FieldCaseNumber)
}

// SetFacilityID sets the "facility_id" field.
func (m *PersonMutation) SetFacilityID(s string) {
	m.facility_id = &s
}

// FacilityID returns the value of the "facility_id" field in the mutation.
func (m *PersonMutation) FacilityID() (r string, exists bool) {
	v := m.facility_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityID returns the old "facility_id" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFacilityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityID: %w", err)
	}
	return oldValue.FacilityID, nil
}

// ResetFacilityID resets all changes to the "facility_id" field.
func (m *PersonMutation) ResetFacilityID() {
	m.facility_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddReadingIDs adds the "readings" edge to the BiometricReading entity by ids.
func (m *PersonMutation) AddReadingIDs(ids ...int) {
	if m.readings == nil {
		m.readings = make(map[int]struct{})
	}
	for i := range ids {
		m.readings[ids[i]] = struct{}{}
	}
}

// ClearReadings clears the "readings" edge to the BiometricReading entity.
func (m *PersonMutation) ClearReadings() {
	m.clearedreadings = true
}

// ReadingsCleared reports if the "readings" edge to the BiometricReading entity was cleared.
func (m *PersonMutation) ReadingsCleared() bool {
	return m.clearedreadings
}

// RemoveReadingIDs removes the "readings" edge to the BiometricReading entity by IDs.
func (m *PersonMutation) RemoveReadingIDs(ids ...int) {
	if m.removedreadings == nil {
		m.removedreadings = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.readings, ids[i])
		m.removedreadings[ids[i]] = struct{}{}
	}
}

// RemovedReadings returns the removed IDs of the "readings" edge to the BiometricReading entity.
func (m *PersonMutation) RemovedReadingsIDs() (ids []int) {
	for id := range m.removedreadings {
		ids = append(ids, id)
	}
	return
}

// ReadingsIDs returns the "readings" edge IDs in the mutation.
func (m *PersonMutation) ReadingsIDs() (ids []int) {
	for id := range m.readings {
		ids = append(ids, id)
	}
	return
}

// ResetReadings resets all changes to the "readings" edge.
func (m *PersonMutation) ResetReadings() {
	m.readings = nil
	m.clearedreadings = false
	m.removedreadings = nil
}

// Where appends a list predicates to the PersonMutation builder.
func (m *PersonMutation) Where(ps ...predicate.Person) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Person, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Person).
func (m *PersonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.facial_id != nil {
		fields = append(fields, person.FieldFacialID)
	}
	if m.full_name != nil {
		fields = append(fields, person.FieldFullName)
	}
	if m.court != nil {
		fields = append(fields, person.FieldCourt)
	}
	if m.regime != nil {
		fields = append(fields, person.FieldRegime)
	}
	if m.case_number != nil {
		fields = append(fields, person.FieldCaseNumber)
	}
	if m.facility_id != nil {
		fields = append(fields, person.FieldFacilityID)
	}
	if m.created_at != nil {
		fields = append(fields, person.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case person.FieldFacialID:
		return m.FacialID()
	case person.FieldFullName:
		return m.FullName()
	case person.FieldCourt:
		return m.Court()
	case person.FieldRegime:
		return m.Regime()
	case person.FieldCaseNumber:
		return m.CaseNumber()
	case person.FieldFacilityID:
		return m.FacilityID()
	case person.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case person.FieldFacialID:
		return m.OldFacialID(ctx)
	case person.FieldFullName:
		return m.OldFullName(ctx)
	case person.FieldCourt:
		return m.OldCourt(ctx)
	case person.FieldRegime:
		return m.OldRegime(ctx)
	case person.FieldCaseNumber:
		return m.OldCaseNumber(ctx)
	case person.FieldFacilityID:
		return m.OldFacilityID(ctx)
	case person.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Person field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case person.FieldFacialID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacialID(v)
		return nil
	case person.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case person.FieldCourt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourt(v)
		return nil
	case person.FieldRegime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegime(v)
		return nil
	case person.FieldCaseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseNumber(v)
		return nil
	case person.FieldFacilityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityID(v)
		return nil
	case person.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Person numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(person.FieldCourt) {
		fields = append(fields, person.FieldCourt)
	}
	if m.FieldCleared(person.FieldRegime) {
		fields = append(fields, person.FieldRegime)
	}
	if m.FieldCleared(person.FieldCaseNumber) {
		fields = append(fields, person.FieldCaseNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonMutation) ClearField(name string) error {
	switch name {
	case person.FieldCourt:
		m.ClearCourt()
		return nil
	case person.FieldRegime:
		m.ClearRegime()
		return nil
	case person.FieldCaseNumber:
		m.ClearCaseNumber()
		return nil
	}
	return fmt.Errorf("unknown Person nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonMutation) ResetField(name string) error {
	switch name {
	case person.FieldFacialID:
		m.ResetFacialID()
		return nil
	case person.FieldFullName:
		m.ResetFullName()
		return nil
	case person.FieldCourt:
		m.ResetCourt()
		return nil
	case person.FieldRegime:
		m.ResetRegime()
		return nil
	case person.FieldCaseNumber:
		m.ResetCaseNumber()
		return nil
	case person.FieldFacilityID:
		m.ResetFacilityID()
		return nil
	case person.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.readings != nil {
		edges = append(edges, person.EdgeReadings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case person.EdgeReadings:
		ids := make([]ent.Value, 0, len(m.readings))
		for id := range m.readings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedreadings != nil {
		edges = append(edges, person.EdgeReadings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case person.EdgeReadings:
		ids := make([]ent.Value, 0, len(m.removedreadings))
		for id := range m.removedreadings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreadings {
		edges = append(edges, person.EdgeReadings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonMutation) EdgeCleared(name string) bool {
	switch name {
	case person.EdgeReadings:
		return m.clearedreadings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Person unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonMutation) ResetEdge(name string) error {
	switch name {
	case person.EdgeReadings:
		m.ResetReadings()
		return nil
	}
	return fmt.Errorf("unknown Person edge %s", name)
}
