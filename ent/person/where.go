// Code generated by ent, DO NOT EDIT.

package person

import (
	"face-gateway/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldID, id))
}

// FacialID applies equality check predicate on the "facial_id" field. It's identical to FacialIDEQ.
func FacialID(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFacialID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFullName, v))
}

// Court applies equality check predicate on the "court" field. It's identical to CourtEQ.
func Court(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCourt, v))
}

// Regime applies equality check predicate on the "regime" field. It's identical to RegimeEQ.
func Regime(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldRegime, v))
}

// CaseNumber applies equality check predicate on the "case_number" field. It's identical to CaseNumberEQ.
func CaseNumber(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCaseNumber, v))
}

// FacilityID applies equality check predicate on the "facility_id" field. It's identical to FacilityIDEQ.
func FacilityID(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFacilityID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCreatedAt, v))
}

// FacialIDEQ applies the EQ predicate on the "facial_id" field.
func FacialIDEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFacialID, v))
}

// FacialIDNEQ applies the NEQ predicate on the "facial_id" field.
func FacialIDNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFacialID, v))
}

// FacialIDIn applies the In predicate on the "facial_id" field.
func FacialIDIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFacialID, vs...))
}

// FacialIDNotIn applies the NotIn predicate on the "facial_id" field.
func FacialIDNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFacialID, vs...))
}

// FacialIDGT applies the GT predicate on the "facial_id" field.
func FacialIDGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFacialID, v))
}

// FacialIDGTE applies the GTE predicate on the "facial_id" field.
func FacialIDGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFacialID, v))
}

// FacialIDLT applies the LT predicate on the "facial_id" field.
func FacialIDLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFacialID, v))
}

// FacialIDLTE applies the LTE predicate on the "facial_id" field.
func FacialIDLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFacialID, v))
}

// FacialIDContains applies the Contains predicate on the "facial_id" field.
func FacialIDContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFacialID, v))
}

// FacialIDHasPrefix applies the HasPrefix predicate on the "facial_id" field.
func FacialIDHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFacialID, v))
}

// FacialIDHasSuffix applies the HasSuffix predicate on the "facial_id" field.
func FacialIDHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFacialID, v))
}

// FacialIDEqualFold applies the EqualFold predicate on the "facial_id" field.
func FacialIDEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFacialID, v))
}

// FacialIDContainsFold applies the ContainsFold predicate on the "facial_id" field.
func FacialIDContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFacialID, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFullName, v))
}

// CourtEQ applies the EQ predicate on the "court" field.
func CourtEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCourt, v))
}

// CourtNEQ applies the NEQ predicate on the "court" field.
func CourtNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldCourt, v))
}

// CourtIn applies the In predicate on the "court" field.
func CourtIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldCourt, vs...))
}

// CourtNotIn applies the NotIn predicate on the "court" field.
func CourtNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldCourt, vs...))
}

// CourtGT applies the GT predicate on the "court" field.
func CourtGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldCourt, v))
}

// CourtGTE applies the GTE predicate on the "court" field.
func CourtGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldCourt, v))
}

// CourtLT applies the LT predicate on the "court" field.
func CourtLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldCourt, v))
}

// CourtLTE applies the LTE predicate on the "court" field.
func CourtLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldCourt, v))
}

// CourtContains applies the Contains predicate on the "court" field.
func CourtContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldCourt, v))
}

// CourtHasPrefix applies the HasPrefix predicate on the "court" field.
func CourtHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldCourt, v))
}

// CourtHasSuffix applies the HasSuffix predicate on the "court" field.
func CourtHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldCourt, v))
}

// CourtIsNil applies the IsNil predicate on the "court" field.
func CourtIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldCourt))
}

// CourtNotNil applies the NotNil predicate on the "court" field.
func CourtNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldCourt))
}

// CourtEqualFold applies the EqualFold predicate on the "court" field.
func CourtEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldCourt, v))
}

// CourtContainsFold applies the ContainsFold predicate on the "court" field.
func CourtContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldCourt, v))
}

// RegimeEQ applies the EQ predicate on the "regime" field.
func RegimeEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldRegime, v))
}

// RegimeNEQ applies the NEQ predicate on the "regime" field.
func RegimeNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldRegime, v))
}

// RegimeIn applies the In predicate on the "regime" field.
func RegimeIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldRegime, vs...))
}

// RegimeNotIn applies the NotIn predicate on the "regime" field.
func RegimeNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldRegime, vs...))
}

// RegimeGT applies the GT predicate on the "regime" field.
func RegimeGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldRegime, v))
}

// RegimeGTE applies the GTE predicate on the "regime" field.
func RegimeGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldRegime, v))
}

// RegimeLT applies the LT predicate on the "regime" field.
func RegimeLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldRegime, v))
}

// RegimeLTE applies the LTE predicate on the "regime" field.
func RegimeLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldRegime, v))
}

// RegimeContains applies the Contains predicate on the "regime" field.
func RegimeContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldRegime, v))
}

// RegimeHasPrefix applies the HasPrefix predicate on the "regime" field.
func RegimeHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldRegime, v))
}

// RegimeHasSuffix applies the HasSuffix predicate on the "regime" field.
func RegimeHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldRegime, v))
}

// RegimeIsNil applies the IsNil predicate on the "regime" field.
func RegimeIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldRegime))
}

// RegimeNotNil applies the NotNil predicate on the "regime" field.
func RegimeNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldRegime))
}

// RegimeEqualFold applies the EqualFold predicate on the "regime" field.
func RegimeEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldRegime, v))
}

// RegimeContainsFold applies the ContainsFold predicate on the "regime" field.
func RegimeContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldRegime, v))
}

// CaseNumberEQ applies the EQ predicate on the "case_number" field.
func CaseNumberEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCaseNumber, v))
}

// CaseNumberNEQ applies the NEQ predicate on the "case_number" field.
func CaseNumberNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldCaseNumber, v))
}

// CaseNumberIn applies the In predicate on the "case_number" field.
func CaseNumberIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldCaseNumber, vs...))
}

// CaseNumberNotIn applies the NotIn predicate on the "case_number" field.
func CaseNumberNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldCaseNumber, vs...))
}

// CaseNumberGT applies the GT predicate on the "case_number" field.
func CaseNumberGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldCaseNumber, v))
}

// CaseNumberGTE applies the GTE predicate on the "case_number" field.
func CaseNumberGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldCaseNumber, v))
}

// CaseNumberLT applies the LT predicate on the "case_number" field.
func CaseNumberLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldCaseNumber, v))
}

// CaseNumberLTE applies the LTE predicate on the "case_number" field.
func CaseNumberLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldCaseNumber, v))
}

// CaseNumberContains applies the Contains predicate on the "case_number" field.
func CaseNumberContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldCaseNumber, v))
}

// CaseNumberHasPrefix applies the HasPrefix predicate on the "case_number" field.
func CaseNumberHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldCaseNumber, v))
}

// CaseNumberHasSuffix applies the HasSuffix predicate on the "case_number" field.
func CaseNumberHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldCaseNumber, v))
}

// CaseNumberIsNil applies the IsNil predicate on the "case_number" field.
func CaseNumberIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldCaseNumber))
}

// CaseNumberNotNil applies the NotNil predicate on the "case_number" field.
func CaseNumberNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldCaseNumber))
}

// CaseNumberEqualFold applies the EqualFold predicate on the "case_number" field.
func CaseNumberEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldCaseNumber, v))
}

// CaseNumberContainsFold applies the ContainsFold predicate on the "case_number" field.
func CaseNumberContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldCaseNumber, v))
}

// FacilityIDEQ applies the EQ predicate on the "facility_id" field.
func FacilityIDEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFacilityID, v))
}

// FacilityIDNEQ applies the NEQ predicate on the "facility_id" field.
func FacilityIDNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFacilityID, v))
}

// FacilityIDIn applies the In predicate on the "facility_id" field.
func FacilityIDIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFacilityID, vs...))
}

// FacilityIDNotIn applies the NotIn predicate on the "facility_id" field.
func FacilityIDNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFacilityID, vs...))
}

// FacilityIDGT applies the GT predicate on the "facility_id" field.
func FacilityIDGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFacilityID, v))
}

// FacilityIDGTE applies the GTE predicate on the "facility_id" field.
func FacilityIDGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFacilityID, v))
}

// FacilityIDLT applies the LT predicate on the "facility_id" field.
func FacilityIDLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFacilityID, v))
}

// FacilityIDLTE applies the LTE predicate on the "facility_id" field.
func FacilityIDLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFacilityID, v))
}

// FacilityIDContains applies the Contains predicate on the "facility_id" field.
func FacilityIDContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFacilityID, v))
}

// FacilityIDHasPrefix applies the HasPrefix predicate on the "facility_id" field.
func FacilityIDHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFacilityID, v))
}

// FacilityIDHasSuffix applies the HasSuffix predicate on the "facility_id" field.
func FacilityIDHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFacilityID, v))
}

// FacilityIDEqualFold applies the EqualFold predicate on the "facility_id" field.
func FacilityIDEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFacilityID, v))
}

// FacilityIDContainsFold applies the ContainsFold predicate on the "facility_id" field.
func FacilityIDContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFacilityID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReadings applies the HasEdge predicate on the "readings" edge.
func HasReadings() predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReadingsTable, ReadingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReadingsWith applies the HasEdge predicate on the "readings" edge with a given conditions (other predicates).
func HasReadingsWith(preds ...predicate.BiometricReading) predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := newReadingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Person) predicate.Person {
	return predicate.Person(sql.NotPredicates(p))
}
