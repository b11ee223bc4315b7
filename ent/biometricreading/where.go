// Code generated by ent, DO NOT EDIT.

package biometricreading

import (
	"face-gateway/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldID, id))
}

// ReadDate applies equality check predicate on the "read_date" field. It's identical to ReadDateEQ.
func ReadDate(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldReadDate, v))
}

// ReadTime applies equality check predicate on the "read_time" field. It's identical to ReadTimeEQ.
func ReadTime(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldReadTime, v))
}

// FacialID applies equality check predicate on the "facial_id" field. It's identical to FacialIDEQ.
func FacialID(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldFacialID, v))
}

// SubjectName applies equality check predicate on the "subject_name" field. It's identical to SubjectNameEQ.
func SubjectName(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldSubjectName, v))
}

// Court applies equality check predicate on the "court" field. It's identical to CourtEQ.
func Court(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldCourt, v))
}

// Regime applies equality check predicate on the "regime" field. It's identical to RegimeEQ.
func Regime(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldRegime, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldKind, v))
}

// PrintReceipt applies equality check predicate on the "print_receipt" field. It's identical to PrintReceiptEQ.
func PrintReceipt(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldPrintReceipt, v))
}

// CaseNumber applies equality check predicate on the "case_number" field. It's identical to CaseNumberEQ.
func CaseNumber(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldCaseNumber, v))
}

// FacilityID applies equality check predicate on the "facility_id" field. It's identical to FacilityIDEQ.
func FacilityID(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldFacilityID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldCreatedAt, v))
}

// ReadDateEQ applies the EQ predicate on the "read_date" field.
func ReadDateEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldReadDate, v))
}

// ReadDateNEQ applies the NEQ predicate on the "read_date" field.
func ReadDateNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldReadDate, v))
}

// ReadDateIn applies the In predicate on the "read_date" field.
func ReadDateIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldReadDate, vs...))
}

// ReadDateNotIn applies the NotIn predicate on the "read_date" field.
func ReadDateNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldReadDate, vs...))
}

// ReadDateGT applies the GT predicate on the "read_date" field.
func ReadDateGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldReadDate, v))
}

// ReadDateGTE applies the GTE predicate on the "read_date" field.
func ReadDateGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldReadDate, v))
}

// ReadDateLT applies the LT predicate on the "read_date" field.
func ReadDateLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldReadDate, v))
}

// ReadDateLTE applies the LTE predicate on the "read_date" field.
func ReadDateLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldReadDate, v))
}

// ReadDateContains applies the Contains predicate on the "read_date" field.
func ReadDateContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldReadDate, v))
}

// ReadDateHasPrefix applies the HasPrefix predicate on the "read_date" field.
func ReadDateHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldReadDate, v))
}

// ReadDateHasSuffix applies the HasSuffix predicate on the "read_date" field.
func ReadDateHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldReadDate, v))
}

// ReadDateEqualFold applies the EqualFold predicate on the "read_date" field.
func ReadDateEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldReadDate, v))
}

// ReadDateContainsFold applies the ContainsFold predicate on the "read_date" field.
func ReadDateContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldReadDate, v))
}

// ReadTimeEQ applies the EQ predicate on the "read_time" field.
func ReadTimeEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldReadTime, v))
}

// ReadTimeNEQ applies the NEQ predicate on the "read_time" field.
func ReadTimeNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldReadTime, v))
}

// ReadTimeIn applies the In predicate on the "read_time" field.
func ReadTimeIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldReadTime, vs...))
}

// ReadTimeNotIn applies the NotIn predicate on the "read_time" field.
func ReadTimeNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldReadTime, vs...))
}

// ReadTimeGT applies the GT predicate on the "read_time" field.
func ReadTimeGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldReadTime, v))
}

// ReadTimeGTE applies the GTE predicate on the "read_time" field.
func ReadTimeGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldReadTime, v))
}

// ReadTimeLT applies the LT predicate on the "read_time" field.
func ReadTimeLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldReadTime, v))
}

// ReadTimeLTE applies the LTE predicate on the "read_time" field.
func ReadTimeLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldReadTime, v))
}

// ReadTimeContains applies the Contains predicate on the "read_time" field.
func ReadTimeContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldReadTime, v))
}

// ReadTimeHasPrefix applies the HasPrefix predicate on the "read_time" field.
func ReadTimeHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldReadTime, v))
}

// ReadTimeHasSuffix applies the HasSuffix predicate on the "read_time" field.
func ReadTimeHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldReadTime, v))
}

// ReadTimeEqualFold applies the EqualFold predicate on the "read_time" field.
func ReadTimeEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldReadTime, v))
}

// ReadTimeContainsFold applies the ContainsFold predicate on the "read_time" field.
func ReadTimeContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldReadTime, v))
}

// FacialIDEQ applies the EQ predicate on the "facial_id" field.
func FacialIDEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldFacialID, v))
}

// FacialIDNEQ applies the NEQ predicate on the "facial_id" field.
func FacialIDNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldFacialID, v))
}

// FacialIDIn applies the In predicate on the "facial_id" field.
func FacialIDIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldFacialID, vs...))
}

// FacialIDNotIn applies the NotIn predicate on the "facial_id" field.
func FacialIDNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldFacialID, vs...))
}

// FacialIDGT applies the GT predicate on the "facial_id" field.
func FacialIDGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldFacialID, v))
}

// FacialIDGTE applies the GTE predicate on the "facial_id" field.
func FacialIDGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldFacialID, v))
}

// FacialIDLT applies the LT predicate on the "facial_id" field.
func FacialIDLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldFacialID, v))
}

// FacialIDLTE applies the LTE predicate on the "facial_id" field.
func FacialIDLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldFacialID, v))
}

// FacialIDContains applies the Contains predicate on the "facial_id" field.
func FacialIDContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldFacialID, v))
}

// FacialIDHasPrefix applies the HasPrefix predicate on the "facial_id" field.
func FacialIDHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldFacialID, v))
}

// FacialIDHasSuffix applies the HasSuffix predicate on the "facial_id" field.
func FacialIDHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldFacialID, v))
}

// FacialIDEqualFold applies the EqualFold predicate on the "facial_id" field.
func FacialIDEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldFacialID, v))
}

// FacialIDContainsFold applies the ContainsFold predicate on the "facial_id" field.
func FacialIDContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldFacialID, v))
}

// SubjectNameEQ applies the EQ predicate on the "subject_name" field.
func SubjectNameEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldSubjectName, v))
}

// SubjectNameNEQ applies the NEQ predicate on the "subject_name" field.
func SubjectNameNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldSubjectName, v))
}

// SubjectNameIn applies the In predicate on the "subject_name" field.
func SubjectNameIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldSubjectName, vs...))
}

// SubjectNameNotIn applies the NotIn predicate on the "subject_name" field.
func SubjectNameNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldSubjectName, vs...))
}

// SubjectNameGT applies the GT predicate on the "subject_name" field.
func SubjectNameGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldSubjectName, v))
}

// SubjectNameGTE applies the GTE predicate on the "subject_name" field.
func SubjectNameGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldSubjectName, v))
}

// SubjectNameLT applies the LT predicate on the "subject_name" field.
func SubjectNameLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldSubjectName, v))
}

// SubjectNameLTE applies the LTE predicate on the "subject_name" field.
func SubjectNameLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldSubjectName, v))
}

// SubjectNameContains applies the Contains predicate on the "subject_name" field.
func SubjectNameContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldSubjectName, v))
}

// SubjectNameHasPrefix applies the HasPrefix predicate on the "subject_name" field.
func SubjectNameHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldSubjectName, v))
}

// SubjectNameHasSuffix applies the HasSuffix predicate on the "subject_name" field.
func SubjectNameHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldSubjectName, v))
}

// SubjectNameEqualFold applies the EqualFold predicate on the "subject_name" field.
func SubjectNameEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldSubjectName, v))
}

// SubjectNameContainsFold applies the ContainsFold predicate on the "subject_name" field.
func SubjectNameContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldSubjectName, v))
}

// CourtEQ applies the EQ predicate on the "court" field.
func CourtEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldCourt, v))
}

// CourtNEQ applies the NEQ predicate on the "court" field.
func CourtNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldCourt, v))
}

// CourtIn applies the In predicate on the "court" field.
func CourtIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldCourt, vs...))
}

// CourtNotIn applies the NotIn predicate on the "court" field.
func CourtNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldCourt, vs...))
}

// CourtGT applies the GT predicate on the "court" field.
func CourtGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldCourt, v))
}

// CourtGTE applies the GTE predicate on the "court" field.
func CourtGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldCourt, v))
}

// CourtLT applies the LT predicate on the "court" field.
func CourtLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldCourt, v))
}

// CourtLTE applies the LTE predicate on the "court" field.
func CourtLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldCourt, v))
}

// CourtContains applies the Contains predicate on the "court" field.
func CourtContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldCourt, v))
}

// CourtHasPrefix applies the HasPrefix predicate on the "court" field.
func CourtHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldCourt, v))
}

// CourtHasSuffix applies the HasSuffix predicate on the "court" field.
func CourtHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldCourt, v))
}

// CourtIsNil applies the IsNil predicate on the "court" field.
func CourtIsNil() predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIsNull(FieldCourt))
}

// CourtNotNil applies the NotNil predicate on the "court" field.
func CourtNotNil() predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotNull(FieldCourt))
}

// CourtEqualFold applies the EqualFold predicate on the "court" field.
func CourtEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldCourt, v))
}

// CourtContainsFold applies the ContainsFold predicate on the "court" field.
func CourtContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldCourt, v))
}

// RegimeEQ applies the EQ predicate on the "regime" field.
func RegimeEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldRegime, v))
}

// RegimeNEQ applies the NEQ predicate on the "regime" field.
func RegimeNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldRegime, v))
}

// RegimeIn applies the In predicate on the "regime" field.
func RegimeIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldRegime, vs...))
}

// RegimeNotIn applies the NotIn predicate on the "regime" field.
func RegimeNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldRegime, vs...))
}

// RegimeGT applies the GT predicate on the "regime" field.
func RegimeGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldRegime, v))
}

// RegimeGTE applies the GTE predicate on the "regime" field.
func RegimeGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldRegime, v))
}

// RegimeLT applies the LT predicate on the "regime" field.
func RegimeLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldRegime, v))
}

// RegimeLTE applies the LTE predicate on the "regime" field.
func RegimeLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldRegime, v))
}

// RegimeContains applies the Contains predicate on the "regime" field.
func RegimeContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldRegime, v))
}

// RegimeHasPrefix applies the HasPrefix predicate on the "regime" field.
func RegimeHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldRegime, v))
}

// RegimeHasSuffix applies the HasSuffix predicate on the "regime" field.
func RegimeHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldRegime, v))
}

// RegimeIsNil applies the IsNil predicate on the "regime" field.
func RegimeIsNil() predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIsNull(FieldRegime))
}

// RegimeNotNil applies the NotNil predicate on the "regime" field.
func RegimeNotNil() predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotNull(FieldRegime))
}

// RegimeEqualFold applies the EqualFold predicate on the "regime" field.
func RegimeEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldRegime, v))
}

// RegimeContainsFold applies the ContainsFold predicate on the "regime" field.
func RegimeContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldRegime, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldKind, v))
}

// PrintReceiptEQ applies the EQ predicate on the "print_receipt" field.
func PrintReceiptEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldPrintReceipt, v))
}

// PrintReceiptNEQ applies the NEQ predicate on the "print_receipt" field.
func PrintReceiptNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldPrintReceipt, v))
}

// PrintReceiptIn applies the In predicate on the "print_receipt" field.
func PrintReceiptIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldPrintReceipt, vs...))
}

// PrintReceiptNotIn applies the NotIn predicate on the "print_receipt" field.
func PrintReceiptNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldPrintReceipt, vs...))
}

// PrintReceiptGT applies the GT predicate on the "print_receipt" field.
func PrintReceiptGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldPrintReceipt, v))
}

// PrintReceiptGTE applies the GTE predicate on the "print_receipt" field.
func PrintReceiptGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldPrintReceipt, v))
}

// PrintReceiptLT applies the LT predicate on the "print_receipt" field.
func PrintReceiptLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldPrintReceipt, v))
}

// PrintReceiptLTE applies the LTE predicate on the "print_receipt" field.
func PrintReceiptLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldPrintReceipt, v))
}

// PrintReceiptContains applies the Contains predicate on the "print_receipt" field.
func PrintReceiptContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldPrintReceipt, v))
}

// PrintReceiptHasPrefix applies the HasPrefix predicate on the "print_receipt" field.
func PrintReceiptHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldPrintReceipt, v))
}

// PrintReceiptHasSuffix applies the HasSuffix predicate on the "print_receipt" field.
func PrintReceiptHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldPrintReceipt, v))
}

// PrintReceiptEqualFold applies the EqualFold predicate on the "print_receipt" field.
func PrintReceiptEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldPrintReceipt, v))
}

// PrintReceiptContainsFold applies the ContainsFold predicate on the "print_receipt" field.
func PrintReceiptContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldPrintReceipt, v))
}

// CaseNumberEQ applies the EQ predicate on the "case_number" field.
func CaseNumberEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldCaseNumber, v))
}

// CaseNumberNEQ applies the NEQ predicate on the "case_number" field.
func CaseNumberNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldCaseNumber, v))
}

// CaseNumberIn applies the In predicate on the "case_number" field.
func CaseNumberIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldCaseNumber, vs...))
}

// CaseNumberNotIn applies the NotIn predicate on the "case_number" field.
func CaseNumberNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldCaseNumber, vs...))
}

// CaseNumberGT applies the GT predicate on the "case_number" field.
func CaseNumberGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldCaseNumber, v))
}

// CaseNumberGTE applies the GTE predicate on the "case_number" field.
func CaseNumberGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldCaseNumber, v))
}

// CaseNumberLT applies the LT predicate on the "case_number" field.
func CaseNumberLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldCaseNumber, v))
}

// CaseNumberLTE applies the LTE predicate on the "case_number" field.
func CaseNumberLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldCaseNumber, v))
}

// CaseNumberContains applies the Contains predicate on the "case_number" field.
func CaseNumberContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldCaseNumber, v))
}

// CaseNumberHasPrefix applies the HasPrefix predicate on the "case_number" field.
func CaseNumberHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldCaseNumber, v))
}

// CaseNumberHasSuffix applies the HasSuffix predicate on the "case_number" field.
func CaseNumberHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldCaseNumber, v))
}

// CaseNumberIsNil applies the IsNil predicate on the "case_number" field.
func CaseNumberIsNil() predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIsNull(FieldCaseNumber))
}

// CaseNumberNotNil applies the NotNil predicate on the "case_number" field.
func CaseNumberNotNil() predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotNull(FieldCaseNumber))
}

// CaseNumberEqualFold applies the EqualFold predicate on the "case_number" field.
func CaseNumberEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldCaseNumber, v))
}

// CaseNumberContainsFold applies the ContainsFold predicate on the "case_number" field.
func CaseNumberContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldCaseNumber, v))
}

// FacilityIDEQ applies the EQ predicate on the "facility_id" field.
func FacilityIDEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldFacilityID, v))
}

// FacilityIDNEQ applies the NEQ predicate on the "facility_id" field.
func FacilityIDNEQ(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldFacilityID, v))
}

// FacilityIDIn applies the In predicate on the "facility_id" field.
func FacilityIDIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldFacilityID, vs...))
}

// FacilityIDNotIn applies the NotIn predicate on the "facility_id" field.
func FacilityIDNotIn(vs ...string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldFacilityID, vs...))
}

// FacilityIDGT applies the GT predicate on the "facility_id" field.
func FacilityIDGT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldFacilityID, v))
}

// FacilityIDGTE applies the GTE predicate on the "facility_id" field.
func FacilityIDGTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldFacilityID, v))
}

// FacilityIDLT applies the LT predicate on the "facility_id" field.
func FacilityIDLT(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldFacilityID, v))
}

// FacilityIDLTE applies the LTE predicate on the "facility_id" field.
func FacilityIDLTE(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldFacilityID, v))
}

// FacilityIDContains applies the Contains predicate on the "facility_id" field.
func FacilityIDContains(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContains(FieldFacilityID, v))
}

// FacilityIDHasPrefix applies the HasPrefix predicate on the "facility_id" field.
func FacilityIDHasPrefix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasPrefix(FieldFacilityID, v))
}

// FacilityIDHasSuffix applies the HasSuffix predicate on the "facility_id" field.
func FacilityIDHasSuffix(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldHasSuffix(FieldFacilityID, v))
}

// FacilityIDEqualFold applies the EqualFold predicate on the "facility_id" field.
func FacilityIDEqualFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEqualFold(FieldFacilityID, v))
}

// FacilityIDContainsFold applies the ContainsFold predicate on the "facility_id" field.
func FacilityIDContainsFold(v string) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldContainsFold(FieldFacilityID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BiometricReading {
	return predicate.BiometricReading(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubject applies the HasEdge predicate on the "subject" edge.
func HasSubject() predicate.BiometricReading {
	return predicate.BiometricReading(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectWith applies the HasEdge predicate on the "subject" edge with a given conditions (other predicates).
func HasSubjectWith(preds ...predicate.Person) predicate.BiometricReading {
	return predicate.BiometricReading(func(s *sql.Selector) {
		step := newSubjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BiometricReading) predicate.BiometricReading {
	return predicate.BiometricReading(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BiometricReading) predicate.BiometricReading {
	return predicate.BiometricReading(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BiometricReading) predicate.BiometricReading {
	return predicate.BiometricReading(sql.NotPredicates(p))
}
