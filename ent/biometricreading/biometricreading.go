// Code generated by ent, DO NOT EDIT.

package biometricreading

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the biometricreading type in the database.
	Label = "biometric_reading"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReadDate holds the string denoting the read_date field in the database.
	FieldReadDate = "read_date"
	// FieldReadTime holds the string denoting the read_time field in the database.
	FieldReadTime = "read_time"
	// FieldFacialID holds the string denoting the facial_id field in the database.
	FieldFacialID = "facial_id"
	// FieldSubjectName holds the string denoting the subject_name field in the database.
	FieldSubjectName = "subject_name"
	// FieldCourt holds the string denoting the court field in the database.
	FieldCourt = "court"
	// FieldRegime holds the string denoting the regime field in the database.
	FieldRegime = "regime"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPrintReceipt holds the string denoting the print_receipt field in the database.
	FieldPrintReceipt = "print_receipt"
	// FieldCaseNumber holds the string denoting the case_number field in the database.
	FieldCaseNumber = "case_number"
	// FieldFacilityID holds the string denoting the facility_id field in the database.
	FieldFacilityID = "facility_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSubject holds the string denoting the subject edge name in mutations.
	EdgeSubject = "subject"
	// Table holds the table name of the biometricreading in the database.
	Table = "biometric_readings"
	// SubjectTable is the table that holds the subject relation/edge.
	SubjectTable = "biometric_readings"
	// SubjectInverseTable is the table name for the Person entity.
	// It exists in this package in order to avoid circular dependency with the "person" package.
	SubjectInverseTable = "persons"
	// SubjectColumn is the table column denoting the subject relation/edge.
	SubjectColumn = "person_readings"
)

// Columns holds all SQL columns for biometricreading fields.
var Columns = []string{
	FieldID,
	FieldReadDate,
	FieldReadTime,
	FieldFacialID,
	FieldSubjectName,
	FieldCourt,
	FieldRegime,
	FieldKind,
	FieldPrintReceipt,
	FieldCaseNumber,
	FieldFacilityID,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "biometric_readings"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"person_readings",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// ReadDateValidator is a validator for the "read_date" field. It is called by the builders before save.
	ReadDateValidator func(string) error
	// ReadTimeValidator is a validator for the "read_time" field. It is called by the builders before save.
	ReadTimeValidator func(string) error
	// FacialIDValidator is a validator for the "facial_id" field. It is called by the builders before save.
	FacialIDValidator func(string) error
	// SubjectNameValidator is a validator for the "subject_name" field. It is called by the builders before save.
	SubjectNameValidator func(string) error
	// DefaultKind holds the default value on creation for the "kind" field.
	DefaultKind string
	// DefaultPrintReceipt holds the default value on creation for the "print_receipt" field.
	DefaultPrintReceipt string
	// DefaultFacilityID holds the default value on creation for the "facility_id" field.
	DefaultFacilityID string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the BiometricReading queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReadDate orders the results by the read_date field.
func ByReadDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadDate, opts...).ToFunc()
}

// ByReadTime orders the results by the read_time field.
func ByReadTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadTime, opts...).ToFunc()
}

// ByFacialID orders the results by the facial_id field.
func ByFacialID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacialID, opts...).ToFunc()
}

// BySubjectName orders the results by the subject_name field.
func BySubjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectName, opts...).ToFunc()
}

// ByCourt orders the results by the court field.
func ByCourt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourt, opts...).ToFunc()
}

// ByRegime orders the results by the regime field.
func ByRegime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegime, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByPrintReceipt orders the results by the print_receipt field.
func ByPrintReceipt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrintReceipt, opts...).ToFunc()
}

// ByCaseNumber orders the results by the case_number field.
func ByCaseNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseNumber, opts...).ToFunc()
}

// ByFacilityID orders the results by the facility_id field.
func ByFacilityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacilityID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySubjectField orders the results by subject field.
func BySubjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubjectStep(), sql.OrderByField(field, opts...))
	}
}
func newSubjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
	)
}
