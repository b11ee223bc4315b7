// Code generated by ent, DO NOT EDIT.

package person

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the person type in the database.
	Label = "person"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFacialID holds the string denoting the facial_id field in the database.
	FieldFacialID = "facial_id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldCourt holds the string denoting the court field in the database.
	FieldCourt = "court"
	// FieldRegime holds the string denoting the regime field in the database.
	FieldRegime = "regime"
	// FieldCaseNumber holds the string denoting the case_number field in the database.
	FieldCaseNumber = "case_number"
	// FieldFacilityID holds the string denoting the facility_id field in the database.
	FieldFacilityID = "facility_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeReadings holds the string denoting the readings edge name in mutations.
	EdgeReadings = "readings"
	// Table holds the table name of the person in the database.
	Table = "persons"
	// ReadingsTable is the table that holds the readings relation/edge.
	ReadingsTable = "biometric_readings"
	// ReadingsInverseTable is the table name for the BiometricReading entity.
	// It exists in this package in order to avoid circular dependency with the "biometricreading" package.
	ReadingsInverseTable = "biometric_readings"
	// ReadingsColumn is the table column denoting the readings relation/edge.
	ReadingsColumn = "person_readings"
)

// Columns holds all SQL columns for person fields.
var Columns = []string{
	FieldID,
	FieldFacialID,
	FieldFullName,
	FieldCourt,
	FieldRegime,
	FieldCaseNumber,
	FieldFacilityID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FacialIDValidator is a validator for the "facial_id" field. It is called by the builders before save.
	FacialIDValidator func(string) error
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// DefaultFacilityID holds the default value on creation for the "facility_id" field.
	DefaultFacilityID string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Person queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFacialID orders the results by the facial_id field.
func ByFacialID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacialID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByCourt orders the results by the court field.
func ByCourt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourt, opts...).ToFunc()
}

// ByRegime orders the results by the regime field.
func ByRegime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegime, opts...).ToFunc()
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

// ByReadingsCount orders the results by readings count.
func ByReadingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReadingsStep(), opts...)
	}
}

// ByReadings orders the results by readings terms.
func ByReadings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReadingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newReadingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReadingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReadingsTable, ReadingsColumn),
	)
}
