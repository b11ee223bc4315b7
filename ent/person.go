// Code generated by ent, DO NOT EDIT.

package ent

import (
	"face-gateway/ent/person"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Person is the model entity for the Person schema.
type Person struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FacialID holds the value of the "facial_id" field.
	FacialID string `json:"facial_id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Court holds the value of the "court" field.
	Court string `json:"court,omitempty"`
	// Regime holds the value of the "regime" field.
	Regime string `json:"regime,omitempty"`
	// CaseNumber holds the value of the "case_number" field.
	CaseNumber string `json:"case_number,omitempty"`
	// FacilityID holds the value of the "facility_id" field.
	FacilityID string `json:"facility_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PersonQuery when eager-loading is set.
	Edges        PersonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PersonEdges holds the relations/edges for other nodes in the graph.
type PersonEdges struct {
	// Readings holds the value of the readings edge.
	Readings []*BiometricReading `json:"readings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReadingsOrErr returns the Readings value or an error if the edge
// was not loaded in eager-loading.
func (e PersonEdges) ReadingsOrErr() ([]*BiometricReading, error) {
	if e.loadedTypes[0] {
		return e.Readings, nil
	}
	return nil, &NotLoadedError{edge: "readings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Person) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case person.FieldFacialID, person.FieldFullName, person.FieldCourt, person.FieldRegime, person.FieldCaseNumber, person.FieldFacilityID:
			values[i] = new(sql.NullString)
		case person.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case person.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Person fields.
func (_m *Person) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case person.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case person.FieldFacialID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facial_id", values[i])
			} else if value.Valid {
				_m.FacialID = value.String
			}
		case person.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case person.FieldCourt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field court", values[i])
			} else if value.Valid {
				_m.Court = value.String
			}
		case person.FieldRegime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field regime", values[i])
			} else if value.Valid {
				_m.Regime = value.String
			}
		case person.FieldCaseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_number", values[i])
			} else if value.Valid {
				_m.CaseNumber = value.String
			}
		case person.FieldFacilityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facility_id", values[i])
			} else if value.Valid {
				_m.FacilityID = value.String
			}
		case person.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Person.
// This includes values selected through modifiers, order, etc.
func (_m *Person) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReadings queries the "readings" edge of the Person entity.
func (_m *Person) QueryReadings() *BiometricReadingQuery {
	return NewPersonClient(_m.config).QueryReadings(_m)
}

// Update returns a builder for updating this Person.
// Note that you need to call Person.Unwrap() before calling this method if this Person
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Person) Update() *PersonUpdateOne {
	return NewPersonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Person entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Person) Unwrap() *Person {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Person is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Person) String() string {
	var builder strings.Builder
	builder.WriteString("Person(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("facial_id=")
	builder.WriteString(_m.FacialID)
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("court=")
	builder.WriteString(_m.Court)
	builder.WriteString(", ")
	builder.WriteString("regime=")
	builder.WriteString(_m.Regime)
	builder.WriteString(", ")
	builder.WriteString("case_number=")
	builder.WriteString(_m.CaseNumber)
	builder.WriteString(", ")
	builder.WriteString("facility_id=")
	builder.WriteString(_m.FacilityID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Persons is a parsable slice of Person.
type Persons []*Person
