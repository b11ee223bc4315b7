// Code generated by ent, DO NOT EDIT.

package ent

import (
	"face-gateway/ent/biometricreading"
	"face-gateway/ent/person"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// BiometricReading is the model entity for the BiometricReading schema.
type BiometricReading struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ReadDate holds the value of the "read_date" field.
	ReadDate string `json:"read_date,omitempty"`
	// ReadTime holds the value of the "read_time" field.
	ReadTime string `json:"read_time,omitempty"`
	// FacialID holds the value of the "facial_id" field.
	FacialID string `json:"facial_id,omitempty"`
	// SubjectName holds the value of the "subject_name" field.
	SubjectName string `json:"subject_name,omitempty"`
	// Court holds the value of the "court" field.
	Court string `json:"court,omitempty"`
	// Regime holds the value of the "regime" field.
	Regime string `json:"regime,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// PrintReceipt holds the value of the "print_receipt" field.
	PrintReceipt string `json:"print_receipt,omitempty"`
	// CaseNumber holds the value of the "case_number" field.
	CaseNumber string `json:"case_number,omitempty"`
	// FacilityID holds the value of the "facility_id" field.
	FacilityID string `json:"facility_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BiometricReadingQuery when eager-loading is set.
	Edges           BiometricReadingEdges `json:"edges"`
	person_readings *uuid.UUID
	selectValues    sql.SelectValues
}

// BiometricReadingEdges holds the relations/edges for other nodes in the graph.
type BiometricReadingEdges struct {
	// Subject holds the value of the subject edge.
	Subject *Person `json:"subject,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubjectOrErr returns the Subject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BiometricReadingEdges) SubjectOrErr() (*Person, error) {
	if e.Subject != nil {
		return e.Subject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: person.Label}
	}
	return nil, &NotLoadedError{edge: "subject"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BiometricReading) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case biometricreading.FieldID:
			values[i] = new(sql.NullInt64)
		case biometricreading.FieldReadDate, biometricreading.FieldReadTime, biometricreading.FieldFacialID, biometricreading.FieldSubjectName, biometricreading.FieldCourt, biometricreading.FieldRegime, biometricreading.FieldKind, biometricreading.FieldPrintReceipt, biometricreading.FieldCaseNumber, biometricreading.FieldFacilityID:
			values[i] = new(sql.NullString)
		case biometricreading.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case biometricreading.ForeignKeys[0]: // person_readings
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BiometricReading fields.
func (_m *BiometricReading) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case biometricreading.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case biometricreading.FieldReadDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field read_date", values[i])
			} else if value.Valid {
				_m.ReadDate = value.String
			}
		case biometricreading.FieldReadTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field read_time", values[i])
			} else if value.Valid {
				_m.ReadTime = value.String
			}
		case biometricreading.FieldFacialID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facial_id", values[i])
			} else if value.Valid {
				_m.FacialID = value.String
			}
		case biometricreading.FieldSubjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_name", values[i])
			} else if value.Valid {
				_m.SubjectName = value.String
			}
		case biometricreading.FieldCourt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field court", values[i])
			} else if value.Valid {
				_m.Court = value.String
			}
		case biometricreading.FieldRegime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field regime", values[i])
			} else if value.Valid {
				_m.Regime = value.String
			}
		case biometricreading.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case biometricreading.FieldPrintReceipt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field print_receipt", values[i])
			} else if value.Valid {
				_m.PrintReceipt = value.String
			}
		case biometricreading.FieldCaseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_number", values[i])
			} else if value.Valid {
				_m.CaseNumber = value.String
			}
		case biometricreading.FieldFacilityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facility_id", values[i])
			} else if value.Valid {
				_m.FacilityID = value.String
			}
		case biometricreading.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case biometricreading.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field person_readings", values[i])
			} else if value.Valid {
				_m.person_readings = new(uuid.UUID)
				*_m.person_readings = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BiometricReading.
// This includes values selected through modifiers, order, etc.
func (_m *BiometricReading) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubject queries the "subject" edge of the BiometricReading entity.
func (_m *BiometricReading) QuerySubject() *PersonQuery {
	return NewBiometricReadingClient(_m.config).QuerySubject(_m)
}

// Update returns a builder for updating this BiometricReading.
// Note that you need to call BiometricReading.Unwrap() before calling this method if this BiometricReading
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BiometricReading) Update() *BiometricReadingUpdateOne {
	return NewBiometricReadingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BiometricReading entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BiometricReading) Unwrap() *BiometricReading {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BiometricReading is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BiometricReading) String() string {
	var builder strings.Builder
	builder.WriteString("BiometricReading(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("read_date=")
	builder.WriteString(_m.ReadDate)
	builder.WriteString(", ")
	builder.WriteString("read_time=")
	builder.WriteString(_m.ReadTime)
	builder.WriteString(", ")
	builder.WriteString("facial_id=")
	builder.WriteString(_m.FacialID)
	builder.WriteString(", ")
	builder.WriteString("subject_name=")
	builder.WriteString(_m.SubjectName)
	builder.WriteString(", ")
	builder.WriteString("court=")
	builder.WriteString(_m.Court)
	builder.WriteString(", ")
	builder.WriteString("regime=")
	builder.WriteString(_m.Regime)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("print_receipt=")
	builder.WriteString(_m.PrintReceipt)
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

// BiometricReadings is a parsable slice of BiometricReading.
type BiometricReadings []*BiometricReading
