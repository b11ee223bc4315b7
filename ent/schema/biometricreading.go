package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BiometricReading is the audit row created once per accepted recognition
// event. Rows are append-only: this subsystem never updates or deletes them.
//
// read_date and read_time are kept as separate strings ("2006-01-02" and
// "15:04:05") to match the legacy schema; the durable dedup query relies on
// lexical ordering of read_time within a single read_date.
type BiometricReading struct{ ent.Schema }

// Fields of the BiometricReading.
func (BiometricReading) Fields() []ent.Field {
	return []ent.Field{
		field.String("read_date").NotEmpty().MaxLen(10),
		field.String("read_time").NotEmpty().MaxLen(8),
		field.String("facial_id").NotEmpty().MaxLen(32),
		field.String("subject_name").NotEmpty(),
		field.String("court").Optional(),
		field.String("regime").Optional(),
		field.String("kind").Default("F"),
		field.String("print_receipt").Default("N"),
		field.String("case_number").Optional(),
		field.String("facility_id").Default("1"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the BiometricReading.
func (BiometricReading) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subject", Person.Type).Ref("readings").Unique(),
	}
}

// Indexes defines indexes for the BiometricReading entity.
func (BiometricReading) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("facial_id", "read_date"),
		index.Fields("facility_id"),
	}
}
