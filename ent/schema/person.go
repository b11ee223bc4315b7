package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Person is a registered subject whose face is enrolled on the appliance.
// The facial_id is the appliance-assigned identifier carried by recognition
// events; it is the only correlation key between the device and the registry.
type Person struct{ ent.Schema }

// Fields of the Person.
func (Person) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("facial_id").NotEmpty().MaxLen(32).Unique(),
		field.String("full_name").NotEmpty().MaxLen(120),
		field.String("court").Optional(),
		field.String("regime").Optional(),
		field.String("case_number").Optional(),
		field.String("facility_id").Default("1"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Person.
func (Person) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("readings", BiometricReading.Type),
	}
}

// Indexes defines indexes for the Person entity.
func (Person) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("facility_id"),
	}
}
