package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// DeviceCommandLog records every operator-issued appliance command and its
// outcome, including degraded fallbacks.
type DeviceCommandLog struct{ ent.Schema }

// Fields of the DeviceCommandLog.
func (DeviceCommandLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("command").NotEmpty().MaxLen(40),
		field.String("status").NotEmpty().MaxLen(20), // ok | degraded | failed
		field.String("detail").Optional(),
		field.String("operator").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes defines indexes for the DeviceCommandLog entity.
func (DeviceCommandLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("command"),
		index.Fields("created_at"),
	}
}
