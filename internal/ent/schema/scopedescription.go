package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ScopeDescription holds localized display metadata for a scope string.
// Seeded out of band; the resolver only reads it.
type ScopeDescription struct {
	ent.Schema
}

// Fields of the ScopeDescription.
func (ScopeDescription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("locale").
			NotEmpty(),
		field.String("display_name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScopeDescription.
func (ScopeDescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "locale").
			Unique(),
	}
}
