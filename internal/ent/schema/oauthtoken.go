package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// OAuthToken is an access or refresh token issued against a client.
// Rows are removed when the owning client is deleted.
type OAuthToken struct {
	ent.Schema
}

// Fields of the OAuthToken.
func (OAuthToken) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("client_id").
			NotEmpty(),
		field.UUID("user_id", uuid.UUID{}).
			Optional(),
		field.String("token_hash").
			NotEmpty().
			Unique().
			Sensitive(),
		field.Enum("kind").
			Values("access", "refresh"),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OAuthToken.
func (OAuthToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id"),
	}
}
