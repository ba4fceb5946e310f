package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// OAuthClient holds a registered third-party application.
type OAuthClient struct {
	ent.Schema
}

// Fields defines the client fields.
func (OAuthClient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("client_id").
			NotEmpty().
			Unique(),
		field.String("secret_hash").
			Sensitive().
			Optional(),
		field.String("name").
			NotEmpty().
			MaxLen(256),
		field.String("icon").
			Optional(),
		field.Enum("client_type").
			Values("web", "public", "mobile").
			Default("web"),
		field.Bool("disabled").
			Default(false),
		// Raw storage shape; decoded through the versioned codec.
		// Version 1 rows hold a comma-delimited string, version 2 a JSON array.
		field.String("redirect_uris").
			Optional(),
		field.Int("uri_schema_version").
			Default(2),
		field.Strings("scopes").
			Optional(),
		field.Strings("grant_types").
			Optional(),
		field.Strings("response_types").
			Optional(),
		field.String("homepage").
			Optional(),
		field.String("logo").
			Optional(),
		field.String("terms").
			Optional(),
		field.String("privacy").
			Optional(),
		field.Strings("contacts").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
