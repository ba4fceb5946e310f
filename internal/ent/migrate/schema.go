// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
	}
	// ConsentsColumns holds the columns for the "consents" table.
	ConsentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "reference_id", Type: field.TypeString, Default: ""},
		{Name: "scopes", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConsentsTable holds the schema information for the "consents" table.
	ConsentsTable = &schema.Table{
		Name:       "consents",
		Columns:    ConsentsColumns,
		PrimaryKey: []*schema.Column{ConsentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "consent_client_id_user_id_reference_id",
				Unique:  true,
				Columns: []*schema.Column{ConsentsColumns[1], ConsentsColumns[2], ConsentsColumns[3]},
			},
		},
	}
	// OauthClientsColumns holds the columns for the "oauth_clients" table.
	OauthClientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeString, Unique: true},
		{Name: "secret_hash", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 256},
		{Name: "icon", Type: field.TypeString, Nullable: true},
		{Name: "client_type", Type: field.TypeEnum, Enums: []string{"web", "public", "mobile"}, Default: "web"},
		{Name: "disabled", Type: field.TypeBool, Default: false},
		{Name: "redirect_uris", Type: field.TypeString, Nullable: true},
		{Name: "uri_schema_version", Type: field.TypeInt, Default: 2},
		{Name: "scopes", Type: field.TypeJSON, Nullable: true},
		{Name: "grant_types", Type: field.TypeJSON, Nullable: true},
		{Name: "response_types", Type: field.TypeJSON, Nullable: true},
		{Name: "homepage", Type: field.TypeString, Nullable: true},
		{Name: "logo", Type: field.TypeString, Nullable: true},
		{Name: "terms", Type: field.TypeString, Nullable: true},
		{Name: "privacy", Type: field.TypeString, Nullable: true},
		{Name: "contacts", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OauthClientsTable holds the schema information for the "oauth_clients" table.
	OauthClientsTable = &schema.Table{
		Name:       "oauth_clients",
		Columns:    OauthClientsColumns,
		PrimaryKey: []*schema.Column{OauthClientsColumns[0]},
	}
	// OauthTokensColumns holds the columns for the "oauth_tokens" table.
	OauthTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "token_hash", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"access", "refresh"}},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OauthTokensTable holds the schema information for the "oauth_tokens" table.
	OauthTokensTable = &schema.Table{
		Name:       "oauth_tokens",
		Columns:    OauthTokensColumns,
		PrimaryKey: []*schema.Column{OauthTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oauthtoken_client_id",
				Unique:  false,
				Columns: []*schema.Column{OauthTokensColumns[1]},
			},
		},
	}
	// ScopeDescriptionsColumns holds the columns for the "scope_descriptions" table.
	ScopeDescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "locale", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScopeDescriptionsTable holds the schema information for the "scope_descriptions" table.
	ScopeDescriptionsTable = &schema.Table{
		Name:       "scope_descriptions",
		Columns:    ScopeDescriptionsColumns,
		PrimaryKey: []*schema.Column{ScopeDescriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scopedescription_name_locale",
				Unique:  true,
				Columns: []*schema.Column{ScopeDescriptionsColumns[1], ScopeDescriptionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		ConsentsTable,
		OauthClientsTable,
		OauthTokensTable,
		ScopeDescriptionsTable,
	}
)

func init() {
}
