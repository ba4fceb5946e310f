// Code generated by ent, DO NOT EDIT.

package oauthclient

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the oauthclient type in the database.
	Label = "oauth_client"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldSecretHash holds the string denoting the secret_hash field in the database.
	FieldSecretHash = "secret_hash"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldIcon holds the string denoting the icon field in the database.
	FieldIcon = "icon"
	// FieldClientType holds the string denoting the client_type field in the database.
	FieldClientType = "client_type"
	// FieldDisabled holds the string denoting the disabled field in the database.
	FieldDisabled = "disabled"
	// FieldRedirectUris holds the string denoting the redirect_uris field in the database.
	FieldRedirectUris = "redirect_uris"
	// FieldURISchemaVersion holds the string denoting the uri_schema_version field in the database.
	FieldURISchemaVersion = "uri_schema_version"
	// FieldScopes holds the string denoting the scopes field in the database.
	FieldScopes = "scopes"
	// FieldGrantTypes holds the string denoting the grant_types field in the database.
	FieldGrantTypes = "grant_types"
	// FieldResponseTypes holds the string denoting the response_types field in the database.
	FieldResponseTypes = "response_types"
	// FieldHomepage holds the string denoting the homepage field in the database.
	FieldHomepage = "homepage"
	// FieldLogo holds the string denoting the logo field in the database.
	FieldLogo = "logo"
	// FieldTerms holds the string denoting the terms field in the database.
	FieldTerms = "terms"
	// FieldPrivacy holds the string denoting the privacy field in the database.
	FieldPrivacy = "privacy"
	// FieldContacts holds the string denoting the contacts field in the database.
	FieldContacts = "contacts"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the oauthclient in the database.
	Table = "oauth_clients"
)

// Columns holds all SQL columns for oauthclient fields.
var Columns = []string{
	FieldID,
	FieldClientID,
	FieldSecretHash,
	FieldName,
	FieldIcon,
	FieldClientType,
	FieldDisabled,
	FieldRedirectUris,
	FieldURISchemaVersion,
	FieldScopes,
	FieldGrantTypes,
	FieldResponseTypes,
	FieldHomepage,
	FieldLogo,
	FieldTerms,
	FieldPrivacy,
	FieldContacts,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	ClientIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultDisabled holds the default value on creation for the "disabled" field.
	DefaultDisabled bool
	// DefaultURISchemaVersion holds the default value on creation for the "uri_schema_version" field.
	DefaultURISchemaVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ClientType defines the type for the "client_type" enum field.
type ClientType string

// ClientTypeWeb is the default value of the ClientType enum.
const DefaultClientType = ClientTypeWeb

// ClientType values.
const (
	ClientTypeWeb    ClientType = "web"
	ClientTypePublic ClientType = "public"
	ClientTypeMobile ClientType = "mobile"
)

func (ct ClientType) String() string {
	return string(ct)
}

// ClientTypeValidator is a validator for the "client_type" field enum values. It is called by the builders before save.
func ClientTypeValidator(ct ClientType) error {
	switch ct {
	case ClientTypeWeb, ClientTypePublic, ClientTypeMobile:
		return nil
	default:
		return fmt.Errorf("oauthclient: invalid enum value for client_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the OAuthClient queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// BySecretHash orders the results by the secret_hash field.
func BySecretHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecretHash, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByIcon orders the results by the icon field.
func ByIcon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIcon, opts...).ToFunc()
}

// ByClientType orders the results by the client_type field.
func ByClientType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientType, opts...).ToFunc()
}

// ByDisabled orders the results by the disabled field.
func ByDisabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisabled, opts...).ToFunc()
}

// ByRedirectUris orders the results by the redirect_uris field.
func ByRedirectUris(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRedirectUris, opts...).ToFunc()
}

// ByURISchemaVersion orders the results by the uri_schema_version field.
func ByURISchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURISchemaVersion, opts...).ToFunc()
}

// ByHomepage orders the results by the homepage field.
func ByHomepage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHomepage, opts...).ToFunc()
}

// ByLogo orders the results by the logo field.
func ByLogo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogo, opts...).ToFunc()
}

// ByTerms orders the results by the terms field.
func ByTerms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerms, opts...).ToFunc()
}

// ByPrivacy orders the results by the privacy field.
func ByPrivacy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrivacy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
