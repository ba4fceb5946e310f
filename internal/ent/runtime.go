// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/luminauth/idp-console/internal/ent/auditlog"
	"github.com/luminauth/idp-console/internal/ent/consent"
	"github.com/luminauth/idp-console/internal/ent/oauthclient"
	"github.com/luminauth/idp-console/internal/ent/oauthtoken"
	"github.com/luminauth/idp-console/internal/ent/schema"
	"github.com/luminauth/idp-console/internal/ent/scopedescription"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[2].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescOccurredAt is the schema descriptor for occurred_at field.
	auditlogDescOccurredAt := auditlogFields[8].Descriptor()
	// auditlog.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	auditlog.DefaultOccurredAt = auditlogDescOccurredAt.Default.(func() time.Time)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	consentFields := schema.Consent{}.Fields()
	_ = consentFields
	// consentDescClientID is the schema descriptor for client_id field.
	consentDescClientID := consentFields[1].Descriptor()
	// consent.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	consent.ClientIDValidator = consentDescClientID.Validators[0].(func(string) error)
	// consentDescReferenceID is the schema descriptor for reference_id field.
	consentDescReferenceID := consentFields[3].Descriptor()
	// consent.DefaultReferenceID holds the default value on creation for the reference_id field.
	consent.DefaultReferenceID = consentDescReferenceID.Default.(string)
	// consentDescCreatedAt is the schema descriptor for created_at field.
	consentDescCreatedAt := consentFields[5].Descriptor()
	// consent.DefaultCreatedAt holds the default value on creation for the created_at field.
	consent.DefaultCreatedAt = consentDescCreatedAt.Default.(func() time.Time)
	// consentDescUpdatedAt is the schema descriptor for updated_at field.
	consentDescUpdatedAt := consentFields[6].Descriptor()
	// consent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	consent.DefaultUpdatedAt = consentDescUpdatedAt.Default.(func() time.Time)
	// consent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	consent.UpdateDefaultUpdatedAt = consentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// consentDescID is the schema descriptor for id field.
	consentDescID := consentFields[0].Descriptor()
	// consent.DefaultID holds the default value on creation for the id field.
	consent.DefaultID = consentDescID.Default.(func() uuid.UUID)
	oauthclientFields := schema.OAuthClient{}.Fields()
	_ = oauthclientFields
	// oauthclientDescClientID is the schema descriptor for client_id field.
	oauthclientDescClientID := oauthclientFields[1].Descriptor()
	// oauthclient.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	oauthclient.ClientIDValidator = oauthclientDescClientID.Validators[0].(func(string) error)
	// oauthclientDescName is the schema descriptor for name field.
	oauthclientDescName := oauthclientFields[3].Descriptor()
	// oauthclient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	oauthclient.NameValidator = func() func(string) error {
		validators := oauthclientDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// oauthclientDescDisabled is the schema descriptor for disabled field.
	oauthclientDescDisabled := oauthclientFields[6].Descriptor()
	// oauthclient.DefaultDisabled holds the default value on creation for the disabled field.
	oauthclient.DefaultDisabled = oauthclientDescDisabled.Default.(bool)
	// oauthclientDescURISchemaVersion is the schema descriptor for uri_schema_version field.
	oauthclientDescURISchemaVersion := oauthclientFields[8].Descriptor()
	// oauthclient.DefaultURISchemaVersion holds the default value on creation for the uri_schema_version field.
	oauthclient.DefaultURISchemaVersion = oauthclientDescURISchemaVersion.Default.(int)
	// oauthclientDescCreatedAt is the schema descriptor for created_at field.
	oauthclientDescCreatedAt := oauthclientFields[17].Descriptor()
	// oauthclient.DefaultCreatedAt holds the default value on creation for the created_at field.
	oauthclient.DefaultCreatedAt = oauthclientDescCreatedAt.Default.(func() time.Time)
	// oauthclientDescUpdatedAt is the schema descriptor for updated_at field.
	oauthclientDescUpdatedAt := oauthclientFields[18].Descriptor()
	// oauthclient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	oauthclient.DefaultUpdatedAt = oauthclientDescUpdatedAt.Default.(func() time.Time)
	// oauthclient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	oauthclient.UpdateDefaultUpdatedAt = oauthclientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// oauthclientDescID is the schema descriptor for id field.
	oauthclientDescID := oauthclientFields[0].Descriptor()
	// oauthclient.DefaultID holds the default value on creation for the id field.
	oauthclient.DefaultID = oauthclientDescID.Default.(func() uuid.UUID)
	oauthtokenFields := schema.OAuthToken{}.Fields()
	_ = oauthtokenFields
	// oauthtokenDescClientID is the schema descriptor for client_id field.
	oauthtokenDescClientID := oauthtokenFields[1].Descriptor()
	// oauthtoken.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	oauthtoken.ClientIDValidator = oauthtokenDescClientID.Validators[0].(func(string) error)
	// oauthtokenDescTokenHash is the schema descriptor for token_hash field.
	oauthtokenDescTokenHash := oauthtokenFields[3].Descriptor()
	// oauthtoken.TokenHashValidator is a validator for the "token_hash" field. It is called by the builders before save.
	oauthtoken.TokenHashValidator = oauthtokenDescTokenHash.Validators[0].(func(string) error)
	// oauthtokenDescCreatedAt is the schema descriptor for created_at field.
	oauthtokenDescCreatedAt := oauthtokenFields[6].Descriptor()
	// oauthtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	oauthtoken.DefaultCreatedAt = oauthtokenDescCreatedAt.Default.(func() time.Time)
	// oauthtokenDescID is the schema descriptor for id field.
	oauthtokenDescID := oauthtokenFields[0].Descriptor()
	// oauthtoken.DefaultID holds the default value on creation for the id field.
	oauthtoken.DefaultID = oauthtokenDescID.Default.(func() uuid.UUID)
	scopedescriptionFields := schema.ScopeDescription{}.Fields()
	_ = scopedescriptionFields
	// scopedescriptionDescName is the schema descriptor for name field.
	scopedescriptionDescName := scopedescriptionFields[1].Descriptor()
	// scopedescription.NameValidator is a validator for the "name" field. It is called by the builders before save.
	scopedescription.NameValidator = scopedescriptionDescName.Validators[0].(func(string) error)
	// scopedescriptionDescLocale is the schema descriptor for locale field.
	scopedescriptionDescLocale := scopedescriptionFields[2].Descriptor()
	// scopedescription.LocaleValidator is a validator for the "locale" field. It is called by the builders before save.
	scopedescription.LocaleValidator = scopedescriptionDescLocale.Validators[0].(func(string) error)
	// scopedescriptionDescDisplayName is the schema descriptor for display_name field.
	scopedescriptionDescDisplayName := scopedescriptionFields[3].Descriptor()
	// scopedescription.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	scopedescription.DisplayNameValidator = scopedescriptionDescDisplayName.Validators[0].(func(string) error)
	// scopedescriptionDescCreatedAt is the schema descriptor for created_at field.
	scopedescriptionDescCreatedAt := scopedescriptionFields[5].Descriptor()
	// scopedescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	scopedescription.DefaultCreatedAt = scopedescriptionDescCreatedAt.Default.(func() time.Time)
	// scopedescriptionDescID is the schema descriptor for id field.
	scopedescriptionDescID := scopedescriptionFields[0].Descriptor()
	// scopedescription.DefaultID holds the default value on creation for the id field.
	scopedescription.DefaultID = scopedescriptionDescID.Default.(func() uuid.UUID)
}
