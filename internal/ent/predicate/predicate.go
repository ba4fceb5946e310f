// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Consent is the predicate function for consent builders.
type Consent func(*sql.Selector)

// OAuthClient is the predicate function for oauthclient builders.
type OAuthClient func(*sql.Selector)

// OAuthToken is the predicate function for oauthtoken builders.
type OAuthToken func(*sql.Selector)

// ScopeDescription is the predicate function for scopedescription builders.
type ScopeDescription func(*sql.Selector)
