// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/luminauth/idp-console/internal/ent/oauthclient"
	"github.com/luminauth/idp-console/internal/ent/predicate"
)

// OAuthClientUpdate is the builder for updating OAuthClient entities.
type OAuthClientUpdate struct {
	config
	hooks    []Hook
	mutation *OAuthClientMutation
}

// Where appends a list predicates to the OAuthClientUpdate builder.
func (_u *OAuthClientUpdate) Where(ps ...predicate.OAuthClient) *OAuthClientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *OAuthClientUpdate) SetClientID(v string) *OAuthClientUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableClientID(v *string) *OAuthClientUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSecretHash sets the "secret_hash" field.
func (_u *OAuthClientUpdate) SetSecretHash(v string) *OAuthClientUpdate {
	_u.mutation.SetSecretHash(v)
	return _u
}

// SetNillableSecretHash sets the "secret_hash" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableSecretHash(v *string) *OAuthClientUpdate {
	if v != nil {
		_u.SetSecretHash(*v)
	}
	return _u
}

// ClearSecretHash clears the value of the "secret_hash" field.
func (_u *OAuthClientUpdate) ClearSecretHash() *OAuthClientUpdate {
	_u.mutation.ClearSecretHash()
	return _u
}

// SetName sets the "name" field.
func (_u *OAuthClientUpdate) SetName(v string) *OAuthClientUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableName(v *string) *OAuthClientUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *OAuthClientUpdate) SetIcon(v string) *OAuthClientUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableIcon(v *string) *OAuthClientUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *OAuthClientUpdate) ClearIcon() *OAuthClientUpdate {
	_u.mutation.ClearIcon()
	return _u
}

// SetClientType sets the "client_type" field.
func (_u *OAuthClientUpdate) SetClientType(v oauthclient.ClientType) *OAuthClientUpdate {
	_u.mutation.SetClientType(v)
	return _u
}

// SetNillableClientType sets the "client_type" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableClientType(v *oauthclient.ClientType) *OAuthClientUpdate {
	if v != nil {
		_u.SetClientType(*v)
	}
	return _u
}

// SetDisabled sets the "disabled" field.
func (_u *OAuthClientUpdate) SetDisabled(v bool) *OAuthClientUpdate {
	_u.mutation.SetDisabled(v)
	return _u
}

// SetNillableDisabled sets the "disabled" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableDisabled(v *bool) *OAuthClientUpdate {
	if v != nil {
		_u.SetDisabled(*v)
	}
	return _u
}

// SetRedirectUris sets the "redirect_uris" field.
func (_u *OAuthClientUpdate) SetRedirectUris(v string) *OAuthClientUpdate {
	_u.mutation.SetRedirectUris(v)
	return _u
}

// SetNillableRedirectUris sets the "redirect_uris" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableRedirectUris(v *string) *OAuthClientUpdate {
	if v != nil {
		_u.SetRedirectUris(*v)
	}
	return _u
}

// ClearRedirectUris clears the value of the "redirect_uris" field.
func (_u *OAuthClientUpdate) ClearRedirectUris() *OAuthClientUpdate {
	_u.mutation.ClearRedirectUris()
	return _u
}

// SetURISchemaVersion sets the "uri_schema_version" field.
func (_u *OAuthClientUpdate) SetURISchemaVersion(v int) *OAuthClientUpdate {
	_u.mutation.ResetURISchemaVersion()
	_u.mutation.SetURISchemaVersion(v)
	return _u
}

// SetNillableURISchemaVersion sets the "uri_schema_version" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableURISchemaVersion(v *int) *OAuthClientUpdate {
	if v != nil {
		_u.SetURISchemaVersion(*v)
	}
	return _u
}

// AddURISchemaVersion adds value to the "uri_schema_version" field.
func (_u *OAuthClientUpdate) AddURISchemaVersion(v int) *OAuthClientUpdate {
	_u.mutation.AddURISchemaVersion(v)
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *OAuthClientUpdate) SetScopes(v []string) *OAuthClientUpdate {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *OAuthClientUpdate) AppendScopes(v []string) *OAuthClientUpdate {
	_u.mutation.AppendScopes(v)
	return _u
}

// ClearScopes clears the value of the "scopes" field.
func (_u *OAuthClientUpdate) ClearScopes() *OAuthClientUpdate {
	_u.mutation.ClearScopes()
	return _u
}

// SetGrantTypes sets the "grant_types" field.
func (_u *OAuthClientUpdate) SetGrantTypes(v []string) *OAuthClientUpdate {
	_u.mutation.SetGrantTypes(v)
	return _u
}

// AppendGrantTypes appends value to the "grant_types" field.
func (_u *OAuthClientUpdate) AppendGrantTypes(v []string) *OAuthClientUpdate {
	_u.mutation.AppendGrantTypes(v)
	return _u
}

// ClearGrantTypes clears the value of the "grant_types" field.
func (_u *OAuthClientUpdate) ClearGrantTypes() *OAuthClientUpdate {
	_u.mutation.ClearGrantTypes()
	return _u
}

// SetResponseTypes sets the "response_types" field.
func (_u *OAuthClientUpdate) SetResponseTypes(v []string) *OAuthClientUpdate {
	_u.mutation.SetResponseTypes(v)
	return _u
}

// AppendResponseTypes appends value to the "response_types" field.
func (_u *OAuthClientUpdate) AppendResponseTypes(v []string) *OAuthClientUpdate {
	_u.mutation.AppendResponseTypes(v)
	return _u
}

// ClearResponseTypes clears the value of the "response_types" field.
func (_u *OAuthClientUpdate) ClearResponseTypes() *OAuthClientUpdate {
	_u.mutation.ClearResponseTypes()
	return _u
}

// SetHomepage sets the "homepage" field.
func (_u *OAuthClientUpdate) SetHomepage(v string) *OAuthClientUpdate {
	_u.mutation.SetHomepage(v)
	return _u
}

// SetNillableHomepage sets the "homepage" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableHomepage(v *string) *OAuthClientUpdate {
	if v != nil {
		_u.SetHomepage(*v)
	}
	return _u
}

// ClearHomepage clears the value of the "homepage" field.
func (_u *OAuthClientUpdate) ClearHomepage() *OAuthClientUpdate {
	_u.mutation.ClearHomepage()
	return _u
}

// SetLogo sets the "logo" field.
func (_u *OAuthClientUpdate) SetLogo(v string) *OAuthClientUpdate {
	_u.mutation.SetLogo(v)
	return _u
}

// SetNillableLogo sets the "logo" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableLogo(v *string) *OAuthClientUpdate {
	if v != nil {
		_u.SetLogo(*v)
	}
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *OAuthClientUpdate) ClearLogo() *OAuthClientUpdate {
	_u.mutation.ClearLogo()
	return _u
}

// SetTerms sets the "terms" field.
func (_u *OAuthClientUpdate) SetTerms(v string) *OAuthClientUpdate {
	_u.mutation.SetTerms(v)
	return _u
}

// SetNillableTerms sets the "terms" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillableTerms(v *string) *OAuthClientUpdate {
	if v != nil {
		_u.SetTerms(*v)
	}
	return _u
}

// ClearTerms clears the value of the "terms" field.
func (_u *OAuthClientUpdate) ClearTerms() *OAuthClientUpdate {
	_u.mutation.ClearTerms()
	return _u
}

// SetPrivacy sets the "privacy" field.
func (_u *OAuthClientUpdate) SetPrivacy(v string) *OAuthClientUpdate {
	_u.mutation.SetPrivacy(v)
	return _u
}

// SetNillablePrivacy sets the "privacy" field if the given value is not nil.
func (_u *OAuthClientUpdate) SetNillablePrivacy(v *string) *OAuthClientUpdate {
	if v != nil {
		_u.SetPrivacy(*v)
	}
	return _u
}

// ClearPrivacy clears the value of the "privacy" field.
func (_u *OAuthClientUpdate) ClearPrivacy() *OAuthClientUpdate {
	_u.mutation.ClearPrivacy()
	return _u
}

// SetContacts sets the "contacts" field.
func (_u *OAuthClientUpdate) SetContacts(v []string) *OAuthClientUpdate {
	_u.mutation.SetContacts(v)
	return _u
}

// AppendContacts appends value to the "contacts" field.
func (_u *OAuthClientUpdate) AppendContacts(v []string) *OAuthClientUpdate {
	_u.mutation.AppendContacts(v)
	return _u
}

// ClearContacts clears the value of the "contacts" field.
func (_u *OAuthClientUpdate) ClearContacts() *OAuthClientUpdate {
	_u.mutation.ClearContacts()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OAuthClientUpdate) SetUpdatedAt(v time.Time) *OAuthClientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OAuthClientMutation object of the builder.
func (_u *OAuthClientUpdate) Mutation() *OAuthClientMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OAuthClientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OAuthClientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OAuthClientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OAuthClientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OAuthClientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := oauthclient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OAuthClientUpdate) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := oauthclient.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "OAuthClient.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := oauthclient.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "OAuthClient.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientType(); ok {
		if err := oauthclient.ClientTypeValidator(v); err != nil {
			return &ValidationError{Name: "client_type", err: fmt.Errorf(`ent: validator failed for field "OAuthClient.client_type": %w`, err)}
		}
	}
	return nil
}

func (_u *OAuthClientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oauthclient.Table, oauthclient.Columns, sqlgraph.NewFieldSpec(oauthclient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(oauthclient.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecretHash(); ok {
		_spec.SetField(oauthclient.FieldSecretHash, field.TypeString, value)
	}
	if _u.mutation.SecretHashCleared() {
		_spec.ClearField(oauthclient.FieldSecretHash, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(oauthclient.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(oauthclient.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(oauthclient.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.ClientType(); ok {
		_spec.SetField(oauthclient.FieldClientType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Disabled(); ok {
		_spec.SetField(oauthclient.FieldDisabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RedirectUris(); ok {
		_spec.SetField(oauthclient.FieldRedirectUris, field.TypeString, value)
	}
	if _u.mutation.RedirectUrisCleared() {
		_spec.ClearField(oauthclient.FieldRedirectUris, field.TypeString)
	}
	if value, ok := _u.mutation.URISchemaVersion(); ok {
		_spec.SetField(oauthclient.FieldURISchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedURISchemaVersion(); ok {
		_spec.AddField(oauthclient.FieldURISchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(oauthclient.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthclient.FieldScopes, value)
		})
	}
	if _u.mutation.ScopesCleared() {
		_spec.ClearField(oauthclient.FieldScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.GrantTypes(); ok {
		_spec.SetField(oauthclient.FieldGrantTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGrantTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthclient.FieldGrantTypes, value)
		})
	}
	if _u.mutation.GrantTypesCleared() {
		_spec.ClearField(oauthclient.FieldGrantTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseTypes(); ok {
		_spec.SetField(oauthclient.FieldResponseTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponseTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthclient.FieldResponseTypes, value)
		})
	}
	if _u.mutation.ResponseTypesCleared() {
		_spec.ClearField(oauthclient.FieldResponseTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Homepage(); ok {
		_spec.SetField(oauthclient.FieldHomepage, field.TypeString, value)
	}
	if _u.mutation.HomepageCleared() {
		_spec.ClearField(oauthclient.FieldHomepage, field.TypeString)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(oauthclient.FieldLogo, field.TypeString, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(oauthclient.FieldLogo, field.TypeString)
	}
	if value, ok := _u.mutation.Terms(); ok {
		_spec.SetField(oauthclient.FieldTerms, field.TypeString, value)
	}
	if _u.mutation.TermsCleared() {
		_spec.ClearField(oauthclient.FieldTerms, field.TypeString)
	}
	if value, ok := _u.mutation.Privacy(); ok {
		_spec.SetField(oauthclient.FieldPrivacy, field.TypeString, value)
	}
	if _u.mutation.PrivacyCleared() {
		_spec.ClearField(oauthclient.FieldPrivacy, field.TypeString)
	}
	if value, ok := _u.mutation.Contacts(); ok {
		_spec.SetField(oauthclient.FieldContacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthclient.FieldContacts, value)
		})
	}
	if _u.mutation.ContactsCleared() {
		_spec.ClearField(oauthclient.FieldContacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(oauthclient.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oauthclient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OAuthClientUpdateOne is the builder for updating a single OAuthClient entity.
type OAuthClientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OAuthClientMutation
}

// SetClientID sets the "client_id" field.
func (_u *OAuthClientUpdateOne) SetClientID(v string) *OAuthClientUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableClientID(v *string) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSecretHash sets the "secret_hash" field.
func (_u *OAuthClientUpdateOne) SetSecretHash(v string) *OAuthClientUpdateOne {
	_u.mutation.SetSecretHash(v)
	return _u
}

// SetNillableSecretHash sets the "secret_hash" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableSecretHash(v *string) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetSecretHash(*v)
	}
	return _u
}

// ClearSecretHash clears the value of the "secret_hash" field.
func (_u *OAuthClientUpdateOne) ClearSecretHash() *OAuthClientUpdateOne {
	_u.mutation.ClearSecretHash()
	return _u
}

// SetName sets the "name" field.
func (_u *OAuthClientUpdateOne) SetName(v string) *OAuthClientUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableName(v *string) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *OAuthClientUpdateOne) SetIcon(v string) *OAuthClientUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableIcon(v *string) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *OAuthClientUpdateOne) ClearIcon() *OAuthClientUpdateOne {
	_u.mutation.ClearIcon()
	return _u
}

// SetClientType sets the "client_type" field.
func (_u *OAuthClientUpdateOne) SetClientType(v oauthclient.ClientType) *OAuthClientUpdateOne {
	_u.mutation.SetClientType(v)
	return _u
}

// SetNillableClientType sets the "client_type" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableClientType(v *oauthclient.ClientType) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetClientType(*v)
	}
	return _u
}

// SetDisabled sets the "disabled" field.
func (_u *OAuthClientUpdateOne) SetDisabled(v bool) *OAuthClientUpdateOne {
	_u.mutation.SetDisabled(v)
	return _u
}

// SetNillableDisabled sets the "disabled" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableDisabled(v *bool) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetDisabled(*v)
	}
	return _u
}

// SetRedirectUris sets the "redirect_uris" field.
func (_u *OAuthClientUpdateOne) SetRedirectUris(v string) *OAuthClientUpdateOne {
	_u.mutation.SetRedirectUris(v)
	return _u
}

// SetNillableRedirectUris sets the "redirect_uris" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableRedirectUris(v *string) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetRedirectUris(*v)
	}
	return _u
}

// ClearRedirectUris clears the value of the "redirect_uris" field.
func (_u *OAuthClientUpdateOne) ClearRedirectUris() *OAuthClientUpdateOne {
	_u.mutation.ClearRedirectUris()
	return _u
}

// SetURISchemaVersion sets the "uri_schema_version" field.
func (_u *OAuthClientUpdateOne) SetURISchemaVersion(v int) *OAuthClientUpdateOne {
	_u.mutation.ResetURISchemaVersion()
	_u.mutation.SetURISchemaVersion(v)
	return _u
}

// SetNillableURISchemaVersion sets the "uri_schema_version" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableURISchemaVersion(v *int) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetURISchemaVersion(*v)
	}
	return _u
}

// AddURISchemaVersion adds value to the "uri_schema_version" field.
func (_u *OAuthClientUpdateOne) AddURISchemaVersion(v int) *OAuthClientUpdateOne {
	_u.mutation.AddURISchemaVersion(v)
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *OAuthClientUpdateOne) SetScopes(v []string) *OAuthClientUpdateOne {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *OAuthClientUpdateOne) AppendScopes(v []string) *OAuthClientUpdateOne {
	_u.mutation.AppendScopes(v)
	return _u
}

// ClearScopes clears the value of the "scopes" field.
func (_u *OAuthClientUpdateOne) ClearScopes() *OAuthClientUpdateOne {
	_u.mutation.ClearScopes()
	return _u
}

// SetGrantTypes sets the "grant_types" field.
func (_u *OAuthClientUpdateOne) SetGrantTypes(v []string) *OAuthClientUpdateOne {
	_u.mutation.SetGrantTypes(v)
	return _u
}

// AppendGrantTypes appends value to the "grant_types" field.
func (_u *OAuthClientUpdateOne) AppendGrantTypes(v []string) *OAuthClientUpdateOne {
	_u.mutation.AppendGrantTypes(v)
	return _u
}

// ClearGrantTypes clears the value of the "grant_types" field.
func (_u *OAuthClientUpdateOne) ClearGrantTypes() *OAuthClientUpdateOne {
	_u.mutation.ClearGrantTypes()
	return _u
}

// SetResponseTypes sets the "response_types" field.
func (_u *OAuthClientUpdateOne) SetResponseTypes(v []string) *OAuthClientUpdateOne {
	_u.mutation.SetResponseTypes(v)
	return _u
}

// AppendResponseTypes appends value to the "response_types" field.
func (_u *OAuthClientUpdateOne) AppendResponseTypes(v []string) *OAuthClientUpdateOne {
	_u.mutation.AppendResponseTypes(v)
	return _u
}

// ClearResponseTypes clears the value of the "response_types" field.
func (_u *OAuthClientUpdateOne) ClearResponseTypes() *OAuthClientUpdateOne {
	_u.mutation.ClearResponseTypes()
	return _u
}

// SetHomepage sets the "homepage" field.
func (_u *OAuthClientUpdateOne) SetHomepage(v string) *OAuthClientUpdateOne {
	_u.mutation.SetHomepage(v)
	return _u
}

// SetNillableHomepage sets the "homepage" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableHomepage(v *string) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetHomepage(*v)
	}
	return _u
}

// ClearHomepage clears the value of the "homepage" field.
func (_u *OAuthClientUpdateOne) ClearHomepage() *OAuthClientUpdateOne {
	_u.mutation.ClearHomepage()
	return _u
}

// SetLogo sets the "logo" field.
func (_u *OAuthClientUpdateOne) SetLogo(v string) *OAuthClientUpdateOne {
	_u.mutation.SetLogo(v)
	return _u
}

// SetNillableLogo sets the "logo" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableLogo(v *string) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetLogo(*v)
	}
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *OAuthClientUpdateOne) ClearLogo() *OAuthClientUpdateOne {
	_u.mutation.ClearLogo()
	return _u
}

// SetTerms sets the "terms" field.
func (_u *OAuthClientUpdateOne) SetTerms(v string) *OAuthClientUpdateOne {
	_u.mutation.SetTerms(v)
	return _u
}

// SetNillableTerms sets the "terms" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillableTerms(v *string) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetTerms(*v)
	}
	return _u
}

// ClearTerms clears the value of the "terms" field.
func (_u *OAuthClientUpdateOne) ClearTerms() *OAuthClientUpdateOne {
	_u.mutation.ClearTerms()
	return _u
}

// SetPrivacy sets the "privacy" field.
func (_u *OAuthClientUpdateOne) SetPrivacy(v string) *OAuthClientUpdateOne {
	_u.mutation.SetPrivacy(v)
	return _u
}

// SetNillablePrivacy sets the "privacy" field if the given value is not nil.
func (_u *OAuthClientUpdateOne) SetNillablePrivacy(v *string) *OAuthClientUpdateOne {
	if v != nil {
		_u.SetPrivacy(*v)
	}
	return _u
}

// ClearPrivacy clears the value of the "privacy" field.
func (_u *OAuthClientUpdateOne) ClearPrivacy() *OAuthClientUpdateOne {
	_u.mutation.ClearPrivacy()
	return _u
}

// SetContacts sets the "contacts" field.
func (_u *OAuthClientUpdateOne) SetContacts(v []string) *OAuthClientUpdateOne {
	_u.mutation.SetContacts(v)
	return _u
}

// AppendContacts appends value to the "contacts" field.
func (_u *OAuthClientUpdateOne) AppendContacts(v []string) *OAuthClientUpdateOne {
	_u.mutation.AppendContacts(v)
	return _u
}

// ClearContacts clears the value of the "contacts" field.
func (_u *OAuthClientUpdateOne) ClearContacts() *OAuthClientUpdateOne {
	_u.mutation.ClearContacts()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OAuthClientUpdateOne) SetUpdatedAt(v time.Time) *OAuthClientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OAuthClientMutation object of the builder.
func (_u *OAuthClientUpdateOne) Mutation() *OAuthClientMutation {
	return _u.mutation
}

// Where appends a list predicates to the OAuthClientUpdate builder.
func (_u *OAuthClientUpdateOne) Where(ps ...predicate.OAuthClient) *OAuthClientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OAuthClientUpdateOne) Select(field string, fields ...string) *OAuthClientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OAuthClient entity.
func (_u *OAuthClientUpdateOne) Save(ctx context.Context) (*OAuthClient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OAuthClientUpdateOne) SaveX(ctx context.Context) *OAuthClient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OAuthClientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OAuthClientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OAuthClientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := oauthclient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OAuthClientUpdateOne) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := oauthclient.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "OAuthClient.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := oauthclient.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "OAuthClient.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientType(); ok {
		if err := oauthclient.ClientTypeValidator(v); err != nil {
			return &ValidationError{Name: "client_type", err: fmt.Errorf(`ent: validator failed for field "OAuthClient.client_type": %w`, err)}
		}
	}
	return nil
}

func (_u *OAuthClientUpdateOne) sqlSave(ctx context.Context) (_node *OAuthClient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oauthclient.Table, oauthclient.Columns, sqlgraph.NewFieldSpec(oauthclient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OAuthClient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oauthclient.FieldID)
		for _, f := range fields {
			if !oauthclient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != oauthclient.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(oauthclient.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecretHash(); ok {
		_spec.SetField(oauthclient.FieldSecretHash, field.TypeString, value)
	}
	if _u.mutation.SecretHashCleared() {
		_spec.ClearField(oauthclient.FieldSecretHash, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(oauthclient.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(oauthclient.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(oauthclient.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.ClientType(); ok {
		_spec.SetField(oauthclient.FieldClientType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Disabled(); ok {
		_spec.SetField(oauthclient.FieldDisabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RedirectUris(); ok {
		_spec.SetField(oauthclient.FieldRedirectUris, field.TypeString, value)
	}
	if _u.mutation.RedirectUrisCleared() {
		_spec.ClearField(oauthclient.FieldRedirectUris, field.TypeString)
	}
	if value, ok := _u.mutation.URISchemaVersion(); ok {
		_spec.SetField(oauthclient.FieldURISchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedURISchemaVersion(); ok {
		_spec.AddField(oauthclient.FieldURISchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(oauthclient.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthclient.FieldScopes, value)
		})
	}
	if _u.mutation.ScopesCleared() {
		_spec.ClearField(oauthclient.FieldScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.GrantTypes(); ok {
		_spec.SetField(oauthclient.FieldGrantTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGrantTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthclient.FieldGrantTypes, value)
		})
	}
	if _u.mutation.GrantTypesCleared() {
		_spec.ClearField(oauthclient.FieldGrantTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseTypes(); ok {
		_spec.SetField(oauthclient.FieldResponseTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponseTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthclient.FieldResponseTypes, value)
		})
	}
	if _u.mutation.ResponseTypesCleared() {
		_spec.ClearField(oauthclient.FieldResponseTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Homepage(); ok {
		_spec.SetField(oauthclient.FieldHomepage, field.TypeString, value)
	}
	if _u.mutation.HomepageCleared() {
		_spec.ClearField(oauthclient.FieldHomepage, field.TypeString)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(oauthclient.FieldLogo, field.TypeString, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(oauthclient.FieldLogo, field.TypeString)
	}
	if value, ok := _u.mutation.Terms(); ok {
		_spec.SetField(oauthclient.FieldTerms, field.TypeString, value)
	}
	if _u.mutation.TermsCleared() {
		_spec.ClearField(oauthclient.FieldTerms, field.TypeString)
	}
	if value, ok := _u.mutation.Privacy(); ok {
		_spec.SetField(oauthclient.FieldPrivacy, field.TypeString, value)
	}
	if _u.mutation.PrivacyCleared() {
		_spec.ClearField(oauthclient.FieldPrivacy, field.TypeString)
	}
	if value, ok := _u.mutation.Contacts(); ok {
		_spec.SetField(oauthclient.FieldContacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthclient.FieldContacts, value)
		})
	}
	if _u.mutation.ContactsCleared() {
		_spec.ClearField(oauthclient.FieldContacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(oauthclient.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &OAuthClient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oauthclient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
