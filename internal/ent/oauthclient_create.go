// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/luminauth/idp-console/internal/ent/oauthclient"
)

// OAuthClientCreate is the builder for creating a OAuthClient entity.
type OAuthClientCreate struct {
	config
	mutation *OAuthClientMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (_c *OAuthClientCreate) SetClientID(v string) *OAuthClientCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetSecretHash sets the "secret_hash" field.
func (_c *OAuthClientCreate) SetSecretHash(v string) *OAuthClientCreate {
	_c.mutation.SetSecretHash(v)
	return _c
}

// SetNillableSecretHash sets the "secret_hash" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableSecretHash(v *string) *OAuthClientCreate {
	if v != nil {
		_c.SetSecretHash(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *OAuthClientCreate) SetName(v string) *OAuthClientCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetIcon sets the "icon" field.
func (_c *OAuthClientCreate) SetIcon(v string) *OAuthClientCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableIcon(v *string) *OAuthClientCreate {
	if v != nil {
		_c.SetIcon(*v)
	}
	return _c
}

// SetClientType sets the "client_type" field.
func (_c *OAuthClientCreate) SetClientType(v oauthclient.ClientType) *OAuthClientCreate {
	_c.mutation.SetClientType(v)
	return _c
}

// SetNillableClientType sets the "client_type" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableClientType(v *oauthclient.ClientType) *OAuthClientCreate {
	if v != nil {
		_c.SetClientType(*v)
	}
	return _c
}

// SetDisabled sets the "disabled" field.
func (_c *OAuthClientCreate) SetDisabled(v bool) *OAuthClientCreate {
	_c.mutation.SetDisabled(v)
	return _c
}

// SetNillableDisabled sets the "disabled" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableDisabled(v *bool) *OAuthClientCreate {
	if v != nil {
		_c.SetDisabled(*v)
	}
	return _c
}

// SetRedirectUris sets the "redirect_uris" field.
func (_c *OAuthClientCreate) SetRedirectUris(v string) *OAuthClientCreate {
	_c.mutation.SetRedirectUris(v)
	return _c
}

// SetNillableRedirectUris sets the "redirect_uris" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableRedirectUris(v *string) *OAuthClientCreate {
	if v != nil {
		_c.SetRedirectUris(*v)
	}
	return _c
}

// SetURISchemaVersion sets the "uri_schema_version" field.
func (_c *OAuthClientCreate) SetURISchemaVersion(v int) *OAuthClientCreate {
	_c.mutation.SetURISchemaVersion(v)
	return _c
}

// SetNillableURISchemaVersion sets the "uri_schema_version" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableURISchemaVersion(v *int) *OAuthClientCreate {
	if v != nil {
		_c.SetURISchemaVersion(*v)
	}
	return _c
}

// SetScopes sets the "scopes" field.
func (_c *OAuthClientCreate) SetScopes(v []string) *OAuthClientCreate {
	_c.mutation.SetScopes(v)
	return _c
}

// SetGrantTypes sets the "grant_types" field.
func (_c *OAuthClientCreate) SetGrantTypes(v []string) *OAuthClientCreate {
	_c.mutation.SetGrantTypes(v)
	return _c
}

// SetResponseTypes sets the "response_types" field.
func (_c *OAuthClientCreate) SetResponseTypes(v []string) *OAuthClientCreate {
	_c.mutation.SetResponseTypes(v)
	return _c
}

// SetHomepage sets the "homepage" field.
func (_c *OAuthClientCreate) SetHomepage(v string) *OAuthClientCreate {
	_c.mutation.SetHomepage(v)
	return _c
}

// SetNillableHomepage sets the "homepage" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableHomepage(v *string) *OAuthClientCreate {
	if v != nil {
		_c.SetHomepage(*v)
	}
	return _c
}

// SetLogo sets the "logo" field.
func (_c *OAuthClientCreate) SetLogo(v string) *OAuthClientCreate {
	_c.mutation.SetLogo(v)
	return _c
}

// SetNillableLogo sets the "logo" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableLogo(v *string) *OAuthClientCreate {
	if v != nil {
		_c.SetLogo(*v)
	}
	return _c
}

// SetTerms sets the "terms" field.
func (_c *OAuthClientCreate) SetTerms(v string) *OAuthClientCreate {
	_c.mutation.SetTerms(v)
	return _c
}

// SetNillableTerms sets the "terms" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableTerms(v *string) *OAuthClientCreate {
	if v != nil {
		_c.SetTerms(*v)
	}
	return _c
}

// SetPrivacy sets the "privacy" field.
func (_c *OAuthClientCreate) SetPrivacy(v string) *OAuthClientCreate {
	_c.mutation.SetPrivacy(v)
	return _c
}

// SetNillablePrivacy sets the "privacy" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillablePrivacy(v *string) *OAuthClientCreate {
	if v != nil {
		_c.SetPrivacy(*v)
	}
	return _c
}

// SetContacts sets the "contacts" field.
func (_c *OAuthClientCreate) SetContacts(v []string) *OAuthClientCreate {
	_c.mutation.SetContacts(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OAuthClientCreate) SetCreatedAt(v time.Time) *OAuthClientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableCreatedAt(v *time.Time) *OAuthClientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OAuthClientCreate) SetUpdatedAt(v time.Time) *OAuthClientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableUpdatedAt(v *time.Time) *OAuthClientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OAuthClientCreate) SetID(v uuid.UUID) *OAuthClientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OAuthClientCreate) SetNillableID(v *uuid.UUID) *OAuthClientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OAuthClientMutation object of the builder.
func (_c *OAuthClientCreate) Mutation() *OAuthClientMutation {
	return _c.mutation
}

// Save creates the OAuthClient in the database.
func (_c *OAuthClientCreate) Save(ctx context.Context) (*OAuthClient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OAuthClientCreate) SaveX(ctx context.Context) *OAuthClient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OAuthClientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OAuthClientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OAuthClientCreate) defaults() {
	if _, ok := _c.mutation.ClientType(); !ok {
		v := oauthclient.DefaultClientType
		_c.mutation.SetClientType(v)
	}
	if _, ok := _c.mutation.Disabled(); !ok {
		v := oauthclient.DefaultDisabled
		_c.mutation.SetDisabled(v)
	}
	if _, ok := _c.mutation.URISchemaVersion(); !ok {
		v := oauthclient.DefaultURISchemaVersion
		_c.mutation.SetURISchemaVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := oauthclient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := oauthclient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := oauthclient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OAuthClientCreate) check() error {
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "OAuthClient.client_id"`)}
	}
	if v, ok := _c.mutation.ClientID(); ok {
		if err := oauthclient.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "OAuthClient.client_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "OAuthClient.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := oauthclient.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "OAuthClient.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientType(); !ok {
		return &ValidationError{Name: "client_type", err: errors.New(`ent: missing required field "OAuthClient.client_type"`)}
	}
	if v, ok := _c.mutation.ClientType(); ok {
		if err := oauthclient.ClientTypeValidator(v); err != nil {
			return &ValidationError{Name: "client_type", err: fmt.Errorf(`ent: validator failed for field "OAuthClient.client_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Disabled(); !ok {
		return &ValidationError{Name: "disabled", err: errors.New(`ent: missing required field "OAuthClient.disabled"`)}
	}
	if _, ok := _c.mutation.URISchemaVersion(); !ok {
		return &ValidationError{Name: "uri_schema_version", err: errors.New(`ent: missing required field "OAuthClient.uri_schema_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OAuthClient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OAuthClient.updated_at"`)}
	}
	return nil
}

func (_c *OAuthClientCreate) sqlSave(ctx context.Context) (*OAuthClient, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OAuthClientCreate) createSpec() (*OAuthClient, *sqlgraph.CreateSpec) {
	var (
		_node = &OAuthClient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(oauthclient.Table, sqlgraph.NewFieldSpec(oauthclient.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(oauthclient.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.SecretHash(); ok {
		_spec.SetField(oauthclient.FieldSecretHash, field.TypeString, value)
		_node.SecretHash = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(oauthclient.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(oauthclient.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	if value, ok := _c.mutation.ClientType(); ok {
		_spec.SetField(oauthclient.FieldClientType, field.TypeEnum, value)
		_node.ClientType = value
	}
	if value, ok := _c.mutation.Disabled(); ok {
		_spec.SetField(oauthclient.FieldDisabled, field.TypeBool, value)
		_node.Disabled = value
	}
	if value, ok := _c.mutation.RedirectUris(); ok {
		_spec.SetField(oauthclient.FieldRedirectUris, field.TypeString, value)
		_node.RedirectUris = value
	}
	if value, ok := _c.mutation.URISchemaVersion(); ok {
		_spec.SetField(oauthclient.FieldURISchemaVersion, field.TypeInt, value)
		_node.URISchemaVersion = value
	}
	if value, ok := _c.mutation.Scopes(); ok {
		_spec.SetField(oauthclient.FieldScopes, field.TypeJSON, value)
		_node.Scopes = value
	}
	if value, ok := _c.mutation.GrantTypes(); ok {
		_spec.SetField(oauthclient.FieldGrantTypes, field.TypeJSON, value)
		_node.GrantTypes = value
	}
	if value, ok := _c.mutation.ResponseTypes(); ok {
		_spec.SetField(oauthclient.FieldResponseTypes, field.TypeJSON, value)
		_node.ResponseTypes = value
	}
	if value, ok := _c.mutation.Homepage(); ok {
		_spec.SetField(oauthclient.FieldHomepage, field.TypeString, value)
		_node.Homepage = value
	}
	if value, ok := _c.mutation.Logo(); ok {
		_spec.SetField(oauthclient.FieldLogo, field.TypeString, value)
		_node.Logo = value
	}
	if value, ok := _c.mutation.Terms(); ok {
		_spec.SetField(oauthclient.FieldTerms, field.TypeString, value)
		_node.Terms = value
	}
	if value, ok := _c.mutation.Privacy(); ok {
		_spec.SetField(oauthclient.FieldPrivacy, field.TypeString, value)
		_node.Privacy = value
	}
	if value, ok := _c.mutation.Contacts(); ok {
		_spec.SetField(oauthclient.FieldContacts, field.TypeJSON, value)
		_node.Contacts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(oauthclient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(oauthclient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OAuthClientCreateBulk is the builder for creating many OAuthClient entities in bulk.
type OAuthClientCreateBulk struct {
	config
	err      error
	builders []*OAuthClientCreate
}

// Save creates the OAuthClient entities in the database.
func (_c *OAuthClientCreateBulk) Save(ctx context.Context) ([]*OAuthClient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OAuthClient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OAuthClientMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OAuthClientCreateBulk) SaveX(ctx context.Context) []*OAuthClient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OAuthClientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OAuthClientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
