package consent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/luminauth/idp-console/internal/ent"
	entconsent "github.com/luminauth/idp-console/internal/ent/consent"
)

// Grant is a persisted consent row. Its existence is the grant signal; there
// is no separate boolean flag.
type Grant struct {
	ClientID    string    `json:"client_id"`
	UserID      uuid.UUID `json:"user_id"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Scopes      []string  `json:"scopes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Store persists consent grants.
type Store struct {
	ent *ent.Client
}

// NewStore constructs a Store.
func NewStore(entClient *ent.Client) *Store {
	return &Store{ent: entClient}
}

// Upsert records an approval. Scopes fully replace any previously granted
// set for the same (client, user, reference) key.
func (s *Store) Upsert(ctx context.Context, clientID string, userID uuid.UUID, referenceID string, scopeNames []string) (*Grant, error) {
	existing, err := s.ent.Consent.Query().
		Where(
			entconsent.ClientIDEQ(clientID),
			entconsent.UserIDEQ(userID),
			entconsent.ReferenceIDEQ(referenceID),
		).
		Only(ctx)
	switch {
	case err == nil:
		updated, err := existing.Update().
			SetScopes(scopeNames).
			SetUpdatedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update consent: %w", err)
		}
		return grantFromRow(updated), nil
	case ent.IsNotFound(err):
		created, err := s.ent.Consent.Create().
			SetClientID(clientID).
			SetUserID(userID).
			SetReferenceID(referenceID).
			SetScopes(scopeNames).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create consent: %w", err)
		}
		return grantFromRow(created), nil
	default:
		return nil, fmt.Errorf("query consent: %w", err)
	}
}

// Get returns the grant for (client, user, reference), or nil when the user
// has not consented.
func (s *Store) Get(ctx context.Context, clientID string, userID uuid.UUID, referenceID string) (*Grant, error) {
	row, err := s.ent.Consent.Query().
		Where(
			entconsent.ClientIDEQ(clientID),
			entconsent.UserIDEQ(userID),
			entconsent.ReferenceIDEQ(referenceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query consent: %w", err)
	}
	return grantFromRow(row), nil
}

// ListByUser returns every grant the user currently holds, newest first.
func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Grant, error) {
	rows, err := s.ent.Consent.Query().
		Where(entconsent.UserIDEQ(userID)).
		Order(ent.Desc(entconsent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consents: %w", err)
	}
	grants := make([]*Grant, 0, len(rows))
	for _, row := range rows {
		grants = append(grants, grantFromRow(row))
	}
	return grants, nil
}

// Revoke deletes the grant row. Deleting a row that does not exist is a
// no-op: absence already means "no consent".
func (s *Store) Revoke(ctx context.Context, clientID string, userID uuid.UUID, referenceID string) error {
	_, err := s.ent.Consent.Delete().
		Where(
			entconsent.ClientIDEQ(clientID),
			entconsent.UserIDEQ(userID),
			entconsent.ReferenceIDEQ(referenceID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("revoke consent: %w", err)
	}
	return nil
}

func grantFromRow(row *ent.Consent) *Grant {
	return &Grant{
		ClientID:    row.ClientID,
		UserID:      row.UserID,
		ReferenceID: row.ReferenceID,
		Scopes:      row.Scopes,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
