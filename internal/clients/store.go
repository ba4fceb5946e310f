package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/luminauth/idp-console/internal/ent"
	entconsent "github.com/luminauth/idp-console/internal/ent/consent"
	"github.com/luminauth/idp-console/internal/ent/oauthclient"
	"github.com/luminauth/idp-console/internal/ent/oauthtoken"
	"github.com/luminauth/idp-console/internal/oauth/credentials"
)

var (
	// ErrNotFound indicates no client matches the given client ID.
	ErrNotFound = errors.New("oauth client not found")
	// ErrDuplicateClientID indicates a generated client ID collided twice in
	// a row, which should never happen with random identifiers.
	ErrDuplicateClientID = errors.New("duplicate client id")
	// ErrSecretMismatch indicates the presented secret does not authenticate
	// the client.
	ErrSecretMismatch = errors.New("client secret mismatch")
)

// Client is the normalized view of a persisted OAuth client. Redirect URIs
// are always decoded from the stored representation, legacy or current.
type Client struct {
	ID            uuid.UUID `json:"id"`
	ClientID      string    `json:"client_id"`
	Name          string    `json:"name"`
	Icon          string    `json:"icon,omitempty"`
	Type          string    `json:"type"`
	Disabled      bool      `json:"disabled"`
	RedirectURIs  []string  `json:"redirect_uris"`
	Scopes        []string  `json:"scopes"`
	GrantTypes    []string  `json:"grant_types"`
	ResponseTypes []string  `json:"response_types"`
	Homepage      string    `json:"homepage,omitempty"`
	Logo          string    `json:"logo,omitempty"`
	Terms         string    `json:"terms,omitempty"`
	Privacy       string    `json:"privacy,omitempty"`
	Contacts      []string  `json:"contacts,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Store persists OAuth client records.
type Store struct {
	ent    *ent.Client
	logger *zap.Logger
}

// NewStore constructs a Store.
func NewStore(entClient *ent.Client, logger *zap.Logger) *Store {
	return &Store{ent: entClient, logger: logger}
}

// Create registers a new client. The client ID and, for confidential clients,
// the secret are generated. The plaintext secret is returned exactly once;
// only its bcrypt hash is stored.
func (s *Store) Create(ctx context.Context, params CreateParams) (*Client, string, error) {
	var secret string
	if params.Type != "public" {
		generated, err := credentials.NewClientSecret()
		if err != nil {
			return nil, "", err
		}
		secret = generated
	}

	// One retry with a fresh ID on collision; a second collision is treated
	// as a programming error.
	var row *ent.OAuthClient
	for attempt := 0; attempt < 2; attempt++ {
		saved, err := s.insert(ctx, credentials.NewClientID(), secret, params)
		if err == nil {
			row = saved
			break
		}
		if !ent.IsConstraintError(err) {
			return nil, "", fmt.Errorf("create oauth client: %w", err)
		}
		s.logger.Warn("client id collision, retrying", zap.Int("attempt", attempt+1))
		if attempt == 1 {
			return nil, "", ErrDuplicateClientID
		}
	}

	return fromRow(row), secret, nil
}

func (s *Store) insert(ctx context.Context, clientID, secret string, params CreateParams) (*ent.OAuthClient, error) {
	create := s.ent.OAuthClient.Create().
		SetClientID(clientID).
		SetName(params.Name).
		SetClientType(oauthclient.ClientType(params.Type)).
		SetRedirectUris(CodecFor(URISchemaCurrent).Encode(params.RedirectURIs)).
		SetURISchemaVersion(URISchemaCurrent).
		SetScopes(params.Scopes).
		SetGrantTypes(params.GrantTypes).
		SetResponseTypes(params.ResponseTypes)

	if secret != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash client secret: %w", err)
		}
		create.SetSecretHash(string(hash))
	}
	if params.Icon != "" {
		create.SetIcon(params.Icon)
	}
	if params.Homepage != "" {
		create.SetHomepage(params.Homepage)
	}
	if params.Logo != "" {
		create.SetLogo(params.Logo)
	}
	if params.Terms != "" {
		create.SetTerms(params.Terms)
	}
	if params.Privacy != "" {
		create.SetPrivacy(params.Privacy)
	}
	if len(params.Contacts) > 0 {
		create.SetContacts(params.Contacts)
	}
	return create.Save(ctx)
}

// Get returns the client registered under clientID.
func (s *Store) Get(ctx context.Context, clientID string) (*Client, error) {
	row, err := s.row(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

// Update applies a partial edit. Redirect URIs, when present, fully replace
// the stored list and are rewritten in the current representation. The
// updated_at column is bumped on every call.
func (s *Store) Update(ctx context.Context, clientID string, params UpdateParams) (*Client, error) {
	row, err := s.row(ctx, clientID)
	if err != nil {
		return nil, err
	}

	update := s.ent.OAuthClient.UpdateOneID(row.ID).
		SetUpdatedAt(time.Now().UTC())
	if params.Name != nil {
		update.SetName(*params.Name)
	}
	if params.Icon != nil {
		update.SetIcon(*params.Icon)
	}
	if params.Type != nil {
		update.SetClientType(oauthclient.ClientType(*params.Type))
	}
	if params.Disabled != nil {
		update.SetDisabled(*params.Disabled)
	}
	if params.RedirectURIs != nil {
		update.SetRedirectUris(CodecFor(URISchemaCurrent).Encode(*params.RedirectURIs)).
			SetURISchemaVersion(URISchemaCurrent)
	}
	if params.Scopes != nil {
		update.SetScopes(*params.Scopes)
	}
	if params.GrantTypes != nil {
		update.SetGrantTypes(*params.GrantTypes)
	}
	if params.ResponseTypes != nil {
		update.SetResponseTypes(*params.ResponseTypes)
	}
	if params.Homepage != nil {
		update.SetHomepage(*params.Homepage)
	}
	if params.Logo != nil {
		update.SetLogo(*params.Logo)
	}
	if params.Terms != nil {
		update.SetTerms(*params.Terms)
	}
	if params.Privacy != nil {
		update.SetPrivacy(*params.Privacy)
	}
	if params.Contacts != nil {
		update.SetContacts(*params.Contacts)
	}

	saved, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update oauth client: %w", err)
	}
	return fromRow(saved), nil
}

// RotateSecret replaces the client secret and returns the new plaintext once.
// The previous secret stops authenticating immediately; there is no overlap
// window.
func (s *Store) RotateSecret(ctx context.Context, clientID string) (string, error) {
	row, err := s.row(ctx, clientID)
	if err != nil {
		return "", err
	}

	secret, err := credentials.NewClientSecret()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash client secret: %w", err)
	}

	if err := s.ent.OAuthClient.UpdateOneID(row.ID).
		SetSecretHash(string(hash)).
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("rotate client secret: %w", err)
	}
	return secret, nil
}

// VerifySecret authenticates a confidential client. Disabled clients and
// public clients never authenticate.
func (s *Store) VerifySecret(ctx context.Context, clientID, secret string) error {
	row, err := s.row(ctx, clientID)
	if err != nil {
		return err
	}
	if row.Disabled || row.SecretHash == "" || secret == "" {
		return ErrSecretMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(row.SecretHash), []byte(secret)); err != nil {
		return ErrSecretMismatch
	}
	return nil
}

// Delete removes the client and, in the same transaction, every consent and
// token row referencing it. A partial cascade is never observable.
func (s *Store) Delete(ctx context.Context, clientID string) error {
	tx, err := s.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin delete tx: %w", err)
	}

	if err := s.deleteCascade(ctx, tx, clientID); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			s.logger.Warn("rollback client delete", zap.Error(rerr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete tx: %w", err)
	}
	return nil
}

func (s *Store) deleteCascade(ctx context.Context, tx *ent.Tx, clientID string) error {
	if _, err := tx.Consent.Delete().
		Where(entconsent.ClientIDEQ(clientID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete dependent consents: %w", err)
	}
	if _, err := tx.OAuthToken.Delete().
		Where(oauthtoken.ClientIDEQ(clientID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete dependent tokens: %w", err)
	}

	n, err := tx.OAuthClient.Delete().
		Where(oauthclient.ClientIDEQ(clientID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete oauth client: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns a page of clients ordered by creation time, newest first,
// along with the total match count. When search is non-empty it is matched
// case-insensitively against name and client ID.
func (s *Store) List(ctx context.Context, search string, limit, offset int) ([]*Client, int, error) {
	if limit <= 0 {
		limit = 50
	}

	query := s.ent.OAuthClient.Query()
	if search != "" {
		query = query.Where(oauthclient.Or(
			oauthclient.NameContainsFold(search),
			oauthclient.ClientIDContainsFold(search),
		))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count oauth clients: %w", err)
	}

	rows, err := query.
		Order(ent.Desc(oauthclient.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list oauth clients: %w", err)
	}

	out := make([]*Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, total, nil
}

func (s *Store) row(ctx context.Context, clientID string) (*ent.OAuthClient, error) {
	row, err := s.ent.OAuthClient.Query().
		Where(oauthclient.ClientIDEQ(clientID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query oauth client: %w", err)
	}
	return row, nil
}

func fromRow(row *ent.OAuthClient) *Client {
	return &Client{
		ID:            row.ID,
		ClientID:      row.ClientID,
		Name:          row.Name,
		Icon:          row.Icon,
		Type:          string(row.ClientType),
		Disabled:      row.Disabled,
		RedirectURIs:  CodecFor(row.URISchemaVersion).Decode(row.RedirectUris),
		Scopes:        row.Scopes,
		GrantTypes:    row.GrantTypes,
		ResponseTypes: row.ResponseTypes,
		Homepage:      row.Homepage,
		Logo:          row.Logo,
		Terms:         row.Terms,
		Privacy:       row.Privacy,
		Contacts:      row.Contacts,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
